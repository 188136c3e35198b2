package auth

import "errors"

// Common authentication errors
var (
	// ErrInvalidCredentials indicates the password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordTooLong indicates the password exceeds bcrypt's 72-byte input limit.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)
