package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is a registered FitHub user. Username is the login key and is
// unique across all profiles.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"-"`
	PasswordHash string    `json:"-"`
	FullName     *string   `json:"full_name"`
	Bio          *string   `json:"bio"`
	AvatarURL    *string   `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileUpdate carries the owner-editable fields of a profile.
// Every field is written as given; a nil pointer clears the column.
type ProfileUpdate struct {
	FullName  *string
	Bio       *string
	AvatarURL *string
}

// NewProfile creates a profile for a signup. The password hash is attached
// by the caller after hashing.
func NewProfile(username, email, fullName string) (*Profile, error) {
	now := time.Now().UTC()
	p := &Profile{
		ID:        uuid.New(),
		Username:  strings.TrimSpace(username),
		Email:     strings.TrimSpace(email),
		FullName:  &fullName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the fields required for a stored profile.
func (p *Profile) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if p.Username == "" {
		return ErrEmptyUsername
	}
	if p.Email == "" {
		return ErrEmptyEmail
	}
	return nil
}
