package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port              int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel          string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	RateLimitRequests int           `mapstructure:"rate_limit_requests" validate:"gte=0"`
	RateLimitWindow   time.Duration `mapstructure:"rate_limit_window" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
// URL takes precedence over the individual connection parts when set.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url" validate:"omitempty,url"`
	Host            string        `mapstructure:"host" validate:"required_without=URL"`
	Port            int           `mapstructure:"port" validate:"gt=0,lt=65536"`
	User            string        `mapstructure:"user" validate:"required_without=URL"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name" validate:"required_without=URL"`
	SSLMode         string        `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gt=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
	ConnectRetries  uint64        `mapstructure:"connect_retries"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// AuthConfig contains password hashing settings.
type AuthConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// DSN returns the connection string for the pgx driver.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Name,
	}
	if c.Password == "" {
		u.User = url.User(c.User)
	}
	if c.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", c.SSLMode)
		u.RawQuery = q.Encode()
	}
	return u.String()
}
