package auth

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	Login(ctx context.Context, identifier, password string, provider ...Provider) (string, error)
	TokenService() TokenService
}

// IdentityStore is the storage collaborator the authentication core reads
// from. Implementations return (nil, nil) when no record matches; non-nil
// errors mean the store itself is unavailable.
type IdentityStore interface {
	// FindActiveIdentity resolves an active identity for the given provider
	// and normalized identifier, preferring primary identities with a
	// lowest-id tiebreak.
	FindActiveIdentity(ctx context.Context, provider Provider, normalized string) (*AuthIdentity, error)

	// GetUser loads a user with roles and role permissions materialized.
	GetUser(ctx context.Context, id int64) (*User, error)
}

// Config holds auth options
type Config interface {
	GetSigningKey() string
	GetTokenExpiration() int
	GetIssuer() string
	GetAudience() []string
}

// PasswordAuthenticator authenticates passwords
type PasswordAuthenticator interface {
	HashPassword(password string) (string, error)
	ComparePasswordAndHash(password, hash string) error
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
