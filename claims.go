package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the validated payload of an access token.
type AuthClaims interface {
	Subject() string
	UserID() string
	UserEmail() string
	RoleNames() []string
	PermissionCodes() []string
	HasRole(role string) bool
	HasPermission(code string) bool
	Expires() time.Time
	IssuedAt() time.Time
}

// JWTClaims is the concrete implementation of AuthClaims
type JWTClaims struct {
	jwt.RegisteredClaims
	UID   string   `json:"uid,omitempty"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	Perms []string `json:"perms"`
}

// Verify interface compliance
var _ AuthClaims = (*JWTClaims)(nil)

// Subject returns the subject claim
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user ID
func (c *JWTClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject()
}

// UserEmail returns the email claim, empty when the user has no profile
// email.
func (c *JWTClaims) UserEmail() string {
	return c.Email
}

// RoleNames returns the role names carried by the token.
func (c *JWTClaims) RoleNames() []string {
	return c.Roles
}

// PermissionCodes returns the permission codes carried by the token.
func (c *JWTClaims) PermissionCodes() []string {
	return c.Perms
}

// HasRole checks if the token carries a specific role
func (c *JWTClaims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasPermission checks if the token carries a specific permission code
func (c *JWTClaims) HasPermission(code string) bool {
	for _, p := range c.Perms {
		if p == code {
			return true
		}
	}
	return false
}

// Expires returns the expiration time
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
