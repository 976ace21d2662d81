package auth

import (
	"github.com/uptrace/bun"
)

// User is the account model. Email here is a contact field, not a login
// key; identities carry the login identifiers.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            int64           `bun:"id,pk,autoincrement" json:"id,omitempty"`
	FullName      string          `bun:"full_name,nullzero" json:"full_name,omitempty"`
	Email         string          `bun:"email,nullzero" json:"email,omitempty"`
	IsActive      bool            `bun:"is_active,notnull,default:true" json:"is_active"`
	Identities    []*AuthIdentity `bun:"rel:has-many,join:id=user_id" json:"identities,omitempty"`
	Roles         []*Role         `bun:"m2m:user_roles,join:User=Role" json:"roles,omitempty"`
}

// AuthIdentity is one way a user may authenticate: a provider plus an
// identifier, optionally backed by a password hash. PasswordHash is empty
// for passwordless or federated identities. IsPrimary marks the preferred
// identity when duplicates exist for a provider+identifier pair.
type AuthIdentity struct {
	bun.BaseModel        `bun:"table:auth_identities,alias:aid"`
	ID                   int64    `bun:"id,pk,autoincrement" json:"id,omitempty"`
	UserID               int64    `bun:"user_id,notnull" json:"user_id,omitempty"`
	User                 *User    `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	Provider             Provider `bun:"provider,notnull" json:"provider,omitempty"`
	Identifier           string   `bun:"identifier,notnull" json:"identifier,omitempty"`
	IdentifierNormalized string   `bun:"identifier_normalized,notnull" json:"identifier_normalized,omitempty"`
	PasswordHash         string   `bun:"password_hash,nullzero" json:"-"`
	IsActive             bool     `bun:"is_active,notnull,default:true" json:"is_active"`
	IsPrimary            bool     `bun:"is_primary,notnull,default:false" json:"is_primary"`
}

// HasPassword reports whether the identity can be verified with a password.
func (a *AuthIdentity) HasPassword() bool {
	return a != nil && a.PasswordHash != ""
}

// Role is a named permission bundle shared across users.
type Role struct {
	bun.BaseModel `bun:"table:roles,alias:rol"`
	ID            int64         `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Name          string        `bun:"name,notnull,unique" json:"name,omitempty"`
	Description   string        `bun:"description,nullzero" json:"description,omitempty"`
	Users         []*User       `bun:"m2m:user_roles,join:Role=User" json:"users,omitempty"`
	Permissions   []*Permission `bun:"m2m:role_permissions,join:Role=Permission" json:"permissions,omitempty"`
}

// Permission is an atomic capability identified by a string code,
// e.g. "user:read".
type Permission struct {
	bun.BaseModel `bun:"table:permissions,alias:prm"`
	ID            int64   `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Code          string  `bun:"code,notnull,unique" json:"code,omitempty"`
	Description   string  `bun:"description,nullzero" json:"description,omitempty"`
	Roles         []*Role `bun:"m2m:role_permissions,join:Permission=Role" json:"roles,omitempty"`
}

// UserRole is the users<->roles join row.
type UserRole struct {
	bun.BaseModel `bun:"table:user_roles,alias:usrl"`
	UserID        int64 `bun:"user_id,pk" json:"user_id"`
	User          *User `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	RoleID        int64 `bun:"role_id,pk" json:"role_id"`
	Role          *Role `bun:"rel:belongs-to,join:role_id=id" json:"role,omitempty"`
}

// RolePermission is the roles<->permissions join row.
type RolePermission struct {
	bun.BaseModel `bun:"table:role_permissions,alias:rlpm"`
	RoleID        int64       `bun:"role_id,pk" json:"role_id"`
	Role          *Role       `bun:"rel:belongs-to,join:role_id=id" json:"role,omitempty"`
	PermissionID  int64       `bun:"permission_id,pk" json:"permission_id"`
	Permission    *Permission `bun:"rel:belongs-to,join:permission_id=id" json:"permission,omitempty"`
}
