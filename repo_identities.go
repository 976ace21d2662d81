package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

type identities struct {
	db bun.IDB
}

var _ IdentityStore = (*identities)(nil)

// NewIdentityStore returns a bun-backed IdentityStore.
func NewIdentityStore(db bun.IDB) IdentityStore {
	return &identities{db: db}
}

// FindActiveIdentity resolves a single active identity for the provider and
// normalized identifier. Ordering is is_primary DESC then id ASC: the schema
// keeps (provider, identifier_normalized) unique across active rows, but the
// lookup stays deterministic even when that invariant is violated.
func (i *identities) FindActiveIdentity(ctx context.Context, provider Provider, normalized string) (*AuthIdentity, error) {
	record := &AuthIdentity{}

	err := i.db.NewSelect().
		Model(record).
		Where("?TableAlias.provider = ?", provider).
		Where("?TableAlias.identifier_normalized = ?", normalized).
		Where("?TableAlias.is_active = ?", true).
		OrderExpr("?TableAlias.is_primary DESC").
		OrderExpr("?TableAlias.id ASC").
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStorageError(err, "failed to query auth identity")
	}

	return record, nil
}

// GetUser loads the user with its roles and each role's permissions
// materialized, so the caller can aggregate claims without further queries.
func (i *identities) GetUser(ctx context.Context, id int64) (*User, error) {
	record := &User{}

	err := i.db.NewSelect().
		Model(record).
		Relation("Roles").
		Relation("Roles.Permissions").
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStorageError(err, "failed to load user")
	}

	return record, nil
}
