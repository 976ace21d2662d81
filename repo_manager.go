package auth

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/uptrace/bun"
)

// RepositoryManager exposes all repositories
type RepositoryManager interface {
	Validate() error
	MustValidate()
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Identities() IdentityStore
}

type mngr struct {
	db         *bun.DB
	identities IdentityStore
}

func NewRepositoryManager(db *bun.DB) RepositoryManager {
	RegisterModels(db)
	return &mngr{
		db:         db,
		identities: NewIdentityStore(db),
	}
}

// RegisterModels registers the many-to-many join models bun needs before
// relation queries run. Safe to call more than once.
func RegisterModels(db *bun.DB) {
	db.RegisterModel(
		(*UserRole)(nil),
		(*RolePermission)(nil),
	)
}

func (m mngr) Validate() error {
	if m.db == nil {
		return errors.New("repository manager requires a database")
	}

	if m.identities == nil {
		return errors.New("repository identities should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Identities() IdentityStore {
	return m.identities
}

// CreateSchema creates every table and index the auth models need. Used by
// the seeder and by tests running against in-memory SQLite.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	RegisterModels(db)

	models := []any{
		(*User)(nil),
		(*Role)(nil),
		(*Permission)(nil),
		(*AuthIdentity)(nil),
		(*UserRole)(nil),
		(*RolePermission)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx); err != nil {
			return wrapStorageError(err, "failed to create table")
		}
	}

	// Partial unique index: (provider, identifier_normalized) must be
	// unique across active identities only.
	if _, err := db.NewCreateIndex().
		Model((*AuthIdentity)(nil)).
		Index("uq_identity_provider_identifier").
		Unique().
		IfNotExists().
		Column("provider", "identifier_normalized").
		Where("is_active = TRUE").
		Exec(ctx); err != nil {
		return wrapStorageError(err, "failed to create identity index")
	}

	return nil
}
