// Command seed bootstraps the superadmin role, its permissions, and an
// initial admin user with a primary email identity. Safe to run repeatedly.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	auth "github.com/hamiltonhq/go-auth"
)

func main() {
	cfg, err := auth.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	adminEmail := getenv("ADMIN_EMAIL", "admin@example.com")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer sqldb.Close()

	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	ctx := context.Background()

	if err := auth.CreateSchema(ctx, db); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	repos := auth.NewRepositoryManager(db)
	repos.MustValidate()

	err = repos.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		role, err := ensureSuperadminRole(ctx, tx)
		if err != nil {
			return err
		}
		return ensureAdminUser(ctx, tx, role, adminEmail, adminPassword)
	})
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Printf("superadmin seeded for %s", adminEmail)
}

// ensureSuperadminRole creates the superadmin role and its permissions if
// they do not exist yet.
func ensureSuperadminRole(ctx context.Context, tx bun.Tx) (*auth.Role, error) {
	role := &auth.Role{}
	err := tx.NewSelect().Model(role).Where("name = ?", "superadmin").Limit(1).Scan(ctx)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	role = &auth.Role{
		Name:        "superadmin",
		Description: "Super-Administrator, with full access permissions",
	}
	if _, err := tx.NewInsert().Model(role).Exec(ctx); err != nil {
		return nil, err
	}

	perms := []*auth.Permission{
		{Code: "user:assign-role", Description: "Assign roles to users"},
		{Code: "user:read", Description: "Read users"},
		{Code: "user:write", Description: "Modify users"},
	}
	if _, err := tx.NewInsert().Model(&perms).Exec(ctx); err != nil {
		return nil, err
	}

	links := make([]*auth.RolePermission, 0, len(perms))
	for _, perm := range perms {
		links = append(links, &auth.RolePermission{RoleID: role.ID, PermissionID: perm.ID})
	}
	if _, err := tx.NewInsert().Model(&links).Exec(ctx); err != nil {
		return nil, err
	}

	return role, nil
}

// ensureAdminUser creates the admin user with a primary, active email
// identity and attaches the superadmin role.
func ensureAdminUser(ctx context.Context, tx bun.Tx, role *auth.Role, email, password string) error {
	normalized := auth.NormalizeIdentifier(auth.ProviderEmail, email)

	existing := &auth.AuthIdentity{}
	err := tx.NewSelect().Model(existing).
		Where("provider = ?", auth.ProviderEmail).
		Where("identifier_normalized = ?", normalized).
		Where("is_active = ?", true).
		Limit(1).
		Scan(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &auth.User{
		FullName: "Administrator",
		Email:    email,
		IsActive: true,
	}
	if _, err := tx.NewInsert().Model(user).Exec(ctx); err != nil {
		return err
	}

	identity := &auth.AuthIdentity{
		UserID:               user.ID,
		Provider:             auth.ProviderEmail,
		Identifier:           email,
		IdentifierNormalized: normalized,
		PasswordHash:         hash,
		IsActive:             true,
		IsPrimary:            true,
	}
	if _, err := tx.NewInsert().Model(identity).Exec(ctx); err != nil {
		return err
	}

	link := &auth.UserRole{UserID: user.ID, RoleID: role.ID}
	if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
		return err
	}

	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
