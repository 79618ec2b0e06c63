package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/recipes-api/backend/internal/model"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// ErrNoMigrations is returned by Rollback when nothing has been applied.
var ErrNoMigrations = errors.New("no migrations to roll back")

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    name       VARCHAR(255) PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// RunMigrations brings the schema up to date. SQLite databases, used for
// local development and tests, are migrated from the model instead of the
// PostgreSQL scripts.
func RunMigrations(ctx context.Context, db *gorm.DB) ([]string, error) {
	if db.Dialector.Name() == "sqlite" {
		if err := db.WithContext(ctx).AutoMigrate(&model.Recipe{}); err != nil {
			return nil, fmt.Errorf("failed to auto-migrate: %w", err)
		}
		return nil, nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return Apply(ctx, sqlDB)
}

// Apply runs every pending up migration in name order, each in its own
// transaction, and returns the names of the migrations it applied.
func Apply(ctx context.Context, db *sql.DB) ([]string, error) {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	names, err := migrationNames(".up.sql")
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, name := range names {
		// Check if migration has already been applied
		var exists bool
		if err := db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name = $1)", name,
		).Scan(&exists); err != nil {
			return applied, fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			continue
		}

		content, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return applied, fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		if err := inTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name)
			return err
		}); err != nil {
			return applied, fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
		applied = append(applied, name)
	}

	return applied, nil
}

// Rollback reverts the most recently applied migration and returns its name.
func Rollback(ctx context.Context, db *sql.DB) (string, error) {
	var name string
	err := db.QueryRowContext(ctx,
		"SELECT name FROM schema_migrations ORDER BY applied_at DESC, name DESC LIMIT 1",
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoMigrations
	}
	if err != nil {
		return "", fmt.Errorf("failed to find last migration: %w", err)
	}

	down := strings.TrimSuffix(name, ".up.sql") + ".down.sql"
	content, err := migrationFS.ReadFile("migrations/" + down)
	if err != nil {
		return "", fmt.Errorf("no down migration for %s: %w", name, err)
	}

	if err := inTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE name = $1", name)
		return err
	}); err != nil {
		return "", fmt.Errorf("failed to roll back migration %s: %w", name, err)
	}
	return name, nil
}

func migrationNames(suffix string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
