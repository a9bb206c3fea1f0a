package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateSchema creates the three tables if they do not exist.
//
// parent_id and folder_id carry no foreign key on purpose: deleting a folder
// must orphan its children and images rather than cascade or fail.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	stmts := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id            UUID PRIMARY KEY,
				username      TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Users),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id         UUID PRIMARY KEY,
				owner_id   UUID NOT NULL,
				parent_id  UUID,
				name       TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Folders),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_owner_parent_idx ON %s (owner_id, parent_id)
		`, tables.Folders, tables.Folders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id          UUID PRIMARY KEY,
				owner_id    UUID NOT NULL,
				folder_id   UUID,
				filename    TEXT NOT NULL,
				url         TEXT NOT NULL,
				upload_date TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Images),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_owner_folder_idx ON %s (owner_id, folder_id)
		`, tables.Images, tables.Images),
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	return nil
}

// DropSchema drops the three tables. Used by the migrate command only.
func DropSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	for _, table := range []string{tables.Images, tables.Folders, tables.Users} {
		if _, err := pool.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, table)); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	return nil
}
