// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	var stmts []string
	switch dialect {
	case DialectPostgres:
		stmts = postgresSchema
	case DialectSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("failed to create schema: unsupported dialect %q", dialect)
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// DropSchema removes every table created by CreateSchema, children first.
func DropSchema(ctx context.Context, db *sql.DB) error {
	for _, table := range []string{"vote", "ballot", "option", "poll"} {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS poll (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    multiple BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
)`,
	`CREATE TABLE IF NOT EXISTS option (
    id BIGSERIAL PRIMARY KEY,
    poll_id BIGINT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    text TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_option_poll_id ON option(poll_id)`,
	`CREATE TABLE IF NOT EXISTS ballot (
    id BIGSERIAL PRIMARY KEY,
    poll_id BIGINT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    voter TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (poll_id, voter)
)`,
	`CREATE TABLE IF NOT EXISTS vote (
    id BIGSERIAL PRIMARY KEY,
    ballot_id BIGINT NOT NULL REFERENCES ballot(id) ON DELETE CASCADE,
    poll_id BIGINT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    option_id BIGINT NOT NULL REFERENCES option(id) ON DELETE CASCADE,
    UNIQUE (ballot_id, option_id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_vote_option_id ON vote(option_id)`,
	`CREATE INDEX IF NOT EXISTS idx_vote_poll_id ON vote(poll_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS poll (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    multiple BOOLEAN NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS option (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    poll_id INTEGER NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    text TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_option_poll_id ON option(poll_id)`,
	`CREATE TABLE IF NOT EXISTS ballot (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    poll_id INTEGER NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    voter TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (poll_id, voter)
)`,
	`CREATE TABLE IF NOT EXISTS vote (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ballot_id INTEGER NOT NULL REFERENCES ballot(id) ON DELETE CASCADE,
    poll_id INTEGER NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    option_id INTEGER NOT NULL REFERENCES option(id) ON DELETE CASCADE,
    UNIQUE (ballot_id, option_id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_vote_option_id ON vote(option_id)`,
	`CREATE INDEX IF NOT EXISTS idx_vote_poll_id ON vote(poll_id)`,
}
