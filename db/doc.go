// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open selects the driver from the dialect and pings the server:

	conn, err := db.Open(ctx, db.DialectPostgres, "postgres://...")

PostgreSQL goes through lib/pq. SQLite goes through modernc.org/sqlite with
foreign keys enabled and the pool capped at one connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - poll: title, description and the multiple-choice flag
  - option: answer options per poll, ordered by id
  - ballot: one row per (poll, voter), UNIQUE (poll_id, voter)
  - vote: one row per option selected on a ballot

# Relationships

	poll 1──* option
	poll 1──* ballot
	ballot 1──* vote *──1 option

All foreign keys use ON DELETE CASCADE.

# Constraint Errors

IsUniqueViolation recognizes unique constraint failures from both drivers,
so callers can turn a lost insert race into a conflict.
*/
package db
