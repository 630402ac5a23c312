// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Sondages API server.

Sondages is a small polling service: anyone can create a poll with two
or more options, each voter may vote once per poll (one option, or
several when the poll allows it), and results are counted live.

# Starting the Server

With no configuration the server uses an SQLite file in the working
directory:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3000 -t postgres -d "postgres://..."

# Configuration

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default: file:sondages.db for sqlite)
  - CORS_ORIGIN (-origin): front-end origin (default: http://localhost:5173)
  - METRICS_ENABLED (-metrics): serve /metrics (default: true)

A .env file is read when present (-env to choose another path).

# Architecture

  - polls: repository, vote writer, results aggregator, typed errors
  - handlers: HTTP request handlers over package polls
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - metrics: Prometheus collectors
  - models: Request/response and domain types
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
