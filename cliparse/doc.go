// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: connection string (default for sqlite: file:sondages.db, required for postgres)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AllowedOrigin: CORS origin of the front end (default: http://localhost:5173)
  - MetricsEnabled: serve /metrics (default: true)

# CLI Flags

	-p        Server port
	-d        Database URL
	-t        Database type
	-origin   Allowed CORS origin
	-metrics  Serve Prometheus metrics
	-env      Dotenv file to load (default: .env)

# Environment Variables

Flags fall back to environment variables, decoded with envconfig:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	CORS_ORIGIN     → -origin
	METRICS_ENABLED → -metrics

A dotenv file is loaded first when present. It never overrides variables
already set in the process environment.

CLI flags take precedence over environment variables.
*/
package cliparse
