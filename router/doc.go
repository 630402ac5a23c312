// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Sondages API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, metrics.New())

CORS is applied by the caller around the returned mux.

# Endpoints

Health and metrics:

	GET /health
	GET /metrics  - Prometheus text format, when cfg.MetricsEnabled

Polls:

	POST /api/sondages      - Create poll
	GET  /api/sondages      - List polls with options
	GET  /api/sondages/{id} - Poll with options

Voting:

	POST /api/sondages/{id}/vote              - Record a vote
	GET  /api/sondages/{id}/has-voted/{voter} - Whether voter has a ballot

Results:

	GET /api/sondages/{id}/resultats - Live counts and percentages

Every /api route is wrapped with request logging and latency metrics.
*/
package router
