// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus collectors for polls, votes and HTTP
traffic.

# Collectors

	sondages_polls_created_total                         counter
	sondages_votes_recorded_total                        counter
	sondages_vote_rejections_total{kind}                 counter
	sondages_http_request_duration_seconds{method,status} histogram

Each Metrics owns its registry:

	m := metrics.New()
	mux.Handle("GET /metrics", m.Handler())

All recording methods are safe on a nil *Metrics.
*/
package metrics
