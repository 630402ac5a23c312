// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/sondages/cliparse"
	"github.com/danielhkuo/sondages/handlers"
	"github.com/danielhkuo/sondages/metrics"
	"github.com/danielhkuo/sondages/middleware"
	"github.com/danielhkuo/sondages/polls"
)

// NewRouter builds the API mux. m may be nil, in which case nothing is
// recorded and /metrics is not served.
func NewRouter(db *sql.DB, cfg cliparse.Config, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	logger := slog.Default().With("component", "polls")

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(polls.NewRepository(db, logger), m)
	votingHandler := handlers.NewVotingHandler(polls.NewVoteWriter(db, logger), m)
	resultsHandler := handlers.NewResultsHandler(polls.NewAggregator(db, logger))

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(m, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.MetricsEnabled && m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	// Polls
	mux.HandleFunc("POST /api/sondages", wrap(pollHandler.CreatePoll))
	mux.HandleFunc("GET /api/sondages", wrap(pollHandler.ListPolls))
	mux.HandleFunc("GET /api/sondages/{id}", wrap(pollHandler.GetPoll))

	// Voting
	mux.HandleFunc("POST /api/sondages/{id}/vote", wrap(votingHandler.Vote))
	mux.HandleFunc("GET /api/sondages/{id}/has-voted/{voter}", wrap(votingHandler.HasVoted))

	// Results
	mux.HandleFunc("GET /api/sondages/{id}/resultats", wrap(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("sondages API v1"))
	})

	return mux
}
