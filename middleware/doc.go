// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request carries an X-Request-ID, generated when the
client sends none, echoed in the response and attached to both log lines.

# Metrics

WithMetrics records request latency by method and status:

	middleware.WithMetrics(m, handler)

# CORS Middleware

Enable cross-origin requests from the front end:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (unknown fields are an error):

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
