// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/sondages/middleware"
	"github.com/danielhkuo/sondages/polls"
)

type ResultsHandler struct {
	aggregator *polls.Aggregator
}

func NewResultsHandler(aggregator *polls.Aggregator) *ResultsHandler {
	return &ResultsHandler{aggregator: aggregator}
}

// GetResults handles GET /api/sondages/{id}/resultats
// Results are live: there is no closing step.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pollIDFromPath(w, r)
	if !ok {
		return
	}

	results, err := h.aggregator.GetResults(r.Context(), pollID)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
