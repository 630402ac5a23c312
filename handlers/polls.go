// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/sondages/metrics"
	"github.com/danielhkuo/sondages/middleware"
	"github.com/danielhkuo/sondages/models"
	"github.com/danielhkuo/sondages/polls"
)

type PollHandler struct {
	repo    *polls.Repository
	metrics *metrics.Metrics
}

func NewPollHandler(repo *polls.Repository, m *metrics.Metrics) *PollHandler {
	return &PollHandler{repo: repo, metrics: m}
}

// CreatePoll handles POST /api/sondages
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req, err := polls.ValidateCreatePoll(req)
	if err != nil {
		writeError(w, err)
		return
	}

	poll, err := h.repo.CreatePoll(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	h.metrics.PollCreated()

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// ListPolls handles GET /api/sondages
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListPolls(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []models.Poll{}
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// GetPoll handles GET /api/sondages/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pollIDFromPath(w, r)
	if !ok {
		return
	}

	poll, err := h.repo.GetPollByID(r.Context(), pollID)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}
