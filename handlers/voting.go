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

type VotingHandler struct {
	votes   *polls.VoteWriter
	metrics *metrics.Metrics
}

func NewVotingHandler(votes *polls.VoteWriter, m *metrics.Metrics) *VotingHandler {
	return &VotingHandler{votes: votes, metrics: m}
}

// Vote handles POST /api/sondages/{id}/vote
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pollIDFromPath(w, r)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.metrics.VoteRejected(polls.KindInvalidArgument.String())
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	message, err := h.votes.Vote(r.Context(), pollID, req)
	if err != nil {
		h.metrics.VoteRejected(polls.KindOf(err).String())
		writeError(w, err)
		return
	}
	h.metrics.VoteRecorded()

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{Message: message})
}

// HasVoted handles GET /api/sondages/{id}/has-voted/{voter}
func (h *VotingHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pollIDFromPath(w, r)
	if !ok {
		return
	}

	voted, err := h.votes.HasUserVoted(r.Context(), pollID, r.PathValue("voter"))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{HasVoted: voted})
}
