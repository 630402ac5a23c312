// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/danielhkuo/sondages/middleware"
	"github.com/danielhkuo/sondages/models"
	"github.com/danielhkuo/sondages/polls"
)

// statusFor maps an error kind to its HTTP status
func statusFor(kind polls.Kind) int {
	switch kind {
	case polls.KindNotFound:
		return http.StatusNotFound
	case polls.KindConflict:
		return http.StatusConflict
	case polls.KindInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {error, message, kind}.
// Driver details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	kind := polls.KindOf(err)
	status := statusFor(kind)

	message := polls.ErrStorageFailure.Message
	var perr *polls.Error
	if errors.As(err, &perr) && kind != polls.KindStorageFailure {
		message = perr.Message
	}

	middleware.JSONResponse(w, status, models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Kind:    kind.String(),
	})
}

// pollIDFromPath reads the numeric {id} path segment
func pollIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Identifiant de sondage invalide")
		return 0, false
	}
	return id, true
}
