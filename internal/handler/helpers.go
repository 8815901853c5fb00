package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"elevatehub/internal/domain"
	"elevatehub/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		httputil.RespondError(w, http.StatusTooManyRequests, err.Error())
	default:
		slog.Error("unhandled error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requireSameUser rejects requests where an authenticated caller names another user
func requireSameUser(w http.ResponseWriter, r *http.Request, userID string) bool {
	if authed := httputil.UserID(r); authed != "" && authed != userID {
		httputil.RespondError(w, http.StatusForbidden, "cannot access another user's data")
		return false
	}
	return true
}
