package handler

import (
	"errors"
	"net/http"

	"github.com/ndanyliw/tasklist-server/internal/apierrors"
	"github.com/ndanyliw/tasklist-server/internal/model"
)

// handleError writes the API-facing form of err. Only the apierrors
// taxonomy reaches the client; anything else collapses to a generic
// internal error.
func handleError(w http.ResponseWriter, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusUnauthorized {
			w.Header().Set("WWW-Authenticate", "Bearer")
		}
		writeJSON(w, apiErr.Status, errorResponse{Error: apiErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
