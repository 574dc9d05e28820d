package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rootline-ai/rootline/pkg/services"
)

// mapServiceError maps service-layer errors to an HTTP status and message.
func mapServiceError(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, "investigation not found"
	}
	if errors.Is(err, services.ErrNotCancellable) {
		return http.StatusConflict, "investigation is not in a cancellable state"
	}

	slog.Error("unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}
