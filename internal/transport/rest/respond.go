package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lumenprint/calendarshop-backend/internal/domain"
)

// errorResponse is the JSON error envelope shared by all REST endpoints.
type errorResponse struct {
	Error        string          `json:"error"`
	Fields       []fieldErrorDTO `json:"fields,omitempty"`
	MissingSlots []string        `json:"missing_slots,omitempty"`
	DraftID      string          `json:"draft_id,omitempty"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// respondError maps domain errors to HTTP status codes and JSON bodies.
// Validation errors carry per-field details; incomplete designs carry the
// offending draft and its missing slots so clients can route the user back
// to the editor.
func respondError(ctx context.Context, w http.ResponseWriter, log *slog.Logger, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]fieldErrorDTO, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			fields = append(fields, fieldErrorDTO{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return
	}

	var incErr *domain.IncompleteDesignError
	if errors.As(err, &incErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:        "design is incomplete",
			DraftID:      incErr.DraftID,
			MissingSlots: incErr.MissingSlots,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnprocessable):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.ErrorContext(ctx, "unhandled error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON parses a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return nil
}
