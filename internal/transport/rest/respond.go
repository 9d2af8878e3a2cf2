package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/questlinehq/questline-backend/internal/domain"
)

// errorBody is the JSON error envelope shared by all endpoints.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code          string       `json:"code"`
	Message       string       `json:"message"`
	CurrentStatus string       `json:"current_status,omitempty"`
	Fields        []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondError maps domain errors onto the HTTP surface. Every distinction
// the services draw is preserved: a conflict is not a state error, a missing
// row is not a forbidden one. Unknown errors are logged and answered with a
// generic 500.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		validationErr *domain.ValidationError
		stateErr      *domain.StateError
	)

	switch {
	case errors.As(err, &validationErr):
		fields := make([]fieldError, 0, len(validationErr.Errors))
		for _, fe := range validationErr.Errors {
			fields = append(fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeError(w, http.StatusBadRequest, errorDetail{
			Code:    "VALIDATION",
			Message: "validation failed",
			Fields:  fields,
		})
	case errors.As(err, &stateErr):
		writeError(w, http.StatusConflict, errorDetail{
			Code:          "INVALID_STATE",
			Message:       stateErr.Error(),
			CurrentStatus: stateErr.Current,
		})
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusConflict, errorDetail{Code: "INVALID_STATE", Message: "invalid state"})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, errorDetail{Code: "NOT_FOUND", Message: "not found"})
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, errorDetail{Code: "FORBIDDEN", Message: "forbidden"})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, errorDetail{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidOperation):
		writeError(w, http.StatusUnprocessableEntity, errorDetail{Code: "INVALID_OPERATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, errorDetail{Code: "UNAUTHORIZED", Message: "unauthorized"})
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, errorDetail{Code: "INTERNAL", Message: "internal server error"})
	}
}

func writeError(w http.ResponseWriter, status int, detail errorDetail) {
	writeJSON(w, status, errorBody{Error: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
