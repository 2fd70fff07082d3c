package rest

import (
	"errors"
	"net/http"

	"github.com/edgeskills/edge-backend/internal/domain"
)

// errorResponse is the JSON error body. Fields is populated for
// validation failures only.
type errorResponse struct {
	Error  string             `json:"error"`
	Fields []fieldErrorDetail `json:"fields,omitempty"`
}

type fieldErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleError maps a domain error onto an HTTP status and JSON body.
func handleError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]fieldErrorDetail, 0, len(vErr.Errors))
		for _, f := range vErr.Errors {
			fields = append(fields, fieldErrorDetail{Field: f.Field, Message: f.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "already exists"})
	case errors.Is(err, domain.ErrEnrolmentUnavailable):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "enrolment unavailable"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
