package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medicare-plus/internal/usecase"
	"medicare-plus/pkg/response"
	"medicare-plus/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// decodeAndValidate reads a JSON body into req and runs its validate tags.
// It writes the error response itself and reports whether to continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}

	return true
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// writeSessionError maps the errors every booking session endpoint can
// return. It reports false when err is none of them.
func writeSessionError(w http.ResponseWriter, err error) bool {
	var fieldErrs usecase.FieldErrors
	if errors.As(err, &fieldErrs) {
		response.ValidationError(w, fieldErrs)
		return true
	}

	switch err {
	case usecase.ErrClientNotFound:
		response.Error(w, http.StatusUnauthorized, "Client context is missing", nil)
	case usecase.ErrSessionNotFound:
		response.NotFound(w, "Booking session not found")
	case usecase.ErrSessionNotOwned:
		response.Forbidden(w, "Booking session does not belong to you")
	case usecase.ErrInvalidStep:
		response.Conflict(w, "Operation not allowed at the current booking step")
	case usecase.ErrPaymentInProgress:
		response.Conflict(w, "A payment is already being processed for this booking")
	case usecase.ErrDepartmentNotFound:
		response.NotFound(w, "Department not found")
	default:
		return false
	}
	return true
}
