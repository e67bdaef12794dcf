package handler

import (
	"errors"
	"net/http"
	"strconv"

	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/usecase"
	"medicare-plus/pkg/response"
	"medicare-plus/pkg/validator"

	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

func (h *CatalogHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.catalogUsecase.ListDepartments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

func (h *CatalogHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	department, err := h.catalogUsecase.GetDepartment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to get department")
		}
		return
	}

	response.Success(w, http.StatusOK, "Department retrieved successfully", department)
}

func (h *CatalogHandler) GetDepartmentDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.catalogUsecase.DoctorsByDepartment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to get doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetSlots handles GET /slots?date=YYYY-MM-DD&priority=bool&company=bool
func (h *CatalogHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dto.SlotsQuery{Date: q.Get("date")}
	query.Priority, _ = strconv.ParseBool(q.Get("priority"))
	query.Company, _ = strconv.ParseBool(q.Get("company"))

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slots, err := h.catalogUsecase.GetSlots(r.Context(), &query)
	if err != nil {
		var fieldErrs usecase.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			response.ValidationError(w, fieldErrs)
		case errors.Is(err, usecase.ErrDateInPast):
			response.Error(w, http.StatusBadRequest, "Date cannot be in the past", nil)
		default:
			response.InternalServerError(w, "Failed to get time slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Time slots retrieved successfully", slots)
}

func (h *CatalogHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	quote, err := h.catalogUsecase.Quote(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to compute quote")
		}
		return
	}

	response.Success(w, http.StatusOK, "Quote computed successfully", quote)
}
