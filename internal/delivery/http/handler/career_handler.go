package handler

import (
	"net/http"

	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/usecase"
	"medicare-plus/pkg/response"
	"medicare-plus/pkg/validator"
)

type CareerHandler struct {
	careerUsecase usecase.CareerUsecase
	validator     *validator.CustomValidator
}

func NewCareerHandler(careerUsecase usecase.CareerUsecase, validator *validator.CustomValidator) *CareerHandler {
	return &CareerHandler{
		careerUsecase: careerUsecase,
		validator:     validator,
	}
}

func (h *CareerHandler) ListOpenings(w http.ResponseWriter, r *http.Request) {
	openings, err := h.careerUsecase.ListOpenings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get job openings")
		return
	}

	response.Success(w, http.StatusOK, "Job openings retrieved successfully", openings)
}

func (h *CareerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.JobApplicationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	application, err := h.careerUsecase.Apply(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrOpeningNotFound:
			response.NotFound(w, "Job opening not found")
		default:
			response.InternalServerError(w, "Failed to submit application")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Application submitted successfully", application)
}
