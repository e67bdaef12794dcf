package handler

import (
	"net/http"

	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/usecase"
	"medicare-plus/pkg/response"
	"medicare-plus/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.bookingUsecase.StartSession(r.Context())
	if err != nil {
		if !writeSessionError(w, err) {
			response.InternalServerError(w, "Failed to start booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking started successfully", session)
}

func (h *BookingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.bookingUsecase.GetSession(r.Context(), id)
	if err != nil {
		if !writeSessionError(w, err) {
			response.InternalServerError(w, "Failed to get booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", session)
}

func (h *BookingHandler) SelectDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SelectDepartmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.bookingUsecase.SelectDepartment(r.Context(), id, &req)
	if err != nil {
		if !writeSessionError(w, err) {
			response.InternalServerError(w, "Failed to select department")
		}
		return
	}

	response.Success(w, http.StatusOK, "Department selected successfully", result)
}

func (h *BookingHandler) SelectDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SelectDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	session, err := h.bookingUsecase.SelectDoctor(r.Context(), id, &req)
	if err != nil {
		if !writeSessionError(w, err) {
			response.InternalServerError(w, "Failed to select doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor selected successfully", session)
}

func (h *BookingHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SubmitBookingRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	session, err := h.bookingUsecase.SubmitForm(r.Context(), id, &req)
	if err != nil {
		if !writeSessionError(w, err) {
			response.InternalServerError(w, "Failed to submit booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking details accepted, proceed to payment", session)
}

func (h *BookingHandler) Back(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.bookingUsecase.Back(r.Context(), id)
	if err != nil {
		if !writeSessionError(w, err) {
			response.InternalServerError(w, "Failed to return to the booking form")
		}
		return
	}

	response.Success(w, http.StatusOK, "Returned to booking form", session)
}

func (h *BookingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.bookingUsecase.Reset(r.Context(), id)
	if err != nil {
		if !writeSessionError(w, err) {
			response.InternalServerError(w, "Failed to reset booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking reset successfully", session)
}
