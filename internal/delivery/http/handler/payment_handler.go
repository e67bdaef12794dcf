package handler

import (
	"encoding/json"
	"net/http"

	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/usecase"
	"medicare-plus/pkg/response"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
	}
}

// SubmitPayment blocks for the simulated processing time of the method
func (h *PaymentHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SubmitPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	session, err := h.paymentUsecase.SubmitPayment(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrPaymentDeclined {
			message := "Payment failed"
			if session != nil && session.Payment != nil {
				message = session.Payment.Message
			}
			response.Failure(w, http.StatusPaymentRequired, message, session)
			return
		}
		if !writeSessionError(w, err) {
			response.InternalServerError(w, "Failed to process payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment completed successfully", session)
}
