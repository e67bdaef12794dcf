package handler

import (
	"net/http"

	"medicare-plus/internal/usecase"
	"medicare-plus/pkg/response"
)

type ReceiptHandler struct {
	receiptUsecase usecase.ReceiptUsecase
}

func NewReceiptHandler(receiptUsecase usecase.ReceiptUsecase) *ReceiptHandler {
	return &ReceiptHandler{
		receiptUsecase: receiptUsecase,
	}
}

// GetReceipt serves the printable receipt; ?format=pdf downloads a PDF
func (h *ReceiptHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	doc, err := h.receiptUsecase.RenderReceipt(r.Context(), id, r.URL.Query().Get("format"))
	if err != nil {
		switch err {
		case usecase.ErrReceiptNotReady:
			response.Conflict(w, "Receipt is only available after payment is confirmed")
		case usecase.ErrUnsupportedFormat:
			response.Error(w, http.StatusBadRequest, "Unsupported receipt format", nil)
		default:
			if !writeSessionError(w, err) {
				response.InternalServerError(w, "Failed to render receipt")
			}
		}
		return
	}

	response.Document(w, doc.ContentType, doc.Filename, doc.Body)
}

func (h *ReceiptHandler) ClearIdentifiers(w http.ResponseWriter, r *http.Request) {
	if err := h.receiptUsecase.ClearIdentifiers(r.Context()); err != nil {
		if !writeSessionError(w, err) {
			response.InternalServerError(w, "Failed to clear receipt identifiers")
		}
		return
	}

	response.Success(w, http.StatusOK, "Receipt identifiers cleared", nil)
}
