package http

import (
	"net/http"

	"carrental-backend/internal/service"
)

type paymentHandler struct {
	paymentSvc service.PaymentService
}

type recordPaymentRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
}

func (h *paymentHandler) record(w http.ResponseWriter, r *http.Request) {
	reservationID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req recordPaymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	payment, err := h.paymentSvc.RecordPayment(r.Context(), reservationID, req.AmountCents, req.Method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *paymentHandler) list(w http.ResponseWriter, r *http.Request) {
	reservationID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	payments, err := h.paymentSvc.ListByReservation(r.Context(), reservationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
