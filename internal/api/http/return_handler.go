package http

import (
	"net/http"

	"carrental-backend/internal/service"
)

type returnHandler struct {
	returnSvc service.ReturnService
}

type createReturnRequest struct {
	ReservationID   int32    `json:"reservation_id"`
	ReturnDate      *string  `json:"return_date"`
	ReturnMileage   *int32   `json:"return_mileage"`
	ReturnFuelLevel *float64 `json:"return_fuel_level"`
	LateFeesCents   *int64   `json:"late_fees_cents"`
	DamageFeesCents *int64   `json:"damage_fees_cents"`
	FuelFeesCents   *int64   `json:"fuel_fees_cents"`
	Notes           string   `json:"notes"`
}

func (h *returnHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createReturnRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	returnDate, err := parseOptionalDate(req.ReturnDate, "return_date")
	if err != nil {
		writeError(w, err)
		return
	}

	ret, err := h.returnSvc.Create(r.Context(), service.CreateReturnInput{
		ReservationID:   req.ReservationID,
		ReturnDate:      returnDate,
		ReturnMileage:   req.ReturnMileage,
		ReturnFuelLevel: req.ReturnFuelLevel,
		LateFeesCents:   req.LateFeesCents,
		DamageFeesCents: req.DamageFeesCents,
		FuelFeesCents:   req.FuelFeesCents,
		Notes:           req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ret)
}

func (h *returnHandler) getByReservation(w http.ResponseWriter, r *http.Request) {
	reservationID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	ret, err := h.returnSvc.GetByReservation(r.Context(), reservationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ret)
}
