package http

import (
	"net/http"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
	"carrental-backend/internal/utils"
)

type reservationHandler struct {
	reservationSvc service.ReservationService
	customerSvc    service.CustomerService
}

type optionLineRequest struct {
	OptionName       string `json:"option_name"`
	PricePerDayCents int64  `json:"price_per_day_cents"`
	Quantity         int32  `json:"quantity"`
}

type createReservationRequest struct {
	CarID      int32               `json:"car_id"`
	CustomerID int32               `json:"customer_id"`
	StartDate  string              `json:"start_date"`
	EndDate    string              `json:"end_date"`
	Options    []optionLineRequest `json:"options"`
}

type quoteRequest struct {
	CarID     int32               `json:"car_id"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Options   []optionLineRequest `json:"options"`
}

type pickupRequest struct {
	Mileage   *int32   `json:"mileage"`
	FuelLevel *float64 `json:"fuel_level"`
}

type completeReservationRequest struct {
	ReturnDate      *string  `json:"return_date"`
	ReturnMileage   *int32   `json:"return_mileage"`
	ReturnFuelLevel *float64 `json:"return_fuel_level"`
	LateFeesCents   *int64   `json:"late_fees_cents"`
	DamageFeesCents *int64   `json:"damage_fees_cents"`
	FuelFeesCents   *int64   `json:"fuel_fees_cents"`
	Notes           string   `json:"notes"`
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, domain.InvalidInput("invalid " + field + ", expected YYYY-MM-DD")
	}
	return t, nil
}

func parseOptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(*value, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toOptionLines(in []optionLineRequest) []utils.OptionLine {
	options := make([]utils.OptionLine, 0, len(in))
	for _, o := range in {
		options = append(options, utils.OptionLine{
			OptionName:       o.OptionName,
			PricePerDayCents: o.PricePerDayCents,
			Quantity:         o.Quantity,
		})
	}
	return options
}

func (h *reservationHandler) quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		writeError(w, err)
		return
	}

	quote, err := h.reservationSvc.Quote(r.Context(), req.CarID, start, end, toOptionLines(req.Options))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *reservationHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		writeError(w, err)
		return
	}

	detail, err := h.reservationSvc.Create(r.Context(), service.CreateReservationInput{
		CarID:      req.CarID,
		CustomerID: req.CustomerID,
		StartDate:  start,
		EndDate:    end,
		Options:    toOptionLines(req.Options),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, detail)
}

func (h *reservationHandler) list(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservationSvc.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *reservationHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	detail, err := h.reservationSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// callerCustomer resolves the caller's customer profile from the access
// token claims.
func (h *reservationHandler) callerCustomer(w http.ResponseWriter, r *http.Request) (*domain.Customer, bool) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return nil, false
	}

	customer, err := h.customerSvc.GetByUserID(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return customer, true
}

// listMine returns only the caller's reservations.
func (h *reservationHandler) listMine(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.callerCustomer(w, r)
	if !ok {
		return
	}

	reservations, err := h.customerSvc.ListReservations(r.Context(), customer.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

type createMyReservationRequest struct {
	CarID     int32               `json:"car_id"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Options   []optionLineRequest `json:"options"`
}

// createMine books a car for the caller. The customer id always comes from
// the token, never from the body.
func (h *reservationHandler) createMine(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.callerCustomer(w, r)
	if !ok {
		return
	}
	var req createMyReservationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		writeError(w, err)
		return
	}

	detail, err := h.reservationSvc.Create(r.Context(), service.CreateReservationInput{
		CarID:      req.CarID,
		CustomerID: customer.ID,
		StartDate:  start,
		EndDate:    end,
		Options:    toOptionLines(req.Options),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, detail)
}

// getMine returns one of the caller's reservations. Someone else's id
// answers not-found rather than revealing the booking exists.
func (h *reservationHandler) getMine(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.callerCustomer(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	detail, err := h.reservationSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if detail.CustomerID != customer.ID {
		writeError(w, domain.NotFound("reservation not found"))
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// cancelMine cancels one of the caller's reservations.
func (h *reservationHandler) cancelMine(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.callerCustomer(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	detail, err := h.reservationSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if detail.CustomerID != customer.ID {
		writeError(w, domain.NotFound("reservation not found"))
		return
	}

	if err := h.reservationSvc.Cancel(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *reservationHandler) confirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.reservationSvc.Confirm(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *reservationHandler) pickup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req pickupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.reservationSvc.Pickup(r.Context(), id, service.PickupInput{
		Mileage:   req.Mileage,
		FuelLevel: req.FuelLevel,
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *reservationHandler) complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req completeReservationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	returnDate, err := parseOptionalDate(req.ReturnDate, "return_date")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.reservationSvc.Complete(r.Context(), id, service.CompleteReservationInput{
		ReturnDate:      returnDate,
		ReturnMileage:   req.ReturnMileage,
		ReturnFuelLevel: req.ReturnFuelLevel,
		LateFeesCents:   req.LateFeesCents,
		DamageFeesCents: req.DamageFeesCents,
		FuelFeesCents:   req.FuelFeesCents,
		Notes:           req.Notes,
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *reservationHandler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.reservationSvc.Cancel(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *reservationHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.reservationSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
