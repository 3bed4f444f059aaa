package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type carHandler struct {
	carSvc service.CarService
}

type carRequest struct {
	Make            string `json:"make"`
	Model           string `json:"model"`
	Year            int32  `json:"year"`
	PlateNumber     string `json:"plate_number"`
	DailyPriceCents int64  `json:"daily_price_cents"`
	ImageURL        string `json:"image_url"`
	Mileage         int32  `json:"mileage"`
}

type carStatusRequest struct {
	Status domain.CarStatus `json:"status"`
}

func (h *carHandler) create(w http.ResponseWriter, r *http.Request) {
	var req carRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	car := &domain.Car{
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		PlateNumber:     req.PlateNumber,
		DailyPriceCents: req.DailyPriceCents,
		ImageURL:        req.ImageURL,
		Mileage:         req.Mileage,
	}
	if err := h.carSvc.Create(r.Context(), car); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *carHandler) list(w http.ResponseWriter, r *http.Request) {
	status := domain.CarStatus(r.URL.Query().Get("status"))
	if status != "" && !domain.ValidCarStatus(status) {
		writeError(w, domain.InvalidInput("unknown car status"))
		return
	}

	cars, err := h.carSvc.List(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

// search filters the catalog by any combination of make, model, year
// range, daily price range, mileage cap and status.
func (h *carHandler) search(w http.ResponseWriter, r *http.Request) {
	var filter domain.CarSearchFilter
	if err := decodeBody(r, &filter); err != nil {
		writeError(w, err)
		return
	}

	cars, err := h.carSvc.Search(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *carHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	car, err := h.carSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *carHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req carRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	car := &domain.Car{
		ID:              id,
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		PlateNumber:     req.PlateNumber,
		DailyPriceCents: req.DailyPriceCents,
		ImageURL:        req.ImageURL,
		Mileage:         req.Mileage,
	}
	if err := h.carSvc.Update(r.Context(), car); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *carHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req carStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.carSvc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *carHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.carSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *carHandler) listReservations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	reservations, err := h.carSvc.ListReservations(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}
