package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type customerHandler struct {
	customerSvc service.CustomerService
}

type customerRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	CinOrPassport string `json:"cin_or_passport"`
	LicenseNumber string `json:"license_number"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

func (h *customerHandler) create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	customer := &domain.Customer{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		CinOrPassport: req.CinOrPassport,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
		Email:         req.Email,
	}
	if err := h.customerSvc.Create(r.Context(), customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *customerHandler) list(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *customerHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.customerSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *customerHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req customerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	customer := &domain.Customer{
		ID:            id,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		CinOrPassport: req.CinOrPassport,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
		Email:         req.Email,
	}
	if err := h.customerSvc.Update(r.Context(), customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// getMe returns the caller's own customer profile.
func (h *customerHandler) getMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	customer, err := h.customerSvc.GetByUserID(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// updateMe lets the caller edit their own profile. The record's identity
// and user link stay as stored.
func (h *customerHandler) updateMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	var req customerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.customerSvc.GetByUserID(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.CinOrPassport = req.CinOrPassport
	customer.LicenseNumber = req.LicenseNumber
	customer.Phone = req.Phone
	customer.Email = req.Email
	if err := h.customerSvc.Update(r.Context(), customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *customerHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.customerSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *customerHandler) listReservations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	reservations, err := h.customerSvc.ListReservations(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}
