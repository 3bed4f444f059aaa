package http

import (
	"net/http"

	"carrental-backend/internal/service"
)

type dashboardHandler struct {
	dashboardSvc service.DashboardService
}

func (h *dashboardHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardSvc.GetStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
