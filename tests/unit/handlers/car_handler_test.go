package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpapi "carrental-backend/internal/api/http"
	"carrental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// The catalog is the storefront: listing, searching and fetching a car
// need no token. Managing cars still does.
func TestCarCatalog_Anonymous(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		carSvc := new(MockCarService)
		router, _ := newTestRouter(httpapi.Services{Cars: carSvc})

		carSvc.On("List", mock.Anything, domain.CarStatus("")).
			Return([]domain.Car{{ID: 1, Make: "Dacia", Model: "Logan"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/cars", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		carSvc.AssertExpectations(t)
	})

	t.Run("Search", func(t *testing.T) {
		carSvc := new(MockCarService)
		router, _ := newTestRouter(httpapi.Services{Cars: carSvc})

		carSvc.On("Search", mock.Anything, mock.MatchedBy(func(f domain.CarSearchFilter) bool {
			return f.Make == "dacia" && f.Status == domain.CarStatusAvailable
		})).Return([]domain.Car{{ID: 1, Make: "Dacia"}}, nil)

		body := `{"make":"dacia","status":"AVAILABLE"}`
		req := httptest.NewRequest(http.MethodPost, "/api/cars/search", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		carSvc.AssertExpectations(t)
	})

	t.Run("Get By ID", func(t *testing.T) {
		carSvc := new(MockCarService)
		router, _ := newTestRouter(httpapi.Services{Cars: carSvc})

		carSvc.On("GetByID", mock.Anything, int32(4)).
			Return(&domain.Car{ID: 4, Make: "Renault"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/cars/4", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		carSvc.AssertExpectations(t)
	})

	t.Run("Create Still Gated", func(t *testing.T) {
		carSvc := new(MockCarService)
		router, _ := newTestRouter(httpapi.Services{Cars: carSvc})

		body := `{"make":"Dacia","model":"Logan","plate_number":"1234-A-56"}`
		req := httptest.NewRequest(http.MethodPost, "/api/cars", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		carSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCarSearchRoute_InvalidStatus(t *testing.T) {
	carSvc := new(MockCarService)
	router, _ := newTestRouter(httpapi.Services{Cars: carSvc})

	carSvc.On("Search", mock.Anything, mock.Anything).
		Return(nil, domain.InvalidInput("unknown car status"))

	req := httptest.NewRequest(http.MethodPost, "/api/cars/search", strings.NewReader(`{"status":"BROKEN"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
