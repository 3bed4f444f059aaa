package http

import (
	"net/http"

	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth        service.AuthService
	Cars        service.CarService
	Customers   service.CustomerService
	Reservation service.ReservationService
	Payments    service.PaymentService
	Returns     service.ReturnService
	Dashboard   service.DashboardService
}

// NewRouter wires all routes. The car catalog is browsable without a
// login; self-service routes require a valid access token; every
// back-office route additionally requires the ADMIN role, including
// staff account registration.
func NewRouter(svcs Services, tokens security.TokenManager) http.Handler {
	auth := &authHandler{authSvc: svcs.Auth}
	cars := &carHandler{carSvc: svcs.Cars}
	customers := &customerHandler{customerSvc: svcs.Customers}
	reservations := &reservationHandler{reservationSvc: svcs.Reservation, customerSvc: svcs.Customers}
	payments := &paymentHandler{paymentSvc: svcs.Payments}
	returns := &returnHandler{returnSvc: svcs.Returns}
	dashboard := &dashboardHandler{dashboardSvc: svcs.Dashboard}

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register-customer", auth.registerCustomer).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", auth.login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", auth.refresh).Methods(http.MethodPost)

	api.HandleFunc("/cars", cars.list).Methods(http.MethodGet)
	api.HandleFunc("/cars/search", cars.search).Methods(http.MethodPost)
	api.HandleFunc("/cars/{id:[0-9]+}", cars.get).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(authMiddleware(tokens))

	authed.HandleFunc("/reservations/quote", reservations.quote).Methods(http.MethodPost)
	authed.HandleFunc("/my/reservations", reservations.listMine).Methods(http.MethodGet)
	authed.HandleFunc("/my/reservations", reservations.createMine).Methods(http.MethodPost)
	authed.HandleFunc("/my/reservations/{id:[0-9]+}", reservations.getMine).Methods(http.MethodGet)
	authed.HandleFunc("/my/reservations/{id:[0-9]+}/cancel", reservations.cancelMine).Methods(http.MethodPost)
	authed.HandleFunc("/customers/me", customers.getMe).Methods(http.MethodGet)
	authed.HandleFunc("/customers/me", customers.updateMe).Methods(http.MethodPut)

	admin := authed.NewRoute().Subrouter()
	admin.Use(requireAdmin)

	// Registering a staff account mints an ADMIN user, so only an
	// existing admin may do it.
	admin.HandleFunc("/auth/register", auth.register).Methods(http.MethodPost)

	admin.HandleFunc("/cars", cars.create).Methods(http.MethodPost)
	admin.HandleFunc("/cars/{id:[0-9]+}", cars.update).Methods(http.MethodPut)
	admin.HandleFunc("/cars/{id:[0-9]+}", cars.delete).Methods(http.MethodDelete)
	admin.HandleFunc("/cars/{id:[0-9]+}/status", cars.updateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/cars/{id:[0-9]+}/reservations", cars.listReservations).Methods(http.MethodGet)

	admin.HandleFunc("/customers", customers.create).Methods(http.MethodPost)
	admin.HandleFunc("/customers", customers.list).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{id:[0-9]+}", customers.get).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{id:[0-9]+}", customers.update).Methods(http.MethodPut)
	admin.HandleFunc("/customers/{id:[0-9]+}", customers.delete).Methods(http.MethodDelete)
	admin.HandleFunc("/customers/{id:[0-9]+}/reservations", customers.listReservations).Methods(http.MethodGet)

	admin.HandleFunc("/reservations", reservations.create).Methods(http.MethodPost)
	admin.HandleFunc("/reservations", reservations.list).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id:[0-9]+}", reservations.get).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id:[0-9]+}", reservations.delete).Methods(http.MethodDelete)
	admin.HandleFunc("/reservations/{id:[0-9]+}/confirm", reservations.confirm).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id:[0-9]+}/pickup", reservations.pickup).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id:[0-9]+}/complete", reservations.complete).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id:[0-9]+}/cancel", reservations.cancel).Methods(http.MethodPost)

	admin.HandleFunc("/reservations/{id:[0-9]+}/payments", payments.record).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id:[0-9]+}/payments", payments.list).Methods(http.MethodGet)

	admin.HandleFunc("/returns", returns.create).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id:[0-9]+}/return", returns.getByReservation).Methods(http.MethodGet)

	admin.HandleFunc("/dashboard/stats", dashboard.stats).Methods(http.MethodGet)

	return r
}
