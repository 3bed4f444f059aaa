package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/utils"
)

type CarService interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status domain.CarStatus) ([]domain.Car, error)
	Search(ctx context.Context, filter domain.CarSearchFilter) ([]domain.Car, error)
	UpdateStatus(ctx context.Context, id int32, status domain.CarStatus) error
	ListReservations(ctx context.Context, carID int32) ([]domain.Reservation, error)
}

type CustomerService interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByUserID(ctx context.Context, userID int32) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Customer, error)
	ListReservations(ctx context.Context, customerID int32) ([]domain.Reservation, error)
}

// CreateReservationInput carries everything needed to open a booking.
type CreateReservationInput struct {
	CarID      int32
	CustomerID int32
	StartDate  time.Time
	EndDate    time.Time
	Options    []utils.OptionLine
}

// PickupInput records odometer and fuel readings at handover.
type PickupInput struct {
	Mileage   *int32
	FuelLevel *float64
}

// CompleteReservationInput finalizes a rental. Nil fee fields mean "compute
// the default"; supplied fields override the computation and must not be
// negative.
type CompleteReservationInput struct {
	ReturnDate      *time.Time
	ReturnMileage   *int32
	ReturnFuelLevel *float64
	LateFeesCents   *int64
	DamageFeesCents *int64
	FuelFeesCents   *int64
	Notes           string
}

type ReservationService interface {
	Quote(ctx context.Context, carID int32, start, end time.Time, options []utils.OptionLine) (*utils.Quote, error)
	Create(ctx context.Context, in CreateReservationInput) (*domain.ReservationDetail, error)
	GetAll(ctx context.Context) ([]domain.ReservationDetail, error)
	GetByID(ctx context.Context, id int32) (*domain.ReservationDetail, error)
	Confirm(ctx context.Context, id int32) error
	Pickup(ctx context.Context, id int32, in PickupInput) error
	Complete(ctx context.Context, id int32, in CompleteReservationInput) error
	Cancel(ctx context.Context, id int32) error
	Delete(ctx context.Context, id int32) error
}

type PaymentService interface {
	RecordPayment(ctx context.Context, reservationID int32, amountCents int64, method string) (*domain.Payment, error)
	ListByReservation(ctx context.Context, reservationID int32) ([]domain.Payment, error)
}

// CreateReturnInput finalizes a reservation through the standalone returns
// endpoint.
type CreateReturnInput struct {
	ReservationID   int32
	ReturnDate      *time.Time
	ReturnMileage   *int32
	ReturnFuelLevel *float64
	LateFeesCents   *int64
	DamageFeesCents *int64
	FuelFeesCents   *int64
	Notes           string
}

type ReturnService interface {
	Create(ctx context.Context, in CreateReturnInput) (*domain.Return, error)
	GetByReservation(ctx context.Context, reservationID int32) (*domain.Return, error)
}

// AuthTokens is the pair handed out at login and registration.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, *AuthTokens, error)
	RegisterCustomer(ctx context.Context, customer *domain.Customer, password string) (*domain.User, *AuthTokens, error)
	Login(ctx context.Context, email, password string) (*domain.User, *AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error)
}

type DashboardService interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
}

type EmailService interface {
	SendReservationConfirmed(ctx context.Context, email, name, car string, startDate, endDate time.Time) error
	SendReservationCompleted(ctx context.Context, email, name, car string, totalDueCents int64) error
	SendPickupReminder(ctx context.Context, email, name, car string, startDate time.Time) error
	SendOverdueNotice(ctx context.Context, email, name, car string, endDate time.Time) error
}
