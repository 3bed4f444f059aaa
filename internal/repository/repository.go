package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status domain.CarStatus) ([]domain.Car, error)
	Search(ctx context.Context, filter domain.CarSearchFilter) ([]domain.Car, error)
	PlateExists(ctx context.Context, plate string, excludeID int32) (bool, error)
	CountByStatus(ctx context.Context, status domain.CarStatus) (int32, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByUserID(ctx context.Context, userID int32) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation, options []domain.ReservationOption) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByCar(ctx context.Context, carID int32) ([]domain.Reservation, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Reservation, error)
	ListOptions(ctx context.Context, reservationID int32) ([]domain.ReservationOption, error)

	// HasOverlap reports whether the car already has a reservation in one of
	// the given statuses whose [start,end) interval intersects [start,end)
	// half-open: existing.start < end AND start < existing.end.
	HasOverlap(ctx context.Context, carID int32, start, end time.Time, statuses []domain.ReservationStatus) (bool, error)

	// HasActive reports whether the car (customer) has any reservation in one
	// of the given statuses, regardless of dates.
	HasActiveByCar(ctx context.Context, carID int32, statuses []domain.ReservationStatus) (bool, error)
	HasActiveByCustomer(ctx context.Context, customerID int32, statuses []domain.ReservationStatus) (bool, error)

	// ListActivePastEndDate returns reservations in the given statuses whose
	// end date is before the given date. Used by the overdue job.
	ListActivePastEndDate(ctx context.Context, statuses []domain.ReservationStatus, before time.Time) ([]domain.Reservation, error)
	// ListStartingOn returns reservations in the given statuses whose start
	// date equals the given date. Used by the pickup reminder job.
	ListStartingOn(ctx context.Context, statuses []domain.ReservationStatus, on time.Time) ([]domain.Reservation, error)

	CountByStatus(ctx context.Context, status domain.ReservationStatus) (int32, error)
	CountPerMonth(ctx context.Context) ([]domain.MonthCount, error)
	TopCars(ctx context.Context, limit int32) ([]domain.CarCount, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByReservation(ctx context.Context, reservationID int32) ([]domain.Payment, error)
	SumByReservation(ctx context.Context, reservationID int32) (int64, error)
	UpdateStatusByReservation(ctx context.Context, reservationID int32, status domain.PaymentStatus) error
	SumAll(ctx context.Context) (int64, error)
}

type ReturnRepository interface {
	Upsert(ctx context.Context, ret *domain.Return) error
	GetByReservation(ctx context.Context, reservationID int32) (*domain.Return, error)
}

// Store bundles every repository behind one transaction boundary. WithinTx
// runs fn against a store whose repositories share a single database
// transaction; fn returning an error rolls everything back.
type Store interface {
	Cars() CarRepository
	Customers() CustomerRepository
	Users() UserRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Returns() ReturnRepository

	WithinTx(ctx context.Context, fn func(Store) error) error
}
