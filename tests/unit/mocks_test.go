package unit

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) GetByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarRepo) List(ctx context.Context, status domain.CarStatus) ([]domain.Car, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) Search(ctx context.Context, filter domain.CarSearchFilter) ([]domain.Car, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) PlateExists(ctx context.Context, plate string, excludeID int32) (bool, error) {
	args := m.Called(ctx, plate, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockCarRepo) CountByStatus(ctx context.Context, status domain.CarStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByUserID(ctx context.Context, userID int32) (*domain.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation, options []domain.ReservationOption) error {
	args := m.Called(ctx, reservation, options)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) Update(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}
func (m *MockReservationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReservationRepo) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByCar(ctx context.Context, carID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListOptions(ctx context.Context, reservationID int32) ([]domain.ReservationOption, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).([]domain.ReservationOption), args.Error(1)
}
func (m *MockReservationRepo) HasOverlap(ctx context.Context, carID int32, start, end time.Time, statuses []domain.ReservationStatus) (bool, error) {
	args := m.Called(ctx, carID, start, end, statuses)
	return args.Bool(0), args.Error(1)
}
func (m *MockReservationRepo) HasActiveByCar(ctx context.Context, carID int32, statuses []domain.ReservationStatus) (bool, error) {
	args := m.Called(ctx, carID, statuses)
	return args.Bool(0), args.Error(1)
}
func (m *MockReservationRepo) HasActiveByCustomer(ctx context.Context, customerID int32, statuses []domain.ReservationStatus) (bool, error) {
	args := m.Called(ctx, customerID, statuses)
	return args.Bool(0), args.Error(1)
}
func (m *MockReservationRepo) ListActivePastEndDate(ctx context.Context, statuses []domain.ReservationStatus, before time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, statuses, before)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListStartingOn(ctx context.Context, statuses []domain.ReservationStatus, on time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, statuses, on)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) CountByStatus(ctx context.Context, status domain.ReservationStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockReservationRepo) CountPerMonth(ctx context.Context) ([]domain.MonthCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MonthCount), args.Error(1)
}
func (m *MockReservationRepo) TopCars(ctx context.Context, limit int32) ([]domain.CarCount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.CarCount), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByReservation(ctx context.Context, reservationID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) SumByReservation(ctx context.Context, reservationID int32) (int64, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPaymentRepo) UpdateStatusByReservation(ctx context.Context, reservationID int32, status domain.PaymentStatus) error {
	args := m.Called(ctx, reservationID, status)
	return args.Error(0)
}
func (m *MockPaymentRepo) SumAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockReturnRepo
type MockReturnRepo struct {
	mock.Mock
}

func (m *MockReturnRepo) Upsert(ctx context.Context, ret *domain.Return) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}
func (m *MockReturnRepo) GetByReservation(ctx context.Context, reservationID int32) (*domain.Return, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Return), args.Error(1)
}

// MockStore bundles the repository mocks behind the Store interface. WithinTx
// simply runs fn against the same store, which is enough for service tests.
type MockStore struct {
	CarRepo         *MockCarRepo
	CustomerRepo    *MockCustomerRepo
	UserRepo        *MockUserRepo
	ReservationRepo *MockReservationRepo
	PaymentRepo     *MockPaymentRepo
	ReturnRepo      *MockReturnRepo
}

func NewMockStore() *MockStore {
	return &MockStore{
		CarRepo:         new(MockCarRepo),
		CustomerRepo:    new(MockCustomerRepo),
		UserRepo:        new(MockUserRepo),
		ReservationRepo: new(MockReservationRepo),
		PaymentRepo:     new(MockPaymentRepo),
		ReturnRepo:      new(MockReturnRepo),
	}
}

func (s *MockStore) Cars() repository.CarRepository                 { return s.CarRepo }
func (s *MockStore) Customers() repository.CustomerRepository       { return s.CustomerRepo }
func (s *MockStore) Users() repository.UserRepository               { return s.UserRepo }
func (s *MockStore) Reservations() repository.ReservationRepository { return s.ReservationRepo }
func (s *MockStore) Payments() repository.PaymentRepository         { return s.PaymentRepo }
func (s *MockStore) Returns() repository.ReturnRepository           { return s.ReturnRepo }

func (s *MockStore) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReservationConfirmed(ctx context.Context, email, name, car string, startDate, endDate time.Time) error {
	args := m.Called(ctx, email, name, car, startDate, endDate)
	return args.Error(0)
}
func (m *MockEmailService) SendReservationCompleted(ctx context.Context, email, name, car string, totalDueCents int64) error {
	args := m.Called(ctx, email, name, car, totalDueCents)
	return args.Error(0)
}
func (m *MockEmailService) SendPickupReminder(ctx context.Context, email, name, car string, startDate time.Time) error {
	args := m.Called(ctx, email, name, car, startDate)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueNotice(ctx context.Context, email, name, car string, endDate time.Time) error {
	args := m.Called(ctx, email, name, car, endDate)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, email string, role domain.UserRole) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateRefreshToken(userID int32, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
