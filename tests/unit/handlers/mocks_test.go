package handlers

import (
	"context"
	"net/http"
	"time"

	httpapi "carrental-backend/internal/api/http"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
	"carrental-backend/internal/utils"

	"github.com/stretchr/testify/mock"
)

// newTestRouter builds the real router over mocked services and a real
// token manager, so route guards are exercised end to end.
func newTestRouter(svcs httpapi.Services) (http.Handler, security.TokenManager) {
	tokens := security.NewTokenManager("handler-test-secret", 15, 60)
	return httpapi.NewRouter(svcs, tokens), tokens
}

func accessToken(tokens security.TokenManager, userID int32, role domain.UserRole) string {
	token, err := tokens.GenerateAccessToken(userID, "someone@example.com", role)
	if err != nil {
		panic(err)
	}
	return token
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, *service.AuthTokens, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*service.AuthTokens), args.Error(2)
}
func (m *MockAuthService) RegisterCustomer(ctx context.Context, customer *domain.Customer, password string) (*domain.User, *service.AuthTokens, error) {
	args := m.Called(ctx, customer, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*service.AuthTokens), args.Error(2)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, *service.AuthTokens, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*service.AuthTokens), args.Error(2)
}
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*service.AuthTokens, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthTokens), args.Error(1)
}

// MockCarService
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarService) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarService) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarService) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarService) List(ctx context.Context, status domain.CarStatus) ([]domain.Car, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarService) Search(ctx context.Context, filter domain.CarSearchFilter) ([]domain.Car, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarService) UpdateStatus(ctx context.Context, id int32, status domain.CarStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockCarService) ListReservations(ctx context.Context, carID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockCustomerService
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerService) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetByUserID(ctx context.Context, userID int32) (*domain.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerService) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ListReservations(ctx context.Context, customerID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Quote(ctx context.Context, carID int32, start, end time.Time, options []utils.OptionLine) (*utils.Quote, error) {
	args := m.Called(ctx, carID, start, end, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utils.Quote), args.Error(1)
}
func (m *MockReservationService) Create(ctx context.Context, in service.CreateReservationInput) (*domain.ReservationDetail, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationDetail), args.Error(1)
}
func (m *MockReservationService) GetAll(ctx context.Context) ([]domain.ReservationDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReservationDetail), args.Error(1)
}
func (m *MockReservationService) GetByID(ctx context.Context, id int32) (*domain.ReservationDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationDetail), args.Error(1)
}
func (m *MockReservationService) Confirm(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReservationService) Pickup(ctx context.Context, id int32, in service.PickupInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}
func (m *MockReservationService) Complete(ctx context.Context, id int32, in service.CompleteReservationInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}
func (m *MockReservationService) Cancel(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReservationService) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
