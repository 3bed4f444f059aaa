package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type customerService struct {
	customerRepo    repository.CustomerRepository
	reservationRepo repository.ReservationRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, reservationRepo repository.ReservationRepository) CustomerService {
	return &customerService{customerRepo: customerRepo, reservationRepo: reservationRepo}
}

func (s *customerService) Create(ctx context.Context, customer *domain.Customer) error {
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) GetByUserID(ctx context.Context, userID int32) (*domain.Customer, error) {
	return s.customerRepo.GetByUserID(ctx, userID)
}

func (s *customerService) Update(ctx context.Context, customer *domain.Customer) error {
	if _, err := s.customerRepo.GetByID(ctx, customer.ID); err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) Delete(ctx context.Context, id int32) error {
	if _, err := s.customerRepo.GetByID(ctx, id); err != nil {
		return err
	}
	active, err := s.reservationRepo.HasActiveByCustomer(ctx, id, domain.ActiveReservationStatuses)
	if err != nil {
		return err
	}
	if active {
		return domain.Conflict("cannot delete customer with active reservations")
	}
	return s.customerRepo.Delete(ctx, id)
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) ListReservations(ctx context.Context, customerID int32) ([]domain.Reservation, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.reservationRepo.ListByCustomer(ctx, customerID)
}
