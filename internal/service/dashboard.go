package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type dashboardService struct {
	store repository.Store
}

func NewDashboardService(store repository.Store) DashboardService {
	return &dashboardService{store: store}
}

func (s *dashboardService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	revenue, err := s.store.Payments().SumAll(ctx)
	if err != nil {
		return nil, err
	}
	activeRentals, err := s.store.Reservations().CountByStatus(ctx, domain.ReservationStatusActive)
	if err != nil {
		return nil, err
	}
	availableCars, err := s.store.Cars().CountByStatus(ctx, domain.CarStatusAvailable)
	if err != nil {
		return nil, err
	}
	perMonth, err := s.store.Reservations().CountPerMonth(ctx)
	if err != nil {
		return nil, err
	}
	topCars, err := s.store.Reservations().TopCars(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		RevenueCents:    revenue,
		ActiveRentals:   activeRentals,
		AvailableCars:   availableCars,
		RentalsPerMonth: perMonth,
		TopCars:         topCars,
	}, nil
}
