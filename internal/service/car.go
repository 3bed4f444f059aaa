package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type carService struct {
	carRepo         repository.CarRepository
	reservationRepo repository.ReservationRepository
}

func NewCarService(carRepo repository.CarRepository, reservationRepo repository.ReservationRepository) CarService {
	return &carService{carRepo: carRepo, reservationRepo: reservationRepo}
}

func (s *carService) Create(ctx context.Context, car *domain.Car) error {
	if !domain.ValidCarStatus(car.Status) {
		car.Status = domain.CarStatusAvailable
	}
	exists, err := s.carRepo.PlateExists(ctx, car.PlateNumber, 0)
	if err != nil {
		return err
	}
	if exists {
		return domain.Conflict("plate number already exists")
	}
	return s.carRepo.Create(ctx, car)
}

func (s *carService) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) Update(ctx context.Context, car *domain.Car) error {
	if _, err := s.carRepo.GetByID(ctx, car.ID); err != nil {
		return err
	}
	exists, err := s.carRepo.PlateExists(ctx, car.PlateNumber, car.ID)
	if err != nil {
		return err
	}
	if exists {
		return domain.Conflict("plate number already exists")
	}
	return s.carRepo.Update(ctx, car)
}

func (s *carService) Delete(ctx context.Context, id int32) error {
	if _, err := s.carRepo.GetByID(ctx, id); err != nil {
		return err
	}
	active, err := s.reservationRepo.HasActiveByCar(ctx, id, domain.ActiveReservationStatuses)
	if err != nil {
		return err
	}
	if active {
		return domain.Conflict("cannot delete car with active reservations")
	}
	return s.carRepo.Delete(ctx, id)
}

func (s *carService) List(ctx context.Context, status domain.CarStatus) ([]domain.Car, error) {
	if status != "" && !domain.ValidCarStatus(status) {
		return nil, domain.InvalidInput("unknown car status")
	}
	return s.carRepo.List(ctx, status)
}

func (s *carService) Search(ctx context.Context, filter domain.CarSearchFilter) ([]domain.Car, error) {
	if filter.Status != "" && !domain.ValidCarStatus(filter.Status) {
		return nil, domain.InvalidInput("unknown car status")
	}
	if filter.YearMin != nil && filter.YearMax != nil && *filter.YearMin > *filter.YearMax {
		return nil, domain.InvalidInput("year range is inverted")
	}
	if filter.DailyPriceMinCents != nil && filter.DailyPriceMaxCents != nil && *filter.DailyPriceMinCents > *filter.DailyPriceMaxCents {
		return nil, domain.InvalidInput("price range is inverted")
	}
	return s.carRepo.Search(ctx, filter)
}

// UpdateStatus is the administrative override. It refuses to force a car
// back to AVAILABLE while a confirmed or running rental still claims it.
func (s *carService) UpdateStatus(ctx context.Context, id int32, status domain.CarStatus) error {
	if !domain.ValidCarStatus(status) {
		return domain.InvalidInput("unknown car status")
	}
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if status == domain.CarStatusAvailable {
		claimed, err := s.reservationRepo.HasActiveByCar(ctx, id, []domain.ReservationStatus{
			domain.ReservationStatusConfirmed,
			domain.ReservationStatusActive,
		})
		if err != nil {
			return err
		}
		if claimed {
			return domain.Conflict("cannot set car to available while it has active or confirmed reservations")
		}
	}

	car.Status = status
	return s.carRepo.Update(ctx, car)
}

func (s *carService) ListReservations(ctx context.Context, carID int32) ([]domain.Reservation, error) {
	if _, err := s.carRepo.GetByID(ctx, carID); err != nil {
		return nil, err
	}
	return s.reservationRepo.ListByCar(ctx, carID)
}
