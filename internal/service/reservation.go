package service

import (
	"context"
	"time"

	"carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"
)

type reservationService struct {
	store    repository.Store
	emailSvc EmailService
	fees     config.FeesConfig
	clock    utils.Clock
}

func NewReservationService(store repository.Store, emailSvc EmailService, fees config.FeesConfig, clock utils.Clock) ReservationService {
	return &reservationService{
		store:    store,
		emailSvc: emailSvc,
		fees:     fees,
		clock:    clock,
	}
}

func (s *reservationService) Quote(ctx context.Context, carID int32, start, end time.Time, options []utils.OptionLine) (*utils.Quote, error) {
	car, err := s.store.Cars().GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	q := utils.QuoteReservation(start, end, car.DailyPriceCents, options)
	return &q, nil
}

func (s *reservationService) Create(ctx context.Context, in CreateReservationInput) (*domain.ReservationDetail, error) {
	var created *domain.Reservation
	var options []domain.ReservationOption

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		car, err := tx.Cars().GetByID(ctx, in.CarID)
		if err != nil {
			return err
		}
		if car.Status != domain.CarStatusAvailable {
			return domain.InvalidInput("car is not available")
		}

		if _, err := tx.Customers().GetByID(ctx, in.CustomerID); err != nil {
			return err
		}

		if !in.EndDate.After(in.StartDate) {
			return domain.InvalidInput("end date must be after start date")
		}
		if utils.DateOnly(in.StartDate).Before(utils.DateOnly(s.clock())) {
			return domain.InvalidInput("start date cannot be in the past")
		}

		overlap, err := tx.Reservations().HasOverlap(ctx, in.CarID, in.StartDate, in.EndDate, domain.ActiveReservationStatuses)
		if err != nil {
			return err
		}
		if overlap {
			return domain.Conflict("car already has an overlapping reservation")
		}

		quote := utils.QuoteReservation(in.StartDate, in.EndDate, car.DailyPriceCents, in.Options)

		rv := &domain.Reservation{
			CarID:             in.CarID,
			CustomerID:        in.CustomerID,
			StartDate:         in.StartDate,
			EndDate:           in.EndDate,
			TotalDays:         quote.TotalDays,
			BasePriceCents:    quote.BasePriceCents,
			OptionsPriceCents: quote.OptionsPriceCents,
			TotalPriceCents:   quote.TotalPriceCents,
			Status:            domain.ReservationStatusPending,
			CreatedAt:         s.clock(),
		}

		options = make([]domain.ReservationOption, 0, len(in.Options))
		for _, opt := range in.Options {
			options = append(options, domain.ReservationOption{
				OptionName:       opt.OptionName,
				PricePerDayCents: opt.PricePerDayCents,
				Quantity:         opt.Quantity,
			})
		}

		// Car stays AVAILABLE until the booking is confirmed.
		if err := tx.Reservations().Create(ctx, rv, options); err != nil {
			return err
		}
		created = rv
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.buildDetail(ctx, created)
}

func (s *reservationService) GetAll(ctx context.Context) ([]domain.ReservationDetail, error) {
	reservations, err := s.store.Reservations().List(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]domain.ReservationDetail, 0, len(reservations))
	for i := range reservations {
		detail, err := s.buildDetail(ctx, &reservations[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *reservationService) GetByID(ctx context.Context, id int32) (*domain.ReservationDetail, error) {
	rv, err := s.store.Reservations().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, rv)
}

func (s *reservationService) Confirm(ctx context.Context, id int32) error {
	var rv *domain.Reservation
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		var err error
		rv, err = tx.Reservations().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rv.Status.Terminal() {
			return domain.InvalidInput("reservation already completed or cancelled")
		}

		rv.Status = domain.ReservationStatusConfirmed
		if err := tx.Reservations().Update(ctx, rv); err != nil {
			return err
		}

		car, err := tx.Cars().GetByID(ctx, rv.CarID)
		if err != nil {
			return err
		}
		car.Status = domain.CarStatusReserved
		return tx.Cars().Update(ctx, car)
	})
	if err != nil {
		return err
	}

	s.notifyConfirmed(ctx, rv)
	return nil
}

func (s *reservationService) Pickup(ctx context.Context, id int32, in PickupInput) error {
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		rv, err := tx.Reservations().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rv.Status != domain.ReservationStatusPending && rv.Status != domain.ReservationStatusConfirmed {
			return domain.InvalidInput("reservation must be confirmed before pickup")
		}

		now := s.clock()
		rv.Status = domain.ReservationStatusActive
		rv.PickedUpAt = &now
		rv.PickupMileage = in.Mileage
		rv.PickupFuelLevel = in.FuelLevel
		if err := tx.Reservations().Update(ctx, rv); err != nil {
			return err
		}

		car, err := tx.Cars().GetByID(ctx, rv.CarID)
		if err != nil {
			return err
		}
		car.Status = domain.CarStatusRented
		return tx.Cars().Update(ctx, car)
	})
}

func (s *reservationService) Complete(ctx context.Context, id int32, in CompleteReservationInput) error {
	if err := validateFeeOverrides(in.LateFeesCents, in.DamageFeesCents, in.FuelFeesCents); err != nil {
		return err
	}

	var rv *domain.Reservation
	var totalDue int64
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		var err error
		rv, err = tx.Reservations().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rv.Status == domain.ReservationStatusCompleted {
			return domain.InvalidInput("reservation is already completed")
		}
		if rv.Status == domain.ReservationStatusCancelled {
			return domain.InvalidInput("cannot complete a cancelled reservation")
		}

		returnedAt := s.clock()
		if in.ReturnDate != nil {
			returnedAt = *in.ReturnDate
		}

		rv.Status = domain.ReservationStatusCompleted
		rv.ReturnedAt = &returnedAt
		rv.ReturnMileage = in.ReturnMileage
		rv.ReturnFuelLevel = in.ReturnFuelLevel
		if err := tx.Reservations().Update(ctx, rv); err != nil {
			return err
		}

		car, err := tx.Cars().GetByID(ctx, rv.CarID)
		if err != nil {
			return err
		}
		car.Status = domain.CarStatusAvailable
		if in.ReturnMileage != nil {
			car.Mileage = *in.ReturnMileage
		}
		if err := tx.Cars().Update(ctx, car); err != nil {
			return err
		}

		lateFees := utils.LateFeeCents(returnedAt, rv.EndDate, s.fees.LateFeeCompleteCentsPerDay)
		if in.LateFeesCents != nil {
			lateFees = *in.LateFeesCents
		}
		fuelFees := utils.FuelFeeCents(rv.PickupFuelLevel, in.ReturnFuelLevel, s.fees.FuelFeeCentsPerUnit)
		if in.FuelFeesCents != nil {
			fuelFees = *in.FuelFeesCents
		}
		var damageFees int64
		if in.DamageFeesCents != nil {
			damageFees = *in.DamageFeesCents
		}

		ret := &domain.Return{
			ReservationID:       rv.ID,
			ReturnDate:          returnedAt,
			LateFeesCents:       lateFees,
			DamageFeesCents:     damageFees,
			FuelFeesCents:       fuelFees,
			TotalExtraFeesCents: lateFees + fuelFees + damageFees,
			Notes:               in.Notes,
		}
		if err := tx.Returns().Upsert(ctx, ret); err != nil {
			return err
		}
		totalDue = rv.TotalPriceCents + ret.TotalExtraFeesCents
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyCompleted(ctx, rv, totalDue)
	return nil
}

func (s *reservationService) Cancel(ctx context.Context, id int32) error {
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		rv, err := tx.Reservations().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rv.Status.Terminal() {
			return domain.InvalidInput("reservation already completed or cancelled")
		}

		rv.Status = domain.ReservationStatusCancelled
		if err := tx.Reservations().Update(ctx, rv); err != nil {
			return err
		}

		car, err := tx.Cars().GetByID(ctx, rv.CarID)
		if err != nil {
			return err
		}
		// A car pulled into the shop stays in MAINTENANCE; cancelling a
		// booking never overrides that.
		if car.Status != domain.CarStatusMaintenance {
			car.Status = domain.CarStatusAvailable
			return tx.Cars().Update(ctx, car)
		}
		return nil
	})
}

func (s *reservationService) Delete(ctx context.Context, id int32) error {
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		rv, err := tx.Reservations().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rv.Status == domain.ReservationStatusConfirmed || rv.Status == domain.ReservationStatusActive {
			return domain.InvalidInput("cannot delete a reservation in progress")
		}
		return tx.Reservations().Delete(ctx, id)
	})
}

func validateFeeOverrides(late, damage, fuel *int64) error {
	if late != nil && *late < 0 {
		return domain.InvalidInput("late fees cannot be negative")
	}
	if damage != nil && *damage < 0 {
		return domain.InvalidInput("damage fees cannot be negative")
	}
	if fuel != nil && *fuel < 0 {
		return domain.InvalidInput("fuel fees cannot be negative")
	}
	return nil
}

// buildDetail resolves the reservation's related rows by id. The return
// record is optional; its absence is not an error.
func (s *reservationService) buildDetail(ctx context.Context, rv *domain.Reservation) (*domain.ReservationDetail, error) {
	detail := &domain.ReservationDetail{Reservation: *rv}

	car, err := s.store.Cars().GetByID(ctx, rv.CarID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}
	detail.Car = car

	customer, err := s.store.Customers().GetByID(ctx, rv.CustomerID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}
	detail.Customer = customer

	options, err := s.store.Reservations().ListOptions(ctx, rv.ID)
	if err != nil {
		return nil, err
	}
	detail.Options = options

	payments, err := s.store.Payments().ListByReservation(ctx, rv.ID)
	if err != nil {
		return nil, err
	}
	detail.Payments = payments

	ret, err := s.store.Returns().GetByReservation(ctx, rv.ID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}
	detail.Return = ret

	return detail, nil
}

func (s *reservationService) notifyConfirmed(ctx context.Context, rv *domain.Reservation) {
	if s.emailSvc == nil {
		return
	}
	customer, err := s.store.Customers().GetByID(ctx, rv.CustomerID)
	if err != nil {
		logger.Warn("Skipping confirmation email", "reservation_id", rv.ID, "error", err)
		return
	}
	car, err := s.store.Cars().GetByID(ctx, rv.CarID)
	if err != nil {
		logger.Warn("Skipping confirmation email", "reservation_id", rv.ID, "error", err)
		return
	}
	name := customer.FirstName + " " + customer.LastName
	if err := s.emailSvc.SendReservationConfirmed(ctx, customer.Email, name, car.Make+" "+car.Model, rv.StartDate, rv.EndDate); err != nil {
		logger.Warn("Failed to send confirmation email", "reservation_id", rv.ID, "error", err)
	}
}

func (s *reservationService) notifyCompleted(ctx context.Context, rv *domain.Reservation, totalDueCents int64) {
	if s.emailSvc == nil {
		return
	}
	customer, err := s.store.Customers().GetByID(ctx, rv.CustomerID)
	if err != nil {
		logger.Warn("Skipping completion email", "reservation_id", rv.ID, "error", err)
		return
	}
	car, err := s.store.Cars().GetByID(ctx, rv.CarID)
	if err != nil {
		logger.Warn("Skipping completion email", "reservation_id", rv.ID, "error", err)
		return
	}
	name := customer.FirstName + " " + customer.LastName
	if err := s.emailSvc.SendReservationCompleted(ctx, customer.Email, name, car.Make+" "+car.Model, totalDueCents); err != nil {
		logger.Warn("Failed to send completion email", "reservation_id", rv.ID, "error", err)
	}
}
