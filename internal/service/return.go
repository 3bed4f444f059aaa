package service

import (
	"context"

	"carrental-backend/internal/config"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"
)

// returnService is the standalone returns endpoint. It finalizes a
// reservation like Complete does but charges the historical returns late
// rate (25/day instead of 20/day) and performs no status guard, mirroring
// the product behavior this system replaces. See DESIGN.md.
type returnService struct {
	store repository.Store
	fees  config.FeesConfig
	clock utils.Clock
}

func NewReturnService(store repository.Store, fees config.FeesConfig, clock utils.Clock) ReturnService {
	return &returnService{store: store, fees: fees, clock: clock}
}

func (s *returnService) Create(ctx context.Context, in CreateReturnInput) (*domain.Return, error) {
	if err := validateFeeOverrides(in.LateFeesCents, in.DamageFeesCents, in.FuelFeesCents); err != nil {
		return nil, err
	}

	var ret *domain.Return
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		rv, err := tx.Reservations().GetByID(ctx, in.ReservationID)
		if err != nil {
			return err
		}

		returnDate := s.clock()
		if in.ReturnDate != nil {
			returnDate = *in.ReturnDate
		}

		lateFees := utils.LateFeeCents(returnDate, rv.EndDate, s.fees.LateFeeReturnCentsPerDay)
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

		ret = &domain.Return{
			ReservationID:       rv.ID,
			ReturnDate:          returnDate,
			LateFeesCents:       lateFees,
			DamageFeesCents:     damageFees,
			FuelFeesCents:       fuelFees,
			TotalExtraFeesCents: lateFees + fuelFees + damageFees,
			Notes:               in.Notes,
		}
		if err := tx.Returns().Upsert(ctx, ret); err != nil {
			return err
		}

		rv.Status = domain.ReservationStatusCompleted
		rv.ReturnedAt = &returnDate
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
		return tx.Cars().Update(ctx, car)
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *returnService) GetByReservation(ctx context.Context, reservationID int32) (*domain.Return, error) {
	return s.store.Returns().GetByReservation(ctx, reservationID)
}
