package jobs

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/utils"
)

// SendOverdueNotices emails customers whose ACTIVE rental is past its end
// date. The reservation itself stays ACTIVE; only finalizing the return moves
// it on.
func (jr *JobRunner) SendOverdueNotices() {
	jr.runWithRecovery("SendOverdueNotices", func() {
		ctx := context.Background()
		today := utils.DateOnly(jr.clock())

		overdue, err := jr.store.Reservations().ListActivePastEndDate(ctx,
			[]domain.ReservationStatus{domain.ReservationStatusActive}, today)
		if err != nil {
			logger.Error("Failed to list overdue reservations", "error", err)
			return
		}

		count := 0
		for _, res := range overdue {
			customer, car, err := jr.lookupParties(ctx, &res)
			if err != nil {
				logger.Error("Failed to resolve overdue reservation parties",
					"reservation_id", res.ID, "error", err)
				continue
			}
			err = jr.email.SendOverdueNotice(ctx, customer.Email,
				customer.FirstName, carLabel(car), res.EndDate)
			if err != nil {
				logger.Error("Failed to send overdue notice",
					"reservation_id", res.ID, "error", err)
				continue
			}
			count++
		}
		logger.Info("Sent overdue notices", "count", count)
	})
}

// SendPickupReminders emails customers whose CONFIRMED reservation starts
// tomorrow.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		ctx := context.Background()
		tomorrow := utils.DateOnly(jr.clock()).AddDate(0, 0, 1)

		upcoming, err := jr.store.Reservations().ListStartingOn(ctx,
			[]domain.ReservationStatus{domain.ReservationStatusConfirmed}, tomorrow)
		if err != nil {
			logger.Error("Failed to list upcoming reservations", "error", err)
			return
		}

		count := 0
		for _, res := range upcoming {
			customer, car, err := jr.lookupParties(ctx, &res)
			if err != nil {
				logger.Error("Failed to resolve upcoming reservation parties",
					"reservation_id", res.ID, "error", err)
				continue
			}
			err = jr.email.SendPickupReminder(ctx, customer.Email,
				customer.FirstName, carLabel(car), res.StartDate)
			if err != nil {
				logger.Error("Failed to send pickup reminder",
					"reservation_id", res.ID, "error", err)
				continue
			}
			count++
		}
		logger.Info("Sent pickup reminders", "count", count)
	})
}

func (jr *JobRunner) lookupParties(ctx context.Context, res *domain.Reservation) (*domain.Customer, *domain.Car, error) {
	customer, err := jr.store.Customers().GetByID(ctx, res.CustomerID)
	if err != nil {
		return nil, nil, err
	}
	car, err := jr.store.Cars().GetByID(ctx, res.CarID)
	if err != nil {
		return nil, nil, err
	}
	return customer, car, nil
}

func carLabel(car *domain.Car) string {
	return fmt.Sprintf("%s %s (%s)", car.Make, car.Model, car.PlateNumber)
}
