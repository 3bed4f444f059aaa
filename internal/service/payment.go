package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"

	"github.com/google/uuid"
)

type paymentService struct {
	store repository.Store
	clock utils.Clock
}

func NewPaymentService(store repository.Store, clock utils.Clock) PaymentService {
	return &paymentService{store: store, clock: clock}
}

// RecordPayment appends a payment and recomputes the reservation's paid
// status. The status is an aggregate of the whole ledger, so every existing
// payment row is rewritten alongside the new one.
func (s *paymentService) RecordPayment(ctx context.Context, reservationID int32, amountCents int64, method string) (*domain.Payment, error) {
	if amountCents <= 0 {
		return nil, domain.InvalidInput("payment amount must be greater than zero")
	}
	if method == "" {
		method = "Cash"
	}

	payment := &domain.Payment{
		ReservationID: reservationID,
		AmountCents:   amountCents,
		PaidAt:        s.clock(),
		Method:        method,
		Reference:     uuid.NewString(),
		Status:        domain.PaymentStatusUnpaid,
	}

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		rv, err := tx.Reservations().GetByID(ctx, reservationID)
		if err != nil {
			return err
		}

		if err := tx.Payments().Create(ctx, payment); err != nil {
			return err
		}

		totalPaid, err := tx.Payments().SumByReservation(ctx, reservationID)
		if err != nil {
			return err
		}

		var extraFees int64
		ret, err := tx.Returns().GetByReservation(ctx, reservationID)
		if err != nil && !domain.IsNotFound(err) {
			return err
		}
		if ret != nil {
			extraFees = ret.TotalExtraFeesCents
		}

		totalDue := rv.TotalPriceCents + extraFees
		status := domain.PaymentStatusPartial
		if totalPaid >= totalDue {
			status = domain.PaymentStatusPaid
		}

		payment.Status = status
		return tx.Payments().UpdateStatusByReservation(ctx, reservationID, status)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListByReservation(ctx context.Context, reservationID int32) ([]domain.Payment, error) {
	if _, err := s.store.Reservations().GetByID(ctx, reservationID); err != nil {
		return nil, err
	}
	return s.store.Payments().ListByReservation(ctx, reservationID)
}
