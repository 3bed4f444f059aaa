package postgres

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type paymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (reservation_id, amount_cents, paid_at, method, reference, status)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		p.ReservationID, p.AmountCents, p.PaidAt, p.Method, p.Reference, p.Status,
	).Scan(&p.ID)
}

func (r *paymentRepository) ListByReservation(ctx context.Context, reservationID int32) ([]domain.Payment, error) {
	query := `SELECT id, reservation_id, amount_cents, paid_at, method, reference, status
	          FROM payments WHERE reservation_id = $1 ORDER BY paid_at DESC`
	rows, err := r.db.QueryContext(ctx, query, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.ReservationID, &p.AmountCents, &p.PaidAt, &p.Method, &p.Reference, &p.Status); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) SumByReservation(ctx context.Context, reservationID int32) (int64, error) {
	var total int64
	query := `SELECT coalesce(sum(amount_cents), 0) FROM payments WHERE reservation_id = $1`
	err := r.db.QueryRowContext(ctx, query, reservationID).Scan(&total)
	return total, err
}

// UpdateStatusByReservation rewrites the derived paid/partial status onto
// every payment row of the reservation. The status is a per-reservation
// aggregate mirrored per row, so each insertion fans out to the siblings.
func (r *paymentRepository) UpdateStatusByReservation(ctx context.Context, reservationID int32, status domain.PaymentStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE payments SET status = $1 WHERE reservation_id = $2`, status, reservationID)
	return err
}

func (r *paymentRepository) SumAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT coalesce(sum(amount_cents), 0) FROM payments`).Scan(&total)
	return total, err
}
