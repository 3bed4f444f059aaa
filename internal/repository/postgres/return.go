package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type returnRepository struct {
	db DBTX
}

func NewReturnRepository(db DBTX) repository.ReturnRepository {
	return &returnRepository{db: db}
}

// Upsert creates the reservation's return record or overwrites all fields of
// the existing one. reservation_id carries a unique constraint.
func (r *returnRepository) Upsert(ctx context.Context, ret *domain.Return) error {
	query := `INSERT INTO returns (reservation_id, return_date, late_fees_cents, damage_fees_cents, fuel_fees_cents, total_extra_fees_cents, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (reservation_id) DO UPDATE SET
	            return_date = EXCLUDED.return_date,
	            late_fees_cents = EXCLUDED.late_fees_cents,
	            damage_fees_cents = EXCLUDED.damage_fees_cents,
	            fuel_fees_cents = EXCLUDED.fuel_fees_cents,
	            total_extra_fees_cents = EXCLUDED.total_extra_fees_cents,
	            notes = EXCLUDED.notes
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		ret.ReservationID, ret.ReturnDate, ret.LateFeesCents, ret.DamageFeesCents,
		ret.FuelFeesCents, ret.TotalExtraFeesCents, nullString(ret.Notes),
	).Scan(&ret.ID)
}

func (r *returnRepository) GetByReservation(ctx context.Context, reservationID int32) (*domain.Return, error) {
	ret := &domain.Return{}
	var notes sql.NullString
	query := `SELECT id, reservation_id, return_date, late_fees_cents, damage_fees_cents, fuel_fees_cents, total_extra_fees_cents, notes
	          FROM returns WHERE reservation_id = $1`
	err := r.db.QueryRowContext(ctx, query, reservationID).Scan(
		&ret.ID, &ret.ReservationID, &ret.ReturnDate, &ret.LateFeesCents,
		&ret.DamageFeesCents, &ret.FuelFeesCents, &ret.TotalExtraFeesCents, &notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("return record not found")
	}
	if err != nil {
		return nil, err
	}
	ret.Notes = notes.String
	return ret, nil
}
