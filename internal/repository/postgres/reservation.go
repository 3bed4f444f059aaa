package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"

	"github.com/lib/pq"
)

type reservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, car_id, customer_id, start_date, end_date, total_days, base_price_cents, options_price_cents, total_price_cents, status, created_at, picked_up_at, returned_at, pickup_mileage, pickup_fuel_level, return_mileage, return_fuel_level`

func scanReservation(row interface{ Scan(...interface{}) error }) (*domain.Reservation, error) {
	rv := &domain.Reservation{}
	err := row.Scan(
		&rv.ID, &rv.CarID, &rv.CustomerID, &rv.StartDate, &rv.EndDate,
		&rv.TotalDays, &rv.BasePriceCents, &rv.OptionsPriceCents, &rv.TotalPriceCents,
		&rv.Status, &rv.CreatedAt, &rv.PickedUpAt, &rv.ReturnedAt,
		&rv.PickupMileage, &rv.PickupFuelLevel, &rv.ReturnMileage, &rv.ReturnFuelLevel,
	)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (r *reservationRepository) Create(ctx context.Context, rv *domain.Reservation, options []domain.ReservationOption) error {
	query := `INSERT INTO reservations (car_id, customer_id, start_date, end_date, total_days, base_price_cents, options_price_cents, total_price_cents, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		rv.CarID, rv.CustomerID, rv.StartDate, rv.EndDate, rv.TotalDays,
		rv.BasePriceCents, rv.OptionsPriceCents, rv.TotalPriceCents, rv.Status, rv.CreatedAt,
	).Scan(&rv.ID)
	if err != nil {
		return err
	}

	for i := range options {
		options[i].ReservationID = rv.ID
		optQuery := `INSERT INTO reservation_options (reservation_id, option_name, price_per_day_cents, quantity)
		             VALUES ($1, $2, $3, $4) RETURNING id`
		if err := r.db.QueryRowContext(ctx, optQuery,
			rv.ID, options[i].OptionName, options[i].PricePerDayCents, options[i].Quantity,
		).Scan(&options[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	rv, err := scanReservation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("reservation not found")
	}
	return rv, err
}

func (r *reservationRepository) Update(ctx context.Context, rv *domain.Reservation) error {
	query := `UPDATE reservations SET status=$1, picked_up_at=$2, returned_at=$3, pickup_mileage=$4, pickup_fuel_level=$5, return_mileage=$6, return_fuel_level=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query,
		rv.Status, rv.PickedUpAt, rv.ReturnedAt,
		rv.PickupMileage, rv.PickupFuelLevel, rv.ReturnMileage, rv.ReturnFuelLevel, rv.ID,
	)
	return err
}

func (r *reservationRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	return err
}

func (r *reservationRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *rv)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY created_at DESC`)
}

func (r *reservationRepository) ListByCar(ctx context.Context, carID int32) ([]domain.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE car_id = $1 ORDER BY created_at DESC`, carID)
}

func (r *reservationRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE customer_id = $1 ORDER BY created_at DESC`, customerID)
}

func (r *reservationRepository) ListOptions(ctx context.Context, reservationID int32) ([]domain.ReservationOption, error) {
	query := `SELECT id, reservation_id, option_name, price_per_day_cents, quantity FROM reservation_options WHERE reservation_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []domain.ReservationOption
	for rows.Next() {
		var opt domain.ReservationOption
		if err := rows.Scan(&opt.ID, &opt.ReservationID, &opt.OptionName, &opt.PricePerDayCents, &opt.Quantity); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

// HasOverlap runs the half-open interval intersection test against the
// car's bookings in the blocking statuses. Known gap: two concurrent creates
// can both see no overlap before either commits; see DESIGN.md.
func (r *reservationRepository) HasOverlap(ctx context.Context, carID int32, start, end time.Time, statuses []domain.ReservationStatus) (bool, error) {
	query := `SELECT EXISTS(
	            SELECT 1 FROM reservations
	            WHERE car_id = $1
	              AND status = ANY($2)
	              AND start_date < $3 AND $4 < end_date)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, carID, pq.Array(statusStrings(statuses)), end, start).Scan(&exists)
	return exists, err
}

func (r *reservationRepository) HasActiveByCar(ctx context.Context, carID int32, statuses []domain.ReservationStatus) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reservations WHERE car_id = $1 AND status = ANY($2))`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, carID, pq.Array(statusStrings(statuses))).Scan(&exists)
	return exists, err
}

func (r *reservationRepository) HasActiveByCustomer(ctx context.Context, customerID int32, statuses []domain.ReservationStatus) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reservations WHERE customer_id = $1 AND status = ANY($2))`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, customerID, pq.Array(statusStrings(statuses))).Scan(&exists)
	return exists, err
}

func (r *reservationRepository) ListActivePastEndDate(ctx context.Context, statuses []domain.ReservationStatus, before time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = ANY($1) AND end_date < $2 ORDER BY end_date`
	return r.list(ctx, query, pq.Array(statusStrings(statuses)), before)
}

func (r *reservationRepository) ListStartingOn(ctx context.Context, statuses []domain.ReservationStatus, on time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE status = ANY($1) AND start_date::date = $2::date ORDER BY start_date`
	return r.list(ctx, query, pq.Array(statusStrings(statuses)), on)
}

func (r *reservationRepository) CountByStatus(ctx context.Context, status domain.ReservationStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM reservations WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *reservationRepository) CountPerMonth(ctx context.Context) ([]domain.MonthCount, error) {
	query := `SELECT EXTRACT(YEAR FROM start_date)::int, EXTRACT(MONTH FROM start_date)::int, count(*)
	          FROM reservations
	          GROUP BY 1, 2
	          ORDER BY 1, 2`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.MonthCount
	for rows.Next() {
		var mc domain.MonthCount
		if err := rows.Scan(&mc.Year, &mc.Month, &mc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, mc)
	}
	return counts, rows.Err()
}

func (r *reservationRepository) TopCars(ctx context.Context, limit int32) ([]domain.CarCount, error) {
	query := `SELECT r.car_id, concat(c.make, ' ', c.model), count(*)
	          FROM reservations r
	          JOIN cars c ON c.id = r.car_id
	          GROUP BY r.car_id, c.make, c.model
	          ORDER BY count(*) DESC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.CarCount
	for rows.Next() {
		var cc domain.CarCount
		if err := rows.Scan(&cc.CarID, &cc.Car, &cc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, cc)
	}
	return counts, rows.Err()
}
