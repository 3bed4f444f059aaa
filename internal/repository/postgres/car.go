package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type carRepository struct {
	db DBTX
}

func NewCarRepository(db DBTX) repository.CarRepository {
	return &carRepository{db: db}
}

const carColumns = `id, make, model, year, plate_number, daily_price_cents, image_url, mileage, status, created_on, updated_on`

func scanCar(row interface{ Scan(...interface{}) error }) (*domain.Car, error) {
	c := &domain.Car{}
	var imageURL sql.NullString
	err := row.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.PlateNumber, &c.DailyPriceCents, &imageURL, &c.Mileage, &c.Status, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, err
	}
	c.ImageURL = imageURL.String
	return c, nil
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO cars (make, model, year, plate_number, daily_price_cents, image_url, mileage, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now().UTC()
	car.CreatedOn = now
	car.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		car.Make, car.Model, car.Year, car.PlateNumber, car.DailyPriceCents,
		nullString(car.ImageURL), car.Mileage, car.Status, now, now,
	).Scan(&car.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	car, err := scanCar(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("car not found")
	}
	return car, err
}

func (r *carRepository) GetByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE plate_number = $1`
	car, err := scanCar(r.db.QueryRowContext(ctx, query, plate))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("car not found")
	}
	return car, err
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `UPDATE cars SET make=$1, model=$2, year=$3, plate_number=$4, daily_price_cents=$5, image_url=$6, mileage=$7, status=$8, updated_on=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query,
		car.Make, car.Model, car.Year, car.PlateNumber, car.DailyPriceCents,
		nullString(car.ImageURL), car.Mileage, car.Status, time.Now().UTC(), car.ID,
	)
	return err
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	return err
}

func (r *carRepository) List(ctx context.Context, status domain.CarStatus) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *car)
	}
	return cars, rows.Err()
}

// Search builds the WHERE clause from the populated filter fields only, so
// an empty filter degenerates to the full listing.
func (r *carRepository) Search(ctx context.Context, filter domain.CarSearchFilter) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars`
	var conds []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Make != "" {
		add(`make ILIKE '%%' || $%d || '%%'`, filter.Make)
	}
	if filter.Model != "" {
		add(`model ILIKE '%%' || $%d || '%%'`, filter.Model)
	}
	if filter.YearMin != nil {
		add(`year >= $%d`, *filter.YearMin)
	}
	if filter.YearMax != nil {
		add(`year <= $%d`, *filter.YearMax)
	}
	if filter.DailyPriceMinCents != nil {
		add(`daily_price_cents >= $%d`, *filter.DailyPriceMinCents)
	}
	if filter.DailyPriceMaxCents != nil {
		add(`daily_price_cents <= $%d`, *filter.DailyPriceMaxCents)
	}
	if filter.MaxMileage != nil {
		add(`mileage <= $%d`, *filter.MaxMileage)
	}
	if filter.Status != "" {
		add(`status = $%d`, filter.Status)
	}

	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *car)
	}
	return cars, rows.Err()
}

func (r *carRepository) PlateExists(ctx context.Context, plate string, excludeID int32) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM cars WHERE plate_number = $1 AND id <> $2)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, plate, excludeID).Scan(&exists)
	return exists, err
}

func (r *carRepository) CountByStatus(ctx context.Context, status domain.CarStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cars WHERE status = $1`, status).Scan(&count)
	return count, err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
