package repos

import (
	"context"
	"testing"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReservationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success With Options", func(t *testing.T) {
		rv := &domain.Reservation{
			CarID:           1,
			CustomerID:      2,
			StartDate:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
			TotalDays:       3,
			BasePriceCents:  15000,
			TotalPriceCents: 15000,
			Status:          domain.ReservationStatusPending,
			CreatedAt:       time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		}
		options := []domain.ReservationOption{
			{OptionName: "GPS", PricePerDayCents: 1000, Quantity: 1},
		}

		mock.ExpectQuery("INSERT INTO reservations").
			WithArgs(rv.CarID, rv.CustomerID, rv.StartDate, rv.EndDate, rv.TotalDays,
				rv.BasePriceCents, rv.OptionsPriceCents, rv.TotalPriceCents, rv.Status, rv.CreatedAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectQuery("INSERT INTO reservation_options").
			WithArgs(int32(5), "GPS", int64(1000), int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

		err := repo.Create(ctx, rv, options)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), rv.ID)
		assert.Equal(t, int32(5), options[0].ReservationID)
		assert.Equal(t, int32(9), options[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReservationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	cols := []string{"id", "car_id", "customer_id", "start_date", "end_date", "total_days",
		"base_price_cents", "options_price_cents", "total_price_cents", "status", "created_at",
		"picked_up_at", "returned_at", "pickup_mileage", "pickup_fuel_level", "return_mileage", "return_fuel_level"}

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(cols).
			AddRow(5, 1, 2, now, now.AddDate(0, 0, 3), 3, 15000, 0, 15000, "PENDING", now,
				nil, nil, nil, nil, nil, nil)
		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id").
			WithArgs(int32(5)).
			WillReturnRows(rows)

		rv, err := repo.GetByID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), rv.ID)
		assert.Equal(t, domain.ReservationStatusPending, rv.Status)
		assert.Nil(t, rv.PickedUpAt)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(cols))

		rv, err := repo.GetByID(ctx, 99)
		assert.Error(t, err)
		assert.Nil(t, rv)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestReservationRepository_HasOverlap(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)

	t.Run("Overlap Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(1), sqlmock.AnyArg(), end, start).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		got, err := repo.HasOverlap(ctx, 1, start, end, domain.ActiveReservationStatuses)
		assert.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("No Overlap", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(1), sqlmock.AnyArg(), end, start).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		got, err := repo.HasOverlap(ctx, 1, start, end, domain.ActiveReservationStatuses)
		assert.NoError(t, err)
		assert.False(t, got)
	})
}

func TestReservationRepository_CountPerMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"year", "month", "count"}).
		AddRow(2025, 5, 8).
		AddRow(2025, 6, 12)
	mock.ExpectQuery("SELECT EXTRACT").WillReturnRows(rows)

	counts, err := repo.CountPerMonth(ctx)
	assert.NoError(t, err)
	assert.Len(t, counts, 2)
	assert.Equal(t, int32(12), counts[1].Count)
}
