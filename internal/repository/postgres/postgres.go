package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every repository works
// inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db           *sql.DB
	cars         repository.CarRepository
	customers    repository.CustomerRepository
	users        repository.UserRepository
	reservations repository.ReservationRepository
	payments     repository.PaymentRepository
	returns      repository.ReturnRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:           db,
		cars:         NewCarRepository(db),
		customers:    NewCustomerRepository(db),
		users:        NewUserRepository(db),
		reservations: NewReservationRepository(db),
		payments:     NewPaymentRepository(db),
		returns:      NewReturnRepository(db),
	}
}

func (s *Store) Cars() repository.CarRepository                 { return s.cars }
func (s *Store) Customers() repository.CustomerRepository       { return s.customers }
func (s *Store) Users() repository.UserRepository               { return s.users }
func (s *Store) Reservations() repository.ReservationRepository { return s.reservations }
func (s *Store) Payments() repository.PaymentRepository         { return s.payments }
func (s *Store) Returns() repository.ReturnRepository           { return s.returns }

// WithinTx runs fn with every repository bound to one database transaction.
// The reservation + options + car + return writes of a lifecycle transition
// commit or roll back together; no partial writes become visible.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	txStore := &Store{
		db:           s.db,
		cars:         NewCarRepository(tx),
		customers:    NewCustomerRepository(tx),
		users:        NewUserRepository(tx),
		reservations: NewReservationRepository(tx),
		payments:     NewPaymentRepository(tx),
		returns:      NewReturnRepository(tx),
	}

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rollback err: %w", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
