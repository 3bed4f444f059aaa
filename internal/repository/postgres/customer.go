package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type customerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, first_name, last_name, cin_or_passport, license_number, phone, email, user_id, created_on, updated_on`

func scanCustomer(row interface{ Scan(...interface{}) error }) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.CinOrPassport, &c.LicenseNumber, &c.Phone, &c.Email, &c.UserID, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `INSERT INTO customers (first_name, last_name, cin_or_passport, license_number, phone, email, user_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now().UTC()
	customer.CreatedOn = now
	customer.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		customer.FirstName, customer.LastName, customer.CinOrPassport,
		customer.LicenseNumber, customer.Phone, customer.Email, customer.UserID, now, now,
	).Scan(&customer.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("customer not found")
	}
	return customer, err
}

func (r *customerRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE user_id = $1`
	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("customer not found")
	}
	return customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query := `UPDATE customers SET first_name=$1, last_name=$2, cin_or_passport=$3, license_number=$4, phone=$5, email=$6, user_id=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query,
		customer.FirstName, customer.LastName, customer.CinOrPassport,
		customer.LicenseNumber, customer.Phone, customer.Email, customer.UserID,
		time.Now().UTC(), customer.ID,
	)
	return err
}

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *customer)
	}
	return customers, rows.Err()
}
