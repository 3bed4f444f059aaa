package domain

import "time"

type Customer struct {
	ID            int32     `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	CinOrPassport string    `json:"cin_or_passport"`
	LicenseNumber string    `json:"license_number"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	UserID        *int32    `json:"user_id,omitempty"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}
