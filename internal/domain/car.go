package domain

import "time"

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "AVAILABLE"
	CarStatusReserved    CarStatus = "RESERVED"
	CarStatusRented      CarStatus = "RENTED"
	CarStatusMaintenance CarStatus = "MAINTENANCE"
)

// ValidCarStatus reports whether s is one of the known car statuses.
func ValidCarStatus(s CarStatus) bool {
	switch s {
	case CarStatusAvailable, CarStatusReserved, CarStatusRented, CarStatusMaintenance:
		return true
	}
	return false
}

// CarSearchFilter narrows the fleet listing. Zero or nil fields match
// everything; string matches are case-insensitive substrings.
type CarSearchFilter struct {
	Make               string    `json:"make"`
	Model              string    `json:"model"`
	YearMin            *int32    `json:"year_min"`
	YearMax            *int32    `json:"year_max"`
	DailyPriceMinCents *int64    `json:"daily_price_min_cents"`
	DailyPriceMaxCents *int64    `json:"daily_price_max_cents"`
	MaxMileage         *int32    `json:"max_mileage"`
	Status             CarStatus `json:"status"`
}

type Car struct {
	ID              int32     `json:"id"`
	Make            string    `json:"make"`
	Model           string    `json:"model"`
	Year            int32     `json:"year"`
	PlateNumber     string    `json:"plate_number"`
	DailyPriceCents int64     `json:"daily_price_cents"`
	ImageURL        string    `json:"image_url,omitempty"`
	Mileage         int32     `json:"mileage"`
	Status          CarStatus `json:"status"`
	CreatedOn       time.Time `json:"created_on"`
	UpdatedOn       time.Time `json:"updated_on"`
}
