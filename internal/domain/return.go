package domain

import "time"

// Return holds the extra fees assessed when a rented car comes back. Exactly
// one per reservation; finalizing an already-returned reservation overwrites
// the existing record rather than adding a second one.
type Return struct {
	ID                  int32     `json:"id"`
	ReservationID       int32     `json:"reservation_id"`
	ReturnDate          time.Time `json:"return_date"`
	LateFeesCents       int64     `json:"late_fees_cents"`
	DamageFeesCents     int64     `json:"damage_fees_cents"`
	FuelFeesCents       int64     `json:"fuel_fees_cents"`
	TotalExtraFeesCents int64     `json:"total_extra_fees_cents"`
	Notes               string    `json:"notes,omitempty"`
}
