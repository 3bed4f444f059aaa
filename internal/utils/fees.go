package utils

import (
	"math"
	"time"
)

// LateFeeCents charges ratePerDayCents for every whole day the car came back
// after the agreed end date. Comparison is on calendar dates; returning late
// in the evening of the end date costs nothing.
func LateFeeCents(returnedAt, endDate time.Time, ratePerDayCents int64) int64 {
	daysLate := WholeDaysBetween(endDate, returnedAt)
	if daysLate <= 0 {
		return 0
	}
	return int64(daysLate) * ratePerDayCents
}

// FuelFeeCents charges ratePerUnitCents for each fuel unit missing at return
// relative to pickup. Nil levels (not recorded) and returns with equal or
// more fuel cost nothing.
func FuelFeeCents(pickupFuel, returnFuel *float64, ratePerUnitCents int64) int64 {
	if pickupFuel == nil || returnFuel == nil {
		return 0
	}
	diff := *pickupFuel - *returnFuel
	if diff <= 0 {
		return 0
	}
	return int64(math.Round(diff * float64(ratePerUnitCents)))
}
