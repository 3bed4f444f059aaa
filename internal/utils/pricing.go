package utils

import "time"

// OptionLine is a priced add-on as supplied by the caller at quote or
// creation time.
type OptionLine struct {
	OptionName       string
	PricePerDayCents int64
	Quantity         int32
}

// Quote is the price breakdown for a reservation over a date range.
type Quote struct {
	TotalDays         int32
	BasePriceCents    int64
	OptionsPriceCents int64
	TotalPriceCents   int64
}

// QuoteReservation computes the price for renting a car from start to end at
// the given daily rate, plus option add-ons.
//
// The day count is the number of whole days between the two calendar dates,
// floored at 1: a same-day or inverted range still bills one day. Range
// validity (end after start, start not in the past) is the caller's concern,
// not a pricing rule.
func QuoteReservation(start, end time.Time, dailyPriceCents int64, options []OptionLine) Quote {
	totalDays := WholeDaysBetween(start, end)
	if totalDays < 1 {
		totalDays = 1
	}

	basePrice := int64(totalDays) * dailyPriceCents

	var optionsPrice int64
	for _, opt := range options {
		optionsPrice += opt.PricePerDayCents * int64(opt.Quantity) * int64(totalDays)
	}

	return Quote{
		TotalDays:         totalDays,
		BasePriceCents:    basePrice,
		OptionsPriceCents: optionsPrice,
		TotalPriceCents:   basePrice + optionsPrice,
	}
}
