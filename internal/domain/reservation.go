package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// ActiveReservationStatuses is the status set used for overlap and
// car-availability checks. PENDING bookings block the car just like
// CONFIRMED and ACTIVE ones.
var ActiveReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusActive,
}

// Terminal reports whether s permits no further lifecycle transitions.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusCompleted || s == ReservationStatusCancelled
}

type Reservation struct {
	ID                int32             `json:"id"`
	CarID             int32             `json:"car_id"`
	CustomerID        int32             `json:"customer_id"`
	StartDate         time.Time         `json:"start_date"`
	EndDate           time.Time         `json:"end_date"`
	TotalDays         int32             `json:"total_days"`
	BasePriceCents    int64             `json:"base_price_cents"`
	OptionsPriceCents int64             `json:"options_price_cents"`
	TotalPriceCents   int64             `json:"total_price_cents"`
	Status            ReservationStatus `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	PickedUpAt        *time.Time        `json:"picked_up_at,omitempty"`
	ReturnedAt        *time.Time        `json:"returned_at,omitempty"`
	PickupMileage     *int32            `json:"pickup_mileage,omitempty"`
	PickupFuelLevel   *float64          `json:"pickup_fuel_level,omitempty"`
	ReturnMileage     *int32            `json:"return_mileage,omitempty"`
	ReturnFuelLevel   *float64          `json:"return_fuel_level,omitempty"`
}

// ReservationOption is an immutable add-on line item captured at creation
// time. Prices are snapshots; later option catalog changes never reprice an
// existing booking.
type ReservationOption struct {
	ID               int32  `json:"id"`
	ReservationID    int32  `json:"reservation_id"`
	OptionName       string `json:"option_name"`
	PricePerDayCents int64  `json:"price_per_day_cents"`
	Quantity         int32  `json:"quantity"`
}

// ReservationDetail is the read model handed to the API: the reservation with
// its car, customer, option lines, payments and return record resolved by id.
type ReservationDetail struct {
	Reservation
	Car      *Car                `json:"car,omitempty"`
	Customer *Customer           `json:"customer,omitempty"`
	Options  []ReservationOption `json:"options"`
	Payments []Payment           `json:"payments"`
	Return   *Return             `json:"return,omitempty"`
}
