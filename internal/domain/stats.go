package domain

// MonthCount is a per-month reservation tally for the dashboard.
type MonthCount struct {
	Year  int32 `json:"year"`
	Month int32 `json:"month"`
	Count int32 `json:"count"`
}

// CarCount ranks a car by how often it was booked.
type CarCount struct {
	CarID int32  `json:"car_id"`
	Car   string `json:"car"`
	Count int32  `json:"count"`
}

// DashboardStats is the aggregate view backing the admin dashboard.
type DashboardStats struct {
	RevenueCents    int64        `json:"revenue_cents"`
	ActiveRentals   int32        `json:"active_rentals"`
	AvailableCars   int32        `json:"available_cars"`
	RentalsPerMonth []MonthCount `json:"rentals_per_month"`
	TopCars         []CarCount   `json:"top_cars"`
}
