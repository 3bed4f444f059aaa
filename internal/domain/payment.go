package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

type Payment struct {
	ID            int32         `json:"id"`
	ReservationID int32         `json:"reservation_id"`
	AmountCents   int64         `json:"amount_cents"`
	PaidAt        time.Time     `json:"paid_at"`
	Method        string        `json:"method"`
	Reference     string        `json:"reference"`
	Status        PaymentStatus `json:"status"`
}
