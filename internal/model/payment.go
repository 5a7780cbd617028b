package model

import "time"

// Payment records a settled charge for one parking session. Payments are
// immutable after creation; the service records them but does not talk to
// any payment provider.
//
// Fields:
//  ID            – primary key identifier.
//  UserID        – paying user.
//  SessionID     – parking session being paid for.
//  Amount        – paid amount.
//  PaymentMethod – free-form method label (e.g. "card", "cash").
//  PaymentDate   – completion timestamp.
//  Status        – always "completed" in the current design.
type Payment struct {
	ID            uint64    `json:"id"`             // payments.id
	UserID        uint64    `json:"user_id"`        // payments.user_id
	SessionID     uint64    `json:"session_id"`     // payments.session_id
	Amount        float64   `json:"amount"`         // payments.amount
	PaymentMethod string    `json:"payment_method"` // payments.payment_method
	PaymentDate   time.Time `json:"payment_date"`   // payments.payment_date
	Status        string    `json:"status"`         // payments.status
}
