package model

// Rate maps an active flag to an hourly price. At most one row is expected
// to be active; when none is, billing falls back to the default rate.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – descriptive label (e.g. "standard").
//  HourlyRate – currency amount charged per hour.
//  IsActive   – whether this rate is currently in effect.
type Rate struct {
	ID         uint64  `json:"id"`          // rates.id
	Name       string  `json:"name"`        // rates.name
	HourlyRate float64 `json:"hourly_rate"` // rates.hourly_rate
	IsActive   bool    `json:"is_active"`   // rates.is_active
}
