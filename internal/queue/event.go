// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// SessionCompletedEvent is published when a parking session is ended. It
// carries the billing outcome so downstream consumers can audit, notify
// or feed analytics without querying the primary database.
type SessionCompletedEvent struct {
	SessionID       uint64  `json:"session_id"`
	UserID          uint64  `json:"user_id"`
	SpaceID         uint64  `json:"space_id"`
	VehicleID       uint64  `json:"vehicle_id"`
	HourlyRate      float64 `json:"hourly_rate"`
	StartedAt       string  `json:"started_at"`
	CompletedAt     string  `json:"completed_at"`
	TotalCost       float64 `json:"total_cost"`
	DurationMinutes int     `json:"duration_minutes"`
}

// SessionQueueName is the durable queue session.completed events travel on.
const SessionQueueName = "session.completed"
