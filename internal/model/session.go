package model

import "time"

// Session status values. A session is created active and transitions to
// completed exactly once, when it is ended. There is no cancellation state:
// an abandoned active session stays active until an explicit end call.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// ParkingSession is the central entity: one occupancy of one space by one
// vehicle. EndTime, TotalCost and DurationMinutes are null while the
// session is open and are all written together by the end transition.
// TotalCost is immutable once set.
//
// Fields:
//  ID              – primary key identifier.
//  UserID          – user who started the session.
//  ParkingSpaceID  – occupied space.
//  VehicleID       – parked vehicle.
//  StartTime       – entry timestamp (UTC).
//  EndTime         – exit timestamp, nil while the session is open.
//  TotalCost       – computed fee, nil until the session ends.
//  DurationMinutes – elapsed minutes rounded up, nil until the session ends.
//  Status          – "active" or "completed".
//  CreatedAt       – creation timestamp.
type ParkingSession struct {
	ID              uint64     `json:"id"`               // parking_sessions.id
	UserID          uint64     `json:"user_id"`          // parking_sessions.user_id
	ParkingSpaceID  uint64     `json:"parking_space_id"` // parking_sessions.parking_space_id
	VehicleID       uint64     `json:"vehicle_id"`       // parking_sessions.vehicle_id
	StartTime       time.Time  `json:"start_time"`       // parking_sessions.start_time
	EndTime         *time.Time `json:"end_time"`         // parking_sessions.end_time (nullable)
	TotalCost       *float64   `json:"total_cost"`       // parking_sessions.total_cost (nullable)
	DurationMinutes *int       `json:"duration_minutes"` // parking_sessions.duration_minutes (nullable)
	Status          string     `json:"status"`           // parking_sessions.status
	CreatedAt       time.Time  `json:"created_at"`       // parking_sessions.created_at
}
