package model

import "time"

// ParkingSpace is a fixed physical slot identified by its space number.
// Spaces are seeded by migration and only read by this service. The Status
// field is derived at query time: "occupied" when any parking session
// references the space with no end time, otherwise the stored baseline
// status.
//
// Fields:
//  ID          – primary key identifier.
//  SpaceNumber – human-readable slot label (e.g. "A-01"), unique.
//  Location    – free-form location description.
//  Status      – derived occupancy status ("available", "occupied", ...).
//  CreatedAt   – creation timestamp.
type ParkingSpace struct {
	ID          uint64    `json:"id"`           // parking_spaces.id
	SpaceNumber string    `json:"space_number"` // parking_spaces.space_number
	Location    string    `json:"location"`     // parking_spaces.location
	Status      string    `json:"status"`       // derived; baseline in parking_spaces.status
	CreatedAt   time.Time `json:"created_at"`   // parking_spaces.created_at
}
