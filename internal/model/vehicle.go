package model

import "time"

// Vehicle is a car registered by a user. Vehicles belong to exactly one
// user and may only be created or deleted by their owner.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owning user.
//  Plate     – license plate identifier.
//  Model     – vehicle model description.
//  Color     – vehicle color.
//  Brand     – vehicle brand.
//  CreatedAt – creation timestamp.
type Vehicle struct {
	ID        uint64    `json:"id"`         // vehicles.id
	UserID    uint64    `json:"user_id"`    // vehicles.user_id
	Plate     string    `json:"plate"`      // vehicles.plate
	Model     string    `json:"model"`      // vehicles.model
	Color     string    `json:"color"`      // vehicles.color
	Brand     string    `json:"brand"`      // vehicles.brand
	CreatedAt time.Time `json:"created_at"` // vehicles.created_at
}
