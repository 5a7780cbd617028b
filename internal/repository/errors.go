// Package repository implements data access over MySQL. Sentinel errors
// defined here let handlers distinguish failure scenarios with errors.Is
// and translate them into stable HTTP responses without inspecting SQL
// error text.
package repository

import "errors"

// ErrSpaceNotFound is returned when the requested parking space does not
// exist. Handlers translate this into HTTP 404.
var ErrSpaceNotFound = errors.New("parking space not found")

// ErrVehicleNotFound is returned when the vehicle does not exist or does
// not belong to the requesting user. Handlers translate this into 404.
var ErrVehicleNotFound = errors.New("vehicle not found")

// ErrUserAlreadyParking is returned when the user already has a session
// with no end time. Handlers translate this into HTTP 400.
var ErrUserAlreadyParking = errors.New("user already has an active session")

// ErrSpaceOccupied is returned when another open session references the
// requested space. Handlers translate this into HTTP 400.
var ErrSpaceOccupied = errors.New("parking space is occupied")

// ErrSessionNotFound is returned when a session does not exist or is owned
// by a different user. Handlers translate this into HTTP 404.
var ErrSessionNotFound = errors.New("parking session not found")

// ErrSessionEnded is returned when ending a session that already has an
// end time. The stored cost and end time are left untouched. Handlers
// translate this into HTTP 400.
var ErrSessionEnded = errors.New("parking session already ended")
