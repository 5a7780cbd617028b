package handler

import (
	"context"
	"time"

	"github.com/parkeasy/parkeasy-api/internal/model"
	"github.com/parkeasy/parkeasy-api/internal/queue"
	"github.com/parkeasy/parkeasy-api/internal/repository"
)

// Store interfaces consumed by the handlers. The concrete repositories in
// internal/repository satisfy them; tests substitute in-memory mocks.

// UserStore persists and loads user accounts. Password hashing policy is
// the store's own concern.
type UserStore interface {
	Create(ctx context.Context, name, email, password, phone string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	UpdateProfile(ctx context.Context, id uint64, name, phone, email *string) (model.User, error)
}

// VehicleStore persists and loads a user's vehicles.
type VehicleStore interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.Vehicle, error)
	Create(ctx context.Context, userID uint64, plate, vmodel, color, brand string) (model.Vehicle, error)
	Delete(ctx context.Context, userID, vehicleID uint64) error
}

// SpaceStore reads parking spaces with derived occupancy.
type SpaceStore interface {
	List(ctx context.Context) ([]model.ParkingSpace, error)
	GetByID(ctx context.Context, id uint64) (model.ParkingSpace, error)
}

// SessionStore runs the parking session lifecycle. Start and End are
// atomic with respect to concurrent calls: the conflict checks and the
// following write happen inside one store transaction.
type SessionStore interface {
	Start(ctx context.Context, userID, spaceID, vehicleID uint64, now time.Time) (*model.ParkingSession, error)
	End(ctx context.Context, sessionID, userID uint64, hourlyRate float64, now time.Time) (*model.ParkingSession, error)
	ActiveByUser(ctx context.Context, userID uint64) (*repository.SessionDetail, error)
	HistoryByUser(ctx context.Context, userID uint64, limit int) ([]repository.SessionDetail, error)
}

// PaymentStore records payments and lists payment history.
type PaymentStore interface {
	Create(ctx context.Context, userID, sessionID uint64, amount float64, method string, now time.Time) (model.Payment, error)
	HistoryByUser(ctx context.Context, userID uint64, limit int) ([]repository.PaymentDetail, error)
}

// RateStore resolves the active hourly rate. sql.ErrNoRows means no rate
// is configured and the caller applies the billing default.
type RateStore interface {
	Active(ctx context.Context) (model.Rate, error)
}

// EventPublisher emits domain events after state transitions. A nil
// publisher disables eventing; publish failures never fail the request.
type EventPublisher interface {
	SessionCompleted(ctx context.Context, ev queue.SessionCompletedEvent) error
}
