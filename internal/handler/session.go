package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parkeasy-api/internal/billing"
	"github.com/parkeasy/parkeasy-api/internal/queue"
	"github.com/parkeasy/parkeasy-api/internal/repository"
)

// SessionHandler serves the parking session lifecycle: start, end, the
// active-session lookup and history. The conflict rules (one open session
// per user, one occupant per space) are enforced by the SessionStore
// inside a single transaction; this layer only maps the outcomes onto
// HTTP responses.
type SessionHandler struct {
	Sessions SessionStore
	Rates    RateStore
	Events   EventPublisher // optional; nil disables eventing
}

func NewSessionHandler(sessions SessionStore, rates RateStore, events EventPublisher) *SessionHandler {
	return &SessionHandler{Sessions: sessions, Rates: rates, Events: events}
}

type startSessionReq struct {
	SpaceID   uint64 `json:"space_id"`
	VehicleID uint64 `json:"vehicle_id"`
}

// Start opens a session for the authenticated user.
func (h *SessionHandler) Start(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "auth_missing", "unauthorized")
	}
	var req startSessionReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "validation", "invalid request body")
	}
	if req.SpaceID == 0 || req.VehicleID == 0 {
		return errJSON(c, http.StatusBadRequest, "validation", "space_id and vehicle_id are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	session, err := h.Sessions.Start(ctx, userID, req.SpaceID, req.VehicleID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSpaceNotFound):
			return errJSON(c, http.StatusNotFound, "space_not_found", "parking space not found")
		case errors.Is(err, repository.ErrVehicleNotFound):
			return errJSON(c, http.StatusNotFound, "vehicle_not_found", "vehicle not found")
		case errors.Is(err, repository.ErrUserAlreadyParking):
			return errJSON(c, http.StatusBadRequest, "user_already_parking", "you already have an active session")
		case errors.Is(err, repository.ErrSpaceOccupied):
			return errJSON(c, http.StatusBadRequest, "space_occupied", "this space is already occupied")
		}
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// End closes the session, computing the fee from the active hourly rate.
func (h *SessionHandler) End(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "auth_missing", "unauthorized")
	}
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || sessionID == 0 {
		return errJSON(c, http.StatusBadRequest, "validation", "invalid session id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rate, err := h.resolveHourlyRate(ctx)
	if err != nil {
		return serverErr(c, err)
	}

	session, err := h.Sessions.End(ctx, sessionID, userID, rate, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			return errJSON(c, http.StatusNotFound, "session_not_found", "parking session not found")
		case errors.Is(err, repository.ErrSessionEnded):
			return errJSON(c, http.StatusBadRequest, "session_already_ended", "this session has already ended")
		}
		return serverErr(c, err)
	}

	if h.Events != nil {
		ev := queue.SessionCompletedEvent{
			SessionID:       session.ID,
			UserID:          session.UserID,
			SpaceID:         session.ParkingSpaceID,
			VehicleID:       session.VehicleID,
			HourlyRate:      rate,
			StartedAt:       session.StartTime.Format(time.RFC3339),
			CompletedAt:     session.EndTime.Format(time.RFC3339),
			TotalCost:       *session.TotalCost,
			DurationMinutes: *session.DurationMinutes,
		}
		// Fire and forget: billing audit must not slow down or fail the
		// request. The publisher logs its own errors.
		go func() { _ = h.Events.SessionCompleted(context.Background(), ev) }()
	}
	return c.JSON(http.StatusOK, session)
}

// Active returns the user's open session with space and vehicle details,
// or a JSON null when the user is not parking.
func (h *SessionHandler) Active(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "auth_missing", "unauthorized")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	detail, err := h.Sessions.ActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusOK, nil)
		}
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// History returns up to twenty closed sessions, newest first.
func (h *SessionHandler) History(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "auth_missing", "unauthorized")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	history, err := h.Sessions.HistoryByUser(ctx, userID, historyLimit)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, history)
}

// resolveHourlyRate returns the active rate, falling back to the billing
// default when no rate row is flagged active. Absence is not an error.
func (h *SessionHandler) resolveHourlyRate(ctx context.Context) (float64, error) {
	rate, err := h.Rates.Active(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return billing.DefaultHourlyRate, nil
		}
		return 0, err
	}
	return rate.HourlyRate, nil
}
