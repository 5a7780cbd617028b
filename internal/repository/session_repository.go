package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/parkeasy/parkeasy-api/internal/billing"
	"github.com/parkeasy/parkeasy-api/internal/model"
)

// SessionRepo owns the parking session lifecycle. Start and End each run
// inside a single transaction so the conflict checks and the following
// write are atomic with respect to concurrent requests: the database is
// the only serialization boundary this service relies on.
//
// The schema adds a second line of defense. Functional unique indexes on
// (user_id while end_time IS NULL) and (parking_space_id while end_time
// IS NULL) turn any double booking that slips past the row locks into a
// duplicate-key error, which Start maps back to the matching conflict
// sentinel. A plain check-then-insert without either mechanism would race.
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// SessionDetail is a parking session joined with space and vehicle info
// for the active-session and history views.
type SessionDetail struct {
	model.ParkingSession
	SpaceNumber  string `json:"space_number"`
	Location     string `json:"location"`
	VehiclePlate string `json:"vehicle_plate"`
	VehicleModel string `json:"vehicle_model"`
}

// Start opens a new session for the user on the given space. Inside one
// transaction it verifies, in order: the space exists (row-locked so
// concurrent starts on the same space serialize), the vehicle belongs to
// the user, the user has no open session, and the space has no occupant.
// Any failed check aborts the transaction without writing. On success the
// created record is returned with its generated ID and entry timestamp.
func (r *SessionRepo) Start(ctx context.Context, userID, spaceID, vehicleID uint64, now time.Time) (*model.ParkingSession, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Space must exist. FOR UPDATE serializes concurrent starts per space.
	var sid uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM parking_spaces WHERE id=? FOR UPDATE", spaceID).Scan(&sid)
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, err
	}

	// Vehicle must exist and belong to the requesting user.
	var vid uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM vehicles WHERE id=? AND user_id=?", vehicleID, userID).Scan(&vid)
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}

	// At most one open session per user.
	var existing uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM parking_sessions WHERE user_id=? AND end_time IS NULL LIMIT 1 FOR UPDATE",
		userID).Scan(&existing)
	if err == nil {
		return nil, ErrUserAlreadyParking
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	// At most one occupant per space.
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM parking_sessions WHERE parking_space_id=? AND end_time IS NULL LIMIT 1 FOR UPDATE",
		spaceID).Scan(&existing)
	if err == nil {
		return nil, ErrSpaceOccupied
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO parking_sessions (user_id, parking_space_id, vehicle_id, start_time, status) VALUES (?,?,?,?,?)",
		userID, spaceID, vehicleID, now.UTC(), model.SessionActive)
	if err != nil {
		return nil, mapSessionInsertErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	session, err := scanSessionTx(ctx, tx, uint64(id))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return session, nil
}

// End closes an open session owned by the user. The session row is locked,
// checked to still be open, then end time, cost, duration and status are
// written in one UPDATE. The cost is computed from the stored entry time,
// the supplied hourly rate and now; it is set exactly once and never
// rewritten, so a second End call fails with ErrSessionEnded and leaves
// the first result intact.
func (r *SessionRepo) End(ctx context.Context, sessionID, userID uint64, hourlyRate float64, now time.Time) (*model.ParkingSession, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var (
		startTime time.Time
		endTime   sql.NullTime
	)
	err = tx.QueryRowContext(ctx,
		"SELECT start_time, end_time FROM parking_sessions WHERE id=? AND user_id=? FOR UPDATE",
		sessionID, userID).Scan(&startTime, &endTime)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if endTime.Valid {
		return nil, ErrSessionEnded
	}

	cost, minutes := billing.ComputeFee(startTime, now, hourlyRate)
	_, err = tx.ExecContext(ctx,
		"UPDATE parking_sessions SET end_time=?, total_cost=?, duration_minutes=?, status=? WHERE id=?",
		now.UTC(), cost, minutes, model.SessionCompleted, sessionID)
	if err != nil {
		return nil, err
	}

	session, err := scanSessionTx(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return session, nil
}

// ActiveByUser returns the user's open session joined with space and
// vehicle details, or sql.ErrNoRows when the user is not parking.
func (r *SessionRepo) ActiveByUser(ctx context.Context, userID uint64) (*SessionDetail, error) {
	row := r.DB.QueryRowContext(ctx, sessionDetailQuery+
		" WHERE s.user_id = ? AND s.end_time IS NULL LIMIT 1", userID)
	return scanSessionDetail(row)
}

// HistoryByUser returns up to limit closed sessions, newest first.
func (r *SessionRepo) HistoryByUser(ctx context.Context, userID uint64, limit int) ([]SessionDetail, error) {
	rows, err := r.DB.QueryContext(ctx, sessionDetailQuery+
		" WHERE s.user_id = ? AND s.end_time IS NOT NULL ORDER BY s.end_time DESC LIMIT ?",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]SessionDetail, 0)
	for rows.Next() {
		d, err := scanSessionDetail(rows)
		if err != nil {
			return nil, err
		}
		history = append(history, *d)
	}
	return history, rows.Err()
}

const sessionDetailQuery = `SELECT s.id, s.user_id, s.parking_space_id, s.vehicle_id,
		s.start_time, s.end_time, s.total_cost, s.duration_minutes, s.status, s.created_at,
		p.space_number, p.location, v.plate, v.model
	FROM parking_sessions s
	JOIN parking_spaces p ON p.id = s.parking_space_id
	JOIN vehicles v ON v.id = s.vehicle_id`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSessionDetail(row rowScanner) (*SessionDetail, error) {
	var (
		d        SessionDetail
		endTime  sql.NullTime
		cost     sql.NullFloat64
		duration sql.NullInt64
	)
	err := row.Scan(
		&d.ID, &d.UserID, &d.ParkingSpaceID, &d.VehicleID,
		&d.StartTime, &endTime, &cost, &duration, &d.Status, &d.CreatedAt,
		&d.SpaceNumber, &d.Location, &d.VehiclePlate, &d.VehicleModel,
	)
	if err != nil {
		return nil, err
	}
	applyNullable(&d.ParkingSession, endTime, cost, duration)
	return &d, nil
}

// scanSessionTx reads one session row inside the transaction, used to
// return the created/updated record with database-populated columns.
func scanSessionTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.ParkingSession, error) {
	var (
		s        model.ParkingSession
		endTime  sql.NullTime
		cost     sql.NullFloat64
		duration sql.NullInt64
	)
	err := tx.QueryRowContext(ctx,
		`SELECT id, user_id, parking_space_id, vehicle_id, start_time, end_time,
		        total_cost, duration_minutes, status, created_at
		 FROM parking_sessions WHERE id = ?`, id).
		Scan(&s.ID, &s.UserID, &s.ParkingSpaceID, &s.VehicleID, &s.StartTime,
			&endTime, &cost, &duration, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	applyNullable(&s, endTime, cost, duration)
	return &s, nil
}

func applyNullable(s *model.ParkingSession, endTime sql.NullTime, cost sql.NullFloat64, duration sql.NullInt64) {
	if endTime.Valid {
		t := endTime.Time
		s.EndTime = &t
	}
	if cost.Valid {
		c := cost.Float64
		s.TotalCost = &c
	}
	if duration.Valid {
		m := int(duration.Int64)
		s.DurationMinutes = &m
	}
}

// mapSessionInsertErr turns duplicate-key violations of the active-session
// indexes into the matching conflict sentinel.
func mapSessionInsertErr(err error) error {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "1062") {
		return err
	}
	if strings.Contains(msg, "uq_active_session_space") {
		return ErrSpaceOccupied
	}
	if strings.Contains(msg, "uq_active_session_user") {
		return ErrUserAlreadyParking
	}
	return err
}
