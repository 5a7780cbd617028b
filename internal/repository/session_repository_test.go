package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkeasy/parkeasy-api/internal/database"
)

func TestMapSessionInsertErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "duplicate key on the per-space index",
			err:  errors.New("Error 1062 (23000): Duplicate entry '4' for key 'parking_sessions.uq_active_session_space'"),
			want: ErrSpaceOccupied,
		},
		{
			name: "duplicate key on the per-user index",
			err:  errors.New("Error 1062 (23000): Duplicate entry '7' for key 'parking_sessions.uq_active_session_user'"),
			want: ErrUserAlreadyParking,
		},
		{
			name: "duplicate key on an unrelated index passes through",
			err:  errors.New("Error 1062 (23000): Duplicate entry 'A-01' for key 'parking_spaces.uq_spaces_number'"),
		},
		{
			name: "non-duplicate error passes through",
			err:  errors.New("Error 1205 (HY000): Lock wait timeout exceeded"),
		},
		{
			name: "plain driver error passes through",
			err:  errors.New("driver: bad connection"),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mapSessionInsertErr(tc.err)
			if tc.want != nil {
				assert.ErrorIs(t, got, tc.want)
			} else {
				assert.Equal(t, tc.err, got)
			}
		})
	}
}

// The tests below run against a real MySQL instance and are skipped unless
// TEST_DB_DSN is set (e.g. "root:root@tcp(localhost:3306)/parkeasy_test?
// charset=utf8mb4&parseTime=true&loc=UTC&multiStatements=true").

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, database.Migrate(db, "../../migrations"))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedUser(t *testing.T, db *sql.DB, email string) uint64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO users (name, email, password, phone) VALUES (?,?,?,?)",
		"Test User", email, "x", "")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return uint64(id)
}

func seedVehicle(t *testing.T, db *sql.DB, userID uint64, plate string) uint64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO vehicles (user_id, plate) VALUES (?,?)", userID, plate)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return uint64(id)
}

func seedSpace(t *testing.T, db *sql.DB, number string) uint64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO parking_spaces (space_number, location) VALUES (?, 'Test')", number)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return uint64(id)
}

func countSessions(t *testing.T, db *sql.DB, where string, args ...interface{}) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM parking_sessions WHERE "+where, args...).Scan(&n))
	return n
}

func TestStartConflictWritesNothing(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	suffix := time.Now().UnixNano() % 1_000_000_000
	alice := seedUser(t, db, fmt.Sprintf("alice-%d@test.local", suffix))
	bob := seedUser(t, db, fmt.Sprintf("bob-%d@test.local", suffix))
	aliceCar := seedVehicle(t, db, alice, fmt.Sprintf("AA%d", suffix%100000))
	bobCar := seedVehicle(t, db, bob, fmt.Sprintf("BB%d", suffix%100000))
	spaceA := seedSpace(t, db, fmt.Sprintf("T-%da", suffix%1_000_000))
	spaceB := seedSpace(t, db, fmt.Sprintf("T-%db", suffix%1_000_000))

	now := time.Now().UTC().Truncate(time.Second)

	_, err := repo.Start(ctx, alice, spaceA, aliceCar, now)
	require.NoError(t, err)

	// Occupied space: rejected with no session row for the loser.
	_, err = repo.Start(ctx, bob, spaceA, bobCar, now)
	assert.ErrorIs(t, err, ErrSpaceOccupied)
	assert.Equal(t, 1, countSessions(t, db, "parking_space_id=?", spaceA))
	assert.Equal(t, 0, countSessions(t, db, "user_id=?", bob))

	// Second concurrent stay for the same user: rejected, still one row.
	_, err = repo.Start(ctx, alice, spaceB, aliceCar, now)
	assert.ErrorIs(t, err, ErrUserAlreadyParking)
	assert.Equal(t, 1, countSessions(t, db, "user_id=?", alice))
	assert.Equal(t, 0, countSessions(t, db, "parking_space_id=?", spaceB))

	// Foreign vehicle: rejected before any write.
	_, err = repo.Start(ctx, bob, spaceB, aliceCar, now)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
	assert.Equal(t, 0, countSessions(t, db, "parking_space_id=?", spaceB))
}

func TestEndTwiceLeavesFirstResultUnchanged(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	suffix := time.Now().UnixNano() % 1_000_000_000
	user := seedUser(t, db, fmt.Sprintf("carol-%d@test.local", suffix))
	car := seedVehicle(t, db, user, fmt.Sprintf("CC%d", suffix%100000))
	space := seedSpace(t, db, fmt.Sprintf("T-%dc", suffix%1_000_000))

	entry := time.Now().UTC().Truncate(time.Second).Add(-30 * time.Minute)
	started, err := repo.Start(ctx, user, space, car, entry)
	require.NoError(t, err)

	exit := entry.Add(30 * time.Minute)
	ended, err := repo.End(ctx, started.ID, user, 2.0, exit)
	require.NoError(t, err)
	require.NotNil(t, ended.TotalCost)
	require.NotNil(t, ended.DurationMinutes)
	assert.Equal(t, 1.00, *ended.TotalCost)
	assert.Equal(t, 30, *ended.DurationMinutes)

	// A second end at a later time, even with a different rate, must not
	// touch the stored outcome.
	_, err = repo.End(ctx, started.ID, user, 9.0, exit.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrSessionEnded)

	var (
		cost    float64
		minutes int
		endTime time.Time
		status  string
	)
	require.NoError(t, db.QueryRow(
		"SELECT total_cost, duration_minutes, end_time, status FROM parking_sessions WHERE id=?",
		started.ID).Scan(&cost, &minutes, &endTime, &status))
	assert.Equal(t, 1.00, cost)
	assert.Equal(t, 30, minutes)
	assert.True(t, endTime.Equal(exit))
	assert.Equal(t, "completed", status)

	// The space frees up again: a new stay may start.
	_, err = repo.Start(ctx, user, space, car, exit.Add(3*time.Hour))
	require.NoError(t, err)
}

func TestEndUnknownSession(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepo(db)

	_, err := repo.End(context.Background(), 1<<40, 1, 2.5, time.Now().UTC())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
