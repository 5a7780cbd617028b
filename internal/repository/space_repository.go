package repository

import (
	"context"
	"database/sql"

	"github.com/parkeasy/parkeasy-api/internal/model"
)

// SpaceRepo reads the 'parking_spaces' table. Spaces are seeded by
// migration; this service never writes them. Occupancy is derived per
// query: a space counts as occupied while any parking session references
// it with no end time, regardless of its stored baseline status.
type SpaceRepo struct{ DB *sql.DB }

func NewSpaceRepo(db *sql.DB) *SpaceRepo { return &SpaceRepo{DB: db} }

// status CASE shared by List and GetByID so both report the same derived
// occupancy.
const spaceStatusExpr = `CASE
		WHEN EXISTS (
			SELECT 1 FROM parking_sessions s
			WHERE s.parking_space_id = p.id AND s.end_time IS NULL
		) THEN 'occupied'
		ELSE p.status
	END`

// List returns every space with its derived status, ordered by space number.
func (r *SpaceRepo) List(ctx context.Context) ([]model.ParkingSpace, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT p.id, p.space_number, p.location, `+spaceStatusExpr+`, p.created_at
		 FROM parking_spaces p
		 ORDER BY p.space_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spaces := make([]model.ParkingSpace, 0)
	for rows.Next() {
		var s model.ParkingSpace
		if err := rows.Scan(&s.ID, &s.SpaceNumber, &s.Location, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		spaces = append(spaces, s)
	}
	return spaces, rows.Err()
}

// GetByID returns one space with its derived status, or sql.ErrNoRows.
func (r *SpaceRepo) GetByID(ctx context.Context, id uint64) (model.ParkingSpace, error) {
	var s model.ParkingSpace
	err := r.DB.QueryRowContext(ctx,
		`SELECT p.id, p.space_number, p.location, `+spaceStatusExpr+`, p.created_at
		 FROM parking_spaces p
		 WHERE p.id = ?`, id).
		Scan(&s.ID, &s.SpaceNumber, &s.Location, &s.Status, &s.CreatedAt)
	return s, err
}
