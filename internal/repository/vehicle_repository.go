package repository

import (
	"context"
	"database/sql"

	"github.com/parkeasy/parkeasy-api/internal/model"
)

// VehicleRepo provides data access to the 'vehicles' table. Every method
// scopes its queries to the owning user so one user can never read or
// delete another user's vehicles.
type VehicleRepo struct{ DB *sql.DB }

func NewVehicleRepo(db *sql.DB) *VehicleRepo { return &VehicleRepo{DB: db} }

// ListByUser returns all vehicles owned by the user, newest first.
func (r *VehicleRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Vehicle, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,plate,model,color,brand,created_at FROM vehicles WHERE user_id=? ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]model.Vehicle, 0)
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(&v.ID, &v.UserID, &v.Plate, &v.Model, &v.Color, &v.Brand, &v.CreatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// Create inserts a vehicle for the user and returns the stored record.
func (r *VehicleRepo) Create(ctx context.Context, userID uint64, plate, vmodel, color, brand string) (model.Vehicle, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO vehicles (user_id, plate, model, color, brand) VALUES (?,?,?,?,?)",
		userID, plate, vmodel, color, brand)
	if err != nil {
		return model.Vehicle{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Vehicle{}, err
	}
	var v model.Vehicle
	err = r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,plate,model,color,brand,created_at FROM vehicles WHERE id=?",
		id).Scan(&v.ID, &v.UserID, &v.Plate, &v.Model, &v.Color, &v.Brand, &v.CreatedAt)
	return v, err
}

// Delete removes a vehicle owned by the user. ErrVehicleNotFound is
// returned when no row matched (absent or owned by someone else).
func (r *VehicleRepo) Delete(ctx context.Context, userID, vehicleID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM vehicles WHERE id=? AND user_id=?", vehicleID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrVehicleNotFound
	}
	return nil
}
