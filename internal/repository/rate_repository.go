package repository

import (
	"context"
	"database/sql"

	"github.com/parkeasy/parkeasy-api/internal/model"
)

// RateRepo reads the 'rates' table. At most one row is expected to be
// flagged active; sql.ErrNoRows from Active is a valid state that callers
// resolve with the default rate, not a failure.
type RateRepo struct{ DB *sql.DB }

func NewRateRepo(db *sql.DB) *RateRepo { return &RateRepo{DB: db} }

// Active returns the currently active rate or sql.ErrNoRows.
func (r *RateRepo) Active(ctx context.Context) (model.Rate, error) {
	var rate model.Rate
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,hourly_rate,is_active FROM rates WHERE is_active=1 LIMIT 1").
		Scan(&rate.ID, &rate.Name, &rate.HourlyRate, &rate.IsActive)
	return rate, err
}
