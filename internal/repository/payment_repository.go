package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/parkeasy/parkeasy-api/internal/model"
)

// PaymentRepo provides data access to the 'payments' table. Payments are
// written once and never updated.
type PaymentRepo struct{ DB *sql.DB }

func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{DB: db} }

// PaymentDetail is a payment joined with its session and space for the
// history view.
type PaymentDetail struct {
	model.Payment
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	SpaceNumber string     `json:"space_number"`
}

// Create records a completed payment for one of the user's sessions.
// ErrSessionNotFound is returned when the session does not exist or
// belongs to a different user.
func (r *PaymentRepo) Create(ctx context.Context, userID, sessionID uint64, amount float64, method string, now time.Time) (model.Payment, error) {
	var sid uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM parking_sessions WHERE id=? AND user_id=?",
		sessionID, userID).Scan(&sid)
	if err == sql.ErrNoRows {
		return model.Payment{}, ErrSessionNotFound
	}
	if err != nil {
		return model.Payment{}, err
	}

	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO payments (user_id, session_id, amount, payment_method, payment_date, status) VALUES (?,?,?,?,?,?)",
		userID, sessionID, amount, method, now.UTC(), "completed")
	if err != nil {
		return model.Payment{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Payment{}, err
	}

	var p model.Payment
	err = r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,session_id,amount,payment_method,payment_date,status FROM payments WHERE id=?",
		id).Scan(&p.ID, &p.UserID, &p.SessionID, &p.Amount, &p.PaymentMethod, &p.PaymentDate, &p.Status)
	return p, err
}

// HistoryByUser returns up to limit payments with session and space
// details, newest first.
func (r *PaymentRepo) HistoryByUser(ctx context.Context, userID uint64, limit int) ([]PaymentDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT pay.id, pay.user_id, pay.session_id, pay.amount, pay.payment_method,
		        pay.payment_date, pay.status,
		        s.start_time, s.end_time, p.space_number
		 FROM payments pay
		 JOIN parking_sessions s ON s.id = pay.session_id
		 JOIN parking_spaces p ON p.id = s.parking_space_id
		 WHERE pay.user_id = ?
		 ORDER BY pay.payment_date DESC
		 LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentDetail, 0)
	for rows.Next() {
		var (
			d       PaymentDetail
			endTime sql.NullTime
		)
		err := rows.Scan(&d.ID, &d.UserID, &d.SessionID, &d.Amount, &d.PaymentMethod,
			&d.PaymentDate, &d.Status, &d.StartTime, &endTime, &d.SpaceNumber)
		if err != nil {
			return nil, err
		}
		if endTime.Valid {
			t := endTime.Time
			d.EndTime = &t
		}
		payments = append(payments, d)
	}
	return payments, rows.Err()
}
