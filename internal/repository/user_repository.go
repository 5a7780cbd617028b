package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/parkeasy/parkeasy-api/internal/model"
	"github.com/parkeasy/parkeasy-api/internal/utils"
)

// UserRepo provides CRUD operations over the 'users' table. The bcrypt
// cost is fixed at construction; callers never see the hashing policy.
type UserRepo struct {
	DB         *sql.DB
	BcryptCost int
}

func NewUserRepo(db *sql.DB, bcryptCost int) *UserRepo {
	return &UserRepo{DB: db, BcryptCost: bcryptCost}
}

var ErrEmailExists = errors.New("email already registered")

// Create hashes the password and inserts a new user, returning the stored
// row. The row is assembled from the insert itself, not read back, so a
// follow-up read failure cannot strand a registration that already
// committed.
func (r *UserRepo) Create(ctx context.Context, name, email, password, phone string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, r.BcryptCost)
	if err != nil {
		return model.User{}, err
	}
	now := time.Now().UTC().Truncate(time.Second)
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password, phone, created_at, updated_at) VALUES (?,?,?,?,?,?)",
		name, email, hash, phone, now, now)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		ID: uint64(id), Name: name, Email: email, Password: hash,
		Phone: phone, CreatedAt: now, UpdatedAt: now,
	}, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password,phone,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password,phone,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// UpdateProfile applies a partial profile update. Nil fields keep their
// current value (COALESCE semantics). The updated record is returned.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uint64, name, phone, email *string) (model.User, error) {
	if email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*email))
		email = &normalized
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name=COALESCE(?,name), phone=COALESCE(?,phone), email=COALESCE(?,email) WHERE id=?",
		name, phone, email, id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	return r.GetByID(ctx, id)
}
