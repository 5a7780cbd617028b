package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parkeasy-api/internal/config"
	"github.com/parkeasy/parkeasy-api/internal/model"
	"github.com/parkeasy/parkeasy-api/internal/repository"
	"github.com/parkeasy/parkeasy-api/internal/utils"
)

// AuthHandler serves registration, login and the profile endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"` // accepted alias for name
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type authResp struct {
	Token string   `json:"token"`
	User  userPart `json:"user"`
}

func toUserPart(u model.User) userPart {
	return userPart{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, CreatedAt: u.CreatedAt}
}

// Register creates a user and returns a bearer token immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "validation", "invalid request body")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(req.FullName)
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || req.Email == "" || req.Password == "" {
		return errJSON(c, http.StatusBadRequest, "validation", "name, email and password are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.Create(ctx, name, req.Email, req.Password, req.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return errJSON(c, http.StatusBadRequest, "email_exists", "email is already registered")
		}
		return serverErr(c, err)
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, h.Cfg.TokenTTLHours)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, authResp{Token: token.Token, User: toUserPart(u)})
}

// Login verifies credentials and returns a fresh bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "validation", "invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return errJSON(c, http.StatusBadRequest, "validation", "email and password are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errJSON(c, http.StatusUnauthorized, "user_not_found", "user not found")
		}
		return serverErr(c, err)
	}
	if !utils.CheckPassword(u.Password, req.Password) {
		return errJSON(c, http.StatusUnauthorized, "invalid_credentials", "incorrect password")
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, h.Cfg.TokenTTLHours)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, authResp{Token: token.Token, User: toUserPart(u)})
}

// GetProfile returns the authenticated user's record.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "auth_missing", "unauthorized")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errJSON(c, http.StatusNotFound, "user_not_found", "user not found")
		}
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, toUserPart(u))
}

// UpdateProfile applies a partial update; omitted fields keep their value.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "auth_missing", "unauthorized")
	}

	var req struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
		Email *string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "validation", "invalid request body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.UpdateProfile(ctx, userID, req.Name, req.Phone, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return errJSON(c, http.StatusBadRequest, "email_exists", "email is already registered")
		}
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, toUserPart(u))
}
