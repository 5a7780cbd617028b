package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parkeasy-api/internal/repository"
)

// PaymentHandler records payments and lists payment history. Payments are
// bookkeeping only; no payment provider is involved.
type PaymentHandler struct {
	Payments PaymentStore
}

func NewPaymentHandler(payments PaymentStore) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// Create records a completed payment for one of the user's sessions.
func (h *PaymentHandler) Create(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "auth_missing", "unauthorized")
	}

	var req struct {
		SessionID     uint64  `json:"session_id"`
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"payment_method"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "validation", "invalid request body")
	}
	if req.SessionID == 0 || req.Amount <= 0 || req.PaymentMethod == "" {
		return errJSON(c, http.StatusBadRequest, "validation", "session_id, amount and payment_method are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	payment, err := h.Payments.Create(ctx, userID, req.SessionID, req.Amount, req.PaymentMethod, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return errJSON(c, http.StatusNotFound, "session_not_found", "parking session not found")
		}
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, payment)
}

// History returns up to twenty payments with session details, newest first.
func (h *PaymentHandler) History(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "auth_missing", "unauthorized")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	payments, err := h.Payments.HistoryByUser(ctx, userID, historyLimit)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}
