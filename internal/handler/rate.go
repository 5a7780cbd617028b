package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parkeasy-api/internal/billing"
)

// RateHandler exposes the current hourly rate.
type RateHandler struct {
	Rates RateStore
}

func NewRateHandler(rates RateStore) *RateHandler {
	return &RateHandler{Rates: rates}
}

// Current returns the active rate row, or the default rate when none is
// configured. Absence of an active rate is a valid state, never an error.
func (h *RateHandler) Current(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	rate, err := h.Rates.Active(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusOK, echo.Map{"hourly_rate": billing.DefaultHourlyRate})
		}
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, rate)
}
