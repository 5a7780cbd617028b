package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// SpaceHandler serves the read-only parking space endpoints. Occupancy is
// derived by the store from open sessions; this layer never computes it.
type SpaceHandler struct {
	Spaces SpaceStore
}

func NewSpaceHandler(spaces SpaceStore) *SpaceHandler {
	return &SpaceHandler{Spaces: spaces}
}

// List returns every space with its derived status, ordered by space number.
func (h *SpaceHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	spaces, err := h.Spaces.List(ctx)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, spaces)
}

// GetByID returns a single space or 404.
func (h *SpaceHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return errJSON(c, http.StatusBadRequest, "validation", "invalid space id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	space, err := h.Spaces.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errJSON(c, http.StatusNotFound, "space_not_found", "parking space not found")
		}
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, space)
}
