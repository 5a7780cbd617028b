package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parkeasy-api/internal/repository"
)

// VehicleHandler serves the vehicle CRUD endpoints. Every operation is
// scoped to the authenticated user.
type VehicleHandler struct {
	Vehicles VehicleStore
}

func NewVehicleHandler(vehicles VehicleStore) *VehicleHandler {
	return &VehicleHandler{Vehicles: vehicles}
}

// List returns the user's vehicles, newest first.
func (h *VehicleHandler) List(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "auth_missing", "unauthorized")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	vehicles, err := h.Vehicles.ListByUser(ctx, userID)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

// Create registers a vehicle for the user.
func (h *VehicleHandler) Create(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "auth_missing", "unauthorized")
	}

	var req struct {
		Plate string `json:"plate"`
		Model string `json:"model"`
		Color string `json:"color"`
		Brand string `json:"brand"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "validation", "invalid request body")
	}
	req.Plate = strings.ToUpper(strings.TrimSpace(req.Plate))
	if req.Plate == "" {
		return errJSON(c, http.StatusBadRequest, "validation", "plate is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	vehicle, err := h.Vehicles.Create(ctx, userID, req.Plate, req.Model, req.Color, req.Brand)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, vehicle)
}

// Delete removes one of the user's vehicles.
func (h *VehicleHandler) Delete(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "auth_missing", "unauthorized")
	}
	vehicleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || vehicleID == 0 {
		return errJSON(c, http.StatusBadRequest, "validation", "invalid vehicle id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Vehicles.Delete(ctx, userID, vehicleID); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return errJSON(c, http.StatusNotFound, "vehicle_not_found", "vehicle not found")
		}
		return serverErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "vehicle deleted"})
}
