// Package router wires the HTTP surface of the parking API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parkeasy-api/internal/handler"
	"github.com/parkeasy/parkeasy-api/internal/middleware"
)

// Handlers bundles every endpoint handler the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Spaces   *handler.SpaceHandler
	Sessions *handler.SessionHandler
	Vehicles *handler.VehicleHandler
	Payments *handler.PaymentHandler
	Rates    *handler.RateHandler
}

// Register mounts all routes. The credential endpoints are rate limited;
// every other business route sits behind bearer-token auth. The response
// cache wraps only the read-heavy listings whose staleness window is
// acceptable (spaces and the current rate).
func Register(e *echo.Echo, h Handlers, jwtSecret string, cache, limiter echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	e.POST("/register", h.Auth.Register, limiter)
	e.POST("/login", h.Auth.Login, limiter)

	auth := e.Group("")
	auth.Use(middleware.JWTAuth(jwtSecret))

	auth.GET("/profile", h.Auth.GetProfile)
	auth.PUT("/profile", h.Auth.UpdateProfile)

	auth.GET("/parking-spaces", h.Spaces.List, cache)
	auth.GET("/parking-spaces/:id", h.Spaces.GetByID)

	auth.POST("/parking-sessions/start", h.Sessions.Start)
	auth.POST("/parking-sessions/:id/end", h.Sessions.End)
	auth.GET("/parking-sessions/active", h.Sessions.Active)
	auth.GET("/parking-sessions/history", h.Sessions.History)

	auth.GET("/vehicles", h.Vehicles.List)
	auth.POST("/vehicles", h.Vehicles.Create)
	auth.DELETE("/vehicles/:id", h.Vehicles.Delete)

	auth.POST("/payments", h.Payments.Create)
	auth.GET("/payments/history", h.Payments.History)

	auth.GET("/rates/current", h.Rates.Current, cache)
}
