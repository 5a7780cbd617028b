// Package middleware provides reusable HTTP middleware: bearer-token
// authentication, a Redis response cache and a Redis token-bucket rate
// limiter.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuth validates a Bearer access token and injects the token's user ID
// and email claims into the request context under "user_id" (uint64) and
// "email". A missing token yields 401; an invalid or expired one yields
// 403, matching the documented auth contract.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"message": "missing bearer token", "code": "auth_missing",
				})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusForbidden, echo.Map{
					"message": "invalid or expired token", "code": "auth_invalid",
				})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusForbidden, echo.Map{
					"message": "invalid or expired token", "code": "auth_invalid",
				})
			}

			// Numeric JWT claims decode as float64.
			sub, ok := claims["sub"].(float64)
			if !ok || sub <= 0 {
				return c.JSON(http.StatusForbidden, echo.Map{
					"message": "invalid or expired token", "code": "auth_invalid",
				})
			}
			c.Set("user_id", uint64(sub))
			if email, ok := claims["email"].(string); ok {
				c.Set("email", email)
			}
			return next(c)
		}
	}
}
