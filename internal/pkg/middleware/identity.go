// Package middleware carries the echo middlewares shared by the service.
// Authentication happens at the gateway; by the time a request reaches this
// service the caller identity is already verified and arrives in headers.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Header names set by the auth gateway after token validation
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Context keys for the verified identity
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// Identity extracts the pre-verified caller identity from gateway headers
// and stores it on the echo context. Requests without an identity are
// rejected; the engine itself never parses tokens.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := c.Request().Header.Get(HeaderUserID)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing verified identity")
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextUserRole, c.Request().Header.Get(HeaderUserRole))
			return next(c)
		}
	}
}

// UserID returns the verified caller id stored by Identity
func UserID(c echo.Context) string {
	id, _ := c.Get(ContextUserID).(string)
	return id
}

// UserRole returns the verified caller role stored by Identity
func UserRole(c echo.Context) string {
	role, _ := c.Get(ContextUserRole).(string)
	return role
}
