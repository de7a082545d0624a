// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID reads the authenticated user's id set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.ContextUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "user identity missing from context")
	}

	return id, nil
}

// currentEmail reads the authenticated user's email set by the auth middleware.
func currentEmail(c echo.Context) (string, error) {
	email, ok := c.Get(middleware.ContextEmail).(string)
	if !ok || email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "user identity missing from context")
	}

	return email, nil
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
