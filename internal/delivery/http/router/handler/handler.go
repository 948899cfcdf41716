// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"agriconnect/internal/delivery/http/response"
	"agriconnect/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// currentUserID reads the authenticated user id placed on the context by the
// auth middleware.
func currentUserID(c echo.Context) (string, bool) {
	id, ok := c.Get("userID").(string)

	return id, ok && id != ""
}

// currentRole reads the first role claim placed on the context by the auth
// middleware.
func currentRole(c echo.Context) entity.Role {
	roles, ok := c.Get("roles").([]string)
	if !ok || len(roles) == 0 {
		return entity.RoleUnset
	}

	return entity.Role(roles[0])
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
