package handlers

import (
	"errors"
	"net/http"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/daheemang/challenge-platform/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// getClaimsFromContext returns the JWT claims stored by the auth middleware,
// or nil when the request is unauthenticated.
func getClaimsFromContext(c echo.Context) *models.JwtCustomClaims {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// getUserIDFromContext returns the authenticated user's id, or 0.
func getUserIDFromContext(c echo.Context) uint {
	claims := getClaimsFromContext(c)
	if claims == nil {
		return 0
	}
	return claims.UserID
}

// isAdmin reports whether the authenticated user carries the admin role.
func isAdmin(c echo.Context) bool {
	claims := getClaimsFromContext(c)
	return claims != nil && claims.Role == models.RoleAdmin
}

// serviceError maps service-layer sentinel errors onto HTTP statuses.
// Anything unrecognized is a persistence failure and surfaces as a 500.
func serviceError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidEnumValue):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAlreadyRead), errors.Is(err, services.ErrAlreadyLiked):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
