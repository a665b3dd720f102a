package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/repairworks/backoffice/internal/api/middleware"
	"github.com/repairworks/backoffice/internal/core/domain"
)

// errorResponse mirrors the envelope rendered by the API error handler.
// Declared here so the OpenAPI annotations can reference the schema.
type errorResponse struct {
	Error string `json:"error"`
}

// principalFrom extracts the session principal injected by the Session
// middleware. Handlers behind RequireAuth can rely on it being present; the
// fallback error covers misconfigured routes.
func principalFrom(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, domain.ErrNoSession
	}
	return p, nil
}
