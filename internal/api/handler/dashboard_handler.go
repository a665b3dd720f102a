package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/repairworks/backoffice/internal/core/ports"
)

// DashboardHandler serves the aggregated dashboard payload.
type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Data returns the catalogs, the assignable users, and the orders visible
// to the requesting principal.
//
// @Summary      Dashboard data
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.DashboardData
// @Failure      401  {object}  errorResponse
// @Router       /api/data [get]
func (h *DashboardHandler) Data(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	data, err := h.dashboard.Fetch(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}
