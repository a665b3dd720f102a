package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/repairworks/backoffice/internal/api/metrics"
	"github.com/repairworks/backoffice/internal/core/domain"
	"github.com/repairworks/backoffice/internal/core/ports"
)

// OrderHandler handles order creation and deletion.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// createOrderRequest mirrors the form the dashboard submits. The assignee
// travels as user_id; the creator comes from the session, not the body.
type createOrderRequest struct {
	ClientID       string   `json:"client_id" form:"client_id" validate:"required"`
	ContractorID   string   `json:"contractor_id" form:"contractor_id" validate:"required"`
	ObjectID       string   `json:"object_id" form:"object_id" validate:"required"`
	AssignedUserID string   `json:"user_id" form:"user_id" validate:"required"`
	Materials      []string `json:"materials" form:"materials"`
}

type orderResponse struct {
	Success bool          `json:"success"`
	Order   *domain.Order `json:"order"`
}

// Create composes and persists a new order.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /create_order [post]
func (h *OrderHandler) Create(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrMissingFields
	}

	order, err := h.orders.Create(c.Request().Context(), ports.CreateOrderInput{
		ClientID:       req.ClientID,
		ContractorID:   req.ContractorID,
		ObjectID:       req.ObjectID,
		AssignedUserID: req.AssignedUserID,
		MaterialIDs:    req.Materials,
	}, principal)
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusOK, orderResponse{Success: true, Order: order})
}

// Delete removes an order. The admin gate runs before this handler.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {object}  successResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /delete_order/{order_id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.orders.Delete(c.Request().Context(), c.Param("order_id")); err != nil {
		return err
	}

	metrics.OrdersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
