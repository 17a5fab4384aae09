package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for the storefront order flow.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List handles GET /v1/orders.
//
// @Summary      List orders
// @Description  Lists orders through the remote-fallback gateway. When the remote endpoint is unreachable, local contents are served.
// @Tags         orders
// @Produce      json
// @Param        status  query     string  false  "Filter by status (pending|completed)"
// @Success      200     {object}  listOrdersResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	var orders []domain.Order
	switch status := c.QueryParam("status"); status {
	case "":
		orders = h.service.FetchOrders(c.Request().Context())
	case string(domain.OrderPending), string(domain.OrderCompleted):
		orders = h.service.ListByStatus(c.Request().Context(), domain.OrderStatus(status))
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "status must be pending or completed")
	}

	return c.JSON(http.StatusOK, listOrdersResponse{
		Data:  toOrderResponses(orders),
		Total: len(orders),
	})
}

// Create handles POST /v1/orders.
//
// @Summary      Place a new order
// @Description  Persists the order remotely when possible; otherwise it is stored locally and flagged offline.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		Customer: req.Customer,
		Items:    req.Items,
		Quantity: req.Quantity,
		Amount:   req.Amount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Update handles PUT /v1/orders/:id.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Order id"
// @Param        body  body      updateOrderRequest  true  "Fields to merge"
// @Success      200   {object}  orderResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.UpdateOrder(c.Request().Context(), c.Param("id"), ports.UpdateOrderInput{
		Customer: req.Customer,
		Items:    req.Items,
		Quantity: req.Quantity,
		Amount:   req.Amount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Delete handles DELETE /v1/orders/:id. Deletion is idempotent: removing an
// unknown id still returns 204.
//
// @Summary      Delete an order
// @Tags         orders
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      204
// @Router       /v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Complete handles POST /v1/orders/:id/complete.
//
// @Summary      Complete a pending order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/orders/{id}/complete [post]
func (h *OrderHandler) Complete(c echo.Context) error {
	if err := h.service.CompleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
