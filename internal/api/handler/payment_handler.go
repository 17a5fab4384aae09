package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abikefoods/storefront-api/internal/core/ports"
)

type paymentCallbackRequest struct {
	Reference string  `json:"reference" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Amount    float64 `json:"amount" validate:"gt=0"`
	Currency  string  `json:"currency,omitempty"`
	Method    string  `json:"method,omitempty"`
	Success   bool    `json:"success"`
}

// PaymentHandler receives pass/fail callbacks from the external payment
// gateway.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Callback handles POST /v1/payments/callback. Replayed references return
// 409 so the gateway stops redelivering.
//
// @Summary      Payment gateway callback
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      paymentCallbackRequest  true  "Gateway callback"
// @Success      201   {object}  domain.Payment
// @Failure      409   {object}  errorResponse
// @Router       /v1/payments/callback [post]
func (h *PaymentHandler) Callback(c echo.Context) error {
	var req paymentCallbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.service.Confirm(c.Request().Context(), ports.PaymentCallbackInput{
		Reference: req.Reference,
		Email:     req.Email,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Success:   req.Success,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}
