package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abikefoods/storefront-api/internal/core/ports"
)

type walletMoveRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	Method string  `json:"method,omitempty"`
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

// WalletHandler handles the wallet simulation endpoints.
type WalletHandler struct {
	service ports.WalletService
}

func NewWalletHandler(service ports.WalletService) *WalletHandler {
	return &WalletHandler{service: service}
}

// Balance handles GET /v1/wallet/balance.
//
// @Summary      Current wallet balance
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  balanceResponse
// @Router       /v1/wallet/balance [get]
func (h *WalletHandler) Balance(c echo.Context) error {
	return c.JSON(http.StatusOK, balanceResponse{Balance: h.service.Balance(c.Request().Context())})
}

// Summary handles GET /v1/wallet.
//
// @Summary      Wallet summary
// @Description  Balance, ledger aggregates and the most recent transactions newest-first.
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.WalletSummary
// @Router       /v1/wallet [get]
func (h *WalletHandler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Summary(c.Request().Context()))
}

// Deposit handles POST /v1/wallet/deposit.
//
// @Summary      Fund the wallet
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      walletMoveRequest  true  "Amount and method"
// @Success      201   {object}  domain.Transaction
// @Failure      400   {object}  errorResponse
// @Router       /v1/wallet/deposit [post]
func (h *WalletHandler) Deposit(c echo.Context) error {
	var req walletMoveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tx, err := h.service.Deposit(c.Request().Context(), req.Amount, req.Method)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tx)
}

// Withdraw handles POST /v1/wallet/withdraw.
//
// @Summary      Spend from the wallet
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      walletMoveRequest  true  "Amount and method"
// @Success      201   {object}  domain.Transaction
// @Failure      422   {object}  errorResponse
// @Router       /v1/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(c echo.Context) error {
	var req walletMoveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tx, err := h.service.Withdraw(c.Request().Context(), req.Amount, req.Method)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tx)
}

// Transactions handles GET /v1/wallet/transactions with optional filters.
//
// @Summary      Filter wallet transactions
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Param        date_from   query  string  false  "RFC 3339 lower bound"
// @Param        date_to     query  string  false  "RFC 3339 upper bound"
// @Param        min_amount  query  number  false  "Minimum amount"
// @Param        max_amount  query  number  false  "Maximum amount"
// @Param        month       query  int     false  "Calendar month (1-12)"
// @Param        year        query  int     false  "Calendar year"
// @Success      200  {array}  domain.Transaction
// @Router       /v1/wallet/transactions [get]
func (h *WalletHandler) Transactions(c echo.Context) error {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, h.service.Transactions(c.Request().Context(), filter))
}

func parseTransactionFilter(c echo.Context) (ports.TransactionFilter, error) {
	var filter ports.TransactionFilter

	if v := c.QueryParam("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = t
	}
	if v := c.QueryParam("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.DateTo = t
	}
	if v := c.QueryParam("min_amount"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, err
		}
		filter.MinAmount = &f
	}
	if v := c.QueryParam("max_amount"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, err
		}
		filter.MaxAmount = &f
	}
	if v := c.QueryParam("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, err
		}
		m := time.Month(n)
		filter.Month = &m
	}
	if v := c.QueryParam("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, err
		}
		filter.Year = &n
	}
	return filter, nil
}
