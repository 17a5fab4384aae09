package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abikefoods/storefront-api/internal/api/metrics"
	"github.com/abikefoods/storefront-api/internal/core/ports"
	"github.com/abikefoods/storefront-api/pkg/export"
)

// ReportHandler handles the dashboard statistics and export endpoints.
type ReportHandler struct {
	service ports.ReportingService
}

func NewReportHandler(service ports.ReportingService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Dashboard handles GET /v1/reports/dashboard.
//
// @Summary      Master dashboard statistics
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Router       /v1/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.DashboardStats(c.Request().Context()))
}

// Finance handles GET /v1/reports/finance with the same filter query
// parameters as the wallet transaction list.
//
// @Summary      Finance dashboard
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.FinanceReport
// @Router       /v1/reports/finance [get]
func (h *ReportHandler) Finance(c echo.Context) error {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, h.service.FinanceReport(c.Request().Context(), filter))
}

// Export handles GET /v1/reports/export?entity=&format=. The response is a
// file download with a timestamped filename.
//
// @Summary      Export a record set
// @Tags         reports
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        entity  query  string  true   "orders|students|users|transactions|payments"
// @Param        format  query  string  false  "csv (default) or json"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Router       /v1/reports/export [get]
func (h *ReportHandler) Export(c echo.Context) error {
	entity := c.QueryParam("entity")
	format := c.QueryParam("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "json" {
		return echo.NewHTTPError(http.StatusBadRequest, "format must be csv or json")
	}

	table, err := h.service.ExportTable(c.Request().Context(), entity)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var buf bytes.Buffer
	contentType := "text/csv"
	if format == "csv" {
		err = export.CSV(&buf, table.Columns, table.Rows)
	} else {
		contentType = "application/json"
		err = export.JSON(&buf, table.Rows)
	}
	if err != nil {
		return err
	}

	metrics.ExportsTotal.WithLabelValues(entity, format).Inc()

	filename := fmt.Sprintf("%s_%s.%s", entity, time.Now().UTC().Format("2006-01-02"), format)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}
