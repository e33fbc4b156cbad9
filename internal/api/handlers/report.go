package handlers

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"stoper/internal/api/services"
	"stoper/internal/report"
	"stoper/internal/repository"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(db *sqlx.DB) *ReportHandler {
	toolRepo := repository.NewToolRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)

	return &ReportHandler{
		reportService: services.NewReportService(toolRepo, withdrawalRepo),
	}
}

// GetConsumptionByTool godoc
// @Summary Consumption per tool
// @Description Withdrawn totals per catalog tool, highest first
// @Tags reports
// @Produce json
// @Param start query string false "Start day (YYYY-MM-DD, inclusive)"
// @Param end query string false "End day (YYYY-MM-DD, inclusive)"
// @Success 200 {array} report.ToolConsumption
// @Router /api/reports/consumption/tools [get]
func (h *ReportHandler) GetConsumptionByTool(c echo.Context) error {
	filter, err := historyFilterFromQuery(c)
	if err != nil {
		return ErrBadRequest(c, "invalid date filter, expected YYYY-MM-DD")
	}

	out, err := h.reportService.ConsumptionByTool(c.Request().Context(), filter)
	if err != nil {
		return gatewayFailure(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// GetConsumptionByReason godoc
// @Summary Consumption per reason
// @Description Withdrawn totals per operational reason, zero totals included
// @Tags reports
// @Produce json
// @Param start query string false "Start day (YYYY-MM-DD, inclusive)"
// @Param end query string false "End day (YYYY-MM-DD, inclusive)"
// @Success 200 {array} report.ReasonConsumption
// @Router /api/reports/consumption/reasons [get]
func (h *ReportHandler) GetConsumptionByReason(c echo.Context) error {
	filter, err := historyFilterFromQuery(c)
	if err != nil {
		return ErrBadRequest(c, "invalid date filter, expected YYYY-MM-DD")
	}

	out, err := h.reportService.ConsumptionByReason(c.Request().Context(), filter)
	if err != nil {
		return gatewayFailure(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// GetEvolution godoc
// @Summary Consumption evolution
// @Description Zero-filled buckets from the earliest withdrawal through today
// @Tags reports
// @Produce json
// @Param granularity query string false "daily, weekly or monthly" default(daily)
// @Success 200 {array} report.Period
// @Failure 400 {object} map[string]string
// @Router /api/reports/evolution [get]
func (h *ReportHandler) GetEvolution(c echo.Context) error {
	raw := c.QueryParam("granularity")
	if raw == "" {
		raw = string(report.GranularityDaily)
	}

	granularity, ok := report.ParseGranularity(raw)
	if !ok {
		return ErrBadRequest(c, "granularity must be daily, weekly or monthly")
	}

	out, err := h.reportService.Evolution(c.Request().Context(), granularity)
	if err != nil {
		return gatewayFailure(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// GetStats godoc
// @Summary Dashboard headline numbers
// @Tags reports
// @Produce json
// @Success 200 {object} report.Stats
// @Router /api/dashboard/stats [get]
func (h *ReportHandler) GetStats(c echo.Context) error {
	stats, err := h.reportService.Stats(c.Request().Context())
	if err != nil {
		return gatewayFailure(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// historyFilterFromQuery parses the shared start/end/q query params.
// Dates are plain days; the range semantics (whole start day, whole end
// day) live in the aggregation engine.
func historyFilterFromQuery(c echo.Context) (services.HistoryFilter, error) {
	filter := services.HistoryFilter{Search: c.QueryParam("q")}

	if raw := c.QueryParam("start"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return services.HistoryFilter{}, err
		}
		filter.Start = &t
	}

	if raw := c.QueryParam("end"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return services.HistoryFilter{}, err
		}
		filter.End = &t
	}

	return filter, nil
}
