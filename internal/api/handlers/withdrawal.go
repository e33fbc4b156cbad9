package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"stoper/internal/api/dto"
	"stoper/internal/api/services"
	"stoper/internal/api/ws"
	"stoper/internal/metrics"
	"stoper/internal/repository"
	"stoper/internal/stock"
)

type WithdrawalHandler struct {
	withdrawalService *services.WithdrawalService
	reportService     *services.ReportService
	hub               *ws.Hub
}

func NewWithdrawalHandler(db *sqlx.DB) *WithdrawalHandler {
	toolRepo := repository.NewToolRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)

	return &WithdrawalHandler{
		withdrawalService: services.NewWithdrawalService(toolRepo, withdrawalRepo),
		reportService:     services.NewReportService(toolRepo, withdrawalRepo),
		hub:               ws.GetHub(),
	}
}

// CreateWithdrawal godoc
// @Summary Register a withdrawal
// @Description Decrement stock and append the matching ledger entry
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body dto.CreateWithdrawalRequest true "Withdrawal"
// @Success 201 {object} dto.WithdrawalResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/withdrawals [post]
func (h *WithdrawalHandler) CreateWithdrawal(c echo.Context) error {
	var req dto.CreateWithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, "missing required fields")
	}

	result, err := h.withdrawalService.Register(c.Request().Context(), services.RegisterInput{
		ToolID:     req.ToolID,
		Quantity:   req.Quantity,
		Reason:     req.Reason,
		Supervisor: req.Supervisor,
		Operator:   req.Operator,
		RigTag:     req.RigTag,
		Team:       req.Team,
	})
	if err != nil {
		switch {
		case errors.Is(err, stock.ErrInvalidQuantity):
			return ErrBadRequest(c, "quantity must be positive")
		case errors.Is(err, stock.ErrInsufficientStock):
			return c.JSON(http.StatusConflict, map[string]string{"error": "insufficient stock"})
		case errors.Is(err, services.ErrInvalidInput):
			return ErrBadRequest(c, "invalid withdrawal input")
		case errors.Is(err, repository.ErrToolNotFound):
			return ErrNotFound(c, "tool not found")
		case errors.Is(err, services.ErrPartialReconciliation):
			return ErrPartialReconciliation(c)
		default:
			return gatewayFailure(c, err)
		}
	}

	metrics.WithdrawalsTotal.WithLabelValues(string(result.Withdrawal.Reason)).Inc()
	if result.Critical {
		metrics.StockAlertsTotal.Inc()
		h.hub.SendCriticalStockAlert(result.Tool.ID, result.Tool.DisplayName(), result.Tool.Quantity, result.Tool.MinThreshold)
	}

	return c.JSON(http.StatusCreated, dto.WithdrawalResultFromStock(result))
}

// GetWithdrawals godoc
// @Summary Withdrawal history
// @Description Ledger entries newest first, optionally filtered by range and search term
// @Tags withdrawals
// @Produce json
// @Param start query string false "Start day (YYYY-MM-DD, inclusive)"
// @Param end query string false "End day (YYYY-MM-DD, inclusive)"
// @Param q query string false "Search term"
// @Success 200 {array} dto.Withdrawal
// @Router /api/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(c echo.Context) error {
	filter, err := historyFilterFromQuery(c)
	if err != nil {
		return ErrBadRequest(c, "invalid date filter, expected YYYY-MM-DD")
	}

	ws, err := h.reportService.History(c.Request().Context(), filter)
	if err != nil {
		return gatewayFailure(c, err)
	}

	return c.JSON(http.StatusOK, dto.WithdrawalsFromDomain(ws))
}

// DeleteWithdrawal godoc
// @Summary Reverse a withdrawal
// @Description Delete the ledger entry and restore its quantity to the tool
// @Tags withdrawals
// @Produce json
// @Param id path string true "Withdrawal id"
// @Success 200 {object} dto.ReversalResult
// @Failure 404 {object} map[string]string
// @Router /api/withdrawals/{id} [delete]
func (h *WithdrawalHandler) DeleteWithdrawal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrBadRequest(c, "invalid withdrawal id")
	}

	result, err := h.withdrawalService.Reverse(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrWithdrawalNotFound):
			return ErrNotFound(c, "withdrawal not found")
		case errors.Is(err, repository.ErrToolNotFound):
			return ErrNotFound(c, "tool not found")
		case errors.Is(err, services.ErrPartialReconciliation):
			return ErrPartialReconciliation(c)
		default:
			return gatewayFailure(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.ReversalResult{Tool: dto.ToolFromDomain(&result.Tool)})
}

// ExportWithdrawals godoc
// @Summary Export history as CSV
// @Description Semicolon-delimited, BOM-prefixed CSV of the filtered history
// @Tags withdrawals
// @Produce text/csv
// @Param start query string false "Start day (YYYY-MM-DD, inclusive)"
// @Param end query string false "End day (YYYY-MM-DD, inclusive)"
// @Param q query string false "Search term"
// @Success 200 {string} string "CSV file"
// @Success 204 {string} string "Nothing to export"
// @Router /api/withdrawals/export [get]
func (h *WithdrawalHandler) ExportWithdrawals(c echo.Context) error {
	filter, err := historyFilterFromQuery(c)
	if err != nil {
		return ErrBadRequest(c, "invalid date filter, expected YYYY-MM-DD")
	}

	data, filename, err := h.reportService.ExportCSV(c.Request().Context(), filter)
	if err != nil {
		return gatewayFailure(c, err)
	}
	if data == nil {
		return c.NoContent(http.StatusNoContent)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}
