package handlers

import (
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"stoper/internal/api/dto"
	"stoper/internal/api/services"
	"stoper/internal/api/ws"
	"stoper/internal/metrics"
	"stoper/internal/repository"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
	hub              *ws.Hub
}

func NewInventoryHandler(db *sqlx.DB) *InventoryHandler {
	toolRepo := repository.NewToolRepository(db)

	return &InventoryHandler{
		inventoryService: services.NewInventoryService(toolRepo),
		hub:              ws.GetHub(),
	}
}

// GetTools godoc
// @Summary List inventory
// @Description Get the tool catalog with current stock and critical flags
// @Tags inventory
// @Produce json
// @Param model query string false "Filter by tool model"
// @Success 200 {array} dto.Tool
// @Router /api/tools [get]
func (h *InventoryHandler) GetTools(c echo.Context) error {
	tools, err := h.inventoryService.List(c.Request().Context())
	if err != nil {
		return gatewayFailure(c, err)
	}

	if model := c.QueryParam("model"); model != "" {
		filtered := tools[:0]
		for _, t := range tools {
			if string(t.Model) == model {
				filtered = append(filtered, t)
			}
		}
		tools = filtered
	}

	return c.JSON(http.StatusOK, dto.ToolsFromDomain(tools))
}

// GetCatalog godoc
// @Summary Reference lists
// @Description Fixed models, types, reasons, supervisors, rig tags and teams
// @Tags inventory
// @Produce json
// @Success 200 {object} dto.Catalog
// @Router /api/catalog [get]
func (h *InventoryHandler) GetCatalog(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CatalogFromDomain())
}

// UpdateQuantity godoc
// @Summary Manual stock recount
// @Description Set a tool's quantity directly; negative values clamp to zero
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Tool id"
// @Param request body dto.AdjustQuantityRequest true "New quantity"
// @Success 200 {object} dto.AdjustResult
// @Failure 404 {object} map[string]string
// @Router /api/tools/{id}/quantity [put]
func (h *InventoryHandler) UpdateQuantity(c echo.Context) error {
	toolID := c.Param("id")
	if toolID == "" {
		return ErrBadRequest(c, "tool id is required")
	}

	var req dto.AdjustQuantityRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}

	result, err := h.inventoryService.AdjustQuantity(c.Request().Context(), toolID, req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrToolNotFound) {
			return ErrNotFound(c, "tool not found")
		}
		return gatewayFailure(c, err)
	}

	if result.Critical {
		metrics.StockAlertsTotal.Inc()
		h.hub.SendCriticalStockAlert(result.Tool.ID, result.Tool.DisplayName(), result.Tool.Quantity, result.Tool.MinThreshold)
	}

	return c.JSON(http.StatusOK, dto.AdjustResultFromStock(result))
}

// UpdateThreshold godoc
// @Summary Move the reorder line
// @Description Set a tool's minimum threshold; negative values clamp to zero
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Tool id"
// @Param request body dto.AdjustThresholdRequest true "New threshold"
// @Success 200 {object} dto.AdjustResult
// @Failure 404 {object} map[string]string
// @Router /api/tools/{id}/threshold [put]
func (h *InventoryHandler) UpdateThreshold(c echo.Context) error {
	toolID := c.Param("id")
	if toolID == "" {
		return ErrBadRequest(c, "tool id is required")
	}

	var req dto.AdjustThresholdRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}

	result, err := h.inventoryService.AdjustThreshold(c.Request().Context(), toolID, req.Threshold)
	if err != nil {
		if errors.Is(err, repository.ErrToolNotFound) {
			return ErrNotFound(c, "tool not found")
		}
		return gatewayFailure(c, err)
	}

	return c.JSON(http.StatusOK, dto.AdjustResultFromStock(result))
}
