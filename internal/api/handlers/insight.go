package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"stoper/internal/api/services"
	"stoper/internal/config"
	"stoper/internal/insight"
	redisCache "stoper/internal/redis"
	"stoper/internal/repository"
)

type InsightHandler struct {
	insightService *services.InsightService
}

func NewInsightHandler(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) *InsightHandler {
	toolRepo := repository.NewToolRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	cache := redisCache.InsightCache(rdb, cfg.Insight.CacheTTL)

	return &InsightHandler{
		insightService: services.NewInsightService(
			toolRepo,
			withdrawalRepo,
			insight.NewHTTPGenerator(cfg.Insight),
			cache,
		),
	}
}

// GetInsights godoc
// @Summary Inventory advisory text
// @Description Generated consumption analysis, or a static placeholder when the generator is unavailable
// @Tags insights
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/insights [get]
func (h *InsightHandler) GetInsights(c echo.Context) error {
	text := h.insightService.Get(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]string{"insights": text})
}
