package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"stoper/internal/api/handlers"
	"stoper/internal/config"
)

func SetupRoutes(e *echo.Echo, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	e.GET("/health", healthCheck)

	e.Validator = NewValidator()

	wsHandler := handlers.NewWebSocketHandler(cfg)
	e.GET("/api/ws", wsHandler.HandleConnection)

	apiGroup := e.Group("/api")

	inventoryHandler := handlers.NewInventoryHandler(db)
	apiGroup.GET("/tools", inventoryHandler.GetTools)
	apiGroup.GET("/catalog", inventoryHandler.GetCatalog)
	apiGroup.PUT("/tools/:id/quantity", inventoryHandler.UpdateQuantity)
	apiGroup.PUT("/tools/:id/threshold", inventoryHandler.UpdateThreshold)

	withdrawalHandler := handlers.NewWithdrawalHandler(db)
	apiGroup.POST("/withdrawals", withdrawalHandler.CreateWithdrawal)
	apiGroup.GET("/withdrawals", withdrawalHandler.GetWithdrawals)
	apiGroup.GET("/withdrawals/export", withdrawalHandler.ExportWithdrawals)
	apiGroup.DELETE("/withdrawals/:id", withdrawalHandler.DeleteWithdrawal)

	reportHandler := handlers.NewReportHandler(db)
	apiGroup.GET("/reports/consumption/tools", reportHandler.GetConsumptionByTool)
	apiGroup.GET("/reports/consumption/reasons", reportHandler.GetConsumptionByReason)
	apiGroup.GET("/reports/evolution", reportHandler.GetEvolution)
	apiGroup.GET("/dashboard/stats", reportHandler.GetStats)

	insightHandler := handlers.NewInsightHandler(db, rdb, cfg)
	apiGroup.GET("/insights", insightHandler.GetInsights)
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
