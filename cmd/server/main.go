package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"stoper/internal/api"
	"stoper/internal/api/services"
	"stoper/internal/config"
	"stoper/internal/metrics"
	"stoper/internal/redis"
	"stoper/internal/repository"
	"stoper/internal/tracing"
	"stoper/internal/worker"
)

// @title STOPER API
// @version 1.0
// @description Inventory and withdrawal tracking for drilling consumables

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.Setup(ctx, cfg)
		if err != nil {
			log.Fatalf("failed to initialize tracing: %v", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				log.Printf("tracing shutdown failed: %v", err)
			}
		}()
	}

	db, err := repository.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	rdb := redis.New(cfg)
	if err := redis.Ping(ctx, rdb); err != nil {
		// Insights just lose their cache without redis.
		log.Printf("redis unreachable, insight caching disabled: %v", err)
		rdb.Close()
		rdb = nil
	} else {
		defer rdb.Close()
	}

	inventoryService := services.NewInventoryService(repository.NewToolRepository(db.DB()))
	if err := inventoryService.EnsureSeeded(ctx); err != nil {
		log.Fatalf("failed to seed inventory catalog: %v", err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(metrics.PrometheusMiddleware())
	if cfg.Tracing.Enabled {
		e.Use(otelecho.Middleware("stoper"))
	}

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api.SetupRoutes(e, db.DB(), rdb, cfg)

	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	lowStockWorker := worker.NewLowStockWorker(db.DB(), cfg.Worker.SweepInterval)
	go lowStockWorker.StartWorker(ctx)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
}
