package worker

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"

	"stoper/internal/api/ws"
	"stoper/internal/metrics"
	"stoper/internal/repository"
)

// LowStockWorker periodically sweeps the catalog, keeps the
// below-threshold gauge current and pushes an alert for every tool that
// newly crossed its threshold since the previous sweep.
type LowStockWorker struct {
	toolRepo *repository.ToolRepository
	hub      *ws.Hub
	ticker   *time.Ticker

	alerted map[string]bool
}

func NewLowStockWorker(db *sqlx.DB, interval time.Duration) *LowStockWorker {
	return &LowStockWorker{
		toolRepo: repository.NewToolRepository(db),
		hub:      ws.GetHub(),
		ticker:   time.NewTicker(interval),
		alerted:  make(map[string]bool),
	}
}

func (w *LowStockWorker) StartWorker(ctx context.Context) {
	defer w.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.ticker.C:
			w.sweep()
		}
	}
}

func (w *LowStockWorker) sweep() {
	tools, err := w.toolRepo.List()
	if err != nil {
		log.Printf("[LowStockWorker] list tools: %v", err)
		return
	}

	critical := 0
	for _, tool := range tools {
		if !tool.IsCritical() {
			delete(w.alerted, tool.ID)
			continue
		}

		critical++
		if w.alerted[tool.ID] {
			continue
		}

		w.alerted[tool.ID] = true
		w.hub.SendCriticalStockAlert(tool.ID, tool.DisplayName(), tool.Quantity, tool.MinThreshold)
		log.Printf("[LowStockWorker] %s critical: %d <= %d", tool.DisplayName(), tool.Quantity, tool.MinThreshold)
	}

	metrics.ToolsBelowThreshold.Set(float64(critical))
}
