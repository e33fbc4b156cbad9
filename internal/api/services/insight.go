package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"

	"stoper/internal/domain"
	"stoper/internal/insight"
	r "stoper/internal/redis"
)

type InsightService struct {
	toolStore       ToolStore
	withdrawalStore WithdrawalStore
	generator       insight.Generator
	cache           *r.JSONCache[string]
}

func NewInsightService(
	toolStore ToolStore,
	withdrawalStore WithdrawalStore,
	generator insight.Generator,
	cache *r.JSONCache[string],
) *InsightService {
	return &InsightService{
		toolStore:       toolStore,
		withdrawalStore: withdrawalStore,
		generator:       generator,
		cache:           cache,
	}
}

// Get returns advisory text for the current inventory snapshot. Cache
// and generator failures both degrade to the static placeholder; this
// path never surfaces an error to the caller.
func (s *InsightService) Get(ctx context.Context) string {
	tools, err := s.toolStore.List()
	if err != nil {
		return insight.Fallback
	}

	ws, err := s.withdrawalStore.List()
	if err != nil {
		return insight.Fallback
	}

	if len(ws) > 10 {
		ws = ws[:10]
	}

	key := snapshotKey(tools, ws)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		return *cached
	}

	text, err := s.generator.Generate(ctx, tools, ws)
	if err != nil {
		if err != insight.ErrNotConfigured {
			log.Printf("insight generation failed: %v", err)
		}
		return insight.Fallback
	}

	if err := s.cache.Set(ctx, key, &text); err != nil {
		log.Printf("insight cache write failed: %v", err)
	}

	return text
}

// snapshotKey fingerprints the inventory quantities and the newest
// ledger entry so a cached insight expires as soon as anything moves.
func snapshotKey(tools []domain.Tool, ws []domain.Withdrawal) string {
	h := fnv.New64a()
	for _, t := range tools {
		fmt.Fprintf(h, "%s=%d/%d;", t.ID, t.Quantity, t.MinThreshold)
	}
	if len(ws) > 0 {
		fmt.Fprintf(h, "last=%s", ws[0].ID)
	}
	return fmt.Sprintf("%x", h.Sum64())
}
