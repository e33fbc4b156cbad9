package services

import (
	"context"
	"fmt"

	"stoper/internal/domain"
	"stoper/internal/stock"
)

type InventoryService struct {
	toolStore ToolStore
}

func NewInventoryService(toolStore ToolStore) *InventoryService {
	return &InventoryService{toolStore: toolStore}
}

func (s *InventoryService) List(ctx context.Context) ([]domain.Tool, error) {
	return s.toolStore.List()
}

// EnsureSeeded loads the fixed catalog into an empty tools table. On a
// populated table it does nothing, so it is safe to run at every start.
func (s *InventoryService) EnsureSeeded(ctx context.Context) error {
	count, err := s.toolStore.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.toolStore.Seed(domain.InitialInventory); err != nil {
		return fmt.Errorf("seed tool catalog: %w", err)
	}
	return nil
}

// AdjustQuantity records a manual recount through the reconciliation
// engine and persists the clamped result.
func (s *InventoryService) AdjustQuantity(ctx context.Context, toolID string, newQuantity int) (*stock.AdjustResult, error) {
	tool, err := s.toolStore.FindByID(toolID)
	if err != nil {
		return nil, err
	}

	result := stock.AdjustQuantity(*tool, newQuantity)

	updated, err := s.toolStore.UpdateQuantity(result.Tool.ID, result.Tool.Quantity)
	if err != nil {
		return nil, err
	}

	result.Tool = *updated
	return &result, nil
}

func (s *InventoryService) AdjustThreshold(ctx context.Context, toolID string, newThreshold int) (*stock.AdjustResult, error) {
	tool, err := s.toolStore.FindByID(toolID)
	if err != nil {
		return nil, err
	}

	result := stock.AdjustThreshold(*tool, newThreshold)

	updated, err := s.toolStore.UpdateThreshold(result.Tool.ID, result.Tool.MinThreshold)
	if err != nil {
		return nil, err
	}

	result.Tool = *updated
	return &result, nil
}
