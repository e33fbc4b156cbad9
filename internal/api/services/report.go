package services

import (
	"context"
	"time"

	"stoper/internal/domain"
	"stoper/internal/export"
	"stoper/internal/report"
)

// HistoryFilter narrows ledger reads for history and report endpoints.
type HistoryFilter struct {
	Start  *time.Time
	End    *time.Time
	Search string
}

type ReportService struct {
	toolStore       ToolStore
	withdrawalStore WithdrawalStore
	now             func() time.Time
}

func NewReportService(toolStore ToolStore, withdrawalStore WithdrawalStore) *ReportService {
	return &ReportService{
		toolStore:       toolStore,
		withdrawalStore: withdrawalStore,
		now:             time.Now,
	}
}

func (s *ReportService) History(ctx context.Context, filter HistoryFilter) ([]domain.Withdrawal, error) {
	ws, err := s.withdrawalStore.List()
	if err != nil {
		return nil, err
	}

	ws = report.FilterByDateRange(ws, filter.Start, filter.End)
	return report.Search(ws, filter.Search), nil
}

func (s *ReportService) ConsumptionByTool(ctx context.Context, filter HistoryFilter) ([]report.ToolConsumption, error) {
	tools, err := s.toolStore.List()
	if err != nil {
		return nil, err
	}

	ws, err := s.History(ctx, filter)
	if err != nil {
		return nil, err
	}

	return report.ConsumptionByTool(ws, tools), nil
}

func (s *ReportService) ConsumptionByReason(ctx context.Context, filter HistoryFilter) ([]report.ReasonConsumption, error) {
	ws, err := s.History(ctx, filter)
	if err != nil {
		return nil, err
	}

	return report.ConsumptionByReason(ws), nil
}

func (s *ReportService) Evolution(ctx context.Context, g report.Granularity) ([]report.Period, error) {
	ws, err := s.withdrawalStore.List()
	if err != nil {
		return nil, err
	}

	return report.EvolutionSeries(ws, g, s.now()), nil
}

func (s *ReportService) Stats(ctx context.Context) (report.Stats, error) {
	tools, err := s.toolStore.List()
	if err != nil {
		return report.Stats{}, err
	}

	ws, err := s.withdrawalStore.List()
	if err != nil {
		return report.Stats{}, err
	}

	return report.Compute(tools, ws, s.now()), nil
}

// ExportCSV renders the filtered history as a download. A nil byte slice
// means there was nothing to export and no file should be produced.
func (s *ReportService) ExportCSV(ctx context.Context, filter HistoryFilter) ([]byte, string, error) {
	ws, err := s.History(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	data := export.CSV(ws)
	if data == nil {
		return nil, "", nil
	}

	return data, export.Filename(s.now()), nil
}
