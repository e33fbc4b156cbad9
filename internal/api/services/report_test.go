package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoper/internal/domain"
	"stoper/internal/report"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
}

func reportFixture() (*ReportService, *fakeWithdrawalStore) {
	ledger := &fakeWithdrawalStore{ws: []domain.Withdrawal{
		{
			ID: uuid.New(), ToolID: "t51-haste", ToolName: "Haste T51", Quantity: 5,
			Reason: domain.ReasonWear, Supervisor: "Emanuel", RigTag: "PH14",
			Team: domain.TeamA, Date: time.Date(2026, 3, 8, 9, 0, 0, 0, time.Local),
		},
		{
			ID: uuid.New(), ToolID: "t51-haste", ToolName: "Haste T51", Quantity: 3,
			Reason: domain.ReasonCrack, Supervisor: "Edson", RigTag: "PH21",
			Team: domain.TeamB, Date: time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local),
		},
	}}

	service := NewReportService(newFakeToolStore(seedToolFixture()), ledger)
	service.now = fixedNow
	return service, ledger
}

func TestReportService_History(t *testing.T) {
	ctx := context.Background()
	service, _ := reportFixture()

	t.Run("newest first, unfiltered", func(t *testing.T) {
		ws, err := service.History(ctx, HistoryFilter{})
		require.NoError(t, err)
		require.Len(t, ws, 2)
		assert.Equal(t, 3, ws[0].Quantity)
	})

	t.Run("range filter", func(t *testing.T) {
		start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
		ws, err := service.History(ctx, HistoryFilter{Start: &start})
		require.NoError(t, err)
		require.Len(t, ws, 1)
		assert.Equal(t, domain.ReasonCrack, ws[0].Reason)
	})

	t.Run("search filter", func(t *testing.T) {
		ws, err := service.History(ctx, HistoryFilter{Search: "edson"})
		require.NoError(t, err)
		assert.Len(t, ws, 1)
	})
}

func TestReportService_Consumption(t *testing.T) {
	ctx := context.Background()
	service, _ := reportFixture()

	byTool, err := service.ConsumptionByTool(ctx, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, byTool, 1)
	assert.Equal(t, 8, byTool[0].Total)

	byReason, err := service.ConsumptionByReason(ctx, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, byReason, len(domain.Reasons))
	assert.Equal(t, domain.ReasonWear, byReason[0].Reason)
	assert.Equal(t, 5, byReason[0].Total)
}

func TestReportService_Evolution(t *testing.T) {
	service, _ := reportFixture()

	periods, err := service.Evolution(context.Background(), report.GranularityDaily)
	require.NoError(t, err)
	// 8th through 10th inclusive, gap on the 9th zero-filled
	require.Len(t, periods, 3)
	assert.Equal(t, 5, periods[0].Total)
	assert.Equal(t, 0, periods[1].Total)
	assert.Equal(t, 3, periods[2].Total)
}

func TestReportService_Stats(t *testing.T) {
	service, _ := reportFixture()

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalTools)
	assert.Equal(t, 1, stats.WithdrawalsToday)
	assert.Equal(t, "T51", stats.MostUsedModel)
}

func TestReportService_ExportCSV(t *testing.T) {
	ctx := context.Background()
	service, ledger := reportFixture()

	t.Run("renders filtered rows", func(t *testing.T) {
		data, filename, err := service.ExportCSV(ctx, HistoryFilter{})
		require.NoError(t, err)
		require.NotNil(t, data)
		assert.Equal(t, "historico_stoper_2026-03-10.csv", filename)
		assert.True(t, strings.HasPrefix(string(data), "\uFEFF"))
		assert.Contains(t, string(data), "Haste T51")
	})

	t.Run("empty result produces no file", func(t *testing.T) {
		ledger.ws = nil
		data, filename, err := service.ExportCSV(ctx, HistoryFilter{})
		require.NoError(t, err)
		assert.Nil(t, data)
		assert.Empty(t, filename)
	})
}
