package stock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoper/internal/domain"
)

func seedTool() domain.Tool {
	return domain.Tool{
		ID:           "t51-haste",
		Model:        domain.ModelT51,
		Type:         domain.TypeHaste,
		Quantity:     20,
		MinThreshold: 8,
	}
}

func TestValidateRequest(t *testing.T) {
	tool := seedTool()

	t.Run("zero quantity rejected", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRequest(tool, 0), ErrInvalidQuantity)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRequest(tool, -3), ErrInvalidQuantity)
	})

	t.Run("over stock rejected", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRequest(tool, 21), ErrInsufficientStock)
	})

	t.Run("exact stock allowed", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(tool, 20))
	})
}

func TestApply(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

	t.Run("decrements and snapshots tool name", func(t *testing.T) {
		tool := seedTool()
		res, err := Apply(tool, Request{ToolID: tool.ID, Quantity: 5, Reason: domain.ReasonWear, Team: domain.TeamA}, now)
		require.NoError(t, err)

		assert.Equal(t, 15, res.Tool.Quantity)
		assert.Equal(t, 5, res.Withdrawal.Quantity)
		assert.Equal(t, "Haste T51", res.Withdrawal.ToolName)
		assert.Equal(t, tool.ID, res.Withdrawal.ToolID)
		assert.Equal(t, now, res.Withdrawal.Date)
		assert.False(t, res.Critical)

		// input tool untouched
		assert.Equal(t, 20, tool.Quantity)
	})

	t.Run("critical advisory at threshold crossing", func(t *testing.T) {
		res, err := Apply(seedTool(), Request{Quantity: 13}, now)
		require.NoError(t, err)
		assert.Equal(t, 7, res.Tool.Quantity)
		assert.True(t, res.Critical)
	})

	t.Run("landing exactly on threshold is critical", func(t *testing.T) {
		res, err := Apply(seedTool(), Request{Quantity: 12}, now)
		require.NoError(t, err)
		assert.Equal(t, 8, res.Tool.Quantity)
		assert.True(t, res.Critical)
	})

	t.Run("insufficient stock mutates nothing", func(t *testing.T) {
		tool := seedTool()
		_, err := Apply(tool, Request{Quantity: 25}, now)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 20, tool.Quantity)
	})

	t.Run("withdrawals get distinct ids", func(t *testing.T) {
		a, err := Apply(seedTool(), Request{Quantity: 1}, now)
		require.NoError(t, err)
		b, err := Apply(seedTool(), Request{Quantity: 1}, now)
		require.NoError(t, err)
		assert.NotEqual(t, a.Withdrawal.ID, b.Withdrawal.ID)
	})
}

func TestReverse(t *testing.T) {
	now := time.Now()

	t.Run("round trip restores original quantity", func(t *testing.T) {
		tool := seedTool()
		applied, err := Apply(tool, Request{Quantity: 13}, now)
		require.NoError(t, err)

		reversed := Reverse(applied.Tool, applied.Withdrawal)
		assert.Equal(t, tool.Quantity, reversed.Tool.Quantity)
		assert.Equal(t, applied.Withdrawal.ID, reversed.WithdrawalID)
	})

	t.Run("no upper clamp on restore", func(t *testing.T) {
		tool := seedTool()
		res := Reverse(tool, domain.Withdrawal{Quantity: 1000})
		assert.Equal(t, 1020, res.Tool.Quantity)
	})
}

func TestAdjustQuantity(t *testing.T) {
	t.Run("clamps at zero", func(t *testing.T) {
		res := AdjustQuantity(seedTool(), -5)
		assert.Equal(t, 0, res.Tool.Quantity)
		assert.True(t, res.Critical)
	})

	t.Run("decrease below threshold alerts", func(t *testing.T) {
		res := AdjustQuantity(seedTool(), 8)
		assert.True(t, res.Critical)
	})

	t.Run("increase into critical band stays silent", func(t *testing.T) {
		tool := seedTool()
		tool.Quantity = 2
		res := AdjustQuantity(tool, 5)
		assert.Equal(t, 5, res.Tool.Quantity)
		assert.False(t, res.Critical)
	})

	t.Run("decrease above threshold stays silent", func(t *testing.T) {
		res := AdjustQuantity(seedTool(), 15)
		assert.False(t, res.Critical)
	})
}

func TestAdjustThreshold(t *testing.T) {
	t.Run("sets threshold", func(t *testing.T) {
		res := AdjustThreshold(seedTool(), 12)
		assert.Equal(t, 12, res.Tool.MinThreshold)
		assert.False(t, res.Critical)
	})

	t.Run("negative threshold clamps to zero", func(t *testing.T) {
		res := AdjustThreshold(seedTool(), -1)
		assert.Equal(t, 0, res.Tool.MinThreshold)
	})

	t.Run("raising threshold over stock never alerts", func(t *testing.T) {
		res := AdjustThreshold(seedTool(), 50)
		assert.False(t, res.Critical)
	})
}

func TestIsCriticalBoundary(t *testing.T) {
	tool := seedTool()
	tool.Quantity = tool.MinThreshold
	assert.True(t, tool.IsCritical())

	tool.Quantity = tool.MinThreshold + 1
	assert.False(t, tool.IsCritical())
}
