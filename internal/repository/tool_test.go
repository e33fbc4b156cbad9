package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoper/internal/domain"
)

func seedTestTool(t *testing.T, repo *ToolRepository) domain.Tool {
	t.Helper()

	tool := domain.Tool{
		ID:           fmt.Sprintf("t51-haste-%d", time.Now().UnixNano()),
		Model:        domain.ModelT51,
		Type:         domain.TypeHaste,
		Quantity:     20,
		MinThreshold: 8,
	}
	require.NoError(t, repo.Seed([]domain.Tool{tool}))

	t.Cleanup(func() {
		testDB.DB().Exec(`DELETE FROM tools WHERE id = $1`, tool.ID)
	})

	return tool
}

func TestToolRepository_Seed(t *testing.T) {
	db := requireDB(t)
	repo := NewToolRepository(db.DB())

	tool := seedTestTool(t, repo)

	t.Run("inserted tool is readable", func(t *testing.T) {
		got, err := repo.FindByID(tool.ID)
		require.NoError(t, err)
		assert.Equal(t, tool.Quantity, got.Quantity)
		assert.Equal(t, tool.MinThreshold, got.MinThreshold)
		assert.Equal(t, domain.ModelT51, got.Model)
	})

	t.Run("re-seeding an existing id keeps current values", func(t *testing.T) {
		_, err := repo.UpdateQuantity(tool.ID, 3)
		require.NoError(t, err)

		require.NoError(t, repo.Seed([]domain.Tool{tool}))

		got, err := repo.FindByID(tool.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Quantity)
	})
}

func TestToolRepository_FindByID_NotFound(t *testing.T) {
	db := requireDB(t)
	repo := NewToolRepository(db.DB())

	_, err := repo.FindByID("no-such-tool")
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestToolRepository_UpdateQuantity(t *testing.T) {
	db := requireDB(t)
	repo := NewToolRepository(db.DB())
	tool := seedTestTool(t, repo)

	updated, err := repo.UpdateQuantity(tool.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, tool.MinThreshold, updated.MinThreshold)

	_, err = repo.UpdateQuantity("no-such-tool", 7)
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestToolRepository_UpdateThreshold(t *testing.T) {
	db := requireDB(t)
	repo := NewToolRepository(db.DB())
	tool := seedTestTool(t, repo)

	updated, err := repo.UpdateThreshold(tool.ID, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.MinThreshold)
	assert.Equal(t, tool.Quantity, updated.Quantity)
}

func TestToolRepository_List_Ordering(t *testing.T) {
	db := requireDB(t)
	repo := NewToolRepository(db.DB())
	seedTestTool(t, repo)

	tools, err := repo.List()
	require.NoError(t, err)
	require.NotEmpty(t, tools)

	for i := 1; i < len(tools); i++ {
		if tools[i-1].Model == tools[i].Model {
			assert.LessOrEqual(t, string(tools[i-1].Type), string(tools[i].Type))
		} else {
			assert.Greater(t, string(tools[i-1].Model), string(tools[i].Model))
		}
	}
}
