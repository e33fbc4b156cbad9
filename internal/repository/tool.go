package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"stoper/internal/domain"
)

type ToolRepository struct {
	db *sqlx.DB
}

func NewToolRepository(db *sqlx.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

func (r *ToolRepository) List() ([]domain.Tool, error) {
	query := `
		SELECT id, model, type, quantity, min_threshold
		FROM tools
		ORDER BY model DESC, type ASC
	`

	tools := []domain.Tool{}
	if err := r.db.Select(&tools, query); err != nil {
		return nil, gatewayError(err)
	}

	return tools, nil
}

func (r *ToolRepository) FindByID(id string) (*domain.Tool, error) {
	query := `
		SELECT id, model, type, quantity, min_threshold
		FROM tools
		WHERE id = $1
	`

	tool := &domain.Tool{}
	err := r.db.Get(tool, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrToolNotFound
		}
		return nil, gatewayError(err)
	}

	return tool, nil
}

func (r *ToolRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM tools`); err != nil {
		return 0, gatewayError(err)
	}
	return count, nil
}

// Seed inserts the catalog reference list. Intended for a once-only run
// against an empty tools table; re-seeding an existing id is a no-op.
func (r *ToolRepository) Seed(tools []domain.Tool) error {
	query := `
		INSERT INTO tools (id, model, type, quantity, min_threshold)
		VALUES ($1, $2::tool_model, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`

	for _, t := range tools {
		if _, err := r.db.Exec(query, t.ID, t.Model, t.Type, t.Quantity, t.MinThreshold); err != nil {
			return gatewayError(err)
		}
	}
	return nil
}

func (r *ToolRepository) UpdateQuantity(id string, quantity int) (*domain.Tool, error) {
	query := `
		UPDATE tools
		SET quantity = $2
		WHERE id = $1
		RETURNING id, model, type, quantity, min_threshold
	`

	tool := &domain.Tool{}
	err := r.db.Get(tool, query, id, quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrToolNotFound
		}
		return nil, gatewayError(err)
	}

	return tool, nil
}

func (r *ToolRepository) UpdateThreshold(id string, threshold int) (*domain.Tool, error) {
	query := `
		UPDATE tools
		SET min_threshold = $2
		WHERE id = $1
		RETURNING id, model, type, quantity, min_threshold
	`

	tool := &domain.Tool{}
	err := r.db.Get(tool, query, id, threshold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrToolNotFound
		}
		return nil, gatewayError(err)
	}

	return tool, nil
}
