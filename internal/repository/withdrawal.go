package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stoper/internal/domain"
)

type WithdrawalRepository struct {
	db *sqlx.DB
}

func NewWithdrawalRepository(db *sqlx.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// List returns the full ledger, newest first.
func (r *WithdrawalRepository) List() ([]domain.Withdrawal, error) {
	query := `
		SELECT id, date, tool_id, tool_name, quantity, reason, supervisor, operator, rig_tag, team
		FROM withdrawals
		ORDER BY date DESC
	`

	ws := []domain.Withdrawal{}
	if err := r.db.Select(&ws, query); err != nil {
		return nil, gatewayError(err)
	}

	return ws, nil
}

func (r *WithdrawalRepository) FindByID(id uuid.UUID) (*domain.Withdrawal, error) {
	query := `
		SELECT id, date, tool_id, tool_name, quantity, reason, supervisor, operator, rig_tag, team
		FROM withdrawals
		WHERE id = $1
	`

	w := &domain.Withdrawal{}
	err := r.db.Get(w, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWithdrawalNotFound
		}
		return nil, gatewayError(err)
	}

	return w, nil
}

func (r *WithdrawalRepository) Insert(w *domain.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (id, date, tool_id, tool_name, quantity, reason, supervisor, operator, rig_tag, team)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(query,
		w.ID, w.Date, w.ToolID, w.ToolName, w.Quantity,
		w.Reason, w.Supervisor, w.Operator, w.RigTag, w.Team,
	)
	return gatewayError(err)
}

func (r *WithdrawalRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM withdrawals WHERE id = $1`, id)
	if err != nil {
		return gatewayError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return gatewayError(err)
	}
	if affected == 0 {
		return ErrWithdrawalNotFound
	}

	return nil
}
