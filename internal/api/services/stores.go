package services

import (
	"github.com/google/uuid"

	"stoper/internal/domain"
)

// ToolStore is the inventory side of the persistence gateway.
type ToolStore interface {
	List() ([]domain.Tool, error)
	FindByID(id string) (*domain.Tool, error)
	Count() (int, error)
	Seed(tools []domain.Tool) error
	UpdateQuantity(id string, quantity int) (*domain.Tool, error)
	UpdateThreshold(id string, threshold int) (*domain.Tool, error)
}

// WithdrawalStore is the ledger side of the persistence gateway.
type WithdrawalStore interface {
	List() ([]domain.Withdrawal, error)
	FindByID(id uuid.UUID) (*domain.Withdrawal, error)
	Insert(w *domain.Withdrawal) error
	Delete(id uuid.UUID) error
}
