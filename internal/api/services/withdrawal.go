package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"stoper/internal/domain"
	"stoper/internal/stock"
)

var (
	ErrInvalidInput = errors.New("invalid withdrawal input")

	// ErrPartialReconciliation means one of the paired writes landed and
	// the compensating write failed, leaving the ledger and the stock
	// count out of step. It is never swallowed; the operator has to
	// reconcile by hand.
	ErrPartialReconciliation = errors.New("ledger and stock are out of step")
)

// RegisterInput is the operator-submitted withdrawal request.
type RegisterInput struct {
	ToolID     string `valid:"required"`
	Quantity   int
	Reason     string `valid:"required"`
	Supervisor string `valid:"required"`
	Operator   string
	RigTag     string `valid:"required"`
	Team       string `valid:"required"`
}

type WithdrawalService struct {
	toolStore       ToolStore
	withdrawalStore WithdrawalStore
	now             func() time.Time
}

func NewWithdrawalService(toolStore ToolStore, withdrawalStore WithdrawalStore) *WithdrawalService {
	return &WithdrawalService{
		toolStore:       toolStore,
		withdrawalStore: withdrawalStore,
		now:             time.Now,
	}
}

// Register validates the request, applies it through the reconciliation
// engine and persists the paired writes. The ledger row goes in first;
// if the stock update then fails, the row is deleted again so the caller
// never sees a half-applied withdrawal.
func (s *WithdrawalService) Register(ctx context.Context, input RegisterInput) (*stock.ApplyResult, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	tool, err := s.toolStore.FindByID(input.ToolID)
	if err != nil {
		return nil, err
	}

	result, err := stock.Apply(*tool, stock.Request{
		ToolID:     input.ToolID,
		Quantity:   input.Quantity,
		Reason:     domain.WithdrawalReason(input.Reason),
		Supervisor: input.Supervisor,
		Operator:   input.Operator,
		RigTag:     input.RigTag,
		Team:       domain.Team(input.Team),
	}, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.withdrawalStore.Insert(&result.Withdrawal); err != nil {
		return nil, err
	}

	updated, err := s.toolStore.UpdateQuantity(result.Tool.ID, result.Tool.Quantity)
	if err != nil {
		if delErr := s.withdrawalStore.Delete(result.Withdrawal.ID); delErr != nil {
			return nil, fmt.Errorf("%w: stock update failed (%v) and ledger rollback failed (%v)",
				ErrPartialReconciliation, err, delErr)
		}
		return nil, err
	}

	result.Tool = *updated
	return &result, nil
}

// Reverse undoes a withdrawal: the tool gets the quantity back and the
// ledger row is deleted. The restore lands first; if the delete then
// fails, the restore is compensated away again.
func (s *WithdrawalService) Reverse(ctx context.Context, id uuid.UUID) (*stock.ReverseResult, error) {
	w, err := s.withdrawalStore.FindByID(id)
	if err != nil {
		return nil, err
	}

	tool, err := s.toolStore.FindByID(w.ToolID)
	if err != nil {
		return nil, err
	}

	result := stock.Reverse(*tool, *w)

	restored, err := s.toolStore.UpdateQuantity(result.Tool.ID, result.Tool.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.withdrawalStore.Delete(result.WithdrawalID); err != nil {
		if _, undoErr := s.toolStore.UpdateQuantity(tool.ID, tool.Quantity); undoErr != nil {
			return nil, fmt.Errorf("%w: ledger delete failed (%v) and stock rollback failed (%v)",
				ErrPartialReconciliation, err, undoErr)
		}
		return nil, err
	}

	result.Tool = *restored
	return &result, nil
}

// List returns the full ledger, newest first.
func (s *WithdrawalService) List(ctx context.Context) ([]domain.Withdrawal, error) {
	return s.withdrawalStore.List()
}

func (s *WithdrawalService) validateInput(input RegisterInput) error {
	type registerValidator RegisterInput

	v := registerValidator(input)
	if _, err := govalidator.ValidateStruct(v); err != nil {
		return ErrInvalidInput
	}

	if !domain.WithdrawalReason(input.Reason).Valid() {
		return ErrInvalidInput
	}
	if !domain.Team(input.Team).Valid() {
		return ErrInvalidInput
	}
	return nil
}
