// Package stock computes inventory quantity changes and pairs them with
// ledger entries. It is the only place where a tool's quantity may be
// recalculated; everything here is a pure transform over copies, callers
// persist the results.
package stock

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"stoper/internal/domain"
)

var (
	ErrInvalidQuantity   = errors.New("withdrawal quantity must be positive")
	ErrInsufficientStock = errors.New("withdrawal quantity exceeds stock on hand")
)

// Request carries the operator-facing fields of a withdrawal before the
// engine has stamped it against a tool.
type Request struct {
	ToolID     string
	Quantity   int
	Reason     domain.WithdrawalReason
	Supervisor string
	Operator   string
	RigTag     string
	Team       domain.Team
}

// ApplyResult pairs the updated tool with the ledger record it produced.
// Both must be persisted together or not at all. Critical is an advisory
// flag, not an error: the withdrawal itself succeeded.
type ApplyResult struct {
	Tool       domain.Tool
	Withdrawal domain.Withdrawal
	Critical   bool
}

// ReverseResult carries the tool with the withdrawn quantity restored and
// the id of the ledger row to delete.
type ReverseResult struct {
	Tool         domain.Tool
	WithdrawalID uuid.UUID
}

// AdjustResult is the outcome of a direct stock or threshold correction.
type AdjustResult struct {
	Tool     domain.Tool
	Critical bool
}

// ValidateRequest rejects a withdrawal before any mutation happens.
func ValidateRequest(tool domain.Tool, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > tool.Quantity {
		return ErrInsufficientStock
	}
	return nil
}

// Apply validates the request and, on success, returns the decremented
// tool together with a withdrawal whose ToolName is snapshotted at this
// instant. The input tool is not modified.
func Apply(tool domain.Tool, req Request, now time.Time) (ApplyResult, error) {
	if err := ValidateRequest(tool, req.Quantity); err != nil {
		return ApplyResult{}, err
	}

	tool.Quantity -= req.Quantity

	w := domain.Withdrawal{
		ID:         uuid.New(),
		Date:       now,
		ToolID:     tool.ID,
		ToolName:   tool.DisplayName(),
		Quantity:   req.Quantity,
		Reason:     req.Reason,
		Supervisor: req.Supervisor,
		Operator:   req.Operator,
		RigTag:     req.RigTag,
		Team:       req.Team,
	}

	return ApplyResult{
		Tool:       tool,
		Withdrawal: w,
		Critical:   tool.IsCritical(),
	}, nil
}

// Reverse restores a withdrawal's quantity to the tool currently on
// record and marks the ledger row for deletion. The restore recomputes
// from current state rather than replaying history, so there is no upper
// clamp and repeated reversals are not guarded against here.
func Reverse(tool domain.Tool, w domain.Withdrawal) ReverseResult {
	tool.Quantity += w.Quantity
	return ReverseResult{Tool: tool, WithdrawalID: w.ID}
}

// AdjustQuantity applies a manual recount. The floor is clamped at zero.
// The critical advisory fires only when the result sits at or below the
// threshold and stock actually went down; raising stock across the
// threshold stays silent.
func AdjustQuantity(tool domain.Tool, newQuantity int) AdjustResult {
	if newQuantity < 0 {
		newQuantity = 0
	}

	decreased := newQuantity < tool.Quantity
	tool.Quantity = newQuantity

	return AdjustResult{
		Tool:     tool,
		Critical: decreased && tool.IsCritical(),
	}
}

// AdjustThreshold moves the reorder line. Changing policy is not a stock
// event, so it never alerts.
func AdjustThreshold(tool domain.Tool, newThreshold int) AdjustResult {
	if newThreshold < 0 {
		newThreshold = 0
	}
	tool.MinThreshold = newThreshold
	return AdjustResult{Tool: tool}
}
