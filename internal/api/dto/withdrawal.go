package dto

import (
	"time"

	"stoper/internal/domain"
	"stoper/internal/stock"
)

type CreateWithdrawalRequest struct {
	ToolID     string `json:"toolId" validate:"required"`
	Quantity   int    `json:"quantity"`
	Reason     string `json:"reason" validate:"required"`
	Supervisor string `json:"supervisor" validate:"required"`
	Operator   string `json:"operator"`
	RigTag     string `json:"rigTag" validate:"required"`
	Team       string `json:"team" validate:"required"`
}

type Withdrawal struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	ToolID     string    `json:"toolId"`
	ToolName   string    `json:"toolName"`
	Quantity   int       `json:"quantity"`
	Reason     string    `json:"reason"`
	Supervisor string    `json:"supervisor"`
	Operator   string    `json:"operator"`
	RigTag     string    `json:"rigTag"`
	Team       string    `json:"team"`
}

// WithdrawalResult is the outcome of registering a withdrawal: the
// ledger record, the decremented tool and the critical advisory.
type WithdrawalResult struct {
	Withdrawal Withdrawal `json:"withdrawal"`
	Tool       Tool       `json:"tool"`
	Critical   bool       `json:"critical"`
}

// ReversalResult carries the tool with the withdrawn quantity restored.
type ReversalResult struct {
	Tool Tool `json:"tool"`
}

func WithdrawalFromDomain(w *domain.Withdrawal) Withdrawal {
	return Withdrawal{
		ID:         w.ID.String(),
		Date:       w.Date,
		ToolID:     w.ToolID,
		ToolName:   w.ToolName,
		Quantity:   w.Quantity,
		Reason:     string(w.Reason),
		Supervisor: w.Supervisor,
		Operator:   w.Operator,
		RigTag:     w.RigTag,
		Team:       string(w.Team),
	}
}

func WithdrawalsFromDomain(ws []domain.Withdrawal) []Withdrawal {
	out := make([]Withdrawal, 0, len(ws))
	for i := range ws {
		out = append(out, WithdrawalFromDomain(&ws[i]))
	}
	return out
}

func WithdrawalResultFromStock(r *stock.ApplyResult) WithdrawalResult {
	return WithdrawalResult{
		Withdrawal: WithdrawalFromDomain(&r.Withdrawal),
		Tool:       ToolFromDomain(&r.Tool),
		Critical:   r.Critical,
	}
}
