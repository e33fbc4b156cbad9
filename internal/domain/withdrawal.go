package domain

import (
	"time"

	"github.com/google/uuid"
)

type WithdrawalReason string

const (
	ReasonWear        WithdrawalReason = "Desgaste"
	ReasonBreakage    WithdrawalReason = "Quebra em operação"
	ReasonStuckInHole WithdrawalReason = "Preso no Furo"
	ReasonCrack       WithdrawalReason = "Trinca"
	ReasonBentRod     WithdrawalReason = "Haste empenada"
	ReasonCarouselTop WithdrawalReason = "Completar carrosel"
)

type Team string

const (
	TeamA Team = "Turma A"
	TeamB Team = "Turma B"
	TeamC Team = "Turma C"
	TeamD Team = "Turma D"
)

// Withdrawal is an immutable ledger record of stock leaving inventory.
// ToolName is a point-in-time snapshot of the tool's display name taken
// when the withdrawal was applied; it is never recomputed, so later
// catalog renames do not rewrite history.
type Withdrawal struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	Date       time.Time        `json:"date" db:"date"`
	ToolID     string           `json:"toolId" db:"tool_id"`
	ToolName   string           `json:"toolName" db:"tool_name"`
	Quantity   int              `json:"quantity" db:"quantity"`
	Reason     WithdrawalReason `json:"reason" db:"reason"`
	Supervisor string           `json:"supervisor" db:"supervisor"`
	Operator   string           `json:"operator" db:"operator"`
	RigTag     string           `json:"rigTag" db:"rig_tag"`
	Team       Team             `json:"team" db:"team"`
}

func (r WithdrawalReason) Valid() bool {
	for _, known := range Reasons {
		if r == known {
			return true
		}
	}
	return false
}

func (t Team) Valid() bool {
	switch t {
	case TeamA, TeamB, TeamC, TeamD:
		return true
	}
	return false
}
