package dto

import (
	"stoper/internal/domain"
	"stoper/internal/stock"
)

type Tool struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Type         string `json:"type"`
	Quantity     int    `json:"quantity"`
	MinThreshold int    `json:"minThreshold"`
	Critical     bool   `json:"critical"`
}

type AdjustQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type AdjustThresholdRequest struct {
	Threshold int `json:"threshold"`
}

// AdjustResult reports an inventory correction plus the advisory flag
// the presentation layer turns into a toast.
type AdjustResult struct {
	Tool     Tool `json:"tool"`
	Critical bool `json:"critical"`
}

func ToolFromDomain(t *domain.Tool) Tool {
	return Tool{
		ID:           t.ID,
		Model:        string(t.Model),
		Type:         string(t.Type),
		Quantity:     t.Quantity,
		MinThreshold: t.MinThreshold,
		Critical:     t.IsCritical(),
	}
}

func ToolsFromDomain(tools []domain.Tool) []Tool {
	out := make([]Tool, 0, len(tools))
	for i := range tools {
		out = append(out, ToolFromDomain(&tools[i]))
	}
	return out
}

func AdjustResultFromStock(r *stock.AdjustResult) AdjustResult {
	return AdjustResult{
		Tool:     ToolFromDomain(&r.Tool),
		Critical: r.Critical,
	}
}
