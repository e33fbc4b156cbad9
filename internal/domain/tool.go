package domain

type ToolModel string

const (
	ModelT45 ToolModel = "T45"
	ModelT50 ToolModel = "T50"
	ModelT51 ToolModel = "T51"
)

type ToolType string

const (
	TypePunho ToolType = "Punho"
	TypeHaste ToolType = "Haste"
	TypeBit35 ToolType = "Bit 3,5''"
	TypeBit45 ToolType = "Bit 4,5''"
)

// Tool is a stocked drilling consumable identified by model and type.
// The catalog is fixed: tools are seeded once and only their quantity
// and minimum threshold change afterwards.
type Tool struct {
	ID           string    `json:"id" db:"id"`
	Model        ToolModel `json:"model" db:"model"`
	Type         ToolType  `json:"type" db:"type"`
	Quantity     int       `json:"quantity" db:"quantity"`
	MinThreshold int       `json:"minThreshold" db:"min_threshold"`
}

// DisplayName is the "type model" label captured on withdrawals.
func (t *Tool) DisplayName() string {
	return string(t.Type) + " " + string(t.Model)
}

// IsCritical reports whether stock has fallen to or below the minimum
// threshold. The boundary itself counts as critical.
func (t *Tool) IsCritical() bool {
	return t.Quantity <= t.MinThreshold
}

func (m ToolModel) Valid() bool {
	switch m {
	case ModelT45, ModelT50, ModelT51:
		return true
	}
	return false
}

func (tt ToolType) Valid() bool {
	switch tt {
	case TypePunho, TypeHaste, TypeBit35, TypeBit45:
		return true
	}
	return false
}
