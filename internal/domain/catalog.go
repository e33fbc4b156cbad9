package domain

// InitialInventory is the fixed 11-entry tool catalog. It is seeded once
// when the tools table is empty; no tool is ever created or deleted
// afterwards.
var InitialInventory = []Tool{
	{ID: "t51-punho", Model: ModelT51, Type: TypePunho, Quantity: 15, MinThreshold: 5},
	{ID: "t51-haste", Model: ModelT51, Type: TypeHaste, Quantity: 20, MinThreshold: 8},
	{ID: "t51-bit35", Model: ModelT51, Type: TypeBit35, Quantity: 30, MinThreshold: 10},
	{ID: "t51-bit45", Model: ModelT51, Type: TypeBit45, Quantity: 25, MinThreshold: 10},

	{ID: "t50-punho", Model: ModelT50, Type: TypePunho, Quantity: 10, MinThreshold: 3},
	{ID: "t50-haste", Model: ModelT50, Type: TypeHaste, Quantity: 12, MinThreshold: 4},
	{ID: "t50-bit45", Model: ModelT50, Type: TypeBit45, Quantity: 18, MinThreshold: 6},

	{ID: "t45-punho", Model: ModelT45, Type: TypePunho, Quantity: 12, MinThreshold: 4},
	{ID: "t45-haste", Model: ModelT45, Type: TypeHaste, Quantity: 15, MinThreshold: 5},
	{ID: "t45-bit35", Model: ModelT45, Type: TypeBit35, Quantity: 22, MinThreshold: 8},
	{ID: "t45-bit45", Model: ModelT45, Type: TypeBit45, Quantity: 20, MinThreshold: 8},
}

// Reasons lists every operational withdrawal reason, in report order.
var Reasons = []WithdrawalReason{
	ReasonWear,
	ReasonBreakage,
	ReasonStuckInHole,
	ReasonCrack,
	ReasonBentRod,
	ReasonCarouselTop,
}

var Supervisors = []string{"Emanuel", "Edson", "Leandro", "Henrique"}

var RigTags = []string{"PH14", "PH21", "PH22", "PH24"}

var Teams = []Team{TeamA, TeamB, TeamC, TeamD}
