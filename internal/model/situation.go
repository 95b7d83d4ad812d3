package model

// Situation is the mutable input state: family, assets and the manual "other"
// deduction.
type Situation struct {
	Family         Family  `json:"family"`
	Assets         []Asset `json:"assets"`
	OtherDeduction int64   `json:"other_deduction"`
}

// Summary is everything derived from a Situation. It is never mutated, only
// recomputed.
type Summary struct {
	Heirs             []HeirRecord     `json:"heirs"`
	Tax               TaxResult        `json:"tax"`
	TotalEstate       int64            `json:"total_estate"`
	AfterTaxEstate    int64            `json:"after_tax_estate"`
	PoolTotal         int64            `json:"pool_total"`
	AllocationStarted bool             `json:"allocation_started"`
	Allocations       []HeirAllocation `json:"allocations"`
}
