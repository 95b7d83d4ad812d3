package model

// HeirRecord is a resolved candidate person. Records with IsHeir false carry a
// zero share and are only rendered as placeholders.
type HeirRecord struct {
	Person
	IsHeir           bool    `json:"is_heir"`
	ShareNumerator   int64   `json:"share_numerator"`
	ShareDenominator int64   `json:"share_denominator"`
	LegalShare       float64 `json:"legal_share"`
	ShareLabel       string  `json:"share_label"`
}

// HeirAllocation is the per-heir allocation status used for warning styling.
type HeirAllocation struct {
	HeirID           string `json:"heir_id"`
	Received         int64  `json:"received"`
	ExtendedReceived int64  `json:"extended_received"`
	LegalAmount      int64  `json:"legal_amount"`
	ReservedAmount   int64  `json:"reserved_amount"`
	UnderReserved    bool   `json:"under_reserved"`
}

// Deductions itemises the estate tax deductions.
type Deductions struct {
	Exemption int64 `json:"exemption"`
	Funeral   int64 `json:"funeral"`
	Spouse    int64 `json:"spouse"`
	Parents   int64 `json:"parents"`
	Children  int64 `json:"children"`
	Other     int64 `json:"other"`
}

func (d Deductions) Total() int64 {
	return d.Exemption + d.Funeral + d.Spouse + d.Parents + d.Children + d.Other
}

type TaxResult struct {
	Tax            int64      `json:"tax"`
	MarginalRate   float64    `json:"marginal_rate"`
	Taxable        int64      `json:"taxable"`
	TotalDeduction int64      `json:"total_deduction"`
	Deductions     Deductions `json:"deductions"`
}
