package mutations

import (
	"inheritance-engine/internal/estate"
	"inheritance-engine/internal/model"
)

type setOtherDeductionProps struct {
	Amount int64 `json:"amount"`
}

type SetOtherDeductionHandler struct{}

func (h *SetOtherDeductionHandler) Execute(state *estate.State, mutation *model.Mutation) ([]model.CalculationMessage, bool) {
	var props setOtherDeductionProps
	if msgs := decodeProps(mutation, &props); msgs != nil {
		return msgs, false
	}

	if props.Amount < 0 {
		return reject("INVALID_AMOUNT", "Other deduction must be non-negative")
	}

	state.SetOtherDeduction(props.Amount)
	return nil, true
}
