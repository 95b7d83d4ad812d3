package mutations

import (
	"inheritance-engine/internal/estate"
	"inheritance-engine/internal/model"
)

type ResetAllocationHandler struct{}

func (h *ResetAllocationHandler) Execute(state *estate.State, _ *model.Mutation) ([]model.CalculationMessage, bool) {
	state.ResetAllocation()
	return nil, true
}
