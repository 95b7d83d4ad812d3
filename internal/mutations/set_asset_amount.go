package mutations

import (
	"fmt"

	"inheritance-engine/internal/estate"
	"inheritance-engine/internal/model"
)

type setAssetAmountProps struct {
	AssetID string `json:"asset_id"`
	Amount  int64  `json:"amount"`
}

type SetAssetAmountHandler struct{}

func (h *SetAssetAmountHandler) Execute(state *estate.State, mutation *model.Mutation) ([]model.CalculationMessage, bool) {
	var props setAssetAmountProps
	if msgs := decodeProps(mutation, &props); msgs != nil {
		return msgs, false
	}

	if !state.SetAmount(props.AssetID, props.Amount) {
		return reject("ASSET_NOT_FOUND", fmt.Sprintf("Asset %s does not exist", props.AssetID))
	}

	if props.Amount < 0 {
		return []model.CalculationMessage{model.Warning("NEGATIVE_AMOUNT_CLAMPED", "Amount for asset "+props.AssetID+" clamped to 0")}, true
	}
	return nil, true
}
