package mutations

import (
	"fmt"

	"inheritance-engine/internal/estate"
	"inheritance-engine/internal/model"
)

type moveAssetProps struct {
	AssetID string `json:"asset_id"`
	Target  string `json:"target"`
}

type MoveAssetHandler struct{}

func (h *MoveAssetHandler) Execute(state *estate.State, mutation *model.Mutation) ([]model.CalculationMessage, bool) {
	var props moveAssetProps
	if msgs := decodeProps(mutation, &props); msgs != nil {
		return msgs, false
	}

	if _, ok := state.Asset(props.AssetID); !ok {
		return reject("ASSET_NOT_FOUND", fmt.Sprintf("Asset %s does not exist", props.AssetID))
	}

	target, err := model.ParseLocation(props.Target)
	if err != nil {
		return reject("PLACEMENT_REJECTED", err.Error())
	}

	if !state.MoveAsset(props.AssetID, target) {
		return reject("PLACEMENT_REJECTED", fmt.Sprintf("%s is not a legal heir", props.Target))
	}
	return nil, true
}
