package mutations

import (
	"fmt"

	"inheritance-engine/internal/estate"
	"inheritance-engine/internal/model"
)

type assetRef struct {
	AssetID string `json:"asset_id"`
}

type DeleteAssetHandler struct{}

func (h *DeleteAssetHandler) Execute(state *estate.State, mutation *model.Mutation) ([]model.CalculationMessage, bool) {
	var props assetRef
	if msgs := decodeProps(mutation, &props); msgs != nil {
		return msgs, false
	}

	a, ok := state.Asset(props.AssetID)
	if !ok {
		return reject("ASSET_NOT_FOUND", fmt.Sprintf("Asset %s does not exist", props.AssetID))
	}

	// Allocated assets must be moved back to the pool before removal.
	if !state.DeleteAsset(props.AssetID) {
		return reject("DELETE_REJECTED", fmt.Sprintf("Asset %s is allocated to %s; move it back to the pool first", a.ID, a.Location))
	}
	return nil, true
}
