package mutations

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"inheritance-engine/internal/estate"
	"inheritance-engine/internal/ledger"
	"inheritance-engine/internal/model"
)

type addAssetProps struct {
	Type   model.AssetType `json:"type"`
	Amount json.RawMessage `json:"amount"`
	Unit   string          `json:"unit,omitempty"`
	Name   string          `json:"name,omitempty"`
}

type AddAssetHandler struct{}

func (h *AddAssetHandler) Execute(state *estate.State, mutation *model.Mutation) ([]model.CalculationMessage, bool) {
	var props addAssetProps
	if msgs := decodeProps(mutation, &props); msgs != nil {
		return msgs, false
	}

	amount, err := ledger.ConvertAmount(numberText(props.Amount), props.Unit)
	if err != nil {
		return reject("INVALID_AMOUNT", err.Error())
	}

	_, err = state.AddAsset(props.Type, amount, props.Name)
	switch {
	case errors.Is(err, ledger.ErrInvalidAssetType):
		return reject("INVALID_ASSET_TYPE", fmt.Sprintf("Asset type %q is not one of cash, stock, property", props.Type))
	case err != nil:
		return reject("INVALID_AMOUNT", err.Error())
	}

	return nil, true
}
