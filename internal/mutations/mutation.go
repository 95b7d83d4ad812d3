package mutations

import (
	"bytes"

	json "github.com/goccy/go-json"

	"inheritance-engine/internal/estate"
	"inheritance-engine/internal/model"
)

// MutationHandler executes one user action against the estate state.
// Rejections come back as WARNING messages with applied=false and leave the
// state untouched. A CRITICAL message means the request itself is broken.
type MutationHandler interface {
	Execute(state *estate.State, mutation *model.Mutation) (msgs []model.CalculationMessage, applied bool)
}

func decodeProps(mutation *model.Mutation, v any) []model.CalculationMessage {
	raw := bytes.TrimSpace(mutation.MutationProperties)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return []model.CalculationMessage{model.Critical("INVALID_PROPERTIES", "Invalid mutation_properties: "+err.Error())}
	}
	return nil
}

// numberText accepts an amount given either as a JSON number or a string.
func numberText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

func reject(code, message string) ([]model.CalculationMessage, bool) {
	return []model.CalculationMessage{model.Warning(code, message)}, false
}

// rejection lets a family edit abort with a coded message.
type rejection struct {
	code    string
	message string
}

func (r *rejection) Error() string {
	return r.message
}
