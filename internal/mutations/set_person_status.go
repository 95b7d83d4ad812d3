package mutations

import (
	"fmt"

	"inheritance-engine/internal/estate"
	"inheritance-engine/internal/model"
)

type setPersonStatusProps struct {
	PersonID string       `json:"person_id"`
	Status   model.Status `json:"status"`
}

type SetPersonStatusHandler struct{}

func (h *SetPersonStatusHandler) Execute(state *estate.State, mutation *model.Mutation) ([]model.CalculationMessage, bool) {
	var props setPersonStatusProps
	if msgs := decodeProps(mutation, &props); msgs != nil {
		return msgs, false
	}

	if !props.Status.Valid() {
		return reject("INVALID_STATUS", fmt.Sprintf("Status %q is not absent, alive or deceased", props.Status))
	}

	released, err := state.EditFamily(func(f *model.Family) error {
		p := f.Person(props.PersonID)
		if p == nil {
			return &rejection{"PERSON_NOT_FOUND", fmt.Sprintf("Person %s does not exist", props.PersonID)}
		}
		// Children and siblings exist by being listed; only fixed slots can be absent.
		if props.Status == model.StatusAbsent && (p.Relation == model.RelationChild || p.Relation == model.RelationSibling) {
			return &rejection{"INVALID_STATUS", "Children and siblings are removed with remove_person, not marked absent"}
		}
		p.Status = props.Status
		return nil
	})
	return familyOutcome(released, err)
}
