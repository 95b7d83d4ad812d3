package mutations

import (
	"fmt"
	"slices"

	"inheritance-engine/internal/estate"
	"inheritance-engine/internal/model"
)

type personRef struct {
	PersonID string `json:"person_id"`
}

// RemovePersonHandler deletes a child or sibling. The fixed spouse and parent
// slots are cleared with set_person_status instead.
type RemovePersonHandler struct{}

func (h *RemovePersonHandler) Execute(state *estate.State, mutation *model.Mutation) ([]model.CalculationMessage, bool) {
	var props personRef
	if msgs := decodeProps(mutation, &props); msgs != nil {
		return msgs, false
	}

	released, err := state.EditFamily(func(f *model.Family) error {
		switch props.PersonID {
		case model.SpouseID, model.FatherID, model.MotherID:
			return &rejection{"PERSON_NOT_REMOVABLE", fmt.Sprintf("%s is a fixed slot; set its status to absent instead", props.PersonID)}
		}
		match := func(p model.Person) bool { return p.ID == props.PersonID }
		if i := slices.IndexFunc(f.Children, match); i >= 0 {
			f.Children = slices.Delete(f.Children, i, i+1)
			return nil
		}
		if i := slices.IndexFunc(f.Siblings, match); i >= 0 {
			f.Siblings = slices.Delete(f.Siblings, i, i+1)
			return nil
		}
		return &rejection{"PERSON_NOT_FOUND", fmt.Sprintf("Person %s does not exist", props.PersonID)}
	})
	return familyOutcome(released, err)
}
