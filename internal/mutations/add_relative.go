package mutations

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"inheritance-engine/internal/estate"
	"inheritance-engine/internal/model"
)

type addRelativeProps struct {
	Name   string       `json:"name"`
	Gender model.Gender `json:"gender"`
}

// AddRelativeHandler appends a living child or sibling.
type AddRelativeHandler struct {
	Relation model.Relation
}

func (h *AddRelativeHandler) Execute(state *estate.State, mutation *model.Mutation) ([]model.CalculationMessage, bool) {
	var props addRelativeProps
	if msgs := decodeProps(mutation, &props); msgs != nil {
		return msgs, false
	}

	if props.Gender == "" {
		props.Gender = model.GenderMale
	}
	if !props.Gender.Valid() {
		return reject("INVALID_GENDER", fmt.Sprintf("Gender %q is not male or female", props.Gender))
	}

	released, err := state.EditFamily(func(f *model.Family) error {
		list := &f.Children
		label := "Child"
		if h.Relation == model.RelationSibling {
			list = &f.Siblings
			label = "Sibling"
		}
		name := strings.TrimSpace(props.Name)
		if name == "" {
			name = fmt.Sprintf("%s %d", label, len(*list)+1)
		}
		*list = append(*list, model.Person{
			ID:       uuid.New().String(),
			Name:     name,
			Gender:   props.Gender,
			Status:   model.StatusAlive,
			Relation: h.Relation,
		})
		return nil
	})
	return familyOutcome(released, err)
}

// familyOutcome turns the result of estate.State.EditFamily into messages.
func familyOutcome(released int, err error) ([]model.CalculationMessage, bool) {
	if err != nil {
		var r *rejection
		if errors.As(err, &r) {
			return reject(r.code, r.message)
		}
		return reject("REJECTED", err.Error())
	}
	if released > 0 {
		return []model.CalculationMessage{model.Warning(
			"ASSETS_RETURNED_TO_POOL",
			fmt.Sprintf("%d asset(s) returned to the pool because their holder is no longer an heir", released),
		)}, true
	}
	return nil, true
}
