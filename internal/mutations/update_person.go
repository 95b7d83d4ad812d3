package mutations

import (
	"fmt"
	"strings"

	"inheritance-engine/internal/estate"
	"inheritance-engine/internal/model"
)

type updatePersonProps struct {
	PersonID    string        `json:"person_id"`
	Name        *string       `json:"name,omitempty"`
	Gender      *model.Gender `json:"gender,omitempty"`
	HasSpouse   *bool         `json:"has_spouse,omitempty"`
	HasChildren *bool         `json:"has_children,omitempty"`
	ChildCount  *int          `json:"child_count,omitempty"`
}

// UpdatePersonHandler edits display details and the heir's own extended
// family, which only shapes the extended slots offered for allocation.
type UpdatePersonHandler struct{}

func (h *UpdatePersonHandler) Execute(state *estate.State, mutation *model.Mutation) ([]model.CalculationMessage, bool) {
	var props updatePersonProps
	if msgs := decodeProps(mutation, &props); msgs != nil {
		return msgs, false
	}

	if props.Name != nil && strings.TrimSpace(*props.Name) == "" {
		return reject("INVALID_NAME", "Name is empty or blank")
	}
	if props.Gender != nil && !props.Gender.Valid() {
		return reject("INVALID_GENDER", fmt.Sprintf("Gender %q is not male or female", *props.Gender))
	}
	if props.ChildCount != nil && *props.ChildCount < 0 {
		return reject("INVALID_CHILD_COUNT", "Child count must be non-negative")
	}

	released, err := state.EditFamily(func(f *model.Family) error {
		p := f.Person(props.PersonID)
		if p == nil {
			return &rejection{"PERSON_NOT_FOUND", fmt.Sprintf("Person %s does not exist", props.PersonID)}
		}
		if props.Name != nil {
			p.Name = strings.TrimSpace(*props.Name)
		}
		if props.Gender != nil {
			p.Gender = *props.Gender
		}
		if props.HasSpouse != nil {
			p.HasSpouse = *props.HasSpouse
		}
		if props.HasChildren != nil {
			p.HasChildren = *props.HasChildren
			if !p.HasChildren {
				p.ChildCount = 0
			}
		}
		if props.ChildCount != nil {
			p.ChildCount = *props.ChildCount
			p.HasChildren = p.ChildCount > 0
		}
		return nil
	})
	return familyOutcome(released, err)
}
