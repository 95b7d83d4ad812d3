package mutations

import "inheritance-engine/internal/model"

var registry = map[string]MutationHandler{
	"add_asset":           &AddAssetHandler{},
	"move_asset":          &MoveAssetHandler{},
	"delete_asset":        &DeleteAssetHandler{},
	"set_asset_amount":    &SetAssetAmountHandler{},
	"reset_allocation":    &ResetAllocationHandler{},
	"add_child":           &AddRelativeHandler{Relation: model.RelationChild},
	"add_sibling":         &AddRelativeHandler{Relation: model.RelationSibling},
	"remove_person":       &RemovePersonHandler{},
	"set_person_status":   &SetPersonStatusHandler{},
	"update_person":       &UpdatePersonHandler{},
	"set_other_deduction": &SetOtherDeductionHandler{},
}

func Get(name string) (MutationHandler, bool) {
	h, ok := registry[name]
	return h, ok
}
