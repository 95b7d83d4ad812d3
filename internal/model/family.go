package model

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Status of a role slot. Absent means the slot was never populated.
type Status string

const (
	StatusAbsent   Status = "absent"
	StatusAlive    Status = "alive"
	StatusDeceased Status = "deceased"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAbsent, StatusAlive, StatusDeceased:
		return true
	}
	return false
}

type Relation string

const (
	RelationSpouse  Relation = "spouse"
	RelationParent  Relation = "parent"
	RelationChild   Relation = "child"
	RelationSibling Relation = "sibling"
)

// Fixed ids of the single-occupancy slots.
const (
	SpouseID = "spouse"
	FatherID = "father"
	MotherID = "mother"
)

type Person struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Gender      Gender   `json:"gender"`
	Status      Status   `json:"status"`
	Relation    Relation `json:"relation"`
	HasSpouse   bool     `json:"has_spouse,omitempty"`
	HasChildren bool     `json:"has_children,omitempty"`
	ChildCount  int      `json:"child_count,omitempty"`
}

func (p Person) Alive() bool {
	return p.Status == StatusAlive
}

// Exists reports whether the slot is populated, living or not.
func (p Person) Exists() bool {
	return p.Status != StatusAbsent && p.Status != ""
}

// Family holds the fixed spouse/father/mother slots and the ordered child and
// sibling sequences. Order only matters for display numbering.
type Family struct {
	Spouse   Person   `json:"spouse"`
	Father   Person   `json:"father"`
	Mother   Person   `json:"mother"`
	Children []Person `json:"children"`
	Siblings []Person `json:"siblings"`
}

func NewFamily() Family {
	return Family{
		Spouse:   Person{ID: SpouseID, Name: "Spouse", Gender: GenderFemale, Status: StatusAbsent, Relation: RelationSpouse},
		Father:   Person{ID: FatherID, Name: "Father", Gender: GenderMale, Status: StatusAbsent, Relation: RelationParent},
		Mother:   Person{ID: MotherID, Name: "Mother", Gender: GenderFemale, Status: StatusAbsent, Relation: RelationParent},
		Children: []Person{},
		Siblings: []Person{},
	}
}

// Normalize fills in the fixed slot ids and relations and replaces nil
// sequences, so a partially specified family from the wire behaves like one
// built with NewFamily.
func (f *Family) Normalize() {
	fixSlot(&f.Spouse, SpouseID, RelationSpouse)
	fixSlot(&f.Father, FatherID, RelationParent)
	fixSlot(&f.Mother, MotherID, RelationParent)
	if f.Children == nil {
		f.Children = []Person{}
	}
	if f.Siblings == nil {
		f.Siblings = []Person{}
	}
	for i := range f.Children {
		f.Children[i].Relation = RelationChild
		if f.Children[i].Status == "" {
			f.Children[i].Status = StatusAlive
		}
	}
	for i := range f.Siblings {
		f.Siblings[i].Relation = RelationSibling
		if f.Siblings[i].Status == "" {
			f.Siblings[i].Status = StatusAlive
		}
	}
}

func fixSlot(p *Person, id string, rel Relation) {
	p.ID = id
	p.Relation = rel
	if p.Status == "" {
		p.Status = StatusAbsent
	}
}

// Person returns a pointer to the person with the given id, or nil.
func (f *Family) Person(id string) *Person {
	switch id {
	case SpouseID:
		return &f.Spouse
	case FatherID:
		return &f.Father
	case MotherID:
		return &f.Mother
	}
	for i := range f.Children {
		if f.Children[i].ID == id {
			return &f.Children[i]
		}
	}
	for i := range f.Siblings {
		if f.Siblings[i].ID == id {
			return &f.Siblings[i]
		}
	}
	return nil
}

// Clone returns a deep copy.
func (f Family) Clone() Family {
	out := f
	out.Children = append([]Person{}, f.Children...)
	out.Siblings = append([]Person{}, f.Siblings...)
	return out
}

// LivingParents returns the living father and mother, in that order.
func (f Family) LivingParents() []Person {
	var out []Person
	if f.Father.Alive() {
		out = append(out, f.Father)
	}
	if f.Mother.Alive() {
		out = append(out, f.Mother)
	}
	return out
}

func Living(people []Person) []Person {
	var out []Person
	for _, p := range people {
		if p.Alive() {
			out = append(out, p)
		}
	}
	return out
}
