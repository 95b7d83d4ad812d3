// Package heirs resolves statutory heirs and their shares from a family.
package heirs

import "inheritance-engine/internal/model"

// Resolve returns the spouse record (heir or placeholder) followed by the
// members of the highest non-empty priority class: children, then parents,
// then siblings, then the spouse alone. Only one class ever participates.
// The result is empty when nobody is alive to inherit.
func Resolve(f model.Family) []model.HeirRecord {
	spouseAlive := f.Spouse.Alive()

	var class []model.Person
	halving := false
	switch {
	case len(model.Living(f.Children)) > 0:
		class = model.Living(f.Children)
	case len(f.LivingParents()) > 0:
		class = f.LivingParents()
		halving = true
	case len(model.Living(f.Siblings)) > 0:
		class = model.Living(f.Siblings)
		halving = true
	case spouseAlive:
		return []model.HeirRecord{heir(f.Spouse, 1, 1)}
	default:
		return []model.HeirRecord{}
	}

	out := make([]model.HeirRecord, 0, len(class)+1)
	n := int64(len(class))

	switch {
	case !halving:
		// Spouse counts as one more child.
		if spouseAlive {
			n++
			out = append(out, heir(f.Spouse, 1, n))
		}
		for _, p := range class {
			out = append(out, heir(p, 1, n))
		}
	case spouseAlive:
		out = append(out, heir(f.Spouse, 1, 2))
		for _, p := range class {
			out = append(out, heir(p, 1, 2*n))
		}
	default:
		for _, p := range class {
			out = append(out, heir(p, 1, n))
		}
	}
	return withGhost(out, f.Spouse, spouseAlive)
}

// withGhost puts a spouse who exists but does not inherit at the head of the
// list. Other non-participants are left out.
func withGhost(out []model.HeirRecord, spouse model.Person, spouseAlive bool) []model.HeirRecord {
	if spouseAlive || !spouse.Exists() {
		return out
	}
	ghost := model.HeirRecord{Person: spouse, ShareDenominator: 1, ShareLabel: FormatShare(0)}
	return append([]model.HeirRecord{ghost}, out...)
}

func heir(p model.Person, num, den int64) model.HeirRecord {
	share := float64(num) / float64(den)
	return model.HeirRecord{
		Person:           p,
		IsHeir:           true,
		ShareNumerator:   num,
		ShareDenominator: den,
		LegalShare:       share,
		ShareLabel:       FormatShare(share),
	}
}

// ActiveIDs returns the ids of records with IsHeir set.
func ActiveIDs(records []model.HeirRecord) map[string]bool {
	ids := make(map[string]bool, len(records))
	for _, r := range records {
		if r.IsHeir {
			ids[r.ID] = true
		}
	}
	return ids
}
