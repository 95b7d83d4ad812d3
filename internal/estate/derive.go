package estate

import (
	"inheritance-engine/internal/heirs"
	"inheritance-engine/internal/model"
	"inheritance-engine/internal/reserved"
	"inheritance-engine/internal/tax"
)

// Derive recomputes every derived figure from scratch.
func Derive(s model.Situation) model.Summary {
	records := heirs.Resolve(s.Family)

	var total, pool int64
	for _, a := range s.Assets {
		total += a.Amount
		if a.Location.IsPool() {
			pool += a.Amount
		}
	}

	taxRes := tax.Compute(total, tax.LivingCountsOf(s.Family), s.OtherDeduction)
	afterTax := total - taxRes.Tax

	return model.Summary{
		Heirs:             records,
		Tax:               taxRes,
		TotalEstate:       total,
		AfterTaxEstate:    afterTax,
		PoolTotal:         pool,
		AllocationStarted: reserved.AllocationStarted(s.Assets),
		Allocations:       reserved.Evaluate(records, s.Assets, afterTax),
	}
}
