// Package reserved evaluates each heir's legally guaranteed minimum.
package reserved

import (
	"github.com/shopspring/decimal"

	"inheritance-engine/internal/model"
)

// Share is the reserved fraction of the estate for a statutory share.
func Share(legalShare float64) float64 {
	return legalShare / 2
}

// Amount is num/den halved and applied to the after-tax estate, exactly.
func Amount(num, den, afterTax int64) decimal.Decimal {
	if den == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(afterTax).Mul(decimal.NewFromInt(num)).Div(decimal.NewFromInt(2 * den))
}

// AllocationStarted reports whether any asset has left the pool.
func AllocationStarted(assets []model.Asset) bool {
	for _, a := range assets {
		if !a.Location.IsPool() {
			return true
		}
	}
	return false
}

// Evaluate returns one allocation status per heir. Only assets placed directly
// on the heir count toward Received; extended-slot placements are reported
// separately. No heir is under-reserved before allocation has started.
func Evaluate(records []model.HeirRecord, assets []model.Asset, afterTax int64) []model.HeirAllocation {
	direct := make(map[string]int64)
	extended := make(map[string]int64)
	for _, a := range assets {
		switch a.Location.Kind {
		case model.LocationHeir:
			direct[a.Location.HeirID] += a.Amount
		case model.LocationExtended:
			extended[a.Location.HeirID] += a.Amount
		}
	}

	started := AllocationStarted(assets)
	out := make([]model.HeirAllocation, 0, len(records))
	for _, r := range records {
		if !r.IsHeir {
			continue
		}
		minimum := Amount(r.ShareNumerator, r.ShareDenominator, afterTax)
		legal := decimal.NewFromInt(afterTax).Mul(decimal.NewFromInt(r.ShareNumerator)).Div(decimal.NewFromInt(r.ShareDenominator))
		received := direct[r.ID]
		out = append(out, model.HeirAllocation{
			HeirID:           r.ID,
			Received:         received,
			ExtendedReceived: extended[r.ID],
			LegalAmount:      legal.Round(0).IntPart(),
			ReservedAmount:   minimum.Ceil().IntPart(),
			UnderReserved:    started && decimal.NewFromInt(received).LessThan(minimum),
		})
	}
	return out
}
