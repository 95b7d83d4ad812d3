// Package tax computes progressive estate tax with the quick-deduction bracket
// method. Amounts are TWD in whole units.
package tax

import (
	"github.com/shopspring/decimal"

	"inheritance-engine/internal/model"
)

const (
	Exemption       int64 = 13_330_000
	FuneralDeduct   int64 = 1_380_000
	SpouseDeduct    int64 = 5_530_000
	PerParentDeduct int64 = 1_380_000
	PerChildDeduct  int64 = 560_000
)

// Bracket applies to taxable amounts up to and including UpperBound. The last
// bracket has UpperBound 0 and catches everything above.
type Bracket struct {
	UpperBound     int64
	Rate           decimal.Decimal
	QuickDeduction int64
}

var Brackets = []Bracket{
	{UpperBound: 56_210_000, Rate: decimal.RequireFromString("0.10"), QuickDeduction: 0},
	{UpperBound: 112_420_000, Rate: decimal.RequireFromString("0.15"), QuickDeduction: 2_810_500},
	{UpperBound: 0, Rate: decimal.RequireFromString("0.20"), QuickDeduction: 8_431_500},
}

// LivingCounts are the headcounts that drive the conditional deductions.
type LivingCounts struct {
	SpouseAlive bool
	Parents     int
	Children    int
}

func LivingCountsOf(f model.Family) LivingCounts {
	return LivingCounts{
		SpouseAlive: f.Spouse.Alive(),
		Parents:     len(f.LivingParents()),
		Children:    len(model.Living(f.Children)),
	}
}

func DeductionsFor(counts LivingCounts, other int64) model.Deductions {
	d := model.Deductions{
		Exemption: Exemption,
		Funeral:   FuneralDeduct,
		Parents:   int64(counts.Parents) * PerParentDeduct,
		Children:  int64(counts.Children) * PerChildDeduct,
		Other:     max(other, 0),
	}
	if counts.SpouseAlive {
		d.Spouse = SpouseDeduct
	}
	return d
}

// Compute returns the estate tax on totalEstate.
func Compute(totalEstate int64, counts LivingCounts, other int64) model.TaxResult {
	d := DeductionsFor(counts, other)
	total := d.Total()
	taxable := max(totalEstate-total, 0)

	tax, rate := OnTaxable(taxable)
	return model.TaxResult{
		Tax:            tax,
		MarginalRate:   rate.InexactFloat64(),
		Taxable:        taxable,
		TotalDeduction: total,
		Deductions:     d,
	}
}

// OnTaxable applies the bracket table to an already-reduced taxable amount.
// The result is rounded half away from zero to a whole unit.
func OnTaxable(taxable int64) (int64, decimal.Decimal) {
	b := bracketFor(taxable)
	tax := decimal.NewFromInt(taxable).Mul(b.Rate).Sub(decimal.NewFromInt(b.QuickDeduction))
	if tax.IsNegative() {
		return 0, b.Rate
	}
	return tax.Round(0).IntPart(), b.Rate
}

func bracketFor(taxable int64) Bracket {
	for _, b := range Brackets {
		if b.UpperBound == 0 || taxable <= b.UpperBound {
			return b
		}
	}
	return Brackets[len(Brackets)-1]
}
