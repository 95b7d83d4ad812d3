package heirs

import (
	"fmt"
	"math"
)

const (
	maxDenominator = 120
	fractionEps    = 1e-8
)

// FormatShare renders a share in [0,1] as the smallest-denominator fraction
// that matches it, falling back to a percentage.
func FormatShare(x float64) string {
	if math.Abs(x) < fractionEps {
		return "0"
	}
	if math.Abs(x-1) < fractionEps {
		return "1"
	}
	for den := 2; den <= maxDenominator; den++ {
		num := math.Round(x * float64(den))
		if math.Abs(num/float64(den)-x) < fractionEps {
			return fmt.Sprintf("%d/%d", int64(num), den)
		}
	}
	return fmt.Sprintf("%.2f%%", x*100)
}
