package ledger

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Input units accepted for new asset amounts.
const (
	UnitDollar      = "dollar"
	UnitTenThousand = "ten_thousand"
)

var maxAmount = decimal.NewFromInt(math.MaxInt64)

var units = map[string]int64{
	"":              1,
	UnitDollar:      1,
	UnitTenThousand: 10_000,
}

// ConvertAmount parses a user-entered decimal amount in the given unit and
// returns it in minor units. The result must be a positive whole number.
func ConvertAmount(raw, unit string) (int64, error) {
	mul, ok := units[unit]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidAmount, unit)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	d = d.Mul(decimal.NewFromInt(mul))
	if !d.IsInteger() || !d.IsPositive() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, d.String())
	}
	if d.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: %s exceeds %d", ErrInvalidAmount, d.String(), int64(math.MaxInt64))
	}
	return d.IntPart(), nil
}
