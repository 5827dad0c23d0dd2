package clmath

import (
	"fmt"

	"cosmossdk.io/math"
)

// FloorLog10 returns floor(log10(d)) for strictly positive d.
func FloorLog10(d math.LegacyDec) (int64, error) {
	if d.IsNil() || !d.IsPositive() {
		return 0, fmt.Errorf("log10 undefined for %s", d)
	}
	// The raw value of a decimal is d scaled by 10^18, so its digit count
	// locates d's leading digit.
	digits := int64(len(d.BigInt().String()))
	return digits - 1 - math.LegacyPrecision, nil
}

// FloorInt floors d toward negative infinity to a whole number.
func FloorInt(d math.LegacyDec) math.Int {
	i := d.TruncateInt()
	if d.IsNegative() && !math.LegacyNewDecFromInt(i).Equal(d) {
		i = i.Sub(math.OneInt())
	}
	return i
}

// powTen returns 10^exp for exp >= 0.
func powTen(exp int64) math.Int {
	return math.NewIntWithDecimal(1, int(exp))
}
