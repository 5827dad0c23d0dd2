package clmath

import (
	"cosmossdk.io/math"
)

// PriceToTick returns the largest tick whose price does not exceed price.
//
// The pool's tick grid is linear between consecutive powers of ten, with
// 9e6 ticks per decade. With e = floor(log10(price)) the tick is
// 1e6*(9e-1) + price*10^(6-e), floored. The second term is computed as a
// division for e > 6 so that no intermediate leaves the decimal's range.
func PriceToTick(price math.LegacyDec) (int64, error) {
	e, err := FloorLog10(price)
	if err != nil {
		return 0, err
	}
	base := math.NewInt(9*e - 1).Mul(powTen(6))
	var lin math.LegacyDec
	if e <= 6 {
		lin = price.MulInt(powTen(6 - e))
	} else {
		lin = price.QuoInt(powTen(e - 6))
	}
	return FloorInt(lin).Add(base).Int64(), nil
}

// MinValidTick returns the smallest multiple of spacing not below minTick.
func MinValidTick(spacing uint64, minTick int64) int64 {
	s := int64(spacing)
	// minTick is negative, so truncating division already rounds up.
	return (minTick / s) * s
}

// MaxValidTick returns the largest multiple of spacing not above maxTick.
func MaxValidTick(spacing uint64, maxTick int64) int64 {
	s := int64(spacing)
	return (maxTick / s) * s
}

// ClosestValidTick rounds tick to the nearest multiple of spacing, ties away
// from zero, clamped into [MinValidTick, MaxValidTick].
func ClosestValidTick(tick int64, spacing uint64, minTick, maxTick int64) int64 {
	s := int64(spacing)
	q, r := tick/s, tick%s
	switch {
	case 2*r >= s:
		q++
	case 2*r <= -s:
		q--
	}
	t := q * s
	if lo := MinValidTick(spacing, minTick); t < lo {
		return lo
	}
	if hi := MaxValidTick(spacing, maxTick); t > hi {
		return hi
	}
	return t
}
