package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Weight is a decimal constrained to the closed interval [0, 1]. It is used
// for the full range allocation weight, fee rates, and withdrawal proportions.
type Weight struct {
	math.LegacyDec
}

// NewWeight wraps d as a Weight, failing if d is outside [0, 1].
func NewWeight(d math.LegacyDec) (Weight, error) {
	w := Weight{d}
	if err := w.Validate(); err != nil {
		return Weight{}, err
	}
	return w, nil
}

// NewWeightFromString parses s as a decimal and wraps it as a Weight.
func NewWeightFromString(s string) (Weight, error) {
	d, err := math.LegacyNewDecFromStr(s)
	if err != nil {
		return Weight{}, fmt.Errorf("invalid weight %q: %w", s, err)
	}
	return NewWeight(d)
}

// MustNewWeight wraps d as a Weight and panics if it is out of range. It is
// intended for hard-coded values and tests.
func MustNewWeight(d math.LegacyDec) Weight {
	w, err := NewWeight(d)
	if err != nil {
		panic(err)
	}
	return w
}

// ZeroWeight returns the weight 0.
func ZeroWeight() Weight { return Weight{math.LegacyZeroDec()} }

// OneWeight returns the weight 1.
func OneWeight() Weight { return Weight{math.LegacyOneDec()} }

// IsOne reports whether the weight is exactly 1.
func (w Weight) IsOne() bool { return w.LegacyDec.Equal(math.LegacyOneDec()) }

// Validate checks that the weight is initialized and within [0, 1].
func (w Weight) Validate() error {
	if w.IsNil() {
		return fmt.Errorf("weight is nil")
	}
	if w.IsNegative() || w.GT(math.LegacyOneDec()) {
		return fmt.Errorf("weight %s is outside [0, 1]", w)
	}
	return nil
}

// PriceFactor is a decimal constrained to [1, 1e18]. A factor of exactly 1
// disables the position kind it parameterizes. The upper bound keeps price
// band products inside the decimal's range for any pool price.
type PriceFactor struct {
	math.LegacyDec
}

// maxPriceFactor bounds price factors so that price*factor stays computable
// for every price the tick domain can express.
var maxPriceFactor = math.LegacyNewDecFromInt(math.NewIntWithDecimal(1, 18))

// NewPriceFactor wraps d as a PriceFactor, failing if d < 1.
func NewPriceFactor(d math.LegacyDec) (PriceFactor, error) {
	f := PriceFactor{d}
	if err := f.Validate(); err != nil {
		return PriceFactor{}, err
	}
	return f, nil
}

// NewPriceFactorFromString parses s as a decimal and wraps it as a PriceFactor.
func NewPriceFactorFromString(s string) (PriceFactor, error) {
	d, err := math.LegacyNewDecFromStr(s)
	if err != nil {
		return PriceFactor{}, fmt.Errorf("invalid price factor %q: %w", s, err)
	}
	return NewPriceFactor(d)
}

// MustNewPriceFactor wraps d as a PriceFactor and panics if it is out of
// range. It is intended for hard-coded values and tests.
func MustNewPriceFactor(d math.LegacyDec) PriceFactor {
	f, err := NewPriceFactor(d)
	if err != nil {
		panic(err)
	}
	return f
}

// OnePriceFactor returns the factor 1, the disabled sentinel.
func OnePriceFactor() PriceFactor { return PriceFactor{math.LegacyOneDec()} }

// IsOne reports whether the factor is exactly 1, the disabled sentinel.
func (f PriceFactor) IsOne() bool { return f.LegacyDec.Equal(math.LegacyOneDec()) }

// Validate checks that the factor is initialized and within [1, 1e18].
func (f PriceFactor) Validate() error {
	if f.IsNil() {
		return fmt.Errorf("price factor is nil")
	}
	if f.LT(math.LegacyOneDec()) {
		return fmt.Errorf("price factor %s is below 1", f)
	}
	if f.GT(maxPriceFactor) {
		return fmt.Errorf("price factor %s exceeds max %s", f, maxPriceFactor)
	}
	return nil
}
