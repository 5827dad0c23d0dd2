package clmath

import (
	"fmt"

	"cosmossdk.io/math"

	"github.com/calderalabs/clvault/types"
)

// Allocation is the split of the vault's holdings among the three position
// shapes, in whole token atoms. At most one of Limit0 and Limit1 is non-zero.
type Allocation struct {
	FullRange0 math.Int
	FullRange1 math.Int
	Base0      math.Int
	Base1      math.Int
	Limit0     math.Int
	Limit1     math.Int
}

// CalcX0 returns how much token0 the full range position takes when x of
// token0 funds both the full range and the base position. The result makes
// the full range liquidity w times the combined liquidity of the two
// positions: x0 = w*sqrt(k)*x / (sqrt(k) - 1 + w). Zero weight takes nothing.
func CalcX0(k types.PriceFactor, w types.Weight, x math.LegacyDec) (math.LegacyDec, error) {
	if w.IsZero() {
		return math.LegacyZeroDec(), nil
	}
	sqrtK, err := k.ApproxSqrt()
	if err != nil {
		return math.LegacyDec{}, fmt.Errorf("sqrt of base factor %s: %w", k, err)
	}
	num := w.MulTruncate(sqrtK).MulTruncate(x)
	den := sqrtK.Sub(math.LegacyOneDec()).Add(w.LegacyDec)
	return num.QuoTruncate(den), nil
}

// ComputeAllocation splits the vault's two token balances around price.
//
// The balanced pair is the largest sub-portfolio whose value divides evenly
// between both tokens at price; one of its sides always passes through a
// token balance unchanged. The full range position takes the CalcX0 share of
// the balanced pair, the base position the rest of it, and the limit position
// the leftover single-sided capital.
func ComputeAllocation(params types.VaultParameters, bal0, bal1 math.Int, price math.LegacyDec) (Allocation, error) {
	if price.IsNil() || !price.IsPositive() {
		return Allocation{}, types.CriticalErr("allocation price must be positive",
			fmt.Errorf("got price %s", price))
	}
	if bal0.IsNil() || bal0.IsNegative() || bal1.IsNil() || bal1.IsNegative() {
		return Allocation{}, types.CriticalErr("allocation balances must be non-negative",
			fmt.Errorf("got balances %s, %s", bal0, bal1))
	}
	if bal0.IsZero() && bal1.IsZero() {
		return Allocation{}, types.CriticalErr("allocation needs capital",
			fmt.Errorf("both balances are zero"))
	}

	b0 := math.LegacyNewDecFromInt(bal0)
	b1 := math.LegacyNewDecFromInt(bal1)

	balanced0 := b1.QuoTruncate(price)
	balanced1 := b1
	if balanced0.GT(b0) {
		balanced0 = b0
		balanced1 = b0.MulTruncate(price)
	}
	bd0 := balanced0.TruncateInt()
	bd1 := balanced1.TruncateInt()
	if bd0.IsZero() != bd1.IsZero() {
		return Allocation{}, types.CriticalErr("balanced pair must fund both sides or neither",
			fmt.Errorf("balanced amounts %s, %s at price %s", bd0, bd1, price))
	}

	x0, err := CalcX0(params.BaseFactor, params.FullRangeWeight, math.LegacyNewDecFromInt(bd0))
	if err != nil {
		return Allocation{}, err
	}
	y0 := x0.MulTruncate(price)
	full0 := x0.TruncateInt()
	full1 := y0.TruncateInt()
	if !params.FullRangeWeight.IsZero() && !bd0.IsZero() && (!full0.IsPositive() || !full1.IsPositive()) {
		return Allocation{}, types.CriticalErr("full range allocation vanished",
			fmt.Errorf("weight %s of %s/%s gave %s, %s", params.FullRangeWeight, bd0, bd1, full0, full1))
	}
	if full0.GT(bd0) || full1.GT(bd1) {
		return Allocation{}, types.CriticalErr("full range allocation exceeds balanced pair",
			fmt.Errorf("full range %s, %s of balanced %s, %s", full0, full1, bd0, bd1))
	}

	base0 := bd0.Sub(full0)
	base1 := bd1.Sub(full1)

	limit0 := bal0.Sub(bd0)
	limit1 := bal1.Sub(bd1)
	if limit0.IsPositive() && limit1.IsPositive() {
		return Allocation{}, types.CriticalErr("limit allocation must be single sided",
			fmt.Errorf("limit amounts %s, %s", limit0, limit1))
	}

	return Allocation{
		FullRange0: full0,
		FullRange1: full1,
		Base0:      base0,
		Base1:      base1,
		Limit0:     limit0,
		Limit1:     limit1,
	}, nil
}
