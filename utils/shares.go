package utils

import (
	"fmt"

	ui "github.com/holiman/uint256"

	"cosmossdk.io/math"

	"github.com/calderalabs/clvault/types"
)

// maxUint128 bounds every amount the vault mints, holds, or owes. Share math
// widens to 256 bits for its intermediate products and must narrow back under
// this bound.
var (
	maxUint128 = ui.MustFromHex("0xffffffffffffffffffffffffffffffff")
	// MaxAmount is maxUint128 as an ordinary integer, for input validation.
	MaxAmount = math.NewIntFromBigInt(ui.MustFromHex("0xffffffffffffffffffffffffffffffff").ToBig())
)

// SharesAndUsableAmounts is the outcome of pricing a two-token deposit:
// the shares it mints and how much of each token the vault can actually use.
// The difference between sent and usable amounts is refunded.
type SharesAndUsableAmounts struct {
	Shares  math.Int
	Usable0 math.Int
	Usable1 math.Int
}

// IsZero reports whether the deposit prices to nothing.
func (s SharesAndUsableAmounts) IsZero() bool {
	return s.Shares.IsZero() && s.Usable0.IsZero() && s.Usable1.IsZero()
}

// ComputeSharesAndUsableAmounts prices a deposit of (in0, in1) against a
// vault holding (total0, total1) with the given share supply.
//
// Formula (integer, floor/ceil as marked):
//
//	if supply == 0:          shares = max(in0, in1); all input usable
//	if exactly one total==0: shares = floor(in_t * supply / total_t);
//	                         the zero side of the input is unusable
//	otherwise, with cross = min(in0*total1, in1*total0):
//	    usable0 = ceil(cross / total1)
//	    usable1 = ceil(cross / total0)
//	    shares  = floor(floor(cross * supply / total0) / total1)
//
// cross == 0 prices the deposit at zero shares; callers must reject it. All
// intermediate products run in 256 bits; results that do not narrow back to
// 128 bits mean the vault's accounting left its designed range.
func ComputeSharesAndUsableAmounts(in0, in1, total0, total1, supply math.Int) (SharesAndUsableAmounts, error) {
	inputs := []struct {
		name string
		v    math.Int
	}{
		{"input0", in0}, {"input1", in1},
		{"total0", total0}, {"total1", total1},
		{"supply", supply},
	}
	for _, in := range inputs {
		if in.v.IsNil() || in.v.IsNegative() || in.v.GT(MaxAmount) {
			return SharesAndUsableAmounts{}, fmt.Errorf("invalid %s amount: %s", in.name, in.v)
		}
	}

	if supply.IsZero() {
		if !total0.IsZero() || !total1.IsZero() {
			return SharesAndUsableAmounts{}, types.CriticalErr(
				"share supply diverged from vault totals",
				fmt.Errorf("no shares outstanding but vault holds %s, %s", total0, total1))
		}
		return SharesAndUsableAmounts{Shares: math.MaxInt(in0, in1), Usable0: in0, Usable1: in1}, nil
	}

	switch {
	case total0.IsZero() && total1.IsZero():
		return SharesAndUsableAmounts{}, types.CriticalErr(
			"share supply diverged from vault totals",
			fmt.Errorf("%s shares outstanding but vault holds nothing", supply))

	case total1.IsZero():
		shares, err := mulDiv("single sided shares", in0, supply, total0)
		if err != nil {
			return SharesAndUsableAmounts{}, err
		}
		return SharesAndUsableAmounts{Shares: shares, Usable0: in0, Usable1: math.ZeroInt()}, nil

	case total0.IsZero():
		shares, err := mulDiv("single sided shares", in1, supply, total1)
		if err != nil {
			return SharesAndUsableAmounts{}, err
		}
		return SharesAndUsableAmounts{Shares: shares, Usable0: math.ZeroInt(), Usable1: in1}, nil
	}

	u0, u1 := toU256(in0), toU256(in1)
	t0, t1 := toU256(total0), toU256(total1)
	lhs, of1 := new(ui.Int).MulOverflow(u0, t1)
	rhs, of2 := new(ui.Int).MulOverflow(u1, t0)
	if of1 || of2 {
		return SharesAndUsableAmounts{}, types.CriticalErr("deposit cross product overflow",
			fmt.Errorf("inputs %s, %s against totals %s, %s", in0, in1, total0, total1))
	}
	cross := lhs
	if rhs.Lt(cross) {
		cross = rhs
	}
	if cross.IsZero() {
		zero := math.ZeroInt()
		return SharesAndUsableAmounts{Shares: zero, Usable0: zero, Usable1: zero}, nil
	}

	// ceil(cross / t) as (cross-1)/t + 1, valid because cross > 0.
	crossLess1 := new(ui.Int).SubUint64(cross, 1)
	one := ui.NewInt(1)
	usable0U := new(ui.Int).Add(new(ui.Int).Div(crossLess1, t1), one)
	usable1U := new(ui.Int).Add(new(ui.Int).Div(crossLess1, t0), one)

	sharesU, of := new(ui.Int).MulDivOverflow(cross, toU256(supply), t0)
	if of {
		return SharesAndUsableAmounts{}, types.CriticalErr("share product overflow",
			fmt.Errorf("cross %s with supply %s", cross, supply))
	}
	sharesU.Div(sharesU, t1)

	shares, err := fromU256("minted shares", sharesU)
	if err != nil {
		return SharesAndUsableAmounts{}, err
	}
	usable0, err := fromU256("usable amount0", usable0U)
	if err != nil {
		return SharesAndUsableAmounts{}, err
	}
	usable1, err := fromU256("usable amount1", usable1U)
	if err != nil {
		return SharesAndUsableAmounts{}, err
	}
	return SharesAndUsableAmounts{Shares: shares, Usable0: usable0, Usable1: usable1}, nil
}

// mulDiv returns floor(a*b/d) with a 512-bit intermediate product, narrowing
// the result back to 128 bits.
func mulDiv(what string, a, b, d math.Int) (math.Int, error) {
	res, of := new(ui.Int).MulDivOverflow(toU256(a), toU256(b), toU256(d))
	if of {
		return math.Int{}, types.CriticalErr(what+" overflow",
			fmt.Errorf("%s * %s / %s exceeds 256 bits", a, b, d))
	}
	return fromU256(what, res)
}

// toU256 widens a non-negative 128-bit amount. Callers validate sign and
// magnitude beforehand.
func toU256(i math.Int) *ui.Int {
	v, _ := ui.FromBig(i.BigInt())
	return v
}

// fromU256 narrows v back to the vault's 128-bit amount range.
func fromU256(what string, v *ui.Int) (math.Int, error) {
	if v.Gt(maxUint128) {
		return math.Int{}, types.CriticalErr(what+" exceeds the representable amount range",
			fmt.Errorf("%s does not fit in 128 bits", v))
	}
	return math.NewIntFromBigInt(v.ToBig()), nil
}
