package keeper

import (
	"fmt"
	"time"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/clmath"
	"github.com/calderalabs/clvault/types"
)

// Rebalance closes the vault's open positions and redeploys everything it
// holds around the current pool price: a full range position, a base position
// bracketing the price, and a limit position for the single-sided remainder.
// The caller must satisfy the vault's rebalancer policy.
func (k *Keeper) Rebalance(ctx sdk.Context, sender string) error {
	info, err := k.GetVaultInfo(ctx)
	if err != nil {
		return err
	}
	state, err := k.GetVaultState(ctx)
	if err != nil {
		return err
	}

	price, err := k.poolKeeper.SpotPrice(ctx, info.PoolID, info.Denom0, info.Denom1)
	if err != nil {
		return fmt.Errorf("failed to read pool %d spot price: %w", info.PoolID, err)
	}
	if err := k.canRebalance(ctx, info, state, price, sender); err != nil {
		return err
	}

	// The snapshot moves on every successful rebalance, whether or not the
	// current policy reads it.
	state.LastPriceAndTimestamp = &types.PriceSnapshot{Price: price, Timestamp: ctx.BlockTime()}

	params, err := k.GetVaultParameters(ctx)
	if err != nil {
		return err
	}
	bals, err := k.VaultBalances(ctx)
	if err != nil {
		return err
	}

	if bals.Balance0.IsZero() && bals.Balance1.IsZero() {
		return types.ErrNothingToRebalance
	}
	if price.IsZero() {
		return sdkerrors.Wrapf(types.ErrPoolWithoutPrice, "pool %d", info.PoolID)
	}

	alloc, err := clmath.ComputeAllocation(params, bals.Balance0, bals.Balance1, price)
	if err != nil {
		return err
	}

	openIDs := state.OpenPositionIDs()
	if len(openIDs) > 0 {
		if _, err := k.poolKeeper.CollectRewards(ctx, openIDs, k.VaultAddress()); err != nil {
			return fmt.Errorf("failed to collect position rewards: %w", err)
		}
		for _, id := range openIDs {
			pos, err := k.poolKeeper.GetPosition(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to load position %d: %w", id, err)
			}
			if _, _, err := k.poolKeeper.WithdrawPosition(ctx, id, k.VaultAddress(), pos.Liquidity); err != nil {
				return fmt.Errorf("failed to close position %d: %w", id, err)
			}
		}
	}

	if err := k.accrueRewardFees(ctx, bals); err != nil {
		return err
	}
	// Everything the vault owns is redeployed, so the idle funds record
	// restarts from zero.
	if err := k.SetFundsInfo(ctx, types.NewFundsInfo()); err != nil {
		return err
	}

	newState := types.NewVaultState()
	newState.LastPriceAndTimestamp = state.LastPriceAndTimestamp

	pool, err := k.poolKeeper.GetPool(ctx, info.PoolID)
	if err != nil {
		return fmt.Errorf("failed to load pool %d: %w", info.PoolID, err)
	}

	if !params.FullRangeWeight.IsZero() && alloc.FullRange0.IsPositive() {
		lower := clmath.MinValidTick(pool.TickSpacing, k.config.MinTick)
		upper := clmath.MaxValidTick(pool.TickSpacing, k.config.MaxTick)
		id, err := k.openPosition(ctx, info, pool, lower, upper, alloc.FullRange0, alloc.FullRange1)
		if err != nil {
			return err
		}
		newState.SetPositionID(types.PositionFullRange, id)
	}

	if !params.BaseFactor.IsOne() && alloc.Base0.IsPositive() {
		lowerTick, err := clmath.PriceToTick(price.QuoTruncate(params.BaseFactor.LegacyDec))
		if err != nil {
			return types.CriticalErr("base range lower bound left the price domain", err)
		}
		upperTick, err := clmath.PriceToTick(price.MulTruncate(params.BaseFactor.LegacyDec))
		if err != nil {
			return types.CriticalErr("base range upper bound left the price domain", err)
		}
		id, err := k.openPosition(ctx, info, pool, lowerTick, upperTick, alloc.Base0, alloc.Base1)
		if err != nil {
			return err
		}
		newState.SetPositionID(types.PositionBase, id)
	}

	if !params.LimitFactor.IsOne() && (alloc.Limit0.IsPositive() || alloc.Limit1.IsPositive()) {
		spacing := int64(pool.TickSpacing)
		var id uint64
		if alloc.Limit0.IsZero() {
			// Only token1 is left over, so the limit range sits below the
			// current tick.
			lowerTick, err := clmath.PriceToTick(price.QuoTruncate(params.LimitFactor.LegacyDec))
			if err != nil {
				return types.CriticalErr("limit range lower bound left the price domain", err)
			}
			id, err = k.openPosition(ctx, info, pool, lowerTick, pool.CurrentTick-spacing, math.ZeroInt(), alloc.Limit1)
			if err != nil {
				return err
			}
		} else {
			upperTick, err := clmath.PriceToTick(price.MulTruncate(params.LimitFactor.LegacyDec))
			if err != nil {
				return types.CriticalErr("limit range upper bound left the price domain", err)
			}
			id, err = k.openPosition(ctx, info, pool, pool.CurrentTick+spacing, upperTick, alloc.Limit0, math.ZeroInt())
			if err != nil {
				return err
			}
		}
		newState.SetPositionID(types.PositionLimit, id)
	}

	if err := k.SetVaultState(ctx, newState); err != nil {
		return err
	}

	k.emitEvent(ctx, types.NewEventRebalance(sender, price,
		alloc.FullRange0, alloc.FullRange1, alloc.Base0, alloc.Base1, alloc.Limit0, alloc.Limit1))
	return nil
}

// canRebalance enforces the vault's rebalancer policy. Admin and delegate
// policies check the sender; the permissionless policy instead gates on how
// much time passed and how far the price moved since the last rebalance, and
// rejects spot prices that drifted away from the recent time weighted
// average.
func (k *Keeper) canRebalance(ctx sdk.Context, info types.VaultInfo, state types.VaultState, price math.LegacyDec, sender string) error {
	twap, err := k.poolKeeper.ArithmeticTwapToNow(
		ctx, info.PoolID, info.Denom0, info.Denom1, ctx.BlockTime().Add(-k.config.TwapWindow))
	if err != nil || twap.IsNil() || twap.IsZero() {
		return sdkerrors.Wrapf(types.ErrPoolJustCreated,
			"pool %d has no time weighted average price over %s yet", info.PoolID, k.config.TwapWindow)
	}

	switch info.Rebalancer.Policy {
	case types.RebalancerAdmin:
		if sender != info.Admin {
			return sdkerrors.Wrapf(types.ErrUnauthorizedNonAdmin,
				"sender %s is not admin %s", sender, info.Admin)
		}

	case types.RebalancerDelegate:
		if sender != info.Rebalancer.Delegate {
			return sdkerrors.Wrapf(types.ErrUnauthorizedDelegate,
				"sender %s is not delegate %s", sender, info.Rebalancer.Delegate)
		}

	case types.RebalancerAnyone:
		last := state.LastPriceAndTimestamp
		if last == nil {
			return nil
		}
		now := ctx.BlockTime()
		if now.Equal(last.Timestamp) {
			return types.ErrRebalancedThisBlock
		}

		threshold := last.Timestamp.Add(time.Duration(info.Rebalancer.SecondsBeforeRebalance) * time.Second)
		if threshold.After(now) {
			return sdkerrors.Wrapf(types.ErrNotEnoughTimePassed,
				"%s left until the next rebalance", threshold.Sub(now))
		}

		// The movement band is open: prices exactly a factor away count as
		// moved enough. A factor of one makes the band empty, disabling the
		// gate.
		factor := info.Rebalancer.PriceFactorBeforeRebalance
		epsilon := math.LegacySmallestDec()
		lowerBound := last.Price.QuoTruncate(factor.LegacyDec).Add(epsilon)
		upperBound := last.Price.MulTruncate(factor.LegacyDec).Sub(epsilon)
		if price.GTE(lowerBound) && price.LTE(upperBound) {
			return sdkerrors.Wrapf(types.ErrPriceHasntMovedEnough,
				"price %s is within factor %s of the last rebalance price %s", price, factor, last.Price)
		}

		variation := k.config.TwapTolerance.MulTruncate(twap)
		if price.LT(twap.Sub(variation)) || price.GT(twap.Add(variation)) {
			return sdkerrors.Wrapf(types.ErrPriceMovedTooMuch,
				"price %s is outside the tolerated band around the average %s", price, twap)
		}
	}
	return nil
}

// openPosition creates one pool position owned by the vault, snapping both
// ticks to the pool's grid and bounding acceptable slippage by the configured
// position slippage.
func (k *Keeper) openPosition(ctx sdk.Context, info types.VaultInfo, pool types.PoolInfo, lowerTick, upperTick int64, amount0, amount1 math.Int) (uint64, error) {
	lower := clmath.ClosestValidTick(lowerTick, pool.TickSpacing, k.config.MinTick, k.config.MaxTick)
	upper := clmath.ClosestValidTick(upperTick, pool.TickSpacing, k.config.MinTick, k.config.MaxTick)

	tokens := sdk.NewCoins(
		sdk.NewCoin(info.Denom0, amount0),
		sdk.NewCoin(info.Denom1, amount1),
	)
	min0 := k.config.PositionSlippage.MulInt(amount0).TruncateInt()
	min1 := k.config.PositionSlippage.MulInt(amount1).TruncateInt()

	opened, err := k.poolKeeper.CreatePosition(ctx, pool.ID, k.VaultAddress(), lower, upper, tokens, min0, min1)
	if err != nil {
		return 0, fmt.Errorf("failed to open position [%d, %d] with (%s, %s): %w", lower, upper, amount0, amount1, err)
	}
	return opened.ID, nil
}
