package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/types"
)

// PositionBalancesWithFees returns one position's principal and claimable
// rewards, split by the vault's token pair. A position that is not open
// reports all zeroes.
//
// One atom per principal side is subtracted because position withdrawals can
// leave a single atom behind; counting it would let the accounting promise
// capital the pool never pays out.
func (k *Keeper) PositionBalancesWithFees(ctx sdk.Context, kind types.PositionKind) (types.QueryPositionBalancesResponse, error) {
	zero := types.QueryPositionBalancesResponse{
		Amount0: math.ZeroInt(),
		Amount1: math.ZeroInt(),
		Fees0:   math.ZeroInt(),
		Fees1:   math.ZeroInt(),
	}

	state, err := k.GetVaultState(ctx)
	if err != nil {
		return zero, err
	}
	id := state.PositionIDFor(kind)
	if id == nil {
		return zero, nil
	}

	info, err := k.GetVaultInfo(ctx)
	if err != nil {
		return zero, err
	}
	pos, err := k.poolKeeper.GetPosition(ctx, *id)
	if err != nil {
		return zero, fmt.Errorf("failed to load %s position %d: %w", kind, *id, err)
	}

	one := math.OneInt()
	return types.QueryPositionBalancesResponse{
		Amount0: math.MaxInt(pos.Amount0.Sub(one), math.ZeroInt()),
		Amount1: math.MaxInt(pos.Amount1.Sub(one), math.ZeroInt()),
		Fees0:   pos.Rewards.AmountOf(info.Denom0),
		Fees1:   pos.Rewards.AmountOf(info.Denom1),
	}, nil
}

// VaultBalances aggregates everything the vault owns per token side: idle
// funds, position principal and claimable rewards, net of the reward cuts
// owed to the protocol and the admin. The cuts are floor products of the
// configured rates and the total claimable rewards, reported alongside the
// balances so that callers accrue exactly what the balances exclude.
func (k *Keeper) VaultBalances(ctx sdk.Context) (types.QueryVaultBalancesResponse, error) {
	funds, err := k.GetFundsInfo(ctx)
	if err != nil {
		return types.QueryVaultBalancesResponse{}, err
	}
	fees, err := k.GetFeesInfo(ctx)
	if err != nil {
		return types.QueryVaultBalancesResponse{}, err
	}

	bal0 := funds.AvailableBalance0
	bal1 := funds.AvailableBalance1
	rewards0 := math.ZeroInt()
	rewards1 := math.ZeroInt()
	for _, kind := range types.AllPositionKinds {
		pos, err := k.PositionBalancesWithFees(ctx, kind)
		if err != nil {
			return types.QueryVaultBalancesResponse{}, err
		}
		bal0 = bal0.Add(pos.Amount0)
		bal1 = bal1.Add(pos.Amount1)
		rewards0 = rewards0.Add(pos.Fees0)
		rewards1 = rewards1.Add(pos.Fees1)
	}

	protocol0 := fees.ProtocolFee.MulInt(rewards0).TruncateInt()
	protocol1 := fees.ProtocolFee.MulInt(rewards1).TruncateInt()
	admin0 := fees.AdminFee.MulInt(rewards0).TruncateInt()
	admin1 := fees.AdminFee.MulInt(rewards1).TruncateInt()

	return types.QueryVaultBalancesResponse{
		Balance0:               bal0.Add(rewards0).Sub(protocol0).Sub(admin0),
		Balance1:               bal1.Add(rewards1).Sub(protocol1).Sub(admin1),
		ProtocolUnclaimedFees0: protocol0,
		ProtocolUnclaimedFees1: protocol1,
		AdminUnclaimedFees0:    admin0,
		AdminUnclaimedFees1:    admin1,
	}, nil
}
