package keeper

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/types"
)

// Withdraw burns the owner's shares and pays out the proportional part of
// everything the vault holds: idle funds, position principal, and collected
// rewards net of fee cuts. Withdrawing the entire supply also closes the
// vault's open positions.
func (k *Keeper) Withdraw(ctx sdk.Context, msg *types.MsgWithdrawRequest) (*types.MsgWithdrawResponse, error) {
	info, err := k.GetVaultInfo(ctx)
	if err != nil {
		return nil, err
	}

	if msg.Shares.IsZero() {
		return nil, types.ErrZeroSharesWithdrawal
	}
	to, err := sdk.AccAddressFromBech32(msg.WithdrawalReceiver())
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid withdrawal receiver %q: %s", msg.WithdrawalReceiver(), err)
	}
	if to.Equals(k.VaultAddress()) {
		return nil, sdkerrors.Wrap(types.ErrWithdrawToVault, to.String())
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid owner address %q: %s", msg.Owner, err)
	}

	held := k.bankKeeper.GetBalance(ctx, owner, info.ShareDenom).Amount
	if msg.Shares.GT(held) {
		return nil, sdkerrors.Wrapf(types.ErrInvalidWithdrawalAmount,
			"owner holds %s shares, tried to withdraw %s", held, msg.Shares)
	}

	bals, err := k.VaultBalances(ctx)
	if err != nil {
		return nil, err
	}

	// held >= shares > 0 implies a positive supply.
	supply := k.bankKeeper.GetSupply(ctx, info.ShareDenom).Amount
	proportion := math.LegacyNewDecFromInt(msg.Shares).QuoTruncate(math.LegacyNewDecFromInt(supply))
	expected0 := proportion.MulInt(bals.Balance0).TruncateInt()
	expected1 := proportion.MulInt(bals.Balance1).TruncateInt()
	if expected0.LT(msg.Amount0Min) || expected1.LT(msg.Amount1Min) {
		return nil, sdkerrors.Wrapf(types.ErrWithdrawnAmountsBelowMin,
			"got (%s, %s), wanted at least (%s, %s)", expected0, expected1, msg.Amount0Min, msg.Amount1Min)
	}

	if err := k.accrueRewardFees(ctx, bals); err != nil {
		return nil, err
	}

	funds, err := k.GetFundsInfo(ctx)
	if err != nil {
		return nil, err
	}
	funds.AvailableBalance0 = funds.AvailableBalance0.Sub(proportion.MulInt(funds.AvailableBalance0).TruncateInt())
	funds.AvailableBalance1 = funds.AvailableBalance1.Sub(proportion.MulInt(funds.AvailableBalance1).TruncateInt())
	if err := k.SetFundsInfo(ctx, funds); err != nil {
		return nil, err
	}

	state, err := k.GetVaultState(ctx)
	if err != nil {
		return nil, err
	}
	openIDs := state.OpenPositionIDs()
	if len(openIDs) > 0 {
		if _, err := k.poolKeeper.CollectRewards(ctx, openIDs, k.VaultAddress()); err != nil {
			return nil, fmt.Errorf("failed to collect position rewards: %w", err)
		}
		for _, id := range openIDs {
			pos, err := k.poolKeeper.GetPosition(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("failed to load position %d: %w", id, err)
			}
			liquidity := proportion.MulTruncate(pos.Liquidity)
			if !liquidity.IsPositive() {
				continue
			}
			if _, _, err := k.poolKeeper.WithdrawPosition(ctx, id, k.VaultAddress(), liquidity); err != nil {
				return nil, fmt.Errorf("failed to withdraw from position %d: %w", id, err)
			}
		}
	}
	if proportion.Equal(math.LegacyOneDec()) {
		state.ClearPositions()
		if err := k.SetVaultState(ctx, state); err != nil {
			return nil, err
		}
	}

	shares := sdk.NewCoins(sdk.NewCoin(info.ShareDenom, msg.Shares))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName, shares); err != nil {
		return nil, fmt.Errorf("failed to move shares for burning: %w", err)
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, shares); err != nil {
		return nil, fmt.Errorf("failed to burn shares: %w", err)
	}

	payout := sdk.NewCoins(
		sdk.NewCoin(info.Denom0, expected0),
		sdk.NewCoin(info.Denom1, expected1),
	)
	if !payout.IsZero() {
		if err := k.bankKeeper.SendCoins(ctx, k.VaultAddress(), to, payout); err != nil {
			return nil, fmt.Errorf("failed to pay out withdrawal: %w", err)
		}
	}

	k.emitEvent(ctx, types.NewEventWithdrawal(msg.Owner, to.String(), msg.Shares, expected0, expected1))
	return &types.MsgWithdrawResponse{Amount0: expected0, Amount1: expected1}, nil
}
