package keeper

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/types"
	"github.com/calderalabs/clvault/utils"
)

// Deposit prices (Amount0, Amount1) against the vault's current holdings,
// pulls the tokens from the depositor, mints the resulting shares to the
// receiver, and refunds whatever portion of the deposit the current holding
// ratio cannot absorb.
func (k *Keeper) Deposit(ctx sdk.Context, msg *types.MsgDepositRequest) (*types.MsgDepositResponse, error) {
	info, err := k.GetVaultInfo(ctx)
	if err != nil {
		return nil, err
	}

	if msg.Amount0.IsZero() && msg.Amount1.IsZero() {
		return nil, types.ErrZeroTokensSent
	}
	if msg.Amount0.GT(utils.MaxAmount) || msg.Amount1.GT(utils.MaxAmount) {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest,
			"deposit amounts (%s, %s) exceed the max amount %s", msg.Amount0, msg.Amount1, utils.MaxAmount)
	}

	to, err := sdk.AccAddressFromBech32(msg.SharesReceiver())
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid shares receiver %q: %s", msg.SharesReceiver(), err)
	}
	if to.Equals(k.VaultAddress()) {
		return nil, sdkerrors.Wrap(types.ErrSharesReceiverIsVault, to.String())
	}

	minLiquidity := k.config.MinLiquidity
	if !msg.Amount0.GT(minLiquidity) && !msg.Amount1.GT(minLiquidity) {
		return nil, sdkerrors.Wrapf(types.ErrDepositBelowMinLiquidity,
			"deposited (%s, %s), need more than %s of either token", msg.Amount0, msg.Amount1, minLiquidity)
	}

	bals, err := k.VaultBalances(ctx)
	if err != nil {
		return nil, err
	}
	supply := k.bankKeeper.GetSupply(ctx, info.ShareDenom).Amount
	priced, err := utils.ComputeSharesAndUsableAmounts(msg.Amount0, msg.Amount1, bals.Balance0, bals.Balance1, supply)
	if err != nil {
		return nil, fmt.Errorf("failed to price deposit: %w", err)
	}
	if priced.Shares.IsZero() {
		return nil, sdkerrors.Wrapf(types.ErrDepositTooSmall,
			"deposited (%s, %s) against holdings (%s, %s)", msg.Amount0, msg.Amount1, bals.Balance0, bals.Balance1)
	}
	if priced.Usable0.LT(msg.Amount0Min) || priced.Usable1.LT(msg.Amount1Min) {
		return nil, sdkerrors.Wrapf(types.ErrDepositedAmountsBelowMin,
			"usable (%s, %s), wanted at least (%s, %s)", priced.Usable0, priced.Usable1, msg.Amount0Min, msg.Amount1Min)
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid depositor address %q: %s", msg.Depositor, err)
	}
	sent := sdk.NewCoins(
		sdk.NewCoin(info.Denom0, msg.Amount0),
		sdk.NewCoin(info.Denom1, msg.Amount1),
	)
	if err := k.bankKeeper.SendCoins(ctx, depositor, k.VaultAddress(), sent); err != nil {
		return nil, err
	}

	funds, err := k.GetFundsInfo(ctx)
	if err != nil {
		return nil, err
	}
	funds.AvailableBalance0 = funds.AvailableBalance0.Add(priced.Usable0)
	funds.AvailableBalance1 = funds.AvailableBalance1.Add(priced.Usable1)
	if err := k.SetFundsInfo(ctx, funds); err != nil {
		return nil, err
	}

	shares := sdk.NewCoins(sdk.NewCoin(info.ShareDenom, priced.Shares))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, shares); err != nil {
		return nil, fmt.Errorf("failed to mint shares: %w", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, shares); err != nil {
		return nil, fmt.Errorf("failed to send minted shares: %w", err)
	}

	refunded0 := msg.Amount0.Sub(priced.Usable0)
	refunded1 := msg.Amount1.Sub(priced.Usable1)
	refund := sdk.NewCoins(
		sdk.NewCoin(info.Denom0, refunded0),
		sdk.NewCoin(info.Denom1, refunded1),
	)
	if !refund.IsZero() {
		if err := k.bankKeeper.SendCoins(ctx, k.VaultAddress(), depositor, refund); err != nil {
			return nil, fmt.Errorf("failed to refund unusable amounts: %w", err)
		}
	}

	k.emitEvent(ctx, types.NewEventDeposit(
		msg.Depositor, to.String(), priced.Usable0, priced.Usable1, refunded0, refunded1, priced.Shares))
	return &types.MsgDepositResponse{
		Shares:          priced.Shares,
		Amount0Used:     priced.Usable0,
		Amount1Used:     priced.Usable1,
		Amount0Refunded: refunded0,
		Amount1Refunded: refunded1,
	}, nil
}
