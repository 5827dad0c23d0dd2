package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/types"
)

// accrueRewardFees folds pending reward cuts into the fee ledger. Callers
// pass the cuts that VaultBalances reported so that the balances used for
// accounting and the amounts accrued always come from the same reading.
func (k *Keeper) accrueRewardFees(ctx sdk.Context, bals types.QueryVaultBalancesResponse) error {
	fees, err := k.GetFeesInfo(ctx)
	if err != nil {
		return err
	}
	fees.ProtocolTokens0Owned = fees.ProtocolTokens0Owned.Add(bals.ProtocolUnclaimedFees0)
	fees.ProtocolTokens1Owned = fees.ProtocolTokens1Owned.Add(bals.ProtocolUnclaimedFees1)
	fees.AdminTokens0Owned = fees.AdminTokens0Owned.Add(bals.AdminUnclaimedFees0)
	fees.AdminTokens1Owned = fees.AdminTokens1Owned.Add(bals.AdminUnclaimedFees1)
	return k.SetFeesInfo(ctx, fees)
}

// WithdrawProtocolFees sends every token the ledger owes the protocol to the
// protocol account and zeroes the owed amounts. Only the protocol account
// itself may claim.
func (k *Keeper) WithdrawProtocolFees(ctx sdk.Context, sender string) (*types.MsgWithdrawProtocolFeesResponse, error) {
	if err := k.senderIsProtocol(sender); err != nil {
		return nil, err
	}

	info, err := k.GetVaultInfo(ctx)
	if err != nil {
		return nil, err
	}
	fees, err := k.GetFeesInfo(ctx)
	if err != nil {
		return nil, err
	}

	claimed := types.MsgWithdrawProtocolFeesResponse{
		Amount0:        fees.ProtocolTokens0Owned,
		Amount1:        fees.ProtocolTokens1Owned,
		CreationTokens: fees.ProtocolCreationTokensOwned,
	}
	coins := sdk.NewCoins(
		sdk.NewCoin(info.Denom0, claimed.Amount0),
		sdk.NewCoin(info.Denom1, claimed.Amount1),
		sdk.NewCoin(k.config.CreationCostDenom, claimed.CreationTokens),
	)

	fees.ProtocolTokens0Owned = math.ZeroInt()
	fees.ProtocolTokens1Owned = math.ZeroInt()
	fees.ProtocolCreationTokensOwned = math.ZeroInt()
	if err := k.SetFeesInfo(ctx, fees); err != nil {
		return nil, err
	}

	if !coins.IsZero() {
		if err := k.bankKeeper.SendCoins(ctx, k.VaultAddress(), k.protocolAddr, coins); err != nil {
			return nil, err
		}
	}

	k.emitEvent(ctx, types.NewEventProtocolFeesWithdrawn(claimed.Amount0, claimed.Amount1, claimed.CreationTokens))
	return &claimed, nil
}

// ChangeProtocolFee sets a new protocol fee rate. Only the protocol account
// may change it, and the rate stays under the configured cap.
func (k *Keeper) ChangeProtocolFee(ctx sdk.Context, sender string, newFee types.Weight) error {
	if err := k.senderIsProtocol(sender); err != nil {
		return err
	}
	if newFee.GT(k.config.MaxProtocolFee.LegacyDec) {
		return sdkerrors.Wrapf(types.ErrInvalidProtocolFee,
			"protocol fee %s exceeds max %s", newFee, k.config.MaxProtocolFee)
	}

	fees, err := k.GetFeesInfo(ctx)
	if err != nil {
		return err
	}
	oldFee := fees.ProtocolFee
	fees.ProtocolFee = newFee
	if err := k.SetFeesInfo(ctx, fees); err != nil {
		return err
	}

	k.emitEvent(ctx, types.NewEventProtocolFeeChanged(oldFee, newFee))
	return nil
}

// WithdrawAdminFees sends every token the ledger owes the admin to the admin
// account and zeroes the owed amounts. Only the configured admin may claim.
func (k *Keeper) WithdrawAdminFees(ctx sdk.Context, sender string) (*types.MsgWithdrawAdminFeesResponse, error) {
	info, err := k.senderIsAdmin(ctx, sender)
	if err != nil {
		return nil, err
	}
	fees, err := k.GetFeesInfo(ctx)
	if err != nil {
		return nil, err
	}

	claimed := types.MsgWithdrawAdminFeesResponse{
		Amount0: fees.AdminTokens0Owned,
		Amount1: fees.AdminTokens1Owned,
	}
	coins := sdk.NewCoins(
		sdk.NewCoin(info.Denom0, claimed.Amount0),
		sdk.NewCoin(info.Denom1, claimed.Amount1),
	)

	fees.AdminTokens0Owned = math.ZeroInt()
	fees.AdminTokens1Owned = math.ZeroInt()
	if err := k.SetFeesInfo(ctx, fees); err != nil {
		return nil, err
	}

	if !coins.IsZero() {
		admin := sdk.MustAccAddressFromBech32(info.Admin)
		if err := k.bankKeeper.SendCoins(ctx, k.VaultAddress(), admin, coins); err != nil {
			return nil, err
		}
	}

	k.emitEvent(ctx, types.NewEventAdminFeesWithdrawn(info.Admin, claimed.Amount0, claimed.Amount1))
	return &claimed, nil
}

// ChangeAdminFee sets a new admin fee rate. Only the admin may change it, and
// the rate stays under the same cap as the protocol fee.
func (k *Keeper) ChangeAdminFee(ctx sdk.Context, sender string, newFee types.Weight) error {
	if _, err := k.senderIsAdmin(ctx, sender); err != nil {
		return err
	}
	if newFee.GT(k.config.MaxProtocolFee.LegacyDec) {
		return sdkerrors.Wrapf(types.ErrInvalidAdminFee,
			"admin fee %s exceeds max %s", newFee, k.config.MaxProtocolFee)
	}

	fees, err := k.GetFeesInfo(ctx)
	if err != nil {
		return err
	}
	oldFee := fees.AdminFee
	fees.AdminFee = newFee
	if err := k.SetFeesInfo(ctx, fees); err != nil {
		return err
	}

	k.emitEvent(ctx, types.NewEventAdminFeeChanged(oldFee, newFee))
	return nil
}

// senderIsProtocol checks that sender is the exact protocol account.
func (k *Keeper) senderIsProtocol(sender string) error {
	if sender != k.config.ProtocolAddr {
		return sdkerrors.Wrapf(types.ErrUnauthorizedProtocolAccount,
			"sender %s is not the protocol account %s", sender, k.config.ProtocolAddr)
	}
	return nil
}
