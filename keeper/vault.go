package keeper

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/types"
)

// CreateVault initializes the five vault records over an existing
// concentrated liquidity pool and charges the creator the vault creation
// cost. A store holds at most one vault.
func (k *Keeper) CreateVault(ctx sdk.Context, msg *types.MsgCreateVaultRequest) (sdk.AccAddress, error) {
	exists, err := k.HasVault(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check for an existing vault: %w", err)
	}
	if exists {
		return nil, types.ErrVaultAlreadyExists
	}

	pool, err := k.poolKeeper.GetPool(ctx, msg.PoolID)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidVaultInfo, "pool %d: %s", msg.PoolID, err)
	}
	if pool.TickSpacing == 0 {
		return nil, sdkerrors.Wrapf(types.ErrInvalidVaultInfo, "pool %d has no tick spacing", msg.PoolID)
	}

	info := types.VaultInfo{
		PoolID:      pool.ID,
		Denom0:      pool.Token0,
		Denom1:      pool.Token1,
		VaultName:   msg.VaultName,
		VaultSymbol: msg.VaultSymbol,
		ShareDenom:  msg.ShareDenom,
		Admin:       msg.Admin,
		Rebalancer:  msg.Rebalancer,
	}
	if err := info.Validate(); err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidVaultInfo, err.Error())
	}
	if err := msg.Parameters.Validate(); err != nil {
		return nil, err
	}

	fees := types.NewFeesInfo(k.config.DefaultProtocolFee, msg.AdminFee, k.config.CreationCost)
	if err := fees.Validate(info.HasAdmin(), k.config.MaxProtocolFee); err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidAdminFee, err.Error())
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid creator address %q: %s", msg.Creator, err)
	}
	vaultAddr := k.VaultAddress()
	if k.config.CreationCost.IsPositive() {
		cost := sdk.NewCoins(sdk.NewCoin(k.config.CreationCostDenom, k.config.CreationCost))
		if err := k.bankKeeper.SendCoins(ctx, creator, vaultAddr, cost); err != nil {
			return nil, fmt.Errorf("failed to charge the vault creation cost: %w", err)
		}
	}

	if err := k.SetVaultInfo(ctx, info); err != nil {
		return nil, err
	}
	if err := k.SetVaultParameters(ctx, msg.Parameters); err != nil {
		return nil, err
	}
	if err := k.SetVaultState(ctx, types.NewVaultState()); err != nil {
		return nil, err
	}
	if err := k.SetFeesInfo(ctx, fees); err != nil {
		return nil, err
	}
	if err := k.SetFundsInfo(ctx, types.NewFundsInfo()); err != nil {
		return nil, err
	}

	k.emitEvent(ctx, types.NewEventVaultCreated(vaultAddr.String(), info.PoolID, info.ShareDenom, info.Admin))
	return vaultAddr, nil
}
