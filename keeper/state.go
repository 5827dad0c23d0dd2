package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"

	"github.com/calderalabs/clvault/types"
)

// HasVault reports whether the vault has been created.
func (k *Keeper) HasVault(ctx context.Context) (bool, error) {
	return k.VaultInfo.Has(ctx)
}

// GetVaultInfo loads the vault info record. It returns ErrVaultNotFound when
// the vault has not been created yet.
func (k *Keeper) GetVaultInfo(ctx context.Context) (types.VaultInfo, error) {
	info, err := k.VaultInfo.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.VaultInfo{}, types.ErrVaultNotFound
		}
		return types.VaultInfo{}, err
	}
	return info, nil
}

// SetVaultInfo validates and persists the vault info record.
func (k *Keeper) SetVaultInfo(ctx context.Context, info types.VaultInfo) error {
	if err := info.Validate(); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidVaultInfo, err.Error())
	}
	return k.VaultInfo.Set(ctx, info)
}

// GetVaultParameters loads the allocation parameters.
func (k *Keeper) GetVaultParameters(ctx context.Context) (types.VaultParameters, error) {
	params, err := k.VaultParameters.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.VaultParameters{}, types.ErrVaultNotFound
		}
		return types.VaultParameters{}, err
	}
	return params, nil
}

// SetVaultParameters validates and persists the allocation parameters.
func (k *Keeper) SetVaultParameters(ctx context.Context, params types.VaultParameters) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.VaultParameters.Set(ctx, params)
}

// GetVaultState loads the position and snapshot record.
func (k *Keeper) GetVaultState(ctx context.Context) (types.VaultState, error) {
	state, err := k.VaultState.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.VaultState{}, types.ErrVaultNotFound
		}
		return types.VaultState{}, err
	}
	return state, nil
}

// SetVaultState persists the position and snapshot record.
func (k *Keeper) SetVaultState(ctx context.Context, state types.VaultState) error {
	return k.VaultState.Set(ctx, state)
}

// GetFeesInfo loads the fee ledger.
func (k *Keeper) GetFeesInfo(ctx context.Context) (types.FeesInfo, error) {
	fees, err := k.FeesInfo.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.FeesInfo{}, types.ErrVaultNotFound
		}
		return types.FeesInfo{}, err
	}
	return fees, nil
}

// SetFeesInfo persists the fee ledger. Rate bounds are enforced where the
// rates change, since they depend on the vault's admin configuration.
func (k *Keeper) SetFeesInfo(ctx context.Context, fees types.FeesInfo) error {
	return k.FeesInfo.Set(ctx, fees)
}

// GetFundsInfo loads the undeployed funds record.
func (k *Keeper) GetFundsInfo(ctx context.Context) (types.FundsInfo, error) {
	funds, err := k.FundsInfo.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.FundsInfo{}, types.ErrVaultNotFound
		}
		return types.FundsInfo{}, err
	}
	return funds, nil
}

// SetFundsInfo validates and persists the undeployed funds record.
func (k *Keeper) SetFundsInfo(ctx context.Context, funds types.FundsInfo) error {
	if err := funds.Validate(); err != nil {
		return err
	}
	return k.FundsInfo.Set(ctx, funds)
}
