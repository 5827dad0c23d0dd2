package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/types"
)

// InitGenesis initializes the vault module state from genesis. An empty
// genesis leaves the vault uncreated.
func (k *Keeper) InitGenesis(ctx sdk.Context, genState *types.GenesisState) {
	if genState == nil {
		return
	}
	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid vault genesis state: %w", err))
	}
	if genState.VaultInfo == nil {
		return
	}

	if err := k.SetVaultInfo(ctx, *genState.VaultInfo); err != nil {
		panic(fmt.Errorf("failed to store vault info: %w", err))
	}
	if err := k.SetVaultParameters(ctx, *genState.VaultParameters); err != nil {
		panic(fmt.Errorf("failed to store vault parameters: %w", err))
	}
	if err := k.SetVaultState(ctx, *genState.VaultState); err != nil {
		panic(fmt.Errorf("failed to store vault state: %w", err))
	}
	if err := k.SetFeesInfo(ctx, *genState.FeesInfo); err != nil {
		panic(fmt.Errorf("failed to store fees info: %w", err))
	}
	if err := k.SetFundsInfo(ctx, *genState.FundsInfo); err != nil {
		panic(fmt.Errorf("failed to store funds info: %w", err))
	}
}

// ExportGenesis exports the current state of the vault module.
func (k *Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	has, err := k.HasVault(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to check vault existence: %w", err))
	}
	if !has {
		return types.DefaultGenesisState()
	}

	info, err := k.GetVaultInfo(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to load vault info: %w", err))
	}
	params, err := k.GetVaultParameters(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to load vault parameters: %w", err))
	}
	state, err := k.GetVaultState(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to load vault state: %w", err))
	}
	fees, err := k.GetFeesInfo(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to load fees info: %w", err))
	}
	funds, err := k.GetFundsInfo(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to load funds info: %w", err))
	}

	return &types.GenesisState{
		VaultInfo:       &info,
		VaultParameters: &params,
		VaultState:      &state,
		FeesInfo:        &fees,
		FundsInfo:       &funds,
	}
}
