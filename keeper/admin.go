package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/types"
)

// senderIsAdmin loads the vault info and checks that sender is the configured
// admin. Every admin-gated operation goes through here.
func (k *Keeper) senderIsAdmin(ctx sdk.Context, sender string) (types.VaultInfo, error) {
	info, err := k.GetVaultInfo(ctx)
	if err != nil {
		return types.VaultInfo{}, err
	}
	if !info.HasAdmin() {
		return types.VaultInfo{}, types.ErrNonExistentAdmin
	}
	if sender != info.Admin {
		return types.VaultInfo{}, sdkerrors.Wrapf(types.ErrUnauthorizedAdminAccount,
			"sender %s is not admin %s", sender, info.Admin)
	}
	return info, nil
}

// ProposeNewAdmin stores a pending admin handover target, or clears the
// pending one when newAdmin is empty. The handover only takes effect once the
// target accepts it.
func (k *Keeper) ProposeNewAdmin(ctx sdk.Context, sender, newAdmin string) error {
	info, err := k.senderIsAdmin(ctx, sender)
	if err != nil {
		return err
	}

	if newAdmin == "" {
		info.ProposedNewAdmin = ""
		if err := k.SetVaultInfo(ctx, info); err != nil {
			return err
		}
		k.emitEvent(ctx, types.NewEventAdminProposalCleared(info.Admin))
		return nil
	}

	if _, err := sdk.AccAddressFromBech32(newAdmin); err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidProposedAdmin, "invalid address %q: %s", newAdmin, err)
	}
	info.ProposedNewAdmin = newAdmin
	if err := k.SetVaultInfo(ctx, info); err != nil {
		return err
	}

	k.emitEvent(ctx, types.NewEventNewAdminProposed(info.Admin, newAdmin))
	return nil
}

// AcceptNewAdmin completes a pending admin handover. Only the proposed admin
// may accept.
func (k *Keeper) AcceptNewAdmin(ctx sdk.Context, sender string) error {
	info, err := k.GetVaultInfo(ctx)
	if err != nil {
		return err
	}
	if !info.HasProposedAdmin() {
		return types.ErrNoProposedAdmin
	}
	if sender != info.ProposedNewAdmin {
		return sdkerrors.Wrapf(types.ErrUnauthorizedProposedAdmin,
			"sender %s is not the proposed admin %s", sender, info.ProposedNewAdmin)
	}

	oldAdmin := info.Admin
	info.Admin = info.ProposedNewAdmin
	info.ProposedNewAdmin = ""
	if err := k.SetVaultInfo(ctx, info); err != nil {
		return err
	}

	k.emitEvent(ctx, types.NewEventAdminChanged(oldAdmin, info.Admin))
	return nil
}

// BurnVaultAdmin removes the vault's admin for good. It refuses to orphan
// anything the admin still controls: a pending handover, a non-permissionless
// rebalancer, a non-zero admin fee rate, or unclaimed admin fees.
func (k *Keeper) BurnVaultAdmin(ctx sdk.Context, sender string) error {
	info, err := k.senderIsAdmin(ctx, sender)
	if err != nil {
		return err
	}
	fees, err := k.GetFeesInfo(ctx)
	if err != nil {
		return err
	}

	if info.HasProposedAdmin() {
		return sdkerrors.Wrapf(types.ErrAdminBurnPendingProposal,
			"proposed admin %s has not accepted", info.ProposedNewAdmin)
	}
	if info.Rebalancer.Policy != types.RebalancerAnyone {
		return sdkerrors.Wrapf(types.ErrAdminBurnRebalancerNotAnyone,
			"rebalancer policy is %s", info.Rebalancer.Policy)
	}
	if !fees.AdminFee.IsZero() {
		return sdkerrors.Wrapf(types.ErrAdminBurnNonZeroAdminFee, "admin fee is %s", fees.AdminFee)
	}
	if fees.HasUncollectedAdminFees() {
		return sdkerrors.Wrapf(types.ErrAdminBurnUncollectedFees,
			"admin is still owed (%s, %s)", fees.AdminTokens0Owned, fees.AdminTokens1Owned)
	}

	oldAdmin := info.Admin
	info.Admin = ""
	if err := k.SetVaultInfo(ctx, info); err != nil {
		return err
	}

	k.emitEvent(ctx, types.NewEventAdminBurned(oldAdmin))
	return nil
}

// ChangeVaultRebalancer swaps the rebalance authorization policy. Only the
// admin may change it, and the new policy is validated against the admin
// still being present.
func (k *Keeper) ChangeVaultRebalancer(ctx sdk.Context, sender string, rebalancer types.VaultRebalancer) error {
	info, err := k.senderIsAdmin(ctx, sender)
	if err != nil {
		return err
	}
	if err := rebalancer.Validate(info.HasAdmin()); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidRebalancer, err.Error())
	}

	info.Rebalancer = rebalancer
	if err := k.SetVaultInfo(ctx, info); err != nil {
		return err
	}

	k.emitEvent(ctx, types.NewEventRebalancerChanged(info.Admin, rebalancer))
	return nil
}

// ChangeVaultParameters swaps the position shape parameters. They take effect
// on the next rebalance.
func (k *Keeper) ChangeVaultParameters(ctx sdk.Context, sender string, params types.VaultParameters) error {
	info, err := k.senderIsAdmin(ctx, sender)
	if err != nil {
		return err
	}
	if err := k.SetVaultParameters(ctx, params); err != nil {
		return err
	}

	k.emitEvent(ctx, types.NewEventVaultParametersChanged(info.Admin, params))
	return nil
}
