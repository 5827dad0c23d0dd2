package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

// NewMsgServer creates a new MsgServer for the module. Every handler performs
// the message's stateless validation before touching state.
func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// CreateVault initializes the vault over a concentrated liquidity pool.
func (k msgServer) CreateVault(goCtx context.Context, msg *types.MsgCreateVaultRequest) (*types.MsgCreateVaultResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	vaultAddr, err := k.Keeper.CreateVault(ctx, msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateVaultResponse{VaultAddress: vaultAddr.String()}, nil
}

// Deposit adds funds to the vault in exchange for newly minted shares.
func (k msgServer) Deposit(goCtx context.Context, msg *types.MsgDepositRequest) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return k.Keeper.Deposit(sdk.UnwrapSDKContext(goCtx), msg)
}

// Withdraw burns shares for the proportional part of the vault's holdings.
func (k msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdrawRequest) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return k.Keeper.Withdraw(sdk.UnwrapSDKContext(goCtx), msg)
}

// Rebalance tears down and reopens the vault's pool positions around the
// current price.
func (k msgServer) Rebalance(goCtx context.Context, msg *types.MsgRebalanceRequest) (*types.MsgRebalanceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.Keeper.Rebalance(sdk.UnwrapSDKContext(goCtx), msg.Sender); err != nil {
		return nil, err
	}
	return &types.MsgRebalanceResponse{}, nil
}

// WithdrawProtocolFees sends everything owed to the protocol account.
func (k msgServer) WithdrawProtocolFees(goCtx context.Context, msg *types.MsgWithdrawProtocolFeesRequest) (*types.MsgWithdrawProtocolFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return k.Keeper.WithdrawProtocolFees(sdk.UnwrapSDKContext(goCtx), msg.Sender)
}

// ChangeProtocolFee updates the protocol's cut of collected rewards.
func (k msgServer) ChangeProtocolFee(goCtx context.Context, msg *types.MsgChangeProtocolFeeRequest) (*types.MsgChangeProtocolFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.Keeper.ChangeProtocolFee(sdk.UnwrapSDKContext(goCtx), msg.Sender, msg.NewFee); err != nil {
		return nil, err
	}
	return &types.MsgChangeProtocolFeeResponse{}, nil
}

// WithdrawAdminFees sends everything owed to the vault admin.
func (k msgServer) WithdrawAdminFees(goCtx context.Context, msg *types.MsgWithdrawAdminFeesRequest) (*types.MsgWithdrawAdminFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return k.Keeper.WithdrawAdminFees(sdk.UnwrapSDKContext(goCtx), msg.Sender)
}

// ChangeAdminFee updates the admin's cut of collected rewards.
func (k msgServer) ChangeAdminFee(goCtx context.Context, msg *types.MsgChangeAdminFeeRequest) (*types.MsgChangeAdminFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.Keeper.ChangeAdminFee(sdk.UnwrapSDKContext(goCtx), msg.Sender, msg.NewFee); err != nil {
		return nil, err
	}
	return &types.MsgChangeAdminFeeResponse{}, nil
}

// ProposeNewAdmin starts, replaces, or clears an admin handover.
func (k msgServer) ProposeNewAdmin(goCtx context.Context, msg *types.MsgProposeNewAdminRequest) (*types.MsgProposeNewAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.Keeper.ProposeNewAdmin(sdk.UnwrapSDKContext(goCtx), msg.Sender, msg.NewAdmin); err != nil {
		return nil, err
	}
	return &types.MsgProposeNewAdminResponse{}, nil
}

// AcceptNewAdmin completes a pending admin handover.
func (k msgServer) AcceptNewAdmin(goCtx context.Context, msg *types.MsgAcceptNewAdminRequest) (*types.MsgAcceptNewAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.Keeper.AcceptNewAdmin(sdk.UnwrapSDKContext(goCtx), msg.Sender); err != nil {
		return nil, err
	}
	return &types.MsgAcceptNewAdminResponse{}, nil
}

// BurnVaultAdmin renounces adminship for good.
func (k msgServer) BurnVaultAdmin(goCtx context.Context, msg *types.MsgBurnVaultAdminRequest) (*types.MsgBurnVaultAdminResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.Keeper.BurnVaultAdmin(sdk.UnwrapSDKContext(goCtx), msg.Sender); err != nil {
		return nil, err
	}
	return &types.MsgBurnVaultAdminResponse{}, nil
}

// ChangeVaultRebalancer replaces the rebalance authorization policy.
func (k msgServer) ChangeVaultRebalancer(goCtx context.Context, msg *types.MsgChangeVaultRebalancerRequest) (*types.MsgChangeVaultRebalancerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.Keeper.ChangeVaultRebalancer(sdk.UnwrapSDKContext(goCtx), msg.Sender, msg.Rebalancer); err != nil {
		return nil, err
	}
	return &types.MsgChangeVaultRebalancerResponse{}, nil
}

// ChangeVaultParameters replaces the allocation parameters.
func (k msgServer) ChangeVaultParameters(goCtx context.Context, msg *types.MsgChangeVaultParametersRequest) (*types.MsgChangeVaultParametersResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.Keeper.ChangeVaultParameters(sdk.UnwrapSDKContext(goCtx), msg.Sender, msg.Parameters); err != nil {
		return nil, err
	}
	return &types.MsgChangeVaultParametersResponse{}, nil
}
