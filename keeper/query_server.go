package keeper

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

// NewQueryServer creates a new QueryServer for the module.
func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// queryStatus maps keeper errors onto gRPC status codes. A vault that has not
// been created yet reports NotFound, everything else Internal.
func queryStatus(err error) error {
	if errors.Is(err, types.ErrVaultNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// VaultBalances reports the vault's holdings per token net of unclaimed fees,
// plus the fee amounts themselves.
func (k queryServer) VaultBalances(goCtx context.Context, req *types.QueryVaultBalancesRequest) (*types.QueryVaultBalancesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	bals, err := k.Keeper.VaultBalances(ctx)
	if err != nil {
		return nil, queryStatus(err)
	}
	return &bals, nil
}

// PositionBalances reports one position's principal and claimable rewards.
func (k queryServer) PositionBalances(goCtx context.Context, req *types.QueryPositionBalancesRequest) (*types.QueryPositionBalancesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	bals, err := k.PositionBalancesWithFees(ctx, req.Kind)
	if err != nil {
		return nil, queryStatus(err)
	}
	return &bals, nil
}

// ShareInfo describes the share token and its current supply.
func (k queryServer) ShareInfo(goCtx context.Context, req *types.QueryShareInfoRequest) (*types.QueryShareInfoResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	info, err := k.GetVaultInfo(ctx)
	if err != nil {
		return nil, queryStatus(err)
	}
	return &types.QueryShareInfoResponse{
		Name:        info.VaultName,
		Symbol:      info.VaultSymbol,
		ShareDenom:  info.ShareDenom,
		TotalSupply: k.bankKeeper.GetSupply(ctx, info.ShareDenom).Amount,
	}, nil
}

// Balance reports an account's share balance.
func (k queryServer) Balance(goCtx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	info, err := k.GetVaultInfo(ctx)
	if err != nil {
		return nil, queryStatus(err)
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address: %v", err)
	}
	return &types.QueryBalanceResponse{
		Shares: k.bankKeeper.GetBalance(ctx, addr, info.ShareDenom).Amount,
	}, nil
}

// VaultInfo returns the static vault description.
func (k queryServer) VaultInfo(goCtx context.Context, req *types.QueryVaultInfoRequest) (*types.QueryVaultInfoResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	info, err := k.GetVaultInfo(sdk.UnwrapSDKContext(goCtx))
	if err != nil {
		return nil, queryStatus(err)
	}
	return &types.QueryVaultInfoResponse{Info: info}, nil
}

// VaultState returns the open positions and the last rebalance snapshot.
func (k queryServer) VaultState(goCtx context.Context, req *types.QueryVaultStateRequest) (*types.QueryVaultStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	state, err := k.GetVaultState(sdk.UnwrapSDKContext(goCtx))
	if err != nil {
		return nil, queryStatus(err)
	}
	return &types.QueryVaultStateResponse{State: state}, nil
}

// VaultParameters returns the allocation parameters.
func (k queryServer) VaultParameters(goCtx context.Context, req *types.QueryVaultParametersRequest) (*types.QueryVaultParametersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	params, err := k.GetVaultParameters(sdk.UnwrapSDKContext(goCtx))
	if err != nil {
		return nil, queryStatus(err)
	}
	return &types.QueryVaultParametersResponse{Parameters: params}, nil
}

// FeesInfo returns the fee rates and unclaimed fee amounts.
func (k queryServer) FeesInfo(goCtx context.Context, req *types.QueryFeesInfoRequest) (*types.QueryFeesInfoResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	fees, err := k.GetFeesInfo(sdk.UnwrapSDKContext(goCtx))
	if err != nil {
		return nil, queryStatus(err)
	}
	return &types.QueryFeesInfoResponse{Fees: fees}, nil
}
