package types

import "context"

// MsgServer is the transaction surface of the vault module.
type MsgServer interface {
	// CreateVault initializes the vault over a concentrated liquidity pool.
	CreateVault(context.Context, *MsgCreateVaultRequest) (*MsgCreateVaultResponse, error)
	// Deposit adds funds to the vault in exchange for newly minted shares.
	Deposit(context.Context, *MsgDepositRequest) (*MsgDepositResponse, error)
	// Withdraw burns shares for the proportional part of the vault's holdings.
	Withdraw(context.Context, *MsgWithdrawRequest) (*MsgWithdrawResponse, error)
	// Rebalance tears down and reopens the vault's pool positions around the
	// current price.
	Rebalance(context.Context, *MsgRebalanceRequest) (*MsgRebalanceResponse, error)
	// WithdrawProtocolFees sends everything owed to the protocol account.
	WithdrawProtocolFees(context.Context, *MsgWithdrawProtocolFeesRequest) (*MsgWithdrawProtocolFeesResponse, error)
	// ChangeProtocolFee updates the protocol's cut of collected rewards.
	ChangeProtocolFee(context.Context, *MsgChangeProtocolFeeRequest) (*MsgChangeProtocolFeeResponse, error)
	// WithdrawAdminFees sends everything owed to the vault admin.
	WithdrawAdminFees(context.Context, *MsgWithdrawAdminFeesRequest) (*MsgWithdrawAdminFeesResponse, error)
	// ChangeAdminFee updates the admin's cut of collected rewards.
	ChangeAdminFee(context.Context, *MsgChangeAdminFeeRequest) (*MsgChangeAdminFeeResponse, error)
	// ProposeNewAdmin starts, replaces, or clears an admin handover.
	ProposeNewAdmin(context.Context, *MsgProposeNewAdminRequest) (*MsgProposeNewAdminResponse, error)
	// AcceptNewAdmin completes a pending admin handover.
	AcceptNewAdmin(context.Context, *MsgAcceptNewAdminRequest) (*MsgAcceptNewAdminResponse, error)
	// BurnVaultAdmin renounces adminship for good.
	BurnVaultAdmin(context.Context, *MsgBurnVaultAdminRequest) (*MsgBurnVaultAdminResponse, error)
	// ChangeVaultRebalancer replaces the rebalance authorization policy.
	ChangeVaultRebalancer(context.Context, *MsgChangeVaultRebalancerRequest) (*MsgChangeVaultRebalancerResponse, error)
	// ChangeVaultParameters replaces the allocation parameters.
	ChangeVaultParameters(context.Context, *MsgChangeVaultParametersRequest) (*MsgChangeVaultParametersResponse, error)
}

// QueryServer is the query surface of the vault module.
type QueryServer interface {
	// VaultBalances reports the vault's holdings per token, net of fees.
	VaultBalances(context.Context, *QueryVaultBalancesRequest) (*QueryVaultBalancesResponse, error)
	// PositionBalances reports one position's principal and rewards.
	PositionBalances(context.Context, *QueryPositionBalancesRequest) (*QueryPositionBalancesResponse, error)
	// ShareInfo describes the share token and its supply.
	ShareInfo(context.Context, *QueryShareInfoRequest) (*QueryShareInfoResponse, error)
	// Balance reports an account's share balance.
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
	// VaultInfo returns the static vault description.
	VaultInfo(context.Context, *QueryVaultInfoRequest) (*QueryVaultInfoResponse, error)
	// VaultState returns the open positions and the last rebalance snapshot.
	VaultState(context.Context, *QueryVaultStateRequest) (*QueryVaultStateResponse, error)
	// VaultParameters returns the allocation parameters.
	VaultParameters(context.Context, *QueryVaultParametersRequest) (*QueryVaultParametersResponse, error)
	// FeesInfo returns the fee rates and unclaimed fee amounts.
	FeesInfo(context.Context, *QueryFeesInfoRequest) (*QueryFeesInfoResponse, error)
}
