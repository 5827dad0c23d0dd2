package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// QueryVaultBalancesRequest asks for the vault's total holdings per token.
type QueryVaultBalancesRequest struct{}

// QueryVaultBalancesResponse reports the vault's total holdings net of fees,
// plus the unclaimed fee amounts per party.
type QueryVaultBalancesResponse struct {
	Balance0               math.Int `json:"balance0"`
	Balance1               math.Int `json:"balance1"`
	ProtocolUnclaimedFees0 math.Int `json:"protocol_unclaimed_fees0"`
	ProtocolUnclaimedFees1 math.Int `json:"protocol_unclaimed_fees1"`
	AdminUnclaimedFees0    math.Int `json:"admin_unclaimed_fees0"`
	AdminUnclaimedFees1    math.Int `json:"admin_unclaimed_fees1"`
}

// QueryPositionBalancesRequest asks for one position's principal and rewards.
type QueryPositionBalancesRequest struct {
	Kind PositionKind `json:"kind"`
}

// ValidateBasic checks the requested position kind.
func (q QueryPositionBalancesRequest) ValidateBasic() error {
	if err := q.Kind.Validate(); err != nil {
		return errors.Wrap(ErrInvalidRequest, err.Error())
	}
	return nil
}

// QueryPositionBalancesResponse reports a position's principal and claimable
// rewards. All zero when the position is not open.
type QueryPositionBalancesResponse struct {
	Amount0 math.Int `json:"amount0"`
	Amount1 math.Int `json:"amount1"`
	Fees0   math.Int `json:"fees0"`
	Fees1   math.Int `json:"fees1"`
}

// QueryShareInfoRequest asks for the share token description.
type QueryShareInfoRequest struct{}

// QueryShareInfoResponse describes the share token and its supply.
type QueryShareInfoResponse struct {
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	ShareDenom  string   `json:"share_denom"`
	TotalSupply math.Int `json:"total_supply"`
}

// QueryBalanceRequest asks for an account's share balance.
type QueryBalanceRequest struct {
	Address string `json:"address"`
}

// ValidateBasic checks the queried address.
func (q QueryBalanceRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(q.Address); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid address %q: %s", q.Address, err)
	}
	return nil
}

// QueryBalanceResponse reports an account's share balance.
type QueryBalanceResponse struct {
	Shares math.Int `json:"shares"`
}

// QueryVaultInfoRequest asks for the static vault description.
type QueryVaultInfoRequest struct{}

// QueryVaultInfoResponse returns the vault info record.
type QueryVaultInfoResponse struct {
	Info VaultInfo `json:"info"`
}

// QueryVaultStateRequest asks for the open positions and last snapshot.
type QueryVaultStateRequest struct{}

// QueryVaultStateResponse returns the vault state record.
type QueryVaultStateResponse struct {
	State VaultState `json:"state"`
}

// QueryVaultParametersRequest asks for the allocation parameters.
type QueryVaultParametersRequest struct{}

// QueryVaultParametersResponse returns the vault parameters record.
type QueryVaultParametersResponse struct {
	Parameters VaultParameters `json:"parameters"`
}

// QueryFeesInfoRequest asks for the fee ledger.
type QueryFeesInfoRequest struct{}

// QueryFeesInfoResponse returns the fees info record.
type QueryFeesInfoResponse struct {
	Fees FeesInfo `json:"fees"`
}
