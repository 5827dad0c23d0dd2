package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// MsgCreateVaultRequest creates the vault over an existing concentrated
// liquidity pool. The creator pays the vault creation cost.
type MsgCreateVaultRequest struct {
	Creator     string          `json:"creator"`
	PoolID      uint64          `json:"pool_id"`
	VaultName   string          `json:"vault_name"`
	VaultSymbol string          `json:"vault_symbol"`
	ShareDenom  string          `json:"share_denom"`
	Admin       string          `json:"admin,omitempty"`
	AdminFee    Weight          `json:"admin_fee"`
	Rebalancer  VaultRebalancer `json:"rebalancer"`
	Parameters  VaultParameters `json:"parameters"`
}

// MsgCreateVaultResponse reports the address holding the vault's funds.
type MsgCreateVaultResponse struct {
	VaultAddress string `json:"vault_address"`
}

// ValidateBasic performs stateless validation of the creation request.
func (m MsgCreateVaultRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid creator address %q: %s", m.Creator, err)
	}
	if m.PoolID == 0 {
		return errors.Wrap(ErrInvalidRequest, "pool id must be set")
	}
	if m.VaultName == "" {
		return errors.Wrap(ErrInvalidRequest, "vault name must not be empty")
	}
	if m.VaultSymbol == "" {
		return errors.Wrap(ErrInvalidRequest, "vault symbol must not be empty")
	}
	if err := sdk.ValidateDenom(m.ShareDenom); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid share denom %q: %s", m.ShareDenom, err)
	}
	if m.Admin != "" {
		if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
			return errors.Wrapf(ErrInvalidRequest, "invalid admin address %q: %s", m.Admin, err)
		}
	}
	if err := m.AdminFee.Validate(); err != nil {
		return errors.Wrap(ErrInvalidAdminFee, err.Error())
	}
	if err := m.Rebalancer.Validate(m.Admin != ""); err != nil {
		return errors.Wrap(ErrInvalidRebalancer, err.Error())
	}
	return m.Parameters.Validate()
}

// MsgDepositRequest adds liquidity to the vault in exchange for shares. The
// unusable remainder of the sent amounts is refunded to the depositor.
type MsgDepositRequest struct {
	Depositor string   `json:"depositor"`
	Amount0   math.Int `json:"amount0"`
	Amount1   math.Int `json:"amount1"`
	// Amount0Min and Amount1Min bound how much of each token must actually
	// enter the vault.
	Amount0Min math.Int `json:"amount0_min"`
	Amount1Min math.Int `json:"amount1_min"`
	// To receives the minted shares. Empty means the depositor.
	To string `json:"to,omitempty"`
}

// MsgDepositResponse reports the minted shares and what the vault kept.
type MsgDepositResponse struct {
	Shares          math.Int `json:"shares"`
	Amount0Used     math.Int `json:"amount0_used"`
	Amount1Used     math.Int `json:"amount1_used"`
	Amount0Refunded math.Int `json:"amount0_refunded"`
	Amount1Refunded math.Int `json:"amount1_refunded"`
}

// ValidateBasic performs stateless validation of the deposit request.
func (m MsgDepositRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Depositor); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid depositor address %q: %s", m.Depositor, err)
	}
	amounts := []struct {
		name string
		amt  math.Int
	}{
		{"amount0", m.Amount0},
		{"amount1", m.Amount1},
		{"amount0_min", m.Amount0Min},
		{"amount1_min", m.Amount1Min},
	}
	for _, a := range amounts {
		if a.amt.IsNil() || a.amt.IsNegative() {
			return errors.Wrapf(ErrInvalidRequest, "invalid %s: %s", a.name, a.amt)
		}
	}
	if m.To != "" {
		if _, err := sdk.AccAddressFromBech32(m.To); err != nil {
			return errors.Wrapf(ErrInvalidRequest, "invalid shares receiver %q: %s", m.To, err)
		}
	}
	return nil
}

// SharesReceiver returns the account the minted shares go to.
func (m MsgDepositRequest) SharesReceiver() string {
	if m.To != "" {
		return m.To
	}
	return m.Depositor
}

// MsgWithdrawRequest burns shares for the proportional part of the vault's
// holdings.
type MsgWithdrawRequest struct {
	Owner  string   `json:"owner"`
	Shares math.Int `json:"shares"`
	// Amount0Min and Amount1Min bound the withdrawn amounts.
	Amount0Min math.Int `json:"amount0_min"`
	Amount1Min math.Int `json:"amount1_min"`
	// To receives the withdrawn tokens. Empty means the owner.
	To string `json:"to,omitempty"`
}

// MsgWithdrawResponse reports the withdrawn amounts.
type MsgWithdrawResponse struct {
	Amount0 math.Int `json:"amount0"`
	Amount1 math.Int `json:"amount1"`
}

// ValidateBasic performs stateless validation of the withdrawal request.
func (m MsgWithdrawRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid owner address %q: %s", m.Owner, err)
	}
	if m.Shares.IsNil() || m.Shares.IsNegative() {
		return errors.Wrapf(ErrInvalidRequest, "invalid shares: %s", m.Shares)
	}
	amounts := []struct {
		name string
		amt  math.Int
	}{
		{"amount0_min", m.Amount0Min},
		{"amount1_min", m.Amount1Min},
	}
	for _, a := range amounts {
		if a.amt.IsNil() || a.amt.IsNegative() {
			return errors.Wrapf(ErrInvalidRequest, "invalid %s: %s", a.name, a.amt)
		}
	}
	if m.To != "" {
		if _, err := sdk.AccAddressFromBech32(m.To); err != nil {
			return errors.Wrapf(ErrInvalidRequest, "invalid withdrawal receiver %q: %s", m.To, err)
		}
	}
	return nil
}

// WithdrawalReceiver returns the account the withdrawn tokens go to.
func (m MsgWithdrawRequest) WithdrawalReceiver() string {
	if m.To != "" {
		return m.To
	}
	return m.Owner
}

// MsgRebalanceRequest redeploys the vault's holdings into fresh positions
// around the current price.
type MsgRebalanceRequest struct {
	Sender string `json:"sender"`
}

// MsgRebalanceResponse is the empty rebalance response.
type MsgRebalanceResponse struct{}

// ValidateBasic performs stateless validation of the rebalance request.
func (m MsgRebalanceRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid sender address %q: %s", m.Sender, err)
	}
	return nil
}

// MsgWithdrawProtocolFeesRequest claims everything the fee ledger owes the
// protocol.
type MsgWithdrawProtocolFeesRequest struct {
	Sender string `json:"sender"`
}

// MsgWithdrawProtocolFeesResponse reports the claimed amounts.
type MsgWithdrawProtocolFeesResponse struct {
	Amount0        math.Int `json:"amount0"`
	Amount1        math.Int `json:"amount1"`
	CreationTokens math.Int `json:"creation_tokens"`
}

// ValidateBasic performs stateless validation of the claim request.
func (m MsgWithdrawProtocolFeesRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid sender address %q: %s", m.Sender, err)
	}
	return nil
}

// MsgChangeProtocolFeeRequest updates the protocol fee rate.
type MsgChangeProtocolFeeRequest struct {
	Sender string `json:"sender"`
	NewFee Weight `json:"new_fee"`
}

// MsgChangeProtocolFeeResponse is the empty fee change response.
type MsgChangeProtocolFeeResponse struct{}

// ValidateBasic performs stateless validation of the fee change request.
func (m MsgChangeProtocolFeeRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid sender address %q: %s", m.Sender, err)
	}
	if err := m.NewFee.Validate(); err != nil {
		return errors.Wrap(ErrInvalidProtocolFee, err.Error())
	}
	return nil
}

// MsgWithdrawAdminFeesRequest claims everything the fee ledger owes the admin.
type MsgWithdrawAdminFeesRequest struct {
	Sender string `json:"sender"`
}

// MsgWithdrawAdminFeesResponse reports the claimed amounts.
type MsgWithdrawAdminFeesResponse struct {
	Amount0 math.Int `json:"amount0"`
	Amount1 math.Int `json:"amount1"`
}

// ValidateBasic performs stateless validation of the claim request.
func (m MsgWithdrawAdminFeesRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid sender address %q: %s", m.Sender, err)
	}
	return nil
}

// MsgChangeAdminFeeRequest updates the admin fee rate.
type MsgChangeAdminFeeRequest struct {
	Sender string `json:"sender"`
	NewFee Weight `json:"new_fee"`
}

// MsgChangeAdminFeeResponse is the empty fee change response.
type MsgChangeAdminFeeResponse struct{}

// ValidateBasic performs stateless validation of the fee change request.
func (m MsgChangeAdminFeeRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid sender address %q: %s", m.Sender, err)
	}
	if err := m.NewFee.Validate(); err != nil {
		return errors.Wrap(ErrInvalidAdminFee, err.Error())
	}
	return nil
}

// MsgProposeNewAdminRequest starts, replaces, or clears an admin handover.
// An empty NewAdmin clears any pending proposal.
type MsgProposeNewAdminRequest struct {
	Sender   string `json:"sender"`
	NewAdmin string `json:"new_admin,omitempty"`
}

// MsgProposeNewAdminResponse is the empty proposal response.
type MsgProposeNewAdminResponse struct{}

// ValidateBasic performs stateless validation of the proposal request.
func (m MsgProposeNewAdminRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid sender address %q: %s", m.Sender, err)
	}
	return nil
}

// MsgAcceptNewAdminRequest completes a pending admin handover.
type MsgAcceptNewAdminRequest struct {
	Sender string `json:"sender"`
}

// MsgAcceptNewAdminResponse is the empty handover response.
type MsgAcceptNewAdminResponse struct{}

// ValidateBasic performs stateless validation of the handover request.
func (m MsgAcceptNewAdminRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid sender address %q: %s", m.Sender, err)
	}
	return nil
}

// MsgBurnVaultAdminRequest renounces adminship for good.
type MsgBurnVaultAdminRequest struct {
	Sender string `json:"sender"`
}

// MsgBurnVaultAdminResponse is the empty burn response.
type MsgBurnVaultAdminResponse struct{}

// ValidateBasic performs stateless validation of the burn request.
func (m MsgBurnVaultAdminRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid sender address %q: %s", m.Sender, err)
	}
	return nil
}

// MsgChangeVaultRebalancerRequest replaces the rebalance authorization policy.
type MsgChangeVaultRebalancerRequest struct {
	Sender     string          `json:"sender"`
	Rebalancer VaultRebalancer `json:"rebalancer"`
}

// MsgChangeVaultRebalancerResponse is the empty policy change response.
type MsgChangeVaultRebalancerResponse struct{}

// ValidateBasic performs stateless validation of the policy change request.
func (m MsgChangeVaultRebalancerRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid sender address %q: %s", m.Sender, err)
	}
	// The full rebalancer check needs the vault's admin configuration and
	// runs in the keeper. Only the policy name is checked here.
	switch m.Rebalancer.Policy {
	case RebalancerAdmin, RebalancerDelegate, RebalancerAnyone:
		return nil
	}
	return errors.Wrapf(ErrInvalidRebalancer, "unknown rebalancer policy %q", m.Rebalancer.Policy)
}

// MsgChangeVaultParametersRequest replaces the allocation parameters.
type MsgChangeVaultParametersRequest struct {
	Sender     string          `json:"sender"`
	Parameters VaultParameters `json:"parameters"`
}

// MsgChangeVaultParametersResponse is the empty parameter change response.
type MsgChangeVaultParametersResponse struct{}

// ValidateBasic performs stateless validation of the parameter change request.
func (m MsgChangeVaultParametersRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return errors.Wrapf(ErrInvalidRequest, "invalid sender address %q: %s", m.Sender, err)
	}
	return m.Parameters.Validate()
}
