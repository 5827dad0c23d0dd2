package types

import (
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"cosmossdk.io/math"
)

// PositionKind identifies one of the three position shapes the vault holds.
type PositionKind string

const (
	// PositionFullRange spans the whole valid tick domain.
	PositionFullRange PositionKind = "full_range"
	// PositionBase brackets the current price symmetrically in price space.
	PositionBase PositionKind = "base"
	// PositionLimit holds the leftover single-sided capital next to the
	// current tick.
	PositionLimit PositionKind = "limit"
)

// AllPositionKinds lists the position shapes in the order the vault opens
// and tears them down.
var AllPositionKinds = []PositionKind{PositionFullRange, PositionBase, PositionLimit}

// Validate checks that the kind is one of the three known position shapes.
func (k PositionKind) Validate() error {
	switch k {
	case PositionFullRange, PositionBase, PositionLimit:
		return nil
	}
	return fmt.Errorf("unknown position kind %q", k)
}

// VaultInfo pins the vault's pool, token pair, share token, and the accounts
// in charge of it. Written at creation; only the admin fields and the
// rebalancer change afterwards.
type VaultInfo struct {
	// PoolID is the concentrated liquidity pool the vault deploys into.
	PoolID uint64 `json:"pool_id"`
	// Denom0 and Denom1 are the pool's token pair, read from pool metadata at
	// creation and pinned for the vault's lifetime.
	Denom0 string `json:"denom0"`
	Denom1 string `json:"denom1"`
	// VaultName and VaultSymbol describe the share token.
	VaultName   string `json:"vault_name"`
	VaultSymbol string `json:"vault_symbol"`
	// ShareDenom is the bank denom minted for vault shares.
	ShareDenom string `json:"share_denom"`
	// Admin manages the vault. Empty means the vault has no admin.
	Admin string `json:"admin,omitempty"`
	// ProposedNewAdmin is the pending admin handover target, if any.
	ProposedNewAdmin string `json:"proposed_new_admin,omitempty"`
	// Rebalancer is the rebalance authorization policy.
	Rebalancer VaultRebalancer `json:"rebalancer"`
}

// HasAdmin reports whether the vault currently has an admin.
func (v VaultInfo) HasAdmin() bool { return v.Admin != "" }

// HasProposedAdmin reports whether an admin handover is pending.
func (v VaultInfo) HasProposedAdmin() bool { return v.ProposedNewAdmin != "" }

// Validate checks the static vault description.
func (v VaultInfo) Validate() error {
	if v.PoolID == 0 {
		return fmt.Errorf("pool id must be set")
	}
	if err := sdk.ValidateDenom(v.Denom0); err != nil {
		return fmt.Errorf("invalid denom0: %w", err)
	}
	if err := sdk.ValidateDenom(v.Denom1); err != nil {
		return fmt.Errorf("invalid denom1: %w", err)
	}
	if v.Denom0 == v.Denom1 {
		return fmt.Errorf("denom0 and denom1 are both %q", v.Denom0)
	}
	if v.VaultName == "" {
		return fmt.Errorf("vault name must not be empty")
	}
	if v.VaultSymbol == "" {
		return fmt.Errorf("vault symbol must not be empty")
	}
	if err := sdk.ValidateDenom(v.ShareDenom); err != nil {
		return fmt.Errorf("invalid share denom: %w", err)
	}
	if v.Admin != "" {
		if _, err := sdk.AccAddressFromBech32(v.Admin); err != nil {
			return fmt.Errorf("invalid admin address: %w", err)
		}
	}
	if v.ProposedNewAdmin != "" {
		if _, err := sdk.AccAddressFromBech32(v.ProposedNewAdmin); err != nil {
			return fmt.Errorf("invalid proposed admin address: %w", err)
		}
	}
	return v.Rebalancer.Validate(v.HasAdmin())
}

// PriceSnapshot records the pool price and block time of the last successful
// rebalance. It feeds the permissionless rebalance gates.
type PriceSnapshot struct {
	Price     math.LegacyDec `json:"price"`
	Timestamp time.Time      `json:"timestamp"`
}

// VaultState tracks the vault's open positions and the last rebalance
// snapshot. All fields start unset and are rewritten by every rebalance.
type VaultState struct {
	FullRangePositionID   *uint64        `json:"full_range_position_id,omitempty"`
	BasePositionID        *uint64        `json:"base_position_id,omitempty"`
	LimitPositionID       *uint64        `json:"limit_position_id,omitempty"`
	LastPriceAndTimestamp *PriceSnapshot `json:"last_price_and_timestamp,omitempty"`
}

// NewVaultState returns the empty state a vault starts with.
func NewVaultState() VaultState { return VaultState{} }

// OpenPositionIDs lists the ids of the currently open positions, full range
// first.
func (s VaultState) OpenPositionIDs() []uint64 {
	ids := make([]uint64, 0, 3)
	for _, id := range []*uint64{s.FullRangePositionID, s.BasePositionID, s.LimitPositionID} {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

// PositionIDFor returns the open position id for the given kind, or nil.
func (s VaultState) PositionIDFor(kind PositionKind) *uint64 {
	switch kind {
	case PositionFullRange:
		return s.FullRangePositionID
	case PositionBase:
		return s.BasePositionID
	case PositionLimit:
		return s.LimitPositionID
	}
	return nil
}

// SetPositionID records the id of a freshly opened position.
func (s *VaultState) SetPositionID(kind PositionKind, id uint64) {
	switch kind {
	case PositionFullRange:
		s.FullRangePositionID = &id
	case PositionBase:
		s.BasePositionID = &id
	case PositionLimit:
		s.LimitPositionID = &id
	}
}

// ClearPositions unsets all position ids, keeping the price snapshot.
func (s *VaultState) ClearPositions() {
	s.FullRangePositionID = nil
	s.BasePositionID = nil
	s.LimitPositionID = nil
}

// FeesInfo is the vault's fee ledger: the configured rates and the amounts
// already attributed to the protocol and the admin but not yet claimed.
type FeesInfo struct {
	ProtocolFee Weight `json:"protocol_fee"`
	AdminFee    Weight `json:"admin_fee"`
	// Uncollected reward cuts per party and token side.
	ProtocolTokens0Owned math.Int `json:"protocol_tokens0_owned"`
	ProtocolTokens1Owned math.Int `json:"protocol_tokens1_owned"`
	AdminTokens0Owned    math.Int `json:"admin_tokens0_owned"`
	AdminTokens1Owned    math.Int `json:"admin_tokens1_owned"`
	// ProtocolCreationTokensOwned holds the vault creation charge until the
	// protocol claims it.
	ProtocolCreationTokensOwned math.Int `json:"protocol_creation_tokens_owned"`
}

// NewFeesInfo starts a fee ledger with the given rates and creation charge.
func NewFeesInfo(protocolFee, adminFee Weight, creationTokens math.Int) FeesInfo {
	return FeesInfo{
		ProtocolFee:                 protocolFee,
		AdminFee:                    adminFee,
		ProtocolTokens0Owned:        math.ZeroInt(),
		ProtocolTokens1Owned:        math.ZeroInt(),
		AdminTokens0Owned:           math.ZeroInt(),
		AdminTokens1Owned:           math.ZeroInt(),
		ProtocolCreationTokensOwned: creationTokens,
	}
}

// HasUncollectedAdminFees reports whether any reward cut attributed to the
// admin is still waiting to be claimed.
func (f FeesInfo) HasUncollectedAdminFees() bool {
	return f.AdminTokens0Owned.IsPositive() || f.AdminTokens1Owned.IsPositive()
}

// Validate checks rates against maxFee, the admin fee against the admin's
// presence, and that all owned amounts are initialized and non-negative.
func (f FeesInfo) Validate(hasAdmin bool, maxFee Weight) error {
	if err := f.ProtocolFee.Validate(); err != nil {
		return fmt.Errorf("invalid protocol fee: %w", err)
	}
	if f.ProtocolFee.GT(maxFee.LegacyDec) {
		return fmt.Errorf("protocol fee %s exceeds max %s", f.ProtocolFee, maxFee)
	}
	if err := f.AdminFee.Validate(); err != nil {
		return fmt.Errorf("invalid admin fee: %w", err)
	}
	if f.AdminFee.GT(maxFee.LegacyDec) {
		return fmt.Errorf("admin fee %s exceeds max %s", f.AdminFee, maxFee)
	}
	if !hasAdmin && !f.AdminFee.IsZero() {
		return fmt.Errorf("admin fee %s requires an admin", f.AdminFee)
	}
	owned := []struct {
		name string
		amt  math.Int
	}{
		{"protocol tokens0", f.ProtocolTokens0Owned},
		{"protocol tokens1", f.ProtocolTokens1Owned},
		{"admin tokens0", f.AdminTokens0Owned},
		{"admin tokens1", f.AdminTokens1Owned},
		{"protocol creation tokens", f.ProtocolCreationTokensOwned},
	}
	for _, o := range owned {
		if o.amt.IsNil() || o.amt.IsNegative() {
			return fmt.Errorf("%s owned amount is invalid: %s", o.name, o.amt)
		}
	}
	return nil
}

// FundsInfo tracks vault capital that sits in the vault account, outside any
// pool position and not attributed as fees.
type FundsInfo struct {
	AvailableBalance0 math.Int `json:"available_balance0"`
	AvailableBalance1 math.Int `json:"available_balance1"`
}

// NewFundsInfo returns an empty funds record.
func NewFundsInfo() FundsInfo {
	return FundsInfo{AvailableBalance0: math.ZeroInt(), AvailableBalance1: math.ZeroInt()}
}

// Validate checks that both balances are initialized and non-negative.
func (f FundsInfo) Validate() error {
	if f.AvailableBalance0.IsNil() || f.AvailableBalance0.IsNegative() {
		return fmt.Errorf("invalid available balance0: %s", f.AvailableBalance0)
	}
	if f.AvailableBalance1.IsNil() || f.AvailableBalance1.IsNegative() {
		return fmt.Errorf("invalid available balance1: %s", f.AvailableBalance1)
	}
	return nil
}
