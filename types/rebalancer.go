package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RebalancerPolicy enumerates who may trigger a vault rebalance.
type RebalancerPolicy string

const (
	// RebalancerAdmin restricts rebalances to the vault admin.
	RebalancerAdmin RebalancerPolicy = "admin"
	// RebalancerDelegate restricts rebalances to a fixed delegate account.
	RebalancerDelegate RebalancerPolicy = "delegate"
	// RebalancerAnyone lets any account rebalance, gated by time and price
	// movement since the last rebalance.
	RebalancerAnyone RebalancerPolicy = "anyone"
)

// VaultRebalancer selects the rebalance authorization policy and carries the
// parameters of the selected policy. Fields of the other policies are left at
// their zero values.
type VaultRebalancer struct {
	Policy RebalancerPolicy `json:"policy"`
	// Delegate is the only account allowed to rebalance under the delegate
	// policy.
	Delegate string `json:"delegate,omitempty"`
	// PriceFactorBeforeRebalance is how far the price must move from the last
	// rebalance snapshot before a permissionless rebalance unlocks. A factor
	// of 1 disables the price gate.
	PriceFactorBeforeRebalance PriceFactor `json:"price_factor_before_rebalance"`
	// SecondsBeforeRebalance is how long after the last rebalance a
	// permissionless rebalance stays locked.
	SecondsBeforeRebalance uint32 `json:"seconds_before_rebalance"`
}

// NewAdminRebalancer returns the policy that only lets the admin rebalance.
func NewAdminRebalancer() VaultRebalancer {
	return VaultRebalancer{Policy: RebalancerAdmin, PriceFactorBeforeRebalance: OnePriceFactor()}
}

// NewDelegateRebalancer returns the policy that only lets delegate rebalance.
func NewDelegateRebalancer(delegate string) VaultRebalancer {
	return VaultRebalancer{Policy: RebalancerDelegate, Delegate: delegate, PriceFactorBeforeRebalance: OnePriceFactor()}
}

// NewAnyoneRebalancer returns the permissionless policy gated by the given
// price factor and minimum delay.
func NewAnyoneRebalancer(priceFactor PriceFactor, seconds uint32) VaultRebalancer {
	return VaultRebalancer{
		Policy:                     RebalancerAnyone,
		PriceFactorBeforeRebalance: priceFactor,
		SecondsBeforeRebalance:     seconds,
	}
}

// Validate checks the rebalancer against the vault's admin configuration.
// Vaults without an admin must be rebalanceable by anyone.
func (r VaultRebalancer) Validate(hasAdmin bool) error {
	switch r.Policy {
	case RebalancerAdmin:
		if !hasAdmin {
			return fmt.Errorf("admin rebalancer policy requires an admin")
		}
	case RebalancerDelegate:
		if !hasAdmin {
			return fmt.Errorf("delegate rebalancer policy requires an admin")
		}
		if _, err := sdk.AccAddressFromBech32(r.Delegate); err != nil {
			return fmt.Errorf("invalid delegate address %q: %w", r.Delegate, err)
		}
	case RebalancerAnyone:
		if err := r.PriceFactorBeforeRebalance.Validate(); err != nil {
			return fmt.Errorf("invalid rebalance price factor: %w", err)
		}
	default:
		return fmt.Errorf("unknown rebalancer policy %q", r.Policy)
	}
	return nil
}
