package types

import (
	"strconv"

	"cosmossdk.io/core/event"
	"cosmossdk.io/math"
)

// Event type names emitted by the module.
const (
	EventTypeVaultCreated           = "vault_created"
	EventTypeDeposit                = "vault_deposit"
	EventTypeWithdrawal             = "vault_withdrawal"
	EventTypeRebalance              = "vault_rebalance"
	EventTypeProtocolFeesWithdrawn  = "protocol_fees_withdrawn"
	EventTypeAdminFeesWithdrawn     = "admin_fees_withdrawn"
	EventTypeProtocolFeeChanged     = "protocol_fee_changed"
	EventTypeAdminFeeChanged        = "admin_fee_changed"
	EventTypeNewAdminProposed       = "new_admin_proposed"
	EventTypeAdminProposalCleared   = "admin_proposal_cleared"
	EventTypeAdminChanged           = "admin_changed"
	EventTypeAdminBurned            = "admin_burned"
	EventTypeRebalancerChanged      = "rebalancer_changed"
	EventTypeVaultParametersChanged = "vault_parameters_changed"
)

// Event is a module event ready to emit through the event service.
type Event struct {
	Type       string
	Attributes []event.Attribute
}

// NewEventVaultCreated creates a new vault creation event.
func NewEventVaultCreated(vaultAddress string, poolID uint64, shareDenom, admin string) Event {
	return Event{
		Type: EventTypeVaultCreated,
		Attributes: []event.Attribute{
			{Key: "vault_address", Value: vaultAddress},
			{Key: "pool_id", Value: strconv.FormatUint(poolID, 10)},
			{Key: "share_denom", Value: shareDenom},
			{Key: "admin", Value: admin},
		},
	}
}

// NewEventDeposit creates a new deposit event. used0 and used1 are the
// amounts that actually entered the vault; the rest was refunded.
func NewEventDeposit(depositor, to string, used0, used1, refunded0, refunded1, shares math.Int) Event {
	return Event{
		Type: EventTypeDeposit,
		Attributes: []event.Attribute{
			{Key: "depositor", Value: depositor},
			{Key: "to", Value: to},
			{Key: "amount0_used", Value: used0.String()},
			{Key: "amount1_used", Value: used1.String()},
			{Key: "amount0_refunded", Value: refunded0.String()},
			{Key: "amount1_refunded", Value: refunded1.String()},
			{Key: "shares_minted", Value: shares.String()},
		},
	}
}

// NewEventWithdrawal creates a new withdrawal event.
func NewEventWithdrawal(owner, to string, shares, amount0, amount1 math.Int) Event {
	return Event{
		Type: EventTypeWithdrawal,
		Attributes: []event.Attribute{
			{Key: "owner", Value: owner},
			{Key: "to", Value: to},
			{Key: "shares_burned", Value: shares.String()},
			{Key: "amount0", Value: amount0.String()},
			{Key: "amount1", Value: amount1.String()},
		},
	}
}

// NewEventRebalance creates a new rebalance event with the amounts funding
// each of the three positions.
func NewEventRebalance(sender string, price math.LegacyDec, fullRange0, fullRange1, base0, base1, limit0, limit1 math.Int) Event {
	return Event{
		Type: EventTypeRebalance,
		Attributes: []event.Attribute{
			{Key: "sender", Value: sender},
			{Key: "price", Value: price.String()},
			{Key: "full_range_amount0", Value: fullRange0.String()},
			{Key: "full_range_amount1", Value: fullRange1.String()},
			{Key: "base_amount0", Value: base0.String()},
			{Key: "base_amount1", Value: base1.String()},
			{Key: "limit_amount0", Value: limit0.String()},
			{Key: "limit_amount1", Value: limit1.String()},
		},
	}
}

// NewEventProtocolFeesWithdrawn creates a new protocol fee claim event.
func NewEventProtocolFeesWithdrawn(amount0, amount1, creationTokens math.Int) Event {
	return Event{
		Type: EventTypeProtocolFeesWithdrawn,
		Attributes: []event.Attribute{
			{Key: "amount0", Value: amount0.String()},
			{Key: "amount1", Value: amount1.String()},
			{Key: "creation_tokens", Value: creationTokens.String()},
		},
	}
}

// NewEventAdminFeesWithdrawn creates a new admin fee claim event.
func NewEventAdminFeesWithdrawn(admin string, amount0, amount1 math.Int) Event {
	return Event{
		Type: EventTypeAdminFeesWithdrawn,
		Attributes: []event.Attribute{
			{Key: "admin", Value: admin},
			{Key: "amount0", Value: amount0.String()},
			{Key: "amount1", Value: amount1.String()},
		},
	}
}

// NewEventProtocolFeeChanged creates a new protocol fee rate change event.
func NewEventProtocolFeeChanged(oldFee, newFee Weight) Event {
	return Event{
		Type: EventTypeProtocolFeeChanged,
		Attributes: []event.Attribute{
			{Key: "old_fee", Value: oldFee.String()},
			{Key: "new_fee", Value: newFee.String()},
		},
	}
}

// NewEventAdminFeeChanged creates a new admin fee rate change event.
func NewEventAdminFeeChanged(oldFee, newFee Weight) Event {
	return Event{
		Type: EventTypeAdminFeeChanged,
		Attributes: []event.Attribute{
			{Key: "old_fee", Value: oldFee.String()},
			{Key: "new_fee", Value: newFee.String()},
		},
	}
}

// NewEventNewAdminProposed creates a new admin proposal event.
func NewEventNewAdminProposed(admin, proposed string) Event {
	return Event{
		Type: EventTypeNewAdminProposed,
		Attributes: []event.Attribute{
			{Key: "admin", Value: admin},
			{Key: "proposed_admin", Value: proposed},
		},
	}
}

// NewEventAdminProposalCleared creates an event for a withdrawn admin proposal.
func NewEventAdminProposalCleared(admin string) Event {
	return Event{
		Type: EventTypeAdminProposalCleared,
		Attributes: []event.Attribute{
			{Key: "admin", Value: admin},
		},
	}
}

// NewEventAdminChanged creates a new admin handover event.
func NewEventAdminChanged(oldAdmin, newAdmin string) Event {
	return Event{
		Type: EventTypeAdminChanged,
		Attributes: []event.Attribute{
			{Key: "old_admin", Value: oldAdmin},
			{Key: "new_admin", Value: newAdmin},
		},
	}
}

// NewEventAdminBurned creates a new adminship burn event.
func NewEventAdminBurned(oldAdmin string) Event {
	return Event{
		Type: EventTypeAdminBurned,
		Attributes: []event.Attribute{
			{Key: "old_admin", Value: oldAdmin},
		},
	}
}

// NewEventRebalancerChanged creates a new rebalancer policy change event.
func NewEventRebalancerChanged(admin string, rebalancer VaultRebalancer) Event {
	return Event{
		Type: EventTypeRebalancerChanged,
		Attributes: []event.Attribute{
			{Key: "admin", Value: admin},
			{Key: "policy", Value: string(rebalancer.Policy)},
			{Key: "delegate", Value: rebalancer.Delegate},
		},
	}
}

// NewEventVaultParametersChanged creates a new parameter change event.
func NewEventVaultParametersChanged(admin string, params VaultParameters) Event {
	return Event{
		Type: EventTypeVaultParametersChanged,
		Attributes: []event.Attribute{
			{Key: "admin", Value: admin},
			{Key: "full_range_weight", Value: params.FullRangeWeight.String()},
			{Key: "base_factor", Value: params.BaseFactor.String()},
			{Key: "limit_factor", Value: params.LimitFactor.String()},
		},
	}
}
