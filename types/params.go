package types

import (
	"fmt"

	"cosmossdk.io/errors"
)

// VaultParameters shape the three-position allocation of vault capital.
type VaultParameters struct {
	// FullRangeWeight is the share of the balanced capital deployed across
	// the whole tick domain.
	FullRangeWeight Weight `json:"full_range_weight"`
	// BaseFactor sets the base position's range to [price/factor, price*factor].
	// A factor of 1 disables the base position.
	BaseFactor PriceFactor `json:"base_factor"`
	// LimitFactor sets the reach of the single-sided limit position. A factor
	// of 1 disables the limit position.
	LimitFactor PriceFactor `json:"limit_factor"`
}

// NewVaultParameters builds validated vault parameters.
func NewVaultParameters(fullRangeWeight Weight, baseFactor, limitFactor PriceFactor) (VaultParameters, error) {
	p := VaultParameters{
		FullRangeWeight: fullRangeWeight,
		BaseFactor:      baseFactor,
		LimitFactor:     limitFactor,
	}
	if err := p.Validate(); err != nil {
		return VaultParameters{}, err
	}
	return p, nil
}

// Validate checks each field's range and the joint constraints. Parameters
// that would leave all capital idle, or that make the full range and base
// allocations contradict each other, are rejected.
func (p VaultParameters) Validate() error {
	if err := p.FullRangeWeight.Validate(); err != nil {
		return errors.Wrap(ErrInvalidVaultParameters, err.Error())
	}
	if err := p.BaseFactor.Validate(); err != nil {
		return errors.Wrap(ErrInvalidVaultParameters, err.Error())
	}
	if err := p.LimitFactor.Validate(); err != nil {
		return errors.Wrap(ErrInvalidVaultParameters, err.Error())
	}
	if p.FullRangeWeight.IsZero() && p.BaseFactor.IsOne() && p.LimitFactor.IsOne() {
		return errors.Wrap(ErrInvalidVaultParameters, "parameters would keep all capital idle")
	}
	if p.FullRangeWeight.IsOne() && !p.BaseFactor.IsOne() {
		return errors.Wrap(ErrInvalidVaultParameters, fmt.Sprintf(
			"full range weight 1 leaves nothing for base factor %s", p.BaseFactor))
	}
	if !p.FullRangeWeight.IsOne() && p.BaseFactor.IsOne() {
		return errors.Wrap(ErrInvalidVaultParameters, fmt.Sprintf(
			"full range weight %s below 1 requires a base position", p.FullRangeWeight))
	}
	return nil
}
