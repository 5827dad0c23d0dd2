package types

import (
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	"cosmossdk.io/math"
)

// Config collects the protocol-level constants of the vault. It is supplied
// to the keeper at construction so deployments and tests can substitute their
// own bounds without touching package globals.
type Config struct {
	// MinTick and MaxTick bound the pool's global tick domain.
	MinTick int64
	MaxTick int64
	// ProtocolAddr is the only account allowed to claim protocol fees and
	// change the protocol fee rate.
	ProtocolAddr string
	// MaxProtocolFee caps both the protocol and the admin fee rates.
	MaxProtocolFee Weight
	// DefaultProtocolFee is the protocol fee rate new vaults start with.
	DefaultProtocolFee Weight
	// CreationCostDenom and CreationCost price the one-time charge taken at
	// vault creation and held for the protocol. MaxCreationCost bounds it.
	CreationCostDenom string
	CreationCost      math.Int
	MaxCreationCost   math.Int
	// MinLiquidity is the smallest single-token deposit size the vault
	// accepts; at least one deposited amount must exceed it.
	MinLiquidity math.Int
	// TwapWindow is how far back the price average used by the rebalance
	// sanity check reaches. TwapTolerance is the allowed relative deviation
	// of the spot price from that average.
	TwapWindow    time.Duration
	TwapTolerance math.LegacyDec
	// PositionSlippage scales provided amounts down to the minimums the pool
	// must accept when opening a position.
	PositionSlippage Weight
}

// DefaultConfig returns the production constants.
func DefaultConfig() Config {
	return Config{
		MinTick:            -108_000_000,
		MaxTick:            342_000_000,
		ProtocolAddr:       "osmo1a8gd76fw6umx652v7cs73vnge2zju8s8hcm86t",
		MaxProtocolFee:     MustNewWeight(math.LegacyNewDecWithPrec(1, 1)),
		DefaultProtocolFee: MustNewWeight(math.LegacyNewDecWithPrec(5, 2)),
		CreationCostDenom:  "ibc/498A0751C798A0D9A389AA3691123DADA57DAA4FE165D5C75894505B876BA6E4",
		CreationCost:       math.NewInt(5_000_000),
		MaxCreationCost:    math.NewInt(20_000_000),
		MinLiquidity:       math.NewInt(1000),
		TwapWindow:         time.Minute,
		TwapTolerance:      math.LegacyNewDecWithPrec(1, 2),
		PositionSlippage:   MustNewWeight(math.LegacyNewDecWithPrec(999, 3)),
	}
}

// Validate checks the config for internal consistency.
func (c Config) Validate() error {
	if c.MinTick >= 0 || c.MaxTick <= 0 {
		return fmt.Errorf("tick domain [%d, %d] must straddle zero", c.MinTick, c.MaxTick)
	}
	// The protocol address keeps its home chain's bech32 prefix, so decode it
	// prefix-agnostically.
	if _, _, err := bech32.DecodeAndConvert(c.ProtocolAddr); err != nil {
		return fmt.Errorf("invalid protocol address %q: %w", c.ProtocolAddr, err)
	}
	if err := c.MaxProtocolFee.Validate(); err != nil {
		return fmt.Errorf("invalid max protocol fee: %w", err)
	}
	if err := c.DefaultProtocolFee.Validate(); err != nil {
		return fmt.Errorf("invalid default protocol fee: %w", err)
	}
	if c.DefaultProtocolFee.GT(c.MaxProtocolFee.LegacyDec) {
		return fmt.Errorf("default protocol fee %s exceeds max %s", c.DefaultProtocolFee, c.MaxProtocolFee)
	}
	if err := sdk.ValidateDenom(c.CreationCostDenom); err != nil {
		return fmt.Errorf("invalid creation cost denom: %w", err)
	}
	if c.CreationCost.IsNil() || c.CreationCost.IsNegative() {
		return fmt.Errorf("invalid creation cost %s", c.CreationCost)
	}
	if c.MaxCreationCost.IsNil() || c.CreationCost.GT(c.MaxCreationCost) {
		return fmt.Errorf("creation cost %s exceeds max %s", c.CreationCost, c.MaxCreationCost)
	}
	if c.MinLiquidity.IsNil() || !c.MinLiquidity.IsPositive() {
		return fmt.Errorf("min liquidity %s must be positive", c.MinLiquidity)
	}
	if c.TwapWindow <= 0 {
		return fmt.Errorf("twap window %s must be positive", c.TwapWindow)
	}
	if c.TwapTolerance.IsNil() || !c.TwapTolerance.IsPositive() {
		return fmt.Errorf("twap tolerance %s must be positive", c.TwapTolerance)
	}
	if err := c.PositionSlippage.Validate(); err != nil {
		return fmt.Errorf("invalid position slippage: %w", err)
	}
	if c.PositionSlippage.IsZero() {
		return fmt.Errorf("position slippage must be positive")
	}
	return nil
}
