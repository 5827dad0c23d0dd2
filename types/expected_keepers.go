package types

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"cosmossdk.io/math"
)

// PoolInfo is the pool metadata the vault reads at creation and before every
// rebalance.
type PoolInfo struct {
	ID          uint64
	Token0      string
	Token1      string
	TickSpacing uint64
	CurrentTick int64
}

// Position describes an open concentrated liquidity position and its
// claimable rewards.
type Position struct {
	ID        uint64
	Amount0   math.Int
	Amount1   math.Int
	Liquidity math.LegacyDec
	Rewards   sdk.Coins
}

// OpenedPosition reports what the pool actually took when a position was
// created. The pool may use less than the provided amounts.
type OpenedPosition struct {
	ID        uint64
	Amount0   math.Int
	Amount1   math.Int
	Liquidity math.LegacyDec
}

// PoolKeeper is the concentrated liquidity pool functionality the vault needs.
type PoolKeeper interface {
	// GetPool returns the pool's static metadata and current tick.
	GetPool(ctx context.Context, poolID uint64) (PoolInfo, error)
	// SpotPrice quotes baseDenom in quoteDenom. A pool without liquidity
	// reports a zero price.
	SpotPrice(ctx context.Context, poolID uint64, baseDenom, quoteDenom string) (math.LegacyDec, error)
	// ArithmeticTwapToNow averages the price from startTime to now. It fails
	// when the pool has no history reaching back to startTime.
	ArithmeticTwapToNow(ctx context.Context, poolID uint64, baseDenom, quoteDenom string, startTime time.Time) (math.LegacyDec, error)
	// GetPosition returns the position's current principal and rewards.
	GetPosition(ctx context.Context, positionID uint64) (Position, error)
	// CreatePosition opens a position over [lowerTick, upperTick] funded with
	// tokens, enforcing the given minimum used amounts.
	CreatePosition(ctx context.Context, poolID uint64, owner sdk.AccAddress, lowerTick, upperTick int64, tokens sdk.Coins, minAmount0, minAmount1 math.Int) (OpenedPosition, error)
	// WithdrawPosition removes liquidity from a position, returning the freed
	// amounts. Removing all liquidity closes the position.
	WithdrawPosition(ctx context.Context, positionID uint64, owner sdk.AccAddress, liquidity math.LegacyDec) (amount0, amount1 math.Int, err error)
	// CollectRewards claims all spread rewards and incentives of the given
	// positions to the owner.
	CollectRewards(ctx context.Context, positionIDs []uint64, owner sdk.AccAddress) (sdk.Coins, error)
}

// BankKeeper is the bank functionality needed by the vault: share supply
// management and fund transfers.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetSupply(ctx context.Context, denom string) sdk.Coin
}
