package mocks

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/types"
)

var _ types.PoolKeeper = &PoolKeeper{}

// PoolPosition is the mock's record of one open position.
type PoolPosition struct {
	ID        uint64
	PoolID    uint64
	LowerTick int64
	UpperTick int64
	Amount0   math.Int
	Amount1   math.Int
	Liquidity math.LegacyDec
	Rewards   sdk.Coins
}

// PoolKeeper is an in-memory concentrated liquidity double. Positions take
// custody of their funding through the bank mock, so vault flows balance end
// to end. Position ids start at one and increase per creation.
type PoolKeeper struct {
	bank *BankKeeper

	// PoolAddr holds the funds of all open positions.
	PoolAddr sdk.AccAddress

	Pools     map[uint64]types.PoolInfo
	Prices    map[uint64]math.LegacyDec
	Twaps     map[uint64]math.LegacyDec
	Positions map[uint64]*PoolPosition

	nextPositionID uint64
}

// NewPoolKeeper returns a pool double settling transfers through bank.
func NewPoolKeeper(bank *BankKeeper) *PoolKeeper {
	return &PoolKeeper{
		bank:           bank,
		PoolAddr:       sdk.AccAddress("poolAddr____________"),
		Pools:          map[uint64]types.PoolInfo{},
		Prices:         map[uint64]math.LegacyDec{},
		Twaps:          map[uint64]math.LegacyDec{},
		Positions:      map[uint64]*PoolPosition{},
		nextPositionID: 1,
	}
}

// SetPool registers a pool.
func (p *PoolKeeper) SetPool(info types.PoolInfo) { p.Pools[info.ID] = info }

// SetSpotPrice sets the pool's quote of token0 in token1.
func (p *PoolKeeper) SetSpotPrice(poolID uint64, price math.LegacyDec) { p.Prices[poolID] = price }

// SetTwapPrice sets the pool's time weighted average price. Pools without one
// report missing history.
func (p *PoolKeeper) SetTwapPrice(poolID uint64, price math.LegacyDec) { p.Twaps[poolID] = price }

// SetRewards stages claimable rewards on a position and funds the pool
// account so that collection can pay out.
func (p *PoolKeeper) SetRewards(positionID uint64, rewards sdk.Coins) error {
	pos, ok := p.Positions[positionID]
	if !ok {
		return fmt.Errorf("position %d not found", positionID)
	}
	p.bank.FundAccount(p.PoolAddr, rewards)
	pos.Rewards = pos.Rewards.Add(rewards...)
	return nil
}

// GetPool returns the registered pool metadata.
func (p *PoolKeeper) GetPool(_ context.Context, poolID uint64) (types.PoolInfo, error) {
	pool, ok := p.Pools[poolID]
	if !ok {
		return types.PoolInfo{}, fmt.Errorf("pool %d not found", poolID)
	}
	return pool, nil
}

// SpotPrice returns the staged spot price, or zero when none is staged.
func (p *PoolKeeper) SpotPrice(_ context.Context, poolID uint64, baseDenom, quoteDenom string) (math.LegacyDec, error) {
	pool, ok := p.Pools[poolID]
	if !ok {
		return math.LegacyDec{}, fmt.Errorf("pool %d not found", poolID)
	}
	if baseDenom != pool.Token0 || quoteDenom != pool.Token1 {
		return math.LegacyDec{}, fmt.Errorf("unsupported pair %s/%s", baseDenom, quoteDenom)
	}
	price, ok := p.Prices[poolID]
	if !ok {
		return math.LegacyZeroDec(), nil
	}
	return price, nil
}

// ArithmeticTwapToNow returns the staged average price, or an error when the
// pool has no history.
func (p *PoolKeeper) ArithmeticTwapToNow(_ context.Context, poolID uint64, baseDenom, quoteDenom string, _ time.Time) (math.LegacyDec, error) {
	pool, ok := p.Pools[poolID]
	if !ok {
		return math.LegacyDec{}, fmt.Errorf("pool %d not found", poolID)
	}
	if baseDenom != pool.Token0 || quoteDenom != pool.Token1 {
		return math.LegacyDec{}, fmt.Errorf("unsupported pair %s/%s", baseDenom, quoteDenom)
	}
	twap, ok := p.Twaps[poolID]
	if !ok {
		return math.LegacyDec{}, fmt.Errorf("no price history for pool %d", poolID)
	}
	return twap, nil
}

// GetPosition returns the position's current principal and rewards.
func (p *PoolKeeper) GetPosition(_ context.Context, positionID uint64) (types.Position, error) {
	pos, ok := p.Positions[positionID]
	if !ok {
		return types.Position{}, fmt.Errorf("position %d not found", positionID)
	}
	return types.Position{
		ID:        pos.ID,
		Amount0:   pos.Amount0,
		Amount1:   pos.Amount1,
		Liquidity: pos.Liquidity,
		Rewards:   pos.Rewards,
	}, nil
}

// CreatePosition opens a position using all of tokens. Ticks must be ordered
// and on the pool's spacing.
func (p *PoolKeeper) CreatePosition(ctx context.Context, poolID uint64, owner sdk.AccAddress, lowerTick, upperTick int64, tokens sdk.Coins, minAmount0, minAmount1 math.Int) (types.OpenedPosition, error) {
	pool, ok := p.Pools[poolID]
	if !ok {
		return types.OpenedPosition{}, fmt.Errorf("pool %d not found", poolID)
	}
	if lowerTick >= upperTick {
		return types.OpenedPosition{}, fmt.Errorf("invalid tick range [%d, %d]", lowerTick, upperTick)
	}
	spacing := int64(pool.TickSpacing)
	if lowerTick%spacing != 0 || upperTick%spacing != 0 {
		return types.OpenedPosition{}, fmt.Errorf("ticks [%d, %d] not on spacing %d", lowerTick, upperTick, spacing)
	}
	used0 := tokens.AmountOf(pool.Token0)
	used1 := tokens.AmountOf(pool.Token1)
	if used0.LT(minAmount0) || used1.LT(minAmount1) {
		return types.OpenedPosition{}, fmt.Errorf("used amounts (%s, %s) below minimums (%s, %s)", used0, used1, minAmount0, minAmount1)
	}
	if err := p.bank.SendCoins(ctx, owner, p.PoolAddr, tokens); err != nil {
		return types.OpenedPosition{}, err
	}

	id := p.nextPositionID
	p.nextPositionID++
	liquidity := math.LegacyNewDecFromInt(used0.Add(used1))
	p.Positions[id] = &PoolPosition{
		ID:        id,
		PoolID:    poolID,
		LowerTick: lowerTick,
		UpperTick: upperTick,
		Amount0:   used0,
		Amount1:   used1,
		Liquidity: liquidity,
	}
	return types.OpenedPosition{ID: id, Amount0: used0, Amount1: used1, Liquidity: liquidity}, nil
}

// WithdrawPosition frees the given liquidity back to owner. Withdrawing all
// of it closes the position.
func (p *PoolKeeper) WithdrawPosition(ctx context.Context, positionID uint64, owner sdk.AccAddress, liquidity math.LegacyDec) (math.Int, math.Int, error) {
	pos, ok := p.Positions[positionID]
	if !ok {
		return math.Int{}, math.Int{}, fmt.Errorf("position %d not found", positionID)
	}
	if !liquidity.IsPositive() || liquidity.GT(pos.Liquidity) {
		return math.Int{}, math.Int{}, fmt.Errorf("invalid liquidity %s, position holds %s", liquidity, pos.Liquidity)
	}

	fraction := liquidity.QuoTruncate(pos.Liquidity)
	amount0 := fraction.MulInt(pos.Amount0).TruncateInt()
	amount1 := fraction.MulInt(pos.Amount1).TruncateInt()

	pool := p.Pools[pos.PoolID]
	freed := sdk.NewCoins(sdk.NewCoin(pool.Token0, amount0), sdk.NewCoin(pool.Token1, amount1))
	if err := p.bank.SendCoins(ctx, p.PoolAddr, owner, freed); err != nil {
		return math.Int{}, math.Int{}, err
	}

	pos.Amount0 = pos.Amount0.Sub(amount0)
	pos.Amount1 = pos.Amount1.Sub(amount1)
	pos.Liquidity = pos.Liquidity.Sub(liquidity)
	if pos.Liquidity.IsZero() {
		delete(p.Positions, positionID)
	}
	return amount0, amount1, nil
}

// CollectRewards claims the staged rewards of the given positions to owner.
func (p *PoolKeeper) CollectRewards(ctx context.Context, positionIDs []uint64, owner sdk.AccAddress) (sdk.Coins, error) {
	collected := sdk.NewCoins()
	for _, id := range positionIDs {
		pos, ok := p.Positions[id]
		if !ok {
			return nil, fmt.Errorf("position %d not found", id)
		}
		collected = collected.Add(pos.Rewards...)
		pos.Rewards = nil
	}
	if collected.IsZero() {
		return collected, nil
	}
	if err := p.bank.SendCoins(ctx, p.PoolAddr, owner, collected); err != nil {
		return nil, err
	}
	return collected, nil
}
