package mocks

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/calderalabs/clvault/types"
)

var _ types.BankKeeper = &BankKeeper{}

// BankKeeper is an in-memory bank double. It tracks account balances and the
// per-denom supply, and rejects transfers the sender cannot cover.
type BankKeeper struct {
	balances map[string]sdk.Coins
	supply   map[string]math.Int
}

// NewBankKeeper returns an empty bank.
func NewBankKeeper() *BankKeeper {
	return &BankKeeper{
		balances: map[string]sdk.Coins{},
		supply:   map[string]math.Int{},
	}
}

// FundAccount credits addr with amt out of nowhere, tracking supply.
func (b *BankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	b.credit(addr, amt)
	for _, c := range amt {
		b.supply[c.Denom] = b.supplyOf(c.Denom).Add(c.Amount)
	}
}

func (b *BankKeeper) credit(addr sdk.AccAddress, amt sdk.Coins) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(amt...)
}

func (b *BankKeeper) debit(addr sdk.AccAddress, amt sdk.Coins) error {
	left, negative := b.balances[addr.String()].SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s holds %s, needs %s", addr, b.balances[addr.String()], amt)
	}
	b.balances[addr.String()] = left
	return nil
}

func (b *BankKeeper) supplyOf(denom string) math.Int {
	if s, ok := b.supply[denom]; ok {
		return s
	}
	return math.ZeroInt()
}

// SendCoins moves amt between accounts.
func (b *BankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if err := b.debit(fromAddr, amt); err != nil {
		return err
	}
	b.credit(toAddr, amt)
	return nil
}

// MintCoins creates amt on the module account.
func (b *BankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	b.credit(authtypes.NewModuleAddress(moduleName), amt)
	for _, c := range amt {
		b.supply[c.Denom] = b.supplyOf(c.Denom).Add(c.Amount)
	}
	return nil
}

// BurnCoins destroys amt from the module account.
func (b *BankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	if err := b.debit(authtypes.NewModuleAddress(moduleName), amt); err != nil {
		return err
	}
	for _, c := range amt {
		b.supply[c.Denom] = b.supplyOf(c.Denom).Sub(c.Amount)
	}
	return nil
}

// SendCoinsFromModuleToAccount moves amt from a module account to addr.
func (b *BankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

// SendCoinsFromAccountToModule moves amt from addr to a module account.
func (b *BankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.SendCoins(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

// GetBalance returns addr's balance of denom.
func (b *BankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

// GetSupply returns the total minted amount of denom.
func (b *BankKeeper) GetSupply(_ context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.supplyOf(denom))
}
