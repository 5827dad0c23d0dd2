package mocks

import (
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/core/header"
	storetypes "cosmossdk.io/store/types"

	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/keeper"
	"github.com/calderalabs/clvault/types"
)

// NewVaultKeeper returns an instance of the Keeper backed by an in-memory
// store, with the pool and bank dependencies mocked.
func NewVaultKeeper(t testing.TB) (sdk.Context, *keeper.Keeper, *PoolKeeper, *BankKeeper) {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	tkey := storetypes.NewTransientStoreKey(fmt.Sprintf("transient_%s", types.ModuleName))
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)

	bank := NewBankKeeper()
	pool := NewPoolKeeper(bank)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(key),
		runtime.ProvideEventService(),
		addresscodec.NewBech32Codec("cosmos"),
		pool,
		bank,
		types.DefaultConfig(),
	)

	ctx := wrapper.Ctx.WithHeaderInfo(header.Info{Time: time.Now().UTC()})
	return ctx, k, pool, bank
}
