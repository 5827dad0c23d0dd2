package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/calderalabs/clvault/types"
)

type Keeper struct {
	schema       collections.Schema
	eventService event.Service
	addressCodec address.Codec
	config       types.Config
	protocolAddr sdk.AccAddress

	poolKeeper types.PoolKeeper
	bankKeeper types.BankKeeper

	VaultInfo       collections.Item[types.VaultInfo]
	VaultParameters collections.Item[types.VaultParameters]
	VaultState      collections.Item[types.VaultState]
	FeesInfo        collections.Item[types.FeesInfo]
	FundsInfo       collections.Item[types.FundsInfo]
}

func NewKeeper(
	storeService store.KVStoreService,
	eventService event.Service,
	addressCodec address.Codec,
	poolKeeper types.PoolKeeper,
	bankKeeper types.BankKeeper,
	config types.Config,
) *Keeper {
	if err := config.Validate(); err != nil {
		panic(fmt.Sprintf("invalid vault config: %s", err))
	}
	_, protocolAddr, err := bech32.DecodeAndConvert(config.ProtocolAddr)
	if err != nil {
		panic(fmt.Sprintf("invalid protocol address %s: %s", config.ProtocolAddr, err))
	}

	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		eventService: eventService,
		addressCodec: addressCodec,
		config:       config,
		protocolAddr: protocolAddr,
		poolKeeper:   poolKeeper,
		bankKeeper:   bankKeeper,
		VaultInfo: collections.NewItem(builder, types.VaultInfoKeyPrefix, types.VaultInfoName,
			types.JSONValue[types.VaultInfo](types.VaultInfoName)),
		VaultParameters: collections.NewItem(builder, types.VaultParametersKeyPrefix, types.VaultParametersName,
			types.JSONValue[types.VaultParameters](types.VaultParametersName)),
		VaultState: collections.NewItem(builder, types.VaultStateKeyPrefix, types.VaultStateName,
			types.JSONValue[types.VaultState](types.VaultStateName)),
		FeesInfo: collections.NewItem(builder, types.FeesInfoKeyPrefix, types.FeesInfoName,
			types.JSONValue[types.FeesInfo](types.FeesInfoName)),
		FundsInfo: collections.NewItem(builder, types.FundsInfoKeyPrefix, types.FundsInfoName,
			types.JSONValue[types.FundsInfo](types.FundsInfoName)),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

// Config returns the protocol constants the keeper was built with.
func (k Keeper) Config() types.Config {
	return k.config
}

// VaultAddress returns the account that holds the vault's funds and owns its
// positions.
func (k Keeper) VaultAddress() sdk.AccAddress {
	return types.GetVaultAddress()
}

// emitEvent hands a module event to the event service. Emission failures are
// logged rather than returned so that a bad attribute never reverts state
// changes that already happened.
func (k Keeper) emitEvent(ctx sdk.Context, ev types.Event) {
	if err := k.eventService.EventManager(ctx).EmitKV(ev.Type, ev.Attributes...); err != nil {
		k.getLogger(ctx).Error("failed to emit event", "event", ev.Type, "error", err)
	}
}

// getLogger returns a logger with vault module context.
func (k Keeper) getLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}
