package types

import (
	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "clvault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	// VaultInfoKeyPrefix is the prefix for the vault info record.
	VaultInfoKeyPrefix = collections.NewPrefix(0)
	// VaultInfoName is a human-readable name for the vault info item.
	VaultInfoName = "vault_info"
	// VaultParametersKeyPrefix is the prefix for the vault parameters record.
	VaultParametersKeyPrefix = collections.NewPrefix(1)
	// VaultParametersName is a human-readable name for the vault parameters item.
	VaultParametersName = "vault_parameters"
	// VaultStateKeyPrefix is the prefix for the vault state record.
	VaultStateKeyPrefix = collections.NewPrefix(2)
	// VaultStateName is a human-readable name for the vault state item.
	VaultStateName = "vault_state"
	// FeesInfoKeyPrefix is the prefix for the fees info record.
	FeesInfoKeyPrefix = collections.NewPrefix(3)
	// FeesInfoName is a human-readable name for the fees info item.
	FeesInfoName = "fees_info"
	// FundsInfoKeyPrefix is the prefix for the funds info record.
	FundsInfoKeyPrefix = collections.NewPrefix(4)
	// FundsInfoName is a human-readable name for the funds info item.
	FundsInfoName = "funds_info"
)

// GetVaultAddress returns the account address that holds the vault's funds
// and owns its pool positions.
func GetVaultAddress() sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(ModuleName + "/vault")))
}
