package types

import "fmt"

// GenesisState carries the vault's five records. Nil pointers mean the vault
// has not been created yet.
type GenesisState struct {
	VaultInfo       *VaultInfo       `json:"vault_info,omitempty"`
	VaultParameters *VaultParameters `json:"vault_parameters,omitempty"`
	VaultState      *VaultState      `json:"vault_state,omitempty"`
	FeesInfo        *FeesInfo        `json:"fees_info,omitempty"`
	FundsInfo       *FundsInfo       `json:"funds_info,omitempty"`
}

// DefaultGenesisState returns the default genesis state: no vault yet.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation returning an error upon
// any failure. The records must either all be present or all be absent.
func (gs GenesisState) Validate() error {
	present := 0
	for _, ok := range []bool{
		gs.VaultInfo != nil,
		gs.VaultParameters != nil,
		gs.VaultState != nil,
		gs.FeesInfo != nil,
		gs.FundsInfo != nil,
	} {
		if ok {
			present++
		}
	}
	if present == 0 {
		return nil
	}
	if present != 5 {
		return fmt.Errorf("genesis must carry all five vault records or none, got %d", present)
	}
	if err := gs.VaultInfo.Validate(); err != nil {
		return fmt.Errorf("invalid vault info: %w", err)
	}
	if err := gs.VaultParameters.Validate(); err != nil {
		return fmt.Errorf("invalid vault parameters: %w", err)
	}
	if err := gs.FeesInfo.Validate(gs.VaultInfo.HasAdmin(), DefaultConfig().MaxProtocolFee); err != nil {
		return fmt.Errorf("invalid fees info: %w", err)
	}
	if err := gs.FundsInfo.Validate(); err != nil {
		return fmt.Errorf("invalid funds info: %w", err)
	}
	return nil
}
