package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/calderalabs/clvault/types"
)

// fullGenesisState builds a genesis carrying all five vault records.
func (s *TestSuite) fullGenesisState() *types.GenesisState {
	info := &types.VaultInfo{
		PoolID:      testPoolID,
		Denom0:      testDenom0,
		Denom1:      testDenom1,
		VaultName:   "OSMO/USDC Vault",
		VaultSymbol: "mOSUSDC",
		ShareDenom:  testShareDenom,
		Admin:       s.adminAddr.String(),
		Rebalancer:  types.NewAdminRebalancer(),
	}
	params := defaultParameters()
	state := types.NewVaultState()
	state.SetPositionID(types.PositionBase, 8)
	state.LastPriceAndTimestamp = &types.PriceSnapshot{
		Price:     sdkmath.LegacyNewDec(2),
		Timestamp: s.ctx.HeaderInfo().Time,
	}
	cfg := s.k.Config()
	fees := types.NewFeesInfo(cfg.DefaultProtocolFee, types.ZeroWeight(), cfg.CreationCost)
	funds := types.FundsInfo{
		AvailableBalance0: sdkmath.NewInt(12),
		AvailableBalance1: sdkmath.NewInt(34),
	}

	return &types.GenesisState{
		VaultInfo:       info,
		VaultParameters: &params,
		VaultState:      &state,
		FeesInfo:        &fees,
		FundsInfo:       &funds,
	}
}

func (s *TestSuite) TestInitGenesisEmpty() {
	s.k.InitGenesis(s.ctx, types.DefaultGenesisState())

	has, err := s.k.HasVault(s.ctx)
	s.Require().NoError(err)
	s.Assert().False(has, "an empty genesis leaves the vault uncreated")

	s.k.InitGenesis(s.ctx, nil)
}

func (s *TestSuite) TestInitAndExportGenesis() {
	gen := s.fullGenesisState()
	s.k.InitGenesis(s.ctx, gen)

	info, err := s.k.GetVaultInfo(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(s.adminAddr.String(), info.Admin)

	exported := s.k.ExportGenesis(s.ctx)
	s.Require().NotNil(exported.VaultInfo)
	s.Assert().Equal(gen.VaultInfo.PoolID, exported.VaultInfo.PoolID)
	s.Assert().Equal(gen.VaultInfo.ShareDenom, exported.VaultInfo.ShareDenom)
	s.Assert().Equal(gen.VaultInfo.Admin, exported.VaultInfo.Admin)

	s.Require().NotNil(exported.VaultParameters)
	s.Assert().Equal(gen.VaultParameters.FullRangeWeight.String(), exported.VaultParameters.FullRangeWeight.String())
	s.Assert().Equal(gen.VaultParameters.BaseFactor.String(), exported.VaultParameters.BaseFactor.String())

	s.Require().NotNil(exported.VaultState)
	s.Require().NotNil(exported.VaultState.BasePositionID)
	s.Assert().Equal(uint64(8), *exported.VaultState.BasePositionID)
	s.Assert().Nil(exported.VaultState.FullRangePositionID)
	s.Require().NotNil(exported.VaultState.LastPriceAndTimestamp)
	s.Assert().Equal("2.000000000000000000", exported.VaultState.LastPriceAndTimestamp.Price.String())
	s.Assert().True(exported.VaultState.LastPriceAndTimestamp.Timestamp.Equal(gen.VaultState.LastPriceAndTimestamp.Timestamp))

	s.Require().NotNil(exported.FeesInfo)
	s.Assert().Equal(gen.FeesInfo.ProtocolFee.String(), exported.FeesInfo.ProtocolFee.String())
	s.Assert().Equal(gen.FeesInfo.ProtocolCreationTokensOwned.String(), exported.FeesInfo.ProtocolCreationTokensOwned.String())

	s.Require().NotNil(exported.FundsInfo)
	s.Assert().Equal("12", exported.FundsInfo.AvailableBalance0.String())
	s.Assert().Equal("34", exported.FundsInfo.AvailableBalance1.String())
}

func (s *TestSuite) TestExportGenesisWithoutVault() {
	exported := s.k.ExportGenesis(s.ctx)
	s.Assert().Nil(exported.VaultInfo, "no vault exports as the default genesis")
	s.Assert().Nil(exported.VaultState)
}

func (s *TestSuite) TestInitGenesisRejectsPartialState() {
	gen := s.fullGenesisState()
	gen.FundsInfo = nil

	s.Require().Panics(func() { s.k.InitGenesis(s.ctx, gen) }, "a partial vault genesis must not start the chain")
}

func (s *TestSuite) TestInitGenesisRejectsInvalidRecords() {
	gen := s.fullGenesisState()
	gen.VaultInfo.PoolID = 0

	s.Require().Panics(func() { s.k.InitGenesis(s.ctx, gen) })
}
