package keeper_test

import (
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/types"
)

func (s *TestSuite) TestRebalanceOpensThreePositions() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())
	s.deposit(s.lpAddr, 1_000, 3_000)
	s.setPoolPrice("2", 1_000_000)
	rebalancedAt := s.ctx.HeaderInfo().Time

	s.Require().NoError(s.k.Rebalance(s.ctx, s.adminAddr.String()))

	state, err := s.k.GetVaultState(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal([]uint64{1, 2, 3}, state.OpenPositionIDs(), "full range, base, limit")
	s.Require().NotNil(state.LastPriceAndTimestamp)
	s.Assert().Equal("2.000000000000000000", state.LastPriceAndTimestamp.Price.String())
	s.Assert().True(state.LastPriceAndTimestamp.Timestamp.Equal(rebalancedAt), "the snapshot pins the block time")

	full := s.position(1)
	s.Assert().Equal(int64(-108_000_000), full.LowerTick)
	s.Assert().Equal(int64(342_000_000), full.UpperTick)
	s.assertIntEq(461, full.Amount0)
	s.assertIntEq(923, full.Amount1)

	// Base factor 4 brackets price 2 with [0.5, 8].
	base := s.position(2)
	s.Assert().Equal(int64(-5_000_000), base.LowerTick)
	s.Assert().Equal(int64(7_000_000), base.UpperTick)
	s.assertIntEq(539, base.Amount0)
	s.assertIntEq(1_077, base.Amount1)

	// The token1 surplus sits below the current tick, reaching down to 2/16.
	limit := s.position(3)
	s.Assert().Equal(int64(-8_750_000), limit.LowerTick)
	s.Assert().Equal(int64(999_900), limit.UpperTick)
	s.assertIntEq(0, limit.Amount0)
	s.assertIntEq(1_000, limit.Amount1)

	funds, err := s.k.GetFundsInfo(s.ctx)
	s.Require().NoError(err)
	s.Assert().True(funds.AvailableBalance0.IsZero(), "everything is deployed")
	s.Assert().True(funds.AvailableBalance1.IsZero())
	s.assertBalance(s.k.VaultAddress(), testDenom0, 0)
	s.assertBalance(s.k.VaultAddress(), testDenom1, 0)

	s.assertEventEmitted(types.EventTypeRebalance, map[string]string{
		"sender":             s.adminAddr.String(),
		"price":              "2.000000000000000000",
		"full_range_amount0": "461",
		"full_range_amount1": "923",
		"base_amount0":       "539",
		"base_amount1":       "1077",
		"limit_amount0":      "0",
		"limit_amount1":      "1000",
	})
}

func (s *TestSuite) TestRebalancePlacesToken0SurplusAboveCurrentTick() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())
	s.deposit(s.lpAddr, 2_000, 2_000)
	s.setPoolPrice("2", 1_000_000)

	s.Require().NoError(s.k.Rebalance(s.ctx, s.adminAddr.String()))

	// Token0 is in surplus at price 2, so the limit range sits above the
	// current tick, reaching up to 2*16.
	limit := s.position(3)
	s.Assert().Equal(int64(1_000_100), limit.LowerTick)
	s.Assert().Equal(int64(11_200_000), limit.UpperTick)
	s.assertIntEq(1_000, limit.Amount0)
	s.assertIntEq(0, limit.Amount1)
}

func (s *TestSuite) TestRebalanceReplacesPositions() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())
	s.deposit(s.lpAddr, 1_000, 3_000)
	s.setPoolPrice("2", 1_000_000)
	s.Require().NoError(s.k.Rebalance(s.ctx, s.adminAddr.String()))

	// The admin policy has no block or price gates, so the same block can
	// rebalance again.
	s.Require().NoError(s.k.Rebalance(s.ctx, s.adminAddr.String()))

	state, err := s.k.GetVaultState(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal([]uint64{4, 5, 6}, state.OpenPositionIDs(), "the old positions are closed, new ones opened")
	s.Assert().Len(s.pool.Positions, 3)

	// The second pass sees each position one atom short per funded side.
	full := s.position(4)
	s.assertIntEq(460, full.Amount0)
	s.assertIntEq(921, full.Amount1)
	base := s.position(5)
	s.assertIntEq(538, base.Amount0)
	s.assertIntEq(1_075, base.Amount1)
	limit := s.position(6)
	s.assertIntEq(0, limit.Amount0)
	s.assertIntEq(1_001, limit.Amount1)

	// The trimmed atoms stay behind as vault dust.
	s.assertBalance(s.k.VaultAddress(), testDenom0, 2)
	s.assertBalance(s.k.VaultAddress(), testDenom1, 3)
}

func (s *TestSuite) TestRebalanceAccruesRewardCuts() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())
	s.deposit(s.lpAddr, 1_000, 3_000)
	s.setPoolPrice("2", 1_000_000)
	s.Require().NoError(s.k.Rebalance(s.ctx, s.adminAddr.String()))

	s.Require().NoError(s.pool.SetRewards(1, sdk.NewCoins(
		sdk.NewCoin(testDenom0, sdkmath.NewInt(400)),
		sdk.NewCoin(testDenom1, sdkmath.NewInt(200)),
	)))
	s.Require().NoError(s.k.Rebalance(s.ctx, s.adminAddr.String()))

	fees, err := s.k.GetFeesInfo(s.ctx)
	s.Require().NoError(err)
	// The protocol's 5% cut of the collected rewards.
	s.assertIntEq(20, fees.ProtocolTokens0Owned)
	s.assertIntEq(10, fees.ProtocolTokens1Owned)
	s.assertIntEq(0, fees.AdminTokens0Owned, "no admin fee is configured")
	s.assertIntEq(0, fees.AdminTokens1Owned)
}

func (s *TestSuite) TestRebalanceRequiresVault() {
	err := s.k.Rebalance(s.ctx, s.adminAddr.String())
	s.Require().ErrorIs(err, types.ErrVaultNotFound)
}

func (s *TestSuite) TestRebalanceRequiresPriceHistory() {
	delegate := sdk.AccAddress("delegateAddr________")
	policies := []types.VaultRebalancer{
		types.NewAdminRebalancer(),
		types.NewDelegateRebalancer(delegate.String()),
		types.NewAnyoneRebalancer(types.MustNewPriceFactor(sdkmath.LegacyNewDec(2)), 60),
	}

	for _, rebalancer := range policies {
		s.Run(string(rebalancer.Policy), func() {
			s.SetupTest()
			s.createVault(s.adminAddr.String(), rebalancer)
			s.deposit(s.lpAddr, 1_000, 3_000)
			s.pool.SetSpotPrice(testPoolID, sdkmath.LegacyNewDec(2))

			// No average price is staged, and the staleness check outranks
			// the sender check under every policy.
			err := s.k.Rebalance(s.ctx, s.lpAddr.String())
			s.Require().ErrorIs(err, types.ErrPoolJustCreated)
		})
	}
}

func (s *TestSuite) TestRebalanceAdminPolicyRejectsOthers() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())
	s.deposit(s.lpAddr, 1_000, 3_000)
	s.setPoolPrice("2", 1_000_000)

	err := s.k.Rebalance(s.ctx, s.lpAddr.String())
	s.Require().ErrorIs(err, types.ErrUnauthorizedNonAdmin)
}

func (s *TestSuite) TestRebalanceDelegatePolicy() {
	delegate := sdk.AccAddress("delegateAddr________")
	s.createVault(s.adminAddr.String(), types.NewDelegateRebalancer(delegate.String()))
	s.deposit(s.lpAddr, 1_000, 3_000)
	s.setPoolPrice("2", 1_000_000)

	// Not even the admin may stand in for the delegate.
	err := s.k.Rebalance(s.ctx, s.adminAddr.String())
	s.Require().ErrorIs(err, types.ErrUnauthorizedDelegate)

	s.Require().NoError(s.k.Rebalance(s.ctx, delegate.String()))
}

func (s *TestSuite) TestRebalanceWithNothingToDeploy() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())
	s.setPoolPrice("2", 1_000_000)

	err := s.k.Rebalance(s.ctx, s.adminAddr.String())
	s.Require().ErrorIs(err, types.ErrNothingToRebalance)
}

func (s *TestSuite) TestRebalanceRequiresSpotPrice() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())
	s.deposit(s.lpAddr, 1_000, 3_000)
	s.pool.SetTwapPrice(testPoolID, sdkmath.LegacyNewDec(2))

	err := s.k.Rebalance(s.ctx, s.adminAddr.String())
	s.Require().ErrorIs(err, types.ErrPoolWithoutPrice)
}

func (s *TestSuite) TestPermissionlessRebalanceGates() {
	s.createVault("", types.NewAnyoneRebalancer(types.MustNewPriceFactor(sdkmath.LegacyNewDec(2)), 3_600))
	s.deposit(s.lpAddr, 1_000, 3_000)
	s.setPoolPrice("2", 1_000_000)

	// The first rebalance has no snapshot to gate on.
	s.Require().NoError(s.k.Rebalance(s.ctx, s.lpAddr.String()))

	err := s.k.Rebalance(s.ctx, s.lpAddr.String())
	s.Require().ErrorIs(err, types.ErrRebalancedThisBlock)

	s.advanceTime(30 * time.Minute)
	err = s.k.Rebalance(s.ctx, s.lpAddr.String())
	s.Require().ErrorIs(err, types.ErrNotEnoughTimePassed)

	s.advanceTime(31 * time.Minute)
	err = s.k.Rebalance(s.ctx, s.lpAddr.String())
	s.Require().ErrorIs(err, types.ErrPriceHasntMovedEnough)

	// Enough movement now, but the spot drifted too far from the average.
	s.pool.SetSpotPrice(testPoolID, sdkmath.LegacyMustNewDecFromStr("4.2"))
	err = s.k.Rebalance(s.ctx, s.lpAddr.String())
	s.Require().ErrorIs(err, types.ErrPriceMovedTooMuch)

	s.setPoolPrice("4.2", 3_200_000)
	s.Require().NoError(s.k.Rebalance(s.ctx, s.lpAddr.String()))

	state, err := s.k.GetVaultState(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal([]uint64{4, 5, 6}, state.OpenPositionIDs(), "the second rebalance replaced every position")
}

func (s *TestSuite) TestPermissionlessPriceFactorOneDisablesPriceGate() {
	s.createVault("", types.NewAnyoneRebalancer(types.OnePriceFactor(), 0))
	s.deposit(s.lpAddr, 1_000, 3_000)
	s.setPoolPrice("2", 1_000_000)

	s.Require().NoError(s.k.Rebalance(s.ctx, s.lpAddr.String()))
	s.advanceTime(time.Second)
	s.Require().NoError(s.k.Rebalance(s.ctx, s.lpAddr.String()), "a factor of one leaves no blocked price band")
}
