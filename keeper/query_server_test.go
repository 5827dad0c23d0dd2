package keeper_test

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/calderalabs/clvault/keeper"
	"github.com/calderalabs/clvault/types"
)

func (s *TestSuite) TestQueriesRejectNilRequests() {
	qs := keeper.NewQueryServer(s.k)

	tests := []struct {
		name string
		call func() error
	}{
		{"VaultBalances", func() error { _, err := qs.VaultBalances(s.ctx, nil); return err }},
		{"PositionBalances", func() error { _, err := qs.PositionBalances(s.ctx, nil); return err }},
		{"ShareInfo", func() error { _, err := qs.ShareInfo(s.ctx, nil); return err }},
		{"Balance", func() error { _, err := qs.Balance(s.ctx, nil); return err }},
		{"VaultInfo", func() error { _, err := qs.VaultInfo(s.ctx, nil); return err }},
		{"VaultState", func() error { _, err := qs.VaultState(s.ctx, nil); return err }},
		{"VaultParameters", func() error { _, err := qs.VaultParameters(s.ctx, nil); return err }},
		{"FeesInfo", func() error { _, err := qs.FeesInfo(s.ctx, nil); return err }},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err, "querying %s with a nil request should fail", tc.name)
			s.Assert().Equal(codes.InvalidArgument, status.Code(err), "status code")
		})
	}
}

func (s *TestSuite) TestQueriesReportMissingVaultAsNotFound() {
	qs := keeper.NewQueryServer(s.k)

	tests := []struct {
		name string
		call func() error
	}{
		{"VaultBalances", func() error {
			_, err := qs.VaultBalances(s.ctx, &types.QueryVaultBalancesRequest{})
			return err
		}},
		{"PositionBalances", func() error {
			_, err := qs.PositionBalances(s.ctx, &types.QueryPositionBalancesRequest{Kind: types.PositionBase})
			return err
		}},
		{"ShareInfo", func() error {
			_, err := qs.ShareInfo(s.ctx, &types.QueryShareInfoRequest{})
			return err
		}},
		{"Balance", func() error {
			_, err := qs.Balance(s.ctx, &types.QueryBalanceRequest{Address: s.lpAddr.String()})
			return err
		}},
		{"VaultInfo", func() error {
			_, err := qs.VaultInfo(s.ctx, &types.QueryVaultInfoRequest{})
			return err
		}},
		{"VaultState", func() error {
			_, err := qs.VaultState(s.ctx, &types.QueryVaultStateRequest{})
			return err
		}},
		{"VaultParameters", func() error {
			_, err := qs.VaultParameters(s.ctx, &types.QueryVaultParametersRequest{})
			return err
		}},
		{"FeesInfo", func() error {
			_, err := qs.FeesInfo(s.ctx, &types.QueryFeesInfoRequest{})
			return err
		}},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err, "querying %s before the vault exists should fail", tc.name)
			s.Assert().Equal(codes.NotFound, status.Code(err), "status code")
		})
	}
}

func (s *TestSuite) TestQueryEndpoints() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())
	s.deposit(s.lpAddr, 1_000, 3_000)
	qs := keeper.NewQueryServer(s.k)

	s.Run("VaultInfo", func() {
		resp, err := qs.VaultInfo(s.ctx, &types.QueryVaultInfoRequest{})
		s.Require().NoError(err)
		s.Assert().Equal(testPoolID, resp.Info.PoolID, "pool id")
		s.Assert().Equal(testShareDenom, resp.Info.ShareDenom, "share denom")
		s.Assert().Equal(s.adminAddr.String(), resp.Info.Admin, "admin")
	})

	s.Run("ShareInfo", func() {
		resp, err := qs.ShareInfo(s.ctx, &types.QueryShareInfoRequest{})
		s.Require().NoError(err)
		s.Assert().Equal("OSMO/USDC Vault", resp.Name, "share name")
		s.Assert().Equal("mOSUSDC", resp.Symbol, "share symbol")
		s.Assert().Equal(testShareDenom, resp.ShareDenom, "share denom")
		s.assertIntEq(3_000, resp.TotalSupply, "total share supply")
	})

	s.Run("Balance", func() {
		resp, err := qs.Balance(s.ctx, &types.QueryBalanceRequest{Address: s.lpAddr.String()})
		s.Require().NoError(err)
		s.assertIntEq(3_000, resp.Shares, "depositor share balance")
	})

	s.Run("Balance of stranger", func() {
		resp, err := qs.Balance(s.ctx, &types.QueryBalanceRequest{Address: s.creatorAddr.String()})
		s.Require().NoError(err)
		s.assertIntEq(0, resp.Shares, "creator share balance")
	})

	s.Run("VaultBalances", func() {
		resp, err := qs.VaultBalances(s.ctx, &types.QueryVaultBalancesRequest{})
		s.Require().NoError(err)
		s.assertIntEq(1_000, resp.Balance0, "balance0")
		s.assertIntEq(3_000, resp.Balance1, "balance1")
		s.assertIntEq(0, resp.ProtocolUnclaimedFees0, "protocol unclaimed fees0")
		s.assertIntEq(0, resp.ProtocolUnclaimedFees1, "protocol unclaimed fees1")
		s.assertIntEq(0, resp.AdminUnclaimedFees0, "admin unclaimed fees0")
		s.assertIntEq(0, resp.AdminUnclaimedFees1, "admin unclaimed fees1")
	})

	s.Run("PositionBalances", func() {
		resp, err := qs.PositionBalances(s.ctx, &types.QueryPositionBalancesRequest{Kind: types.PositionFullRange})
		s.Require().NoError(err)
		s.assertIntEq(0, resp.Amount0, "amount0 before any rebalance")
		s.assertIntEq(0, resp.Amount1, "amount1 before any rebalance")
		s.assertIntEq(0, resp.Fees0, "fees0 before any rebalance")
		s.assertIntEq(0, resp.Fees1, "fees1 before any rebalance")
	})

	s.Run("VaultState", func() {
		resp, err := qs.VaultState(s.ctx, &types.QueryVaultStateRequest{})
		s.Require().NoError(err)
		s.Assert().Empty(resp.State.OpenPositionIDs(), "no positions before any rebalance")
		s.Assert().Nil(resp.State.LastPriceAndTimestamp, "no snapshot before any rebalance")
	})

	s.Run("VaultParameters", func() {
		resp, err := qs.VaultParameters(s.ctx, &types.QueryVaultParametersRequest{})
		s.Require().NoError(err)
		s.Assert().Equal("0.300000000000000000", resp.Parameters.FullRangeWeight.String(), "full range weight")
		s.Assert().Equal("4.000000000000000000", resp.Parameters.BaseFactor.String(), "base factor")
		s.Assert().Equal("16.000000000000000000", resp.Parameters.LimitFactor.String(), "limit factor")
	})

	s.Run("FeesInfo", func() {
		resp, err := qs.FeesInfo(s.ctx, &types.QueryFeesInfoRequest{})
		s.Require().NoError(err)
		s.Assert().Equal("0.050000000000000000", resp.Fees.ProtocolFee.String(), "protocol fee")
		s.Assert().Equal("0.000000000000000000", resp.Fees.AdminFee.String(), "admin fee")
		s.Assert().Equal(s.k.Config().CreationCost.String(), resp.Fees.ProtocolCreationTokensOwned.String(), "creation tokens owed")
	})
}

func (s *TestSuite) TestQueryValidation() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())
	qs := keeper.NewQueryServer(s.k)

	s.Run("unknown position kind", func() {
		_, err := qs.PositionBalances(s.ctx, &types.QueryPositionBalancesRequest{Kind: "sideways"})
		s.Require().Error(err, "querying an unknown position kind should fail")
		s.Assert().Equal(codes.InvalidArgument, status.Code(err), "status code")
		s.Assert().ErrorContains(err, "unknown position kind")
	})

	s.Run("malformed balance address", func() {
		_, err := qs.Balance(s.ctx, &types.QueryBalanceRequest{Address: "garbage"})
		s.Require().Error(err, "querying a malformed address should fail")
		s.Assert().Equal(codes.InvalidArgument, status.Code(err), "status code")
	})
}
