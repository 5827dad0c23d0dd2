package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/keeper"
	"github.com/calderalabs/clvault/types"
)

func (s *TestSuite) TestMsgServerRejectsInvalidMessages() {
	server := keeper.NewMsgServer(s.k)

	// Zero value messages fail stateless validation in every handler, before
	// any state is touched.
	calls := []struct {
		name string
		call func() error
	}{
		{"create vault", func() error {
			_, err := server.CreateVault(s.ctx, &types.MsgCreateVaultRequest{})
			return err
		}},
		{"deposit", func() error {
			_, err := server.Deposit(s.ctx, &types.MsgDepositRequest{})
			return err
		}},
		{"withdraw", func() error {
			_, err := server.Withdraw(s.ctx, &types.MsgWithdrawRequest{})
			return err
		}},
		{"rebalance", func() error {
			_, err := server.Rebalance(s.ctx, &types.MsgRebalanceRequest{})
			return err
		}},
		{"withdraw protocol fees", func() error {
			_, err := server.WithdrawProtocolFees(s.ctx, &types.MsgWithdrawProtocolFeesRequest{})
			return err
		}},
		{"change protocol fee", func() error {
			_, err := server.ChangeProtocolFee(s.ctx, &types.MsgChangeProtocolFeeRequest{})
			return err
		}},
		{"withdraw admin fees", func() error {
			_, err := server.WithdrawAdminFees(s.ctx, &types.MsgWithdrawAdminFeesRequest{})
			return err
		}},
		{"change admin fee", func() error {
			_, err := server.ChangeAdminFee(s.ctx, &types.MsgChangeAdminFeeRequest{})
			return err
		}},
		{"propose new admin", func() error {
			_, err := server.ProposeNewAdmin(s.ctx, &types.MsgProposeNewAdminRequest{})
			return err
		}},
		{"accept new admin", func() error {
			_, err := server.AcceptNewAdmin(s.ctx, &types.MsgAcceptNewAdminRequest{})
			return err
		}},
		{"burn vault admin", func() error {
			_, err := server.BurnVaultAdmin(s.ctx, &types.MsgBurnVaultAdminRequest{})
			return err
		}},
		{"change vault rebalancer", func() error {
			_, err := server.ChangeVaultRebalancer(s.ctx, &types.MsgChangeVaultRebalancerRequest{})
			return err
		}},
		{"change vault parameters", func() error {
			_, err := server.ChangeVaultParameters(s.ctx, &types.MsgChangeVaultParametersRequest{})
			return err
		}},
	}

	for _, tc := range calls {
		s.Run(tc.name, func() {
			s.Require().ErrorIs(tc.call(), types.ErrInvalidRequest)
		})
	}
}

func (s *TestSuite) TestMsgServerCreateVault() {
	server := keeper.NewMsgServer(s.k)
	s.pool.SetPool(types.PoolInfo{
		ID:          testPoolID,
		Token0:      testDenom0,
		Token1:      testDenom1,
		TickSpacing: 100,
	})
	cfg := s.k.Config()
	s.bank.FundAccount(s.creatorAddr, sdk.NewCoins(sdk.NewCoin(cfg.CreationCostDenom, cfg.CreationCost)))

	resp, err := server.CreateVault(s.ctx, s.createVaultMsg(s.adminAddr.String(), types.NewAdminRebalancer()))
	s.Require().NoError(err)
	s.Assert().Equal(types.GetVaultAddress().String(), resp.VaultAddress)
}

func (s *TestSuite) TestMsgServerFlow() {
	server := keeper.NewMsgServer(s.k)
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())

	s.bank.FundAccount(s.lpAddr, sdk.NewCoins(
		sdk.NewCoin(testDenom0, sdkmath.NewInt(1_000)),
		sdk.NewCoin(testDenom1, sdkmath.NewInt(3_000)),
	))
	depositResp, err := server.Deposit(s.ctx, &types.MsgDepositRequest{
		Depositor:  s.lpAddr.String(),
		Amount0:    sdkmath.NewInt(1_000),
		Amount1:    sdkmath.NewInt(3_000),
		Amount0Min: sdkmath.ZeroInt(),
		Amount1Min: sdkmath.ZeroInt(),
	})
	s.Require().NoError(err)
	s.assertIntEq(3_000, depositResp.Shares)

	withdrawResp, err := server.Withdraw(s.ctx, &types.MsgWithdrawRequest{
		Owner:      s.lpAddr.String(),
		Shares:     sdkmath.NewInt(300),
		Amount0Min: sdkmath.ZeroInt(),
		Amount1Min: sdkmath.ZeroInt(),
	})
	s.Require().NoError(err)
	s.assertIntEq(100, withdrawResp.Amount0)
	s.assertIntEq(300, withdrawResp.Amount1)

	_, err = server.ChangeAdminFee(s.ctx, &types.MsgChangeAdminFeeRequest{
		Sender: s.adminAddr.String(),
		NewFee: types.MustNewWeight(sdkmath.LegacyNewDecWithPrec(1, 1)),
	})
	s.Require().NoError(err)
	fees, err := s.k.GetFeesInfo(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal("0.100000000000000000", fees.AdminFee.String())

	// Keeper errors pass through the server untouched.
	_, err = server.Rebalance(s.ctx, &types.MsgRebalanceRequest{Sender: s.adminAddr.String()})
	s.Require().ErrorIs(err, types.ErrPoolJustCreated)

	_, err = server.WithdrawProtocolFees(s.ctx, &types.MsgWithdrawProtocolFeesRequest{Sender: s.adminAddr.String()})
	s.Require().ErrorIs(err, types.ErrUnauthorizedProtocolAccount)

	_, err = server.BurnVaultAdmin(s.ctx, &types.MsgBurnVaultAdminRequest{Sender: s.adminAddr.String()})
	s.Require().ErrorIs(err, types.ErrAdminBurnRebalancerNotAnyone)
}
