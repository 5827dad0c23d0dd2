package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calderalabs/clvault/types"
)

func (s *TestSuite) TestProposeAndAcceptNewAdmin() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())
	newAdmin := s.lpAddr

	s.Require().NoError(s.k.ProposeNewAdmin(s.ctx, s.adminAddr.String(), newAdmin.String()))

	info, err := s.k.GetVaultInfo(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(newAdmin.String(), info.ProposedNewAdmin)
	s.Assert().Equal(s.adminAddr.String(), info.Admin, "the handover waits for the target to accept")
	s.assertEventEmitted(types.EventTypeNewAdminProposed, map[string]string{
		"admin":          s.adminAddr.String(),
		"proposed_admin": newAdmin.String(),
	})

	s.Require().NoError(s.k.AcceptNewAdmin(s.ctx, newAdmin.String()))

	info, err = s.k.GetVaultInfo(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(newAdmin.String(), info.Admin)
	s.Assert().False(info.HasProposedAdmin())
	s.assertEventEmitted(types.EventTypeAdminChanged, map[string]string{
		"old_admin": s.adminAddr.String(),
		"new_admin": newAdmin.String(),
	})

	// The old admin lost its powers.
	err = s.k.ProposeNewAdmin(s.ctx, s.adminAddr.String(), s.creatorAddr.String())
	s.Require().ErrorIs(err, types.ErrUnauthorizedAdminAccount)
}

func (s *TestSuite) TestProposeNewAdminReplacesAndClears() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())

	s.Require().NoError(s.k.ProposeNewAdmin(s.ctx, s.adminAddr.String(), s.lpAddr.String()))
	s.Require().NoError(s.k.ProposeNewAdmin(s.ctx, s.adminAddr.String(), s.creatorAddr.String()))

	info, err := s.k.GetVaultInfo(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(s.creatorAddr.String(), info.ProposedNewAdmin, "a new proposal replaces the pending one")

	s.Require().NoError(s.k.ProposeNewAdmin(s.ctx, s.adminAddr.String(), ""))

	info, err = s.k.GetVaultInfo(s.ctx)
	s.Require().NoError(err)
	s.Assert().False(info.HasProposedAdmin(), "an empty proposal clears the pending one")
	s.assertEventEmitted(types.EventTypeAdminProposalCleared, map[string]string{
		"admin": s.adminAddr.String(),
	})

	err = s.k.AcceptNewAdmin(s.ctx, s.creatorAddr.String())
	s.Require().ErrorIs(err, types.ErrNoProposedAdmin)
}

func (s *TestSuite) TestProposeNewAdminGates() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())

	err := s.k.ProposeNewAdmin(s.ctx, s.lpAddr.String(), s.creatorAddr.String())
	s.Require().ErrorIs(err, types.ErrUnauthorizedAdminAccount)

	err = s.k.ProposeNewAdmin(s.ctx, s.adminAddr.String(), "not-an-address")
	s.Require().ErrorIs(err, types.ErrInvalidProposedAdmin)
}

func (s *TestSuite) TestAcceptNewAdminGates() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())

	err := s.k.AcceptNewAdmin(s.ctx, s.lpAddr.String())
	s.Require().ErrorIs(err, types.ErrNoProposedAdmin)

	s.Require().NoError(s.k.ProposeNewAdmin(s.ctx, s.adminAddr.String(), s.lpAddr.String()))

	err = s.k.AcceptNewAdmin(s.ctx, s.creatorAddr.String())
	s.Require().ErrorIs(err, types.ErrUnauthorizedProposedAdmin)
}

func (s *TestSuite) TestBurnVaultAdminLifecycle() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())
	admin := s.adminAddr.String()

	err := s.k.BurnVaultAdmin(s.ctx, admin)
	s.Require().ErrorIs(err, types.ErrAdminBurnRebalancerNotAnyone)

	anyone := types.NewAnyoneRebalancer(types.MustNewPriceFactor(sdkmath.LegacyNewDec(2)), 3_600)
	s.Require().NoError(s.k.ChangeVaultRebalancer(s.ctx, admin, anyone))

	s.Require().NoError(s.k.ProposeNewAdmin(s.ctx, admin, s.lpAddr.String()))
	err = s.k.BurnVaultAdmin(s.ctx, admin)
	s.Require().ErrorIs(err, types.ErrAdminBurnPendingProposal)
	s.Require().NoError(s.k.ProposeNewAdmin(s.ctx, admin, ""))

	fee := types.MustNewWeight(sdkmath.LegacyNewDecWithPrec(1, 1))
	s.Require().NoError(s.k.ChangeAdminFee(s.ctx, admin, fee))
	err = s.k.BurnVaultAdmin(s.ctx, admin)
	s.Require().ErrorIs(err, types.ErrAdminBurnNonZeroAdminFee)
	s.Require().NoError(s.k.ChangeAdminFee(s.ctx, admin, types.ZeroWeight()))

	fees, err := s.k.GetFeesInfo(s.ctx)
	s.Require().NoError(err)
	fees.AdminTokens0Owned = sdkmath.NewInt(40)
	s.Require().NoError(s.k.SetFeesInfo(s.ctx, fees))
	err = s.k.BurnVaultAdmin(s.ctx, admin)
	s.Require().ErrorIs(err, types.ErrAdminBurnUncollectedFees)
	fees.AdminTokens0Owned = sdkmath.ZeroInt()
	s.Require().NoError(s.k.SetFeesInfo(s.ctx, fees))

	s.Require().NoError(s.k.BurnVaultAdmin(s.ctx, admin))

	info, err := s.k.GetVaultInfo(s.ctx)
	s.Require().NoError(err)
	s.Assert().False(info.HasAdmin(), "the vault is adminless for good")
	s.assertEventEmitted(types.EventTypeAdminBurned, map[string]string{
		"old_admin": admin,
	})

	err = s.k.BurnVaultAdmin(s.ctx, admin)
	s.Require().ErrorIs(err, types.ErrNonExistentAdmin)
}

func (s *TestSuite) TestChangeVaultRebalancer() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())
	delegate := sdk.AccAddress("delegateAddr________")

	s.Require().NoError(s.k.ChangeVaultRebalancer(s.ctx, s.adminAddr.String(), types.NewDelegateRebalancer(delegate.String())))

	info, err := s.k.GetVaultInfo(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(types.RebalancerDelegate, info.Rebalancer.Policy)
	s.Assert().Equal(delegate.String(), info.Rebalancer.Delegate)
	s.assertEventEmitted(types.EventTypeRebalancerChanged, map[string]string{
		"admin":    s.adminAddr.String(),
		"policy":   "delegate",
		"delegate": delegate.String(),
	})

	err = s.k.ChangeVaultRebalancer(s.ctx, s.adminAddr.String(), types.NewDelegateRebalancer("garbage"))
	s.Require().ErrorIs(err, types.ErrInvalidRebalancer)

	err = s.k.ChangeVaultRebalancer(s.ctx, s.lpAddr.String(), types.NewAdminRebalancer())
	s.Require().ErrorIs(err, types.ErrUnauthorizedAdminAccount)
}

func (s *TestSuite) TestChangeVaultParameters() {
	s.createVault(s.adminAddr.String(), types.NewAdminRebalancer())

	params, err := types.NewVaultParameters(
		types.OneWeight(), types.OnePriceFactor(), types.MustNewPriceFactor(sdkmath.LegacyNewDec(16)))
	s.Require().NoError(err)
	s.Require().NoError(s.k.ChangeVaultParameters(s.ctx, s.adminAddr.String(), params))

	got, err := s.k.GetVaultParameters(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal("1.000000000000000000", got.FullRangeWeight.String())
	s.Assert().Equal("1.000000000000000000", got.BaseFactor.String())
	s.Assert().Equal("16.000000000000000000", got.LimitFactor.String())
	s.assertEventEmitted(types.EventTypeVaultParametersChanged, map[string]string{
		"admin":             s.adminAddr.String(),
		"full_range_weight": "1.000000000000000000",
		"base_factor":       "1.000000000000000000",
		"limit_factor":      "16.000000000000000000",
	})

	invalid := types.VaultParameters{
		FullRangeWeight: types.MustNewWeight(sdkmath.LegacyNewDecWithPrec(5, 1)),
		BaseFactor:      types.OnePriceFactor(),
		LimitFactor:     types.OnePriceFactor(),
	}
	err = s.k.ChangeVaultParameters(s.ctx, s.adminAddr.String(), invalid)
	s.Require().ErrorIs(err, types.ErrInvalidVaultParameters)

	err = s.k.ChangeVaultParameters(s.ctx, s.lpAddr.String(), params)
	s.Require().ErrorIs(err, types.ErrUnauthorizedAdminAccount)
}

func (s *TestSuite) TestAdminOpsWithoutAdmin() {
	s.createVault("", types.NewAnyoneRebalancer(types.MustNewPriceFactor(sdkmath.LegacyNewDec(2)), 60))
	sender := s.lpAddr.String()

	ops := []struct {
		name string
		call func() error
	}{
		{"propose new admin", func() error { return s.k.ProposeNewAdmin(s.ctx, sender, s.creatorAddr.String()) }},
		{"burn vault admin", func() error { return s.k.BurnVaultAdmin(s.ctx, sender) }},
		{"change admin fee", func() error { return s.k.ChangeAdminFee(s.ctx, sender, types.ZeroWeight()) }},
		{"withdraw admin fees", func() error { _, err := s.k.WithdrawAdminFees(s.ctx, sender); return err }},
		{"change rebalancer", func() error { return s.k.ChangeVaultRebalancer(s.ctx, sender, types.NewAdminRebalancer()) }},
		{"change parameters", func() error { return s.k.ChangeVaultParameters(s.ctx, sender, defaultParameters()) }},
	}

	for _, op := range ops {
		s.Run(op.name, func() {
			s.Require().ErrorIs(op.call(), types.ErrNonExistentAdmin)
		})
	}
}
