package types

import "cosmossdk.io/errors"

// Configuration errors.
var (
	ErrInvalidRequest         = errors.Register(ModuleName, 1, "invalid request")
	ErrInvalidVaultParameters = errors.Register(ModuleName, 2, "invalid vault parameters")
	ErrInvalidVaultInfo       = errors.Register(ModuleName, 3, "invalid vault info")
	ErrInvalidRebalancer      = errors.Register(ModuleName, 4, "invalid rebalancer")
	ErrVaultAlreadyExists     = errors.Register(ModuleName, 5, "vault already exists")
	ErrVaultNotFound          = errors.Register(ModuleName, 6, "vault not found")
	ErrInvalidProtocolFee     = errors.Register(ModuleName, 7, "invalid protocol fee")
	ErrInvalidAdminFee        = errors.Register(ModuleName, 8, "invalid admin fee")
)

// Request errors.
var (
	ErrZeroTokensSent           = errors.Register(ModuleName, 10, "no tokens sent")
	ErrSharesReceiverIsVault    = errors.Register(ModuleName, 11, "vault cant be the shares receiver")
	ErrDepositBelowMinLiquidity = errors.Register(ModuleName, 12, "deposited amounts below min liquidity")
	ErrDepositTooSmall          = errors.Register(ModuleName, 13, "deposit too small to mint shares")
	ErrDepositedAmountsBelowMin = errors.Register(ModuleName, 14, "usable deposit amounts below requested minimums")
	ErrZeroSharesWithdrawal     = errors.Register(ModuleName, 15, "cant withdraw zero shares")
	ErrWithdrawToVault          = errors.Register(ModuleName, 16, "vault cant be the withdrawal receiver")
	ErrInvalidWithdrawalAmount  = errors.Register(ModuleName, 17, "withdrawn shares exceed owned shares")
	ErrWithdrawnAmountsBelowMin = errors.Register(ModuleName, 18, "withdrawn amounts below requested minimums")
	ErrNothingToRebalance       = errors.Register(ModuleName, 19, "vault holds no tokens to rebalance")
	ErrPoolWithoutPrice         = errors.Register(ModuleName, 20, "pool has no price")
)

// Authorization and rebalance gate errors.
var (
	ErrUnauthorizedNonAdmin         = errors.Register(ModuleName, 30, "only the admin can rebalance this vault")
	ErrUnauthorizedDelegate         = errors.Register(ModuleName, 31, "only the delegate can rebalance this vault")
	ErrPoolJustCreated              = errors.Register(ModuleName, 32, "pool was just created and has no price average yet")
	ErrRebalancedThisBlock          = errors.Register(ModuleName, 33, "vault already rebalanced at this block time")
	ErrNotEnoughTimePassed          = errors.Register(ModuleName, 34, "not enough time passed since the last rebalance")
	ErrPriceHasntMovedEnough        = errors.Register(ModuleName, 35, "price hasnt moved enough since the last rebalance")
	ErrPriceMovedTooMuch            = errors.Register(ModuleName, 36, "price moved too much over the averaging window")
	ErrUnauthorizedProtocolAccount  = errors.Register(ModuleName, 37, "only the protocol account can do this")
	ErrNonExistentAdmin             = errors.Register(ModuleName, 38, "vault has no admin")
	ErrUnauthorizedAdminAccount     = errors.Register(ModuleName, 39, "only the admin can do this")
	ErrInvalidProposedAdmin         = errors.Register(ModuleName, 40, "invalid proposed admin address")
	ErrUnauthorizedProposedAdmin    = errors.Register(ModuleName, 41, "only the proposed admin can accept adminship")
	ErrNoProposedAdmin              = errors.Register(ModuleName, 42, "vault has no proposed admin")
	ErrAdminBurnPendingProposal     = errors.Register(ModuleName, 43, "cant burn adminship with a pending admin proposal")
	ErrAdminBurnRebalancerNotAnyone = errors.Register(ModuleName, 44, "cant burn adminship unless anyone can rebalance")
	ErrAdminBurnNonZeroAdminFee     = errors.Register(ModuleName, 45, "cant burn adminship with a non zero admin fee")
	ErrAdminBurnUncollectedFees     = errors.Register(ModuleName, 46, "cant burn adminship with uncollected admin fees")
)

// CriticalError wraps an error that represents a broken accounting invariant.
// Operations surface it unrecovered so the whole state transition aborts. It
// includes a stable, hard-coded Reason string decoupled from SDK or underlying
// error text.
type CriticalError struct {
	// Reason is a stable, hard-coded description of which invariant broke.
	Reason string
	// Err is the underlying error, which may include deeper SDK or keeper details.
	Err error
}

// Error implements the error interface, prefixing the underlying error
// message with the broken invariant.
func (e *CriticalError) Error() string { return e.Reason + ": " + e.Err.Error() }

// Unwrap allows errors.Unwrap and errors.Is/As to inspect the underlying error.
func (e *CriticalError) Unwrap() error { return e.Err }

// CriticalErr constructs a new CriticalError with the given reason string and
// underlying error. Callers should use this helper when a failure means the
// vault's accounting can no longer be trusted.
func CriticalErr(reason string, err error) error {
	return &CriticalError{Reason: reason, Err: err}
}
