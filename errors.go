package berth

import (
	"fmt"

	"github.com/xraph/go-utils/errs"
)

// =============================================================================
// ERROR CODES
// =============================================================================

const (
	// CodeNoContract indicates an implicit marker on a type that directly
	// implements no declared contract
	CodeNoContract = "NO_CONTRACT"

	// CodeScopeLoad indicates a requested scope cannot be inspected
	CodeScopeLoad = "SCOPE_LOAD"

	// CodeInvalidLifetime indicates a lifetime outside Singleton, Scoped and Transient
	CodeInvalidLifetime = "INVALID_LIFETIME"

	// CodeInvalidDeclaration indicates a malformed entry in the declaration table
	CodeInvalidDeclaration = "INVALID_DECLARATION"

	// CodeContractNotImplemented indicates an explicit contract the implementation cannot satisfy
	CodeContractNotImplemented = "CONTRACT_NOT_IMPLEMENTED"

	// CodeRegistrationRejected indicates a hook aborted the configuration pass
	CodeRegistrationRejected = "REGISTRATION_REJECTED"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

// ErrNoContractSentinel is a sentinel error for missing implicit contracts (for error checking).
var ErrNoContractSentinel = errs.NewError(CodeNoContract, "no contract", nil)

// ErrScopeLoadSentinel is a sentinel error for uninspectable scopes (for error checking).
var ErrScopeLoadSentinel = errs.NewError(CodeScopeLoad, "scope cannot be loaded", nil)

// ErrInvalidLifetimeSentinel is a sentinel error for out-of-range lifetimes (for error checking).
var ErrInvalidLifetimeSentinel = errs.NewError(CodeInvalidLifetime, "invalid lifetime", nil)

// ErrInvalidDeclarationSentinel is a sentinel error for malformed declarations (for error checking).
var ErrInvalidDeclarationSentinel = errs.NewError(CodeInvalidDeclaration, "invalid declaration", nil)

// ErrContractNotImplementedSentinel is a sentinel error for strict contract checks (for error checking).
var ErrContractNotImplementedSentinel = errs.NewError(CodeContractNotImplemented, "contract not implemented", nil)

// ErrRegistrationRejectedSentinel is a sentinel error for hook rejections (for error checking).
var ErrRegistrationRejectedSentinel = errs.NewError(CodeRegistrationRejected, "registration rejected", nil)

// =============================================================================
// ERROR CONSTRUCTORS
// =============================================================================

// ErrNoContract creates an error for a type that does not directly implement any contract
func ErrNoContract(typeName string) *errs.Error {
	return errs.NewError(
		CodeNoContract,
		fmt.Sprintf("type '%s' does not directly implement any contracts", typeName),
		nil,
	).WithContext("type", typeName).(*errs.Error)
}

// ErrScopeLoad creates an error for a scope that cannot be inspected
func ErrScopeLoad(scope string, cause error) *errs.Error {
	return errs.NewError(
		CodeScopeLoad,
		fmt.Sprintf("scope '%s' cannot be loaded", scope),
		cause,
	).WithContext("scope", scope).(*errs.Error)
}

// ErrInvalidLifetime creates an error for a lifetime outside the enumeration
func ErrInvalidLifetime(value any) *errs.Error {
	return errs.NewError(
		CodeInvalidLifetime,
		fmt.Sprintf("invalid lifetime %v", value),
		nil,
	).WithContext("lifetime", fmt.Sprint(value)).(*errs.Error)
}

// ErrInvalidDeclaration creates an error for a rejected declaration
func ErrInvalidDeclaration(typeName, reason string) *errs.Error {
	return errs.NewError(
		CodeInvalidDeclaration,
		fmt.Sprintf("invalid declaration of '%s': %s", typeName, reason),
		nil,
	).WithContext("type", typeName).
		WithContext("reason", reason).(*errs.Error)
}

// ErrContractNotImplemented creates an error for an implementation that cannot be used as its contract
func ErrContractNotImplemented(contract, typeName string) *errs.Error {
	return errs.NewError(
		CodeContractNotImplemented,
		fmt.Sprintf("type '%s' cannot be registered as '%s'", typeName, contract),
		nil,
	).WithContext("contract", contract).
		WithContext("type", typeName).(*errs.Error)
}

// NewRegistrationRejected creates an error for a registration a hook refused
func NewRegistrationRejected(contract, typeName string, cause error) *errs.Error {
	return errs.NewError(
		CodeRegistrationRejected,
		fmt.Sprintf("registration of '%s' as '%s' rejected", typeName, contract),
		cause,
	).WithContext("contract", contract).
		WithContext("type", typeName).(*errs.Error)
}
