// Package errors provides structured ledger errors with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Authorization errors
	CodeUnauthorized         Code = "UNAUTHORIZED"
	CodeAdmin1Mismatch       Code = "ADMIN1_MISMATCH"
	CodeIdentityTokenInvalid Code = "IDENTITY_TOKEN_INVALID"

	// Ledger errors
	CodeInsufficientStake   Code = "INSUFFICIENT_STAKE"
	CodeExternalCallFailure Code = "EXTERNAL_CALL_FAILURE"
	CodeTokenNotSet         Code = "TOKEN_NOT_SET"

	// Input errors
	CodeInvalidAmount   Code = "INVALID_AMOUNT"
	CodeInvalidUcacID   Code = "INVALID_UCAC_ID"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeInvalidAmount,
		CodeInvalidUcacID,
		CodeInvalidArgument:
		return codes.InvalidArgument

	case CodeUnauthorized:
		return codes.PermissionDenied

	case CodeIdentityTokenInvalid:
		return codes.Unauthenticated

	// The addressed entry or the value unit does not allow the operation.
	case CodeInsufficientStake,
		CodeExternalCallFailure,
		CodeTokenNotSet,
		CodeAdmin1Mismatch:
		return codes.FailedPrecondition

	default:
		return codes.Internal
	}
}
