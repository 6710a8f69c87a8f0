package domain

import (
	"fmt"
	"math/big"

	apperrors "github.com/louisbranch/stakeledger/internal/platform/errors"
)

// ErrUnauthorized reports a failed role check.
func ErrUnauthorized(role Role, caller Identity) error {
	return apperrors.WithMetadata(
		apperrors.CodeUnauthorized,
		fmt.Sprintf("caller %q is not %s", caller, role),
		map[string]string{"Role": string(role)},
	)
}

// ErrInsufficientStake reports an unstake larger than the entry.
func ErrInsufficientStake(key StakeKey, staked, requested *big.Int) error {
	return apperrors.WithMetadata(
		apperrors.CodeInsufficientStake,
		fmt.Sprintf("entry %s/%s/%s holds %s, requested %s", key.Unit, key.Account, key.Ucac, staked, requested),
		map[string]string{
			"Staked":    staked.String(),
			"Requested": requested.String(),
		},
	)
}

// ErrExternalCall reports a rejected or unreachable value-unit call.
func ErrExternalCall(unit Address, op string, cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeExternalCallFailure,
		fmt.Sprintf("%s on unit %s", op, unit),
		map[string]string{"Unit": string(unit)},
		cause,
	)
}

// ErrTokenNotSet reports a stake while no current unit is configured.
func ErrTokenNotSet() error {
	return apperrors.New(apperrors.CodeTokenNotSet, "current value unit is not set")
}

// ErrInvalidAmount reports a missing, malformed or non-positive amount.
func ErrInvalidAmount(raw, reason string) error {
	return apperrors.WithMetadata(
		apperrors.CodeInvalidAmount,
		fmt.Sprintf("%s: %q", reason, raw),
		map[string]string{apperrors.FieldKey: "amount"},
	)
}

// ErrInvalidUcacID reports a UCAC id that cannot be parsed.
func ErrInvalidUcacID(raw, reason string) error {
	return apperrors.WithMetadata(
		apperrors.CodeInvalidUcacID,
		fmt.Sprintf("%s: %q", reason, raw),
		map[string]string{apperrors.FieldKey: "ucac_id"},
	)
}

// ErrInvalidArgument reports an empty or malformed request field.
func ErrInvalidArgument(field, message string) error {
	return apperrors.WithMetadata(
		apperrors.CodeInvalidArgument,
		message,
		map[string]string{apperrors.FieldKey: field},
	)
}

// ErrAdmin1Mismatch reports a store bootstrapped with a different admin1.
func ErrAdmin1Mismatch(stored, configured Identity) error {
	return apperrors.New(
		apperrors.CodeAdmin1Mismatch,
		fmt.Sprintf("stored admin1 %q differs from configured %q", stored, configured),
	)
}
