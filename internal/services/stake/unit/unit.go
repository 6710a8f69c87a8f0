// Package unit defines the value-unit capability the ledger consumes and
// the adapters the server hosts: an in-process unit, an address directory,
// and a circuit breaker around outbound calls.
package unit

import (
	"context"
	"errors"
	"math/big"

	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
)

var (
	// ErrUnknownUnit indicates no unit is registered at an address.
	ErrUnknownUnit = errors.New("unknown value unit")
	// ErrInsufficientBalance indicates the payer holds less than the amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInsufficientAllowance indicates the spender was approved for less than the amount.
	ErrInsufficientAllowance = errors.New("insufficient allowance")
)

// Unit is a fungible value-unit component.
type Unit interface {
	// PullTransfer moves amount from `from` to `to`, spending an allowance
	// that `from` granted to `to`.
	PullTransfer(ctx context.Context, from, to domain.Identity, amount *big.Int) error
	// PushTransfer moves amount out of `from`'s own balance.
	PushTransfer(ctx context.Context, from, to domain.Identity, amount *big.Int) error
	BalanceOf(ctx context.Context, who domain.Identity) (*big.Int, error)
}

// Resolver finds the unit living at an address.
type Resolver interface {
	Unit(ctx context.Context, address domain.Address) (Unit, error)
}

// Unwrapper is implemented by units that decorate another unit.
type Unwrapper interface {
	Unwrap() Unit
}

// AsMemory follows Unwrap chains until it reaches an in-process unit.
func AsMemory(u Unit) (*Memory, bool) {
	for u != nil {
		if memory, ok := u.(*Memory); ok {
			return memory, true
		}
		wrapper, ok := u.(Unwrapper)
		if !ok {
			return nil, false
		}
		u = wrapper.Unwrap()
	}
	return nil, false
}

// IsRejection reports whether err is a business rejection from the unit
// rather than a transport or availability failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInsufficientBalance) || errors.Is(err, ErrInsufficientAllowance)
}
