package unit

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
)

type allowanceKey struct {
	owner   domain.Identity
	spender domain.Identity
}

// Memory is an in-process fungible unit with balances and allowances.
// It backs the development server and tests; balances are not persisted.
type Memory struct {
	address domain.Address

	mu         sync.Mutex
	balances   map[domain.Identity]*big.Int
	allowances map[allowanceKey]*big.Int
}

// NewMemory returns an empty unit addressed by address.
func NewMemory(address domain.Address) *Memory {
	return &Memory{
		address:    address,
		balances:   make(map[domain.Identity]*big.Int),
		allowances: make(map[allowanceKey]*big.Int),
	}
}

// Address returns the unit's address.
func (m *Memory) Address() domain.Address { return m.address }

// Mint credits amount to `to` and returns the new balance.
func (m *Memory) Mint(ctx context.Context, to domain.Identity, amount *big.Int) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if to.IsZero() {
		return nil, domain.ErrInvalidArgument("account", "mint recipient is required")
	}
	if amount == nil || amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount(fmt.Sprint(amount), "mint amount must be greater than zero")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	balance := m.balanceLocked(to)
	balance.Add(balance, amount)
	return new(big.Int).Set(balance), nil
}

// Approve sets the allowance owner grants to spender, replacing any previous one.
func (m *Memory) Approve(ctx context.Context, owner, spender domain.Identity, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if owner.IsZero() {
		return domain.ErrInvalidArgument("owner", "approve owner is required")
	}
	if spender.IsZero() {
		return domain.ErrInvalidArgument("spender", "approve spender is required")
	}
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrInvalidAmount(fmt.Sprint(amount), "approve amount must be non-negative")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.allowances[allowanceKey{owner: owner, spender: spender}] = new(big.Int).Set(amount)
	return nil
}

// Allowance returns what spender may still pull from owner.
func (m *Memory) Allowance(owner, spender domain.Identity) *big.Int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value, ok := m.allowances[allowanceKey{owner: owner, spender: spender}]; ok {
		return new(big.Int).Set(value)
	}
	return new(big.Int)
}

// PullTransfer spends the allowance from granted to `to`.
func (m *Memory) PullTransfer(ctx context.Context, from, to domain.Identity, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkTransfer(from, to, amount); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	key := allowanceKey{owner: from, spender: to}
	allowance, ok := m.allowances[key]
	if !ok || allowance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s may pull %s from %s, requested %s", ErrInsufficientAllowance, to, valueOrZero(allowance), from, amount)
	}
	if err := m.moveLocked(from, to, amount); err != nil {
		return err
	}
	allowance.Sub(allowance, amount)
	return nil
}

// PushTransfer moves amount out of from's balance.
func (m *Memory) PushTransfer(ctx context.Context, from, to domain.Identity, amount *big.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkTransfer(from, to, amount); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.moveLocked(from, to, amount)
}

// BalanceOf returns who's balance, zero when unknown.
func (m *Memory) BalanceOf(ctx context.Context, who domain.Identity) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if value, ok := m.balances[who]; ok {
		return new(big.Int).Set(value), nil
	}
	return new(big.Int), nil
}

func (m *Memory) moveLocked(from, to domain.Identity, amount *big.Int) error {
	source := m.balances[from]
	if source == nil || source.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s holds %s, requested %s", ErrInsufficientBalance, from, valueOrZero(source), amount)
	}
	source.Sub(source, amount)
	target := m.balanceLocked(to)
	target.Add(target, amount)
	return nil
}

func (m *Memory) balanceLocked(who domain.Identity) *big.Int {
	balance, ok := m.balances[who]
	if !ok {
		balance = new(big.Int)
		m.balances[who] = balance
	}
	return balance
}

func checkTransfer(from, to domain.Identity, amount *big.Int) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("transfer endpoints are required")
	}
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("transfer amount must be greater than zero")
	}
	return nil
}

func valueOrZero(value *big.Int) string {
	if value == nil {
		return "0"
	}
	return value.String()
}

var _ Unit = (*Memory)(nil)
