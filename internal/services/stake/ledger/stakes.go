package ledger

import (
	"context"
	"math/big"

	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage"
)

// StakeTokens pulls amount from account into custody under the current unit
// and credits the (current unit, account, ucac) entry. Only the parent may
// call it; account must have approved the custody identity beforehand.
func (l *Ledger) StakeTokens(ctx context.Context, caller domain.Identity, ucacID domain.UcacID, account domain.Identity, amount *big.Int) (storage.StakeEntry, error) {
	var entry storage.StakeEntry
	err := l.mutate(ctx, "stake_tokens", caller, func(ctx context.Context, tx storage.Tx) error {
		settings, err := settingsOf(ctx, tx)
		if err != nil {
			return err
		}
		if err := settings.Roles.RequireParent(caller); err != nil {
			return err
		}
		if err := domain.RequireAmount(amount); err != nil {
			return err
		}
		if account.IsZero() {
			return domain.ErrInvalidArgument("account", "account is required")
		}
		if settings.CurrentUnit.IsZero() {
			return domain.ErrTokenNotSet()
		}

		key := domain.StakeKey{Unit: settings.CurrentUnit, Account: account, Ucac: ucacID}
		u, err := l.resolve(ctx, key.Unit)
		if err != nil {
			return err
		}
		current, err := tx.Stake(ctx, key)
		if err != nil {
			return err
		}
		next := new(big.Int).Add(current, amount)
		if err := tx.PutStake(ctx, key, next); err != nil {
			return err
		}
		if err := l.journal(ctx, tx, storage.JournalEntry{
			Kind:    domain.KindStakeAdded,
			Actor:   caller,
			Unit:    key.Unit,
			Account: account,
			Ucac:    ucacID,
			Amount:  amount,
		}); err != nil {
			return err
		}

		if err := l.transfer(ctx, key.Unit, "pull transfer", func(ctx context.Context) error {
			return u.PullTransfer(ctx, account, l.custody, amount)
		}); err != nil {
			return err
		}
		entry = storage.StakeEntry{Key: key, Amount: next, UpdatedAt: l.clock().UTC()}
		return nil
	})
	if err != nil {
		return storage.StakeEntry{}, err
	}
	return entry, nil
}

// UnstakeTokens debits the caller's (unit, caller, ucac) entry and pushes
// amount back to the caller from custody. Any epoch's unit may be named.
func (l *Ledger) UnstakeTokens(ctx context.Context, caller domain.Identity, unitAddress domain.Address, ucacID domain.UcacID, amount *big.Int) (storage.StakeEntry, error) {
	var entry storage.StakeEntry
	err := l.mutate(ctx, "unstake_tokens", caller, func(ctx context.Context, tx storage.Tx) error {
		if caller.IsZero() {
			return domain.ErrUnauthorized(domain.RoleStaker, caller)
		}
		if err := domain.RequireAmount(amount); err != nil {
			return err
		}
		key := domain.StakeKey{Unit: unitAddress, Account: caller, Ucac: ucacID}
		if err := key.Validate(); err != nil {
			return err
		}

		current, err := tx.Stake(ctx, key)
		if err != nil {
			return err
		}
		if current.Cmp(amount) < 0 {
			return domain.ErrInsufficientStake(key, current, amount)
		}
		u, err := l.resolve(ctx, key.Unit)
		if err != nil {
			return err
		}
		next := new(big.Int).Sub(current, amount)
		if err := tx.PutStake(ctx, key, next); err != nil {
			return err
		}
		if err := l.journal(ctx, tx, storage.JournalEntry{
			Kind:    domain.KindStakeRemoved,
			Actor:   caller,
			Unit:    key.Unit,
			Account: caller,
			Ucac:    ucacID,
			Amount:  amount,
		}); err != nil {
			return err
		}

		if err := l.transfer(ctx, key.Unit, "push transfer", func(ctx context.Context) error {
			return u.PushTransfer(ctx, l.custody, caller, amount)
		}); err != nil {
			return err
		}
		entry = storage.StakeEntry{Key: key, Amount: next, UpdatedAt: l.clock().UTC()}
		return nil
	})
	if err != nil {
		return storage.StakeEntry{}, err
	}
	return entry, nil
}

// StakedTokens returns the entry for (unit, account, ucac), zero when unknown.
func (l *Ledger) StakedTokens(ctx context.Context, unitAddress domain.Address, account domain.Identity, ucacID domain.UcacID) (*big.Int, error) {
	return l.store.Stake(ctx, domain.StakeKey{Unit: unitAddress, Account: account, Ucac: ucacID})
}

// TotalStakedTokens returns the UCAC's total across every unit epoch.
func (l *Ledger) TotalStakedTokens(ctx context.Context, ucacID domain.UcacID) (*big.Int, error) {
	return l.store.TotalStaked(ctx, ucacID)
}
