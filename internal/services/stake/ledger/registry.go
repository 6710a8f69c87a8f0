package ledger

import (
	"context"

	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage"
)

// SetUcacAddr creates or overwrites the UCAC's address. Only the parent may call it.
func (l *Ledger) SetUcacAddr(ctx context.Context, caller domain.Identity, ucacID domain.UcacID, address domain.Address) (domain.UcacRecord, error) {
	return l.putUcac(ctx, "set_ucac_addr", domain.KindUcacAddressSet, caller, ucacID, func(record *domain.UcacRecord) storage.JournalEntry {
		record.Address = address
		return storage.JournalEntry{Unit: address}
	})
}

// SetOwner1 creates or overwrites the UCAC's first owner. Only the parent may call it.
func (l *Ledger) SetOwner1(ctx context.Context, caller domain.Identity, ucacID domain.UcacID, owner domain.Identity) (domain.UcacRecord, error) {
	return l.putUcac(ctx, "set_owner1", domain.KindUcacOwner1Set, caller, ucacID, func(record *domain.UcacRecord) storage.JournalEntry {
		record.Owner1 = owner
		return storage.JournalEntry{Account: owner}
	})
}

// SetOwner2 creates or overwrites the UCAC's second owner. Only the parent may call it.
func (l *Ledger) SetOwner2(ctx context.Context, caller domain.Identity, ucacID domain.UcacID, owner domain.Identity) (domain.UcacRecord, error) {
	return l.putUcac(ctx, "set_owner2", domain.KindUcacOwner2Set, caller, ucacID, func(record *domain.UcacRecord) storage.JournalEntry {
		record.Owner2 = owner
		return storage.JournalEntry{Account: owner}
	})
}

func (l *Ledger) putUcac(ctx context.Context, operation string, kind domain.JournalKind, caller domain.Identity, ucacID domain.UcacID, apply func(*domain.UcacRecord) storage.JournalEntry) (domain.UcacRecord, error) {
	var out domain.UcacRecord
	err := l.mutate(ctx, operation, caller, func(ctx context.Context, tx storage.Tx) error {
		settings, err := settingsOf(ctx, tx)
		if err != nil {
			return err
		}
		if err := settings.Roles.RequireParent(caller); err != nil {
			return err
		}
		record, err := tx.Ucac(ctx, ucacID)
		if err != nil {
			return err
		}
		entry := apply(&record)
		if err := tx.PutUcac(ctx, record); err != nil {
			return err
		}
		entry.Kind = kind
		entry.Actor = caller
		entry.Ucac = ucacID
		if err := l.journal(ctx, tx, entry); err != nil {
			return err
		}
		out = record
		return nil
	})
	if err != nil {
		return domain.UcacRecord{}, err
	}
	return out, nil
}

// Ucac returns the registry record; unset UCACs read as zero fields.
func (l *Ledger) Ucac(ctx context.Context, ucacID domain.UcacID) (domain.UcacRecord, error) {
	return l.store.Ucac(ctx, ucacID)
}

// UcacAddr returns the UCAC's address.
func (l *Ledger) UcacAddr(ctx context.Context, ucacID domain.UcacID) (domain.Address, error) {
	record, err := l.store.Ucac(ctx, ucacID)
	return record.Address, err
}

// Owner1 returns the UCAC's first owner.
func (l *Ledger) Owner1(ctx context.Context, ucacID domain.UcacID) (domain.Identity, error) {
	record, err := l.store.Ucac(ctx, ucacID)
	return record.Owner1, err
}

// Owner2 returns the UCAC's second owner.
func (l *Ledger) Owner2(ctx context.Context, ucacID domain.UcacID) (domain.Identity, error) {
	record, err := l.store.Ucac(ctx, ucacID)
	return record.Owner2, err
}

// IsUcacOwner reports whether who is one of the UCAC's owners. The unit
// address is part of the call shape but never consulted.
func (l *Ledger) IsUcacOwner(ctx context.Context, _ domain.Address, ucacID domain.UcacID, who domain.Identity) (bool, error) {
	record, err := l.store.Ucac(ctx, ucacID)
	if err != nil {
		return false, err
	}
	return record.IsOwner(who), nil
}
