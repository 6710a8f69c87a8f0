package ledger

import (
	"context"

	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage"
)

// SetAdmin2 overwrites the admin2 slot. Only admin1 may call it; an empty
// identity clears the slot.
func (l *Ledger) SetAdmin2(ctx context.Context, caller, identity domain.Identity) (domain.Roles, error) {
	return l.setRole(ctx, "set_admin2", domain.KindAdmin2Set, caller, identity, func(roles *domain.Roles) {
		roles.Admin2 = identity
	})
}

// ChangeParent overwrites the parent slot. Only admin1 may call it; an empty
// identity clears the slot.
func (l *Ledger) ChangeParent(ctx context.Context, caller, identity domain.Identity) (domain.Roles, error) {
	return l.setRole(ctx, "change_parent", domain.KindParentChanged, caller, identity, func(roles *domain.Roles) {
		roles.Parent = identity
	})
}

func (l *Ledger) setRole(ctx context.Context, operation string, kind domain.JournalKind, caller, identity domain.Identity, apply func(*domain.Roles)) (domain.Roles, error) {
	var roles domain.Roles
	err := l.mutate(ctx, operation, caller, func(ctx context.Context, tx storage.Tx) error {
		settings, err := settingsOf(ctx, tx)
		if err != nil {
			return err
		}
		if err := settings.Roles.RequireAdmin1(caller); err != nil {
			return err
		}
		apply(&settings.Roles)
		if err := tx.PutSettings(ctx, settings); err != nil {
			return err
		}
		if err := l.journal(ctx, tx, storage.JournalEntry{
			Kind:    kind,
			Actor:   caller,
			Account: identity,
		}); err != nil {
			return err
		}
		roles = settings.Roles
		return nil
	})
	if err != nil {
		return domain.Roles{}, err
	}
	return roles, nil
}

// Roles returns the three access-control slots.
func (l *Ledger) Roles(ctx context.Context) (domain.Roles, error) {
	settings, err := l.store.Settings(ctx)
	if err != nil {
		return domain.Roles{}, err
	}
	return settings.Roles, nil
}

// SetToken points the ledger at a new current value unit. Existing entries
// stay under their old unit address. Only admin1 may call it.
func (l *Ledger) SetToken(ctx context.Context, caller domain.Identity, address domain.Address) (domain.Address, error) {
	err := l.mutate(ctx, "set_token", caller, func(ctx context.Context, tx storage.Tx) error {
		settings, err := settingsOf(ctx, tx)
		if err != nil {
			return err
		}
		if err := settings.Roles.RequireAdmin1(caller); err != nil {
			return err
		}
		if address.IsZero() {
			return domain.ErrInvalidArgument("address", "token address is required")
		}
		previous := settings.CurrentUnit
		settings.CurrentUnit = address
		if err := tx.PutSettings(ctx, settings); err != nil {
			return err
		}
		return l.journal(ctx, tx, storage.JournalEntry{
			Kind:   domain.KindTokenSet,
			Actor:  caller,
			Unit:   address,
			Detail: "previous=" + string(previous),
		})
	})
	if err != nil {
		return "", err
	}
	return address, nil
}

// CurrentToken returns the current value-unit address, empty when unset.
func (l *Ledger) CurrentToken(ctx context.Context) (domain.Address, error) {
	settings, err := l.store.Settings(ctx)
	if err != nil {
		return "", err
	}
	return settings.CurrentUnit, nil
}
