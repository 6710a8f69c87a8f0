package unit

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
)

// Directory resolves unit addresses to registered units.
type Directory struct {
	mu    sync.RWMutex
	units map[domain.Address]Unit
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{units: make(map[domain.Address]Unit)}
}

// Register binds address to u, replacing any previous binding.
func (d *Directory) Register(address domain.Address, u Unit) error {
	if address.IsZero() {
		return fmt.Errorf("unit address is required")
	}
	if u == nil {
		return fmt.Errorf("unit is required")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.units[address] = u
	return nil
}

// Unit returns the unit at address or ErrUnknownUnit.
func (d *Directory) Unit(ctx context.Context, address domain.Address) (Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.units[address]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, address)
	}
	return u, nil
}

// Addresses lists registered addresses in sorted order.
func (d *Directory) Addresses() []domain.Address {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Address, 0, len(d.units))
	for address := range d.units {
		out = append(out, address)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var _ Resolver = (*Directory)(nil)
