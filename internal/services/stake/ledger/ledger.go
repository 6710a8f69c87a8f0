package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	apperrors "github.com/louisbranch/stakeledger/internal/platform/errors"
	"github.com/louisbranch/stakeledger/internal/platform/id"
	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage"
	"github.com/louisbranch/stakeledger/internal/services/stake/unit"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/stakeledger/internal/services/stake/ledger"

// Recorder observes completed mutations.
type Recorder interface {
	ObserveOperation(operation, outcome string, elapsed time.Duration)
}

// Config wires a Ledger.
type Config struct {
	Store storage.LedgerStore
	Units unit.Resolver
	// Admin1 is the bootstrap administrator; it must match any stored admin1.
	Admin1 domain.Identity
	// Custody is the identity that holds staked value inside each unit.
	Custody  domain.Identity
	Clock    func() time.Time
	NewID    func() (string, error)
	Recorder Recorder
}

// Ledger is the stake ledger service core.
type Ledger struct {
	mu sync.Mutex

	store    storage.LedgerStore
	units    unit.Resolver
	custody  domain.Identity
	clock    func() time.Time
	newID    func() (string, error)
	recorder Recorder
	tracer   trace.Tracer
}

// New validates cfg and bootstraps the store with admin1.
func New(ctx context.Context, cfg Config) (*Ledger, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("ledger store is required")
	}
	if cfg.Units == nil {
		return nil, fmt.Errorf("unit resolver is required")
	}
	if cfg.Custody.IsZero() {
		return nil, fmt.Errorf("custody identity is required")
	}
	if _, err := cfg.Store.Bootstrap(ctx, cfg.Admin1); err != nil {
		return nil, fmt.Errorf("bootstrap ledger: %w", err)
	}

	l := &Ledger{
		store:    cfg.Store,
		units:    cfg.Units,
		custody:  cfg.Custody,
		clock:    cfg.Clock,
		newID:    cfg.NewID,
		recorder: cfg.Recorder,
		tracer:   otel.Tracer(tracerName),
	}
	if l.clock == nil {
		l.clock = time.Now
	}
	if l.newID == nil {
		l.newID = id.NewID
	}
	return l, nil
}

// Custody returns the identity that holds staked value.
func (l *Ledger) Custody() domain.Identity { return l.custody }

// mutate runs fn as one atomic ledger operation.
func (l *Ledger) mutate(ctx context.Context, operation string, caller domain.Identity, fn func(ctx context.Context, tx storage.Tx) error) (err error) {
	ctx, span := l.tracer.Start(ctx, "ledger."+operation, trace.WithAttributes(
		attribute.String("stake.operation", operation),
		attribute.String("stake.caller", string(caller)),
	))
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = string(apperrors.CodeOf(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
		}
		if l.recorder != nil {
			l.recorder.ObserveOperation(operation, outcome, time.Since(start))
		}
		span.End()
	}()

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	// The transaction outlives caller cancellation: once a transfer has
	// moved value, the matching rows must commit.
	return l.store.WithinTx(context.WithoutCancel(ctx), func(tx storage.Tx) error {
		return fn(ctx, tx)
	})
}

// transfer issues the single external call of an operation. It is the last
// step before commit and is skipped when the caller has already gone away.
func (l *Ledger) transfer(ctx context.Context, address domain.Address, op string, call func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := call(ctx); err != nil {
		return domain.ErrExternalCall(address, op, err)
	}
	return nil
}

// journal appends one journal row inside tx.
func (l *Ledger) journal(ctx context.Context, tx storage.Tx, entry storage.JournalEntry) error {
	entryID, err := l.newID()
	if err != nil {
		return fmt.Errorf("journal id: %w", err)
	}
	entry.ID = entryID
	entry.RecordedAt = l.clock().UTC()
	return tx.AppendJournal(ctx, entry)
}

// resolve finds the unit at address, reporting failures as external call errors.
func (l *Ledger) resolve(ctx context.Context, address domain.Address) (unit.Unit, error) {
	u, err := l.units.Unit(ctx, address)
	if err != nil {
		return nil, domain.ErrExternalCall(address, "resolve", err)
	}
	return u, nil
}

// settingsOf reads the bootstrapped settings row.
func settingsOf(ctx context.Context, tx storage.Tx) (storage.Settings, error) {
	settings, err := tx.Settings(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotBootstrapped) {
			return storage.Settings{}, apperrors.Wrap(apperrors.CodeUnknown, "ledger settings missing", err)
		}
		return storage.Settings{}, err
	}
	return settings, nil
}
