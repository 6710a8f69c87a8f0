// Package storage defines persistence contracts for stake ledger state.
package storage

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage/filter"
)

var (
	// ErrNotBootstrapped indicates the settings row has not been created yet.
	ErrNotBootstrapped = errors.New("ledger is not bootstrapped")
	// ErrInvalidPageToken indicates a page token that this store did not issue.
	ErrInvalidPageToken = errors.New("invalid page token")
)

// Settings stores the role triplet and the current value-unit reference.
type Settings struct {
	Roles       domain.Roles
	CurrentUnit domain.Address
	UpdatedAt   time.Time
}

// StakeEntry stores one balance of the composite stake table.
type StakeEntry struct {
	Key       domain.StakeKey
	Amount    *big.Int
	UpdatedAt time.Time
}

// StakeEntryPage stores one page of stake entries.
type StakeEntryPage struct {
	Entries       []StakeEntry
	NextPageToken string
}

// JournalEntry stores one committed mutation. Unit, Account, Ucac and
// Amount are zero when the mutation does not concern them.
type JournalEntry struct {
	Seq        int64
	ID         string
	Kind       domain.JournalKind
	Actor      domain.Identity
	Unit       domain.Address
	Account    domain.Identity
	Ucac       domain.UcacID
	Amount     *big.Int
	Detail     string
	RecordedAt time.Time
}

// JournalPage stores one page of journal entries.
type JournalPage struct {
	Entries       []JournalEntry
	NextPageToken string
}

// Tx is the write scope of one ledger operation. Nothing written through a
// Tx is visible to readers until the enclosing WithinTx returns nil.
type Tx interface {
	Settings(ctx context.Context) (Settings, error)
	PutSettings(ctx context.Context, settings Settings) error
	Ucac(ctx context.Context, id domain.UcacID) (domain.UcacRecord, error)
	PutUcac(ctx context.Context, record domain.UcacRecord) error
	Stake(ctx context.Context, key domain.StakeKey) (*big.Int, error)
	PutStake(ctx context.Context, key domain.StakeKey, amount *big.Int) error
	AppendJournal(ctx context.Context, entry JournalEntry) error
}

// LedgerReader serves zero-default reads outside of a write scope.
type LedgerReader interface {
	Settings(ctx context.Context) (Settings, error)
	Ucac(ctx context.Context, id domain.UcacID) (domain.UcacRecord, error)
	Stake(ctx context.Context, key domain.StakeKey) (*big.Int, error)
	TotalStaked(ctx context.Context, id domain.UcacID) (*big.Int, error)
	ListStakes(ctx context.Context, pageSize int, pageToken string, cond filter.SQLCondition) (StakeEntryPage, error)
	ListJournal(ctx context.Context, pageSize int, pageToken string) (JournalPage, error)
}

// LedgerStore persists the ledger and scopes writes in transactions.
type LedgerStore interface {
	LedgerReader
	// Bootstrap creates the settings row with admin1 on first use and fails
	// with ADMIN1_MISMATCH when a different admin1 is already stored.
	Bootstrap(ctx context.Context, admin1 domain.Identity) (Settings, error)
	// WithinTx runs fn in one transaction, committing only when fn returns nil.
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}
