package sqlite

import (
	"context"
	"errors"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/louisbranch/stakeledger/internal/platform/errors"
	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage/filter"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestBootstrapPersistsAdmin1(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stake.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if _, err := store.Settings(context.Background()); !errors.Is(err, storage.ErrNotBootstrapped) {
		t.Fatalf("settings before bootstrap error = %v, want %v", err, storage.ErrNotBootstrapped)
	}
	settings, err := store.Bootstrap(context.Background(), "root")
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if settings.Roles.Admin1 != "root" {
		t.Fatalf("admin1 = %q, want root", settings.Roles.Admin1)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })
	if _, err := reopened.Bootstrap(context.Background(), "root"); err != nil {
		t.Fatalf("bootstrap same admin1: %v", err)
	}
	_, err = reopened.Bootstrap(context.Background(), "intruder")
	if !apperrors.HasCode(err, apperrors.CodeAdmin1Mismatch) {
		t.Fatalf("bootstrap other admin1 error = %v, want %s", err, apperrors.CodeAdmin1Mismatch)
	}
}

func TestBootstrapRejectsEmptyAdmin1(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.Bootstrap(context.Background(), ""); !apperrors.HasCode(err, apperrors.CodeInvalidArgument) {
		t.Fatalf("bootstrap empty admin1 error = %v", err)
	}
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	store := openBootstrappedStore(t)
	key := domain.StakeKey{Unit: "T", Account: "alice", Ucac: domain.MustParseUcacID("id1")}
	boom := errors.New("boom")

	err := store.WithinTx(context.Background(), func(tx storage.Tx) error {
		if err := tx.PutStake(context.Background(), key, big.NewInt(10)); err != nil {
			return err
		}
		if err := tx.AppendJournal(context.Background(), storage.JournalEntry{ID: "j1", Kind: domain.KindStakeAdded, Actor: "parent"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithinTx error = %v, want %v", err, boom)
	}

	amount, err := store.Stake(context.Background(), key)
	if err != nil {
		t.Fatalf("read stake: %v", err)
	}
	if amount.Sign() != 0 {
		t.Fatalf("stake after rollback = %s, want 0", amount)
	}
	page, err := store.ListJournal(context.Background(), 10, "")
	if err != nil {
		t.Fatalf("list journal: %v", err)
	}
	if len(page.Entries) != 0 {
		t.Fatalf("journal entries after rollback = %d, want 0", len(page.Entries))
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Parallel()

	store := openBootstrappedStore(t)
	err := store.WithinTx(context.Background(), func(tx storage.Tx) error {
		settings, err := tx.Settings(context.Background())
		if err != nil {
			return err
		}
		settings.Roles.Admin2 = "ops"
		settings.Roles.Parent = "parent"
		settings.CurrentUnit = "T"
		return tx.PutSettings(context.Background(), settings)
	})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}

	got, err := store.Settings(context.Background())
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	want := domain.Roles{Admin1: "root", Admin2: "ops", Parent: "parent"}
	if got.Roles != want {
		t.Fatalf("roles = %+v, want %+v", got.Roles, want)
	}
	if got.CurrentUnit != "T" {
		t.Fatalf("current unit = %q, want T", got.CurrentUnit)
	}
}

func TestUcacDefaultsAndOverwrite(t *testing.T) {
	t.Parallel()

	store := openBootstrappedStore(t)
	id := domain.MustParseUcacID("id1")

	record, err := store.Ucac(context.Background(), id)
	if err != nil {
		t.Fatalf("read unset ucac: %v", err)
	}
	if record.ID != id || record.Address != "" || record.Owner1 != "" || record.Owner2 != "" {
		t.Fatalf("unset ucac = %+v, want zero fields", record)
	}

	for _, update := range []domain.UcacRecord{
		{ID: id, Address: "U"},
		{ID: id, Address: "U", Owner1: "alice"},
		{ID: id, Address: "V", Owner1: "alice", Owner2: "bob"},
	} {
		err := store.WithinTx(context.Background(), func(tx storage.Tx) error {
			return tx.PutUcac(context.Background(), update)
		})
		if err != nil {
			t.Fatalf("put ucac: %v", err)
		}
	}

	record, err = store.Ucac(context.Background(), id)
	if err != nil {
		t.Fatalf("read ucac: %v", err)
	}
	want := domain.UcacRecord{ID: id, Address: "V", Owner1: "alice", Owner2: "bob"}
	if record != want {
		t.Fatalf("ucac = %+v, want %+v", record, want)
	}
}

func TestTotalStakedSumsEveryEpoch(t *testing.T) {
	t.Parallel()

	store := openBootstrappedStore(t)
	id1 := domain.MustParseUcacID("id1")
	id2 := domain.MustParseUcacID("id2")
	putStakes(t, store, map[domain.StakeKey]int64{
		{Unit: "T", Account: "alice", Ucac: id1}:  5,
		{Unit: "T2", Account: "alice", Ucac: id1}: 3,
		{Unit: "T", Account: "bob", Ucac: id1}:    2,
		{Unit: "T", Account: "bob", Ucac: id2}:    100,
	})

	total, err := store.TotalStaked(context.Background(), id1)
	if err != nil {
		t.Fatalf("total staked: %v", err)
	}
	if total.Cmp(big.NewInt(10)) != 0 {
		t.Fatalf("total = %s, want 10", total)
	}
	empty, err := store.TotalStaked(context.Background(), domain.MustParseUcacID("none"))
	if err != nil {
		t.Fatalf("total staked unknown: %v", err)
	}
	if empty.Sign() != 0 {
		t.Fatalf("total for unknown ucac = %s, want 0", empty)
	}
}

func TestStakeHoldsValuesBeyondInt64(t *testing.T) {
	t.Parallel()

	store := openBootstrappedStore(t)
	key := domain.StakeKey{Unit: "T", Account: "whale", Ucac: domain.MustParseUcacID("id1")}
	huge, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	err := store.WithinTx(context.Background(), func(tx storage.Tx) error {
		return tx.PutStake(context.Background(), key, huge)
	})
	if err != nil {
		t.Fatalf("put stake: %v", err)
	}
	got, err := store.Stake(context.Background(), key)
	if err != nil {
		t.Fatalf("read stake: %v", err)
	}
	if got.Cmp(huge) != 0 {
		t.Fatalf("stake = %s, want %s", got, huge)
	}
}

func TestPutStakeRejectsNegative(t *testing.T) {
	t.Parallel()

	store := openBootstrappedStore(t)
	key := domain.StakeKey{Unit: "T", Account: "alice", Ucac: domain.MustParseUcacID("id1")}
	err := store.WithinTx(context.Background(), func(tx storage.Tx) error {
		return tx.PutStake(context.Background(), key, big.NewInt(-1))
	})
	if err == nil {
		t.Fatal("expected negative stake error")
	}
}

func TestListStakesPagesAndFilters(t *testing.T) {
	t.Parallel()

	store := openBootstrappedStore(t)
	id1 := domain.MustParseUcacID("id1")
	putStakes(t, store, map[domain.StakeKey]int64{
		{Unit: "T", Account: "alice", Ucac: id1}:  1,
		{Unit: "T", Account: "bob", Ucac: id1}:    2,
		{Unit: "T", Account: "carol", Ucac: id1}:  3,
		{Unit: "T2", Account: "alice", Ucac: id1}: 4,
	})

	first, err := store.ListStakes(context.Background(), 3, "", filter.SQLCondition{})
	if err != nil {
		t.Fatalf("list first page: %v", err)
	}
	if len(first.Entries) != 3 || first.NextPageToken == "" {
		t.Fatalf("first page = %d entries, token %q", len(first.Entries), first.NextPageToken)
	}
	if first.Entries[0].Key.Account != "alice" || first.Entries[2].Key.Account != "carol" {
		t.Fatalf("first page order = %+v", first.Entries)
	}
	second, err := store.ListStakes(context.Background(), 3, first.NextPageToken, filter.SQLCondition{})
	if err != nil {
		t.Fatalf("list second page: %v", err)
	}
	if len(second.Entries) != 1 || second.NextPageToken != "" {
		t.Fatalf("second page = %d entries, token %q", len(second.Entries), second.NextPageToken)
	}
	if second.Entries[0].Key.Unit != "T2" || second.Entries[0].Amount.Int64() != 4 {
		t.Fatalf("second page entry = %+v", second.Entries[0])
	}

	cond, err := filter.ParseStakeFilter(`account = "alice"`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	filtered, err := store.ListStakes(context.Background(), 10, "", cond)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered.Entries) != 2 {
		t.Fatalf("filtered entries = %d, want 2", len(filtered.Entries))
	}

	if _, err := store.ListStakes(context.Background(), 10, "not-json", filter.SQLCondition{}); !errors.Is(err, storage.ErrInvalidPageToken) {
		t.Fatalf("bad token error = %v, want %v", err, storage.ErrInvalidPageToken)
	}
}

func TestListJournalPagesInAppendOrder(t *testing.T) {
	t.Parallel()

	recorded := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	store := openBootstrappedStore(t)
	id1 := domain.MustParseUcacID("id1")
	entries := []storage.JournalEntry{
		{ID: "j1", Kind: domain.KindParentChanged, Actor: "root", Account: "parent", RecordedAt: recorded},
		{ID: "j2", Kind: domain.KindTokenSet, Actor: "root", Unit: "T", RecordedAt: recorded},
		{ID: "j3", Kind: domain.KindStakeAdded, Actor: "parent", Unit: "T", Account: "alice", Ucac: id1, Amount: big.NewInt(10), RecordedAt: recorded},
	}
	for _, entry := range entries {
		err := store.WithinTx(context.Background(), func(tx storage.Tx) error {
			return tx.AppendJournal(context.Background(), entry)
		})
		if err != nil {
			t.Fatalf("append %s: %v", entry.ID, err)
		}
	}

	first, err := store.ListJournal(context.Background(), 2, "")
	if err != nil {
		t.Fatalf("list journal: %v", err)
	}
	if len(first.Entries) != 2 || first.Entries[0].ID != "j1" || first.Entries[1].ID != "j2" {
		t.Fatalf("first journal page = %+v", first.Entries)
	}
	if first.Entries[1].Amount != nil || !first.Entries[1].Ucac.IsZero() {
		t.Fatalf("token entry carries stake fields: %+v", first.Entries[1])
	}
	second, err := store.ListJournal(context.Background(), 2, first.NextPageToken)
	if err != nil {
		t.Fatalf("list journal page 2: %v", err)
	}
	if len(second.Entries) != 1 || second.NextPageToken != "" {
		t.Fatalf("second journal page = %+v", second)
	}
	last := second.Entries[0]
	if last.Kind != domain.KindStakeAdded || last.Ucac != id1 || last.Amount.Int64() != 10 {
		t.Fatalf("stake journal entry = %+v", last)
	}
	if !last.RecordedAt.Equal(recorded) {
		t.Fatalf("recorded_at = %v, want %v", last.RecordedAt, recorded)
	}

	if _, err := store.ListJournal(context.Background(), 2, "abc"); !errors.Is(err, storage.ErrInvalidPageToken) {
		t.Fatalf("bad token error = %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	store := openBootstrappedStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Settings(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("settings error = %v, want context.Canceled", err)
	}
	if err := store.WithinTx(ctx, func(storage.Tx) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Fatalf("WithinTx error = %v, want context.Canceled", err)
	}
}

func putStakes(t *testing.T, store *Store, values map[domain.StakeKey]int64) {
	t.Helper()

	err := store.WithinTx(context.Background(), func(tx storage.Tx) error {
		for key, value := range values {
			if err := tx.PutStake(context.Background(), key, big.NewInt(value)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("put stakes: %v", err)
	}
}

func openBootstrappedStore(t *testing.T) *Store {
	t.Helper()

	store := openTempStore(t)
	if _, err := store.Bootstrap(context.Background(), "root"); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	return store
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "stake.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
