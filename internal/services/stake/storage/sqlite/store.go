// Package sqlite provides a SQLite-backed stake ledger storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/stakeledger/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage/filter"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists ledger state in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for updated_at and recorded_at stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite ledger store and applies embedded migrations.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	store := &Store{sqlDB: sqlDB, now: time.Now}
	for _, opt := range opts {
		opt(store)
	}
	return store, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// Bootstrap creates the settings row on first use.
func (s *Store) Bootstrap(ctx context.Context, admin1 domain.Identity) (storage.Settings, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Settings{}, err
	}
	if admin1.IsZero() {
		return storage.Settings{}, domain.ErrInvalidArgument("admin1", "admin1 is required")
	}

	var settings storage.Settings
	err := s.withinTx(ctx, func(tx *txStore) error {
		current, err := tx.Settings(ctx)
		switch {
		case errors.Is(err, storage.ErrNotBootstrapped):
			now := toMillis(s.now())
			if _, err := tx.q.ExecContext(ctx,
				`INSERT INTO ledger_settings (id, admin1, created_at, updated_at) VALUES (1, ?, ?, ?)`,
				string(admin1), now, now,
			); err != nil {
				return fmt.Errorf("insert settings: %w", err)
			}
			settings, err = tx.Settings(ctx)
			return err
		case err != nil:
			return err
		}
		if current.Roles.Admin1 != admin1 {
			return domain.ErrAdmin1Mismatch(current.Roles.Admin1, admin1)
		}
		settings = current
		return nil
	})
	if err != nil {
		return storage.Settings{}, err
	}
	return settings, nil
}

// WithinTx runs fn inside one SQLite transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	return s.withinTx(ctx, func(tx *txStore) error { return fn(tx) })
}

func (s *Store) withinTx(ctx context.Context, fn func(tx *txStore) error) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	sqlTx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer sqlTx.Rollback()

	if err := fn(&txStore{q: sqlTx, now: s.now}); err != nil {
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Settings returns the settings row.
func (s *Store) Settings(ctx context.Context) (storage.Settings, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Settings{}, err
	}
	return readSettings(ctx, s.sqlDB)
}

// Ucac returns the registry record, zero-valued when unset.
func (s *Store) Ucac(ctx context.Context, id domain.UcacID) (domain.UcacRecord, error) {
	if err := s.ready(ctx); err != nil {
		return domain.UcacRecord{}, err
	}
	return readUcac(ctx, s.sqlDB, id)
}

// Stake returns the entry amount, zero for unknown keys.
func (s *Store) Stake(ctx context.Context, key domain.StakeKey) (*big.Int, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return readStake(ctx, s.sqlDB, key)
}

// TotalStaked sums every epoch's entries for one UCAC.
func (s *Store) TotalStaked(ctx context.Context, id domain.UcacID) (*big.Int, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT amount FROM stakes WHERE ucac_id = ?`, id.String())
	if err != nil {
		return nil, fmt.Errorf("total staked: %w", err)
	}
	defer rows.Close()

	total := new(big.Int)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("total staked: %w", err)
		}
		amount, err := parseStoredAmount(raw)
		if err != nil {
			return nil, err
		}
		total.Add(total, amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("total staked: %w", err)
	}
	return total, nil
}

type stakeCursor struct {
	Unit    string `json:"u"`
	Account string `json:"a"`
	Ucac    string `json:"c"`
}

// ListStakes returns one page of entries ordered by (unit, account, ucac).
func (s *Store) ListStakes(ctx context.Context, pageSize int, pageToken string, cond filter.SQLCondition) (storage.StakeEntryPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.StakeEntryPage{}, err
	}
	if pageSize <= 0 {
		return storage.StakeEntryPage{}, fmt.Errorf("page size must be greater than zero")
	}

	var (
		clauses []string
		params  []any
	)
	if !cond.IsEmpty() {
		clauses = append(clauses, cond.Clause)
		params = append(params, cond.Params...)
	}
	if pageToken = strings.TrimSpace(pageToken); pageToken != "" {
		var cursor stakeCursor
		if err := json.Unmarshal([]byte(pageToken), &cursor); err != nil {
			return storage.StakeEntryPage{}, fmt.Errorf("%w: %v", storage.ErrInvalidPageToken, err)
		}
		clauses = append(clauses, "(unit_address, account, ucac_id) > (?, ?, ?)")
		params = append(params, cursor.Unit, cursor.Account, cursor.Ucac)
	}

	query := `SELECT unit_address, account, ucac_id, amount, updated_at FROM stakes`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY unit_address ASC, account ASC, ucac_id ASC LIMIT ?"
	params = append(params, pageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, query, params...)
	if err != nil {
		return storage.StakeEntryPage{}, fmt.Errorf("list stakes: %w", err)
	}
	defer rows.Close()

	page := storage.StakeEntryPage{Entries: make([]storage.StakeEntry, 0, pageSize)}
	for rows.Next() {
		var (
			unit, account, ucac, amount string
			updatedAt                   int64
		)
		if err := rows.Scan(&unit, &account, &ucac, &amount, &updatedAt); err != nil {
			return storage.StakeEntryPage{}, fmt.Errorf("list stakes: %w", err)
		}
		id, err := domain.ParseUcacID(ucac)
		if err != nil {
			return storage.StakeEntryPage{}, fmt.Errorf("list stakes: stored ucac id: %w", err)
		}
		value, err := parseStoredAmount(amount)
		if err != nil {
			return storage.StakeEntryPage{}, err
		}
		page.Entries = append(page.Entries, storage.StakeEntry{
			Key: domain.StakeKey{
				Unit:    domain.Address(unit),
				Account: domain.Identity(account),
				Ucac:    id,
			},
			Amount:    value,
			UpdatedAt: fromMillis(updatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return storage.StakeEntryPage{}, fmt.Errorf("list stakes: %w", err)
	}
	if len(page.Entries) > pageSize {
		last := page.Entries[pageSize-1].Key
		token, err := json.Marshal(stakeCursor{Unit: string(last.Unit), Account: string(last.Account), Ucac: last.Ucac.String()})
		if err != nil {
			return storage.StakeEntryPage{}, fmt.Errorf("encode cursor: %w", err)
		}
		page.NextPageToken = string(token)
		page.Entries = page.Entries[:pageSize]
	}
	return page, nil
}

// ListJournal returns one page of journal entries in append order.
func (s *Store) ListJournal(ctx context.Context, pageSize int, pageToken string) (storage.JournalPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.JournalPage{}, err
	}
	if pageSize <= 0 {
		return storage.JournalPage{}, fmt.Errorf("page size must be greater than zero")
	}
	var after int64
	if pageToken = strings.TrimSpace(pageToken); pageToken != "" {
		parsed, err := strconv.ParseInt(pageToken, 10, 64)
		if err != nil || parsed < 0 {
			return storage.JournalPage{}, fmt.Errorf("%w: %q", storage.ErrInvalidPageToken, pageToken)
		}
		after = parsed
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT seq, id, kind, actor, unit_address, account, ucac_id, amount, detail, recorded_at
		   FROM journal
		  WHERE seq > ?
		  ORDER BY seq ASC
		  LIMIT ?`,
		after,
		pageSize+1,
	)
	if err != nil {
		return storage.JournalPage{}, fmt.Errorf("list journal: %w", err)
	}
	defer rows.Close()

	page := storage.JournalPage{Entries: make([]storage.JournalEntry, 0, pageSize)}
	for rows.Next() {
		var (
			entry                      storage.JournalEntry
			kind, actor, unit, account string
			ucac, amount               string
			recordedAt                 int64
		)
		if err := rows.Scan(&entry.Seq, &entry.ID, &kind, &actor, &unit, &account, &ucac, &amount, &entry.Detail, &recordedAt); err != nil {
			return storage.JournalPage{}, fmt.Errorf("list journal: %w", err)
		}
		entry.Kind = domain.JournalKind(kind)
		entry.Actor = domain.Identity(actor)
		entry.Unit = domain.Address(unit)
		entry.Account = domain.Identity(account)
		if ucac != "" {
			id, err := domain.ParseUcacID(ucac)
			if err != nil {
				return storage.JournalPage{}, fmt.Errorf("list journal: stored ucac id: %w", err)
			}
			entry.Ucac = id
		}
		if amount != "" {
			value, err := parseStoredAmount(amount)
			if err != nil {
				return storage.JournalPage{}, err
			}
			entry.Amount = value
		}
		entry.RecordedAt = fromMillis(recordedAt)
		page.Entries = append(page.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return storage.JournalPage{}, fmt.Errorf("list journal: %w", err)
	}
	if len(page.Entries) > pageSize {
		page.NextPageToken = strconv.FormatInt(page.Entries[pageSize-1].Seq, 10)
		page.Entries = page.Entries[:pageSize]
	}
	return page, nil
}

// txStore implements storage.Tx over one open transaction.
type txStore struct {
	q   querier
	now func() time.Time
}

func (t *txStore) Settings(ctx context.Context) (storage.Settings, error) {
	return readSettings(ctx, t.q)
}

func (t *txStore) PutSettings(ctx context.Context, settings storage.Settings) error {
	result, err := t.q.ExecContext(ctx,
		`UPDATE ledger_settings
		    SET admin2 = ?, parent = ?, current_unit = ?, updated_at = ?
		  WHERE id = 1 AND admin1 = ?`,
		string(settings.Roles.Admin2),
		string(settings.Roles.Parent),
		string(settings.CurrentUnit),
		toMillis(t.now()),
		string(settings.Roles.Admin1),
	)
	if err != nil {
		return fmt.Errorf("put settings: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("put settings: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotBootstrapped
	}
	return nil
}

func (t *txStore) Ucac(ctx context.Context, id domain.UcacID) (domain.UcacRecord, error) {
	return readUcac(ctx, t.q, id)
}

func (t *txStore) PutUcac(ctx context.Context, record domain.UcacRecord) error {
	_, err := t.q.ExecContext(ctx,
		`INSERT INTO ucacs (ucac_id, address, owner1, owner2, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (ucac_id) DO UPDATE SET
		   address = excluded.address,
		   owner1 = excluded.owner1,
		   owner2 = excluded.owner2,
		   updated_at = excluded.updated_at`,
		record.ID.String(),
		string(record.Address),
		string(record.Owner1),
		string(record.Owner2),
		toMillis(t.now()),
	)
	if err != nil {
		return fmt.Errorf("put ucac: %w", err)
	}
	return nil
}

func (t *txStore) Stake(ctx context.Context, key domain.StakeKey) (*big.Int, error) {
	return readStake(ctx, t.q, key)
}

func (t *txStore) PutStake(ctx context.Context, key domain.StakeKey, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return fmt.Errorf("put stake: amount must be non-negative")
	}
	_, err := t.q.ExecContext(ctx,
		`INSERT INTO stakes (unit_address, account, ucac_id, amount, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (unit_address, account, ucac_id) DO UPDATE SET
		   amount = excluded.amount,
		   updated_at = excluded.updated_at`,
		string(key.Unit),
		string(key.Account),
		key.Ucac.String(),
		amount.String(),
		toMillis(t.now()),
	)
	if err != nil {
		return fmt.Errorf("put stake: %w", err)
	}
	return nil
}

func (t *txStore) AppendJournal(ctx context.Context, entry storage.JournalEntry) error {
	if strings.TrimSpace(entry.ID) == "" {
		return fmt.Errorf("journal id is required")
	}
	if entry.Kind == "" {
		return fmt.Errorf("journal kind is required")
	}
	var ucac, amount string
	if !entry.Ucac.IsZero() {
		ucac = entry.Ucac.String()
	}
	if entry.Amount != nil {
		amount = entry.Amount.String()
	}
	recordedAt := entry.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = t.now()
	}
	_, err := t.q.ExecContext(ctx,
		`INSERT INTO journal (id, kind, actor, unit_address, account, ucac_id, amount, detail, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		string(entry.Kind),
		string(entry.Actor),
		string(entry.Unit),
		string(entry.Account),
		ucac,
		amount,
		entry.Detail,
		toMillis(recordedAt),
	)
	if err != nil {
		return fmt.Errorf("append journal: %w", err)
	}
	return nil
}

func readSettings(ctx context.Context, q querier) (storage.Settings, error) {
	row := q.QueryRowContext(ctx,
		`SELECT admin1, admin2, parent, current_unit, updated_at FROM ledger_settings WHERE id = 1`,
	)
	var (
		admin1, admin2, parent, unit string
		updatedAt                    int64
	)
	if err := row.Scan(&admin1, &admin2, &parent, &unit, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Settings{}, storage.ErrNotBootstrapped
		}
		return storage.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return storage.Settings{
		Roles: domain.Roles{
			Admin1: domain.Identity(admin1),
			Admin2: domain.Identity(admin2),
			Parent: domain.Identity(parent),
		},
		CurrentUnit: domain.Address(unit),
		UpdatedAt:   fromMillis(updatedAt),
	}, nil
}

func readUcac(ctx context.Context, q querier, id domain.UcacID) (domain.UcacRecord, error) {
	record := domain.UcacRecord{ID: id}
	row := q.QueryRowContext(ctx,
		`SELECT address, owner1, owner2 FROM ucacs WHERE ucac_id = ?`,
		id.String(),
	)
	var address, owner1, owner2 string
	if err := row.Scan(&address, &owner1, &owner2); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return record, nil
		}
		return domain.UcacRecord{}, fmt.Errorf("get ucac: %w", err)
	}
	record.Address = domain.Address(address)
	record.Owner1 = domain.Identity(owner1)
	record.Owner2 = domain.Identity(owner2)
	return record, nil
}

func readStake(ctx context.Context, q querier, key domain.StakeKey) (*big.Int, error) {
	row := q.QueryRowContext(ctx,
		`SELECT amount FROM stakes WHERE unit_address = ? AND account = ? AND ucac_id = ?`,
		string(key.Unit),
		string(key.Account),
		key.Ucac.String(),
	)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return new(big.Int), nil
		}
		return nil, fmt.Errorf("get stake: %w", err)
	}
	return parseStoredAmount(raw)
}

func parseStoredAmount(raw string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("stored amount %q is not a base-10 integer", raw)
	}
	return amount, nil
}

var (
	_ storage.LedgerStore = (*Store)(nil)
	_ storage.Tx          = (*txStore)(nil)
)
