package ledger

import (
	"context"
	"errors"
	"math/big"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	apperrors "github.com/louisbranch/stakeledger/internal/platform/errors"
	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage"
	"github.com/louisbranch/stakeledger/internal/services/stake/storage/sqlite"
	"github.com/louisbranch/stakeledger/internal/services/stake/unit"
)

const (
	admin1  domain.Identity = "admin1"
	admin2  domain.Identity = "admin2"
	parent  domain.Identity = "parent"
	p1      domain.Identity = "p1"
	p2      domain.Identity = "p2"
	custody domain.Identity = "stake-ledger"

	unitT      domain.Address = "T"
	unitTPrime domain.Address = "T-prime"
)

var (
	ucacID1 = domain.MustParseUcacID("id1")
	ucacID2 = domain.MustParseUcacID("id2")
)

// wei scales whole units by 10^18.
func wei(units int64) *big.Int {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	return new(big.Int).Mul(big.NewInt(units), scale)
}

type recordedOp struct {
	operation string
	outcome   string
}

type fakeRecorder struct {
	mu  sync.Mutex
	ops []recordedOp
}

func (r *fakeRecorder) ObserveOperation(operation, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, recordedOp{operation: operation, outcome: outcome})
}

type harness struct {
	ledger   *Ledger
	store    *sqlite.Store
	t        *unit.Memory
	tPrime   *unit.Memory
	recorder *fakeRecorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWrapping(t, nil)
}

// newHarnessWrapping lets a test decorate unit T before it is registered.
func newHarnessWrapping(t *testing.T, wrapT func(unit.Unit) unit.Unit) *harness {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "stake.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	h := &harness{
		store:    store,
		t:        unit.NewMemory(unitT),
		tPrime:   unit.NewMemory(unitTPrime),
		recorder: &fakeRecorder{},
	}
	var tUnit unit.Unit = h.t
	if wrapT != nil {
		tUnit = wrapT(h.t)
	}
	dir := unit.NewDirectory()
	if err := dir.Register(unitT, tUnit); err != nil {
		t.Fatalf("register T: %v", err)
	}
	if err := dir.Register(unitTPrime, unit.Guard(unitTPrime, h.tPrime, unit.BreakerConfig{})); err != nil {
		t.Fatalf("register T-prime: %v", err)
	}

	var seq int
	h.ledger, err = New(context.Background(), Config{
		Store:   store,
		Units:   dir,
		Admin1:  admin1,
		Custody: custody,
		Clock: func() time.Time {
			return time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
		},
		NewID: func() (string, error) {
			seq++
			return "j" + strconv.Itoa(seq), nil
		},
		Recorder: h.recorder,
	})
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}

	ctx := context.Background()
	if _, err := h.ledger.SetAdmin2(ctx, admin1, admin2); err != nil {
		t.Fatalf("set admin2: %v", err)
	}
	if _, err := h.ledger.ChangeParent(ctx, admin1, parent); err != nil {
		t.Fatalf("change parent: %v", err)
	}
	return h
}

func (h *harness) setToken(t *testing.T, address domain.Address) {
	t.Helper()
	if _, err := h.ledger.SetToken(context.Background(), admin1, address); err != nil {
		t.Fatalf("set token %s: %v", address, err)
	}
}

func (h *harness) fund(t *testing.T, m *unit.Memory, who domain.Identity, minted, approved *big.Int) {
	t.Helper()
	ctx := context.Background()
	if minted != nil {
		if _, err := m.Mint(ctx, who, minted); err != nil {
			t.Fatalf("mint %s: %v", who, err)
		}
	}
	if err := m.Approve(ctx, who, custody, approved); err != nil {
		t.Fatalf("approve %s: %v", who, err)
	}
}

func (h *harness) assertStaked(t *testing.T, u domain.Address, account domain.Identity, ucac domain.UcacID, want *big.Int) {
	t.Helper()
	got, err := h.ledger.StakedTokens(context.Background(), u, account, ucac)
	if err != nil {
		t.Fatalf("staked tokens: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("staked(%s, %s, %s) = %s, want %s", u, account, ucac.Text(), got, want)
	}
}

func (h *harness) assertTotal(t *testing.T, ucac domain.UcacID, want *big.Int) {
	t.Helper()
	got, err := h.ledger.TotalStakedTokens(context.Background(), ucac)
	if err != nil {
		t.Fatalf("total staked: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("total(%s) = %s, want %s", ucac.Text(), got, want)
	}
}

func assertBalance(t *testing.T, m *unit.Memory, who domain.Identity, want *big.Int) {
	t.Helper()
	got, err := m.BalanceOf(context.Background(), who)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("balance of %s in %s = %s, want %s", who, m.Address(), got, want)
	}
}

func assertCode(t *testing.T, err error, code apperrors.Code) {
	t.Helper()
	if !apperrors.HasCode(err, code) {
		t.Fatalf("error = %v, want code %s", err, code)
	}
}

func (h *harness) journalKinds(t *testing.T) []domain.JournalKind {
	t.Helper()
	page, err := h.ledger.ListJournal(context.Background(), 100, "")
	if err != nil {
		t.Fatalf("list journal: %v", err)
	}
	kinds := make([]domain.JournalKind, 0, len(page.Entries))
	for _, entry := range page.Entries {
		kinds = append(kinds, entry.Kind)
	}
	return kinds
}

func TestNewRequiresDependencies(t *testing.T) {
	t.Parallel()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "stake.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "store", cfg: Config{Units: unit.NewDirectory(), Admin1: admin1, Custody: custody}},
		{name: "units", cfg: Config{Store: store, Admin1: admin1, Custody: custody}},
		{name: "custody", cfg: Config{Store: store, Units: unit.NewDirectory(), Admin1: admin1}},
		{name: "admin1", cfg: Config{Store: store, Units: unit.NewDirectory(), Custody: custody}},
	}
	for _, tc := range tests {
		if _, err := New(context.Background(), tc.cfg); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestNewRejectsDifferentAdmin1(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	_, err := New(context.Background(), Config{
		Store:   h.store,
		Units:   unit.NewDirectory(),
		Admin1:  "someone-else",
		Custody: custody,
	})
	assertCode(t, err, apperrors.CodeAdmin1Mismatch)
}

func TestRoleAdministration(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()

	roles, err := h.ledger.Roles(ctx)
	if err != nil {
		t.Fatalf("roles: %v", err)
	}
	want := domain.Roles{Admin1: admin1, Admin2: admin2, Parent: parent}
	if roles != want {
		t.Fatalf("roles = %+v, want %+v", roles, want)
	}

	for _, caller := range []domain.Identity{admin2, parent, p1, ""} {
		_, err := h.ledger.SetAdmin2(ctx, caller, p1)
		assertCode(t, err, apperrors.CodeUnauthorized)
		_, err = h.ledger.ChangeParent(ctx, caller, p1)
		assertCode(t, err, apperrors.CodeUnauthorized)
		_, err = h.ledger.SetToken(ctx, caller, unitT)
		assertCode(t, err, apperrors.CodeUnauthorized)
	}
	roles, err = h.ledger.Roles(ctx)
	if err != nil {
		t.Fatalf("roles: %v", err)
	}
	if roles != want {
		t.Fatalf("roles changed by rejected calls: %+v", roles)
	}

	roles, err = h.ledger.ChangeParent(ctx, admin1, p2)
	if err != nil {
		t.Fatalf("change parent: %v", err)
	}
	if roles.Parent != p2 {
		t.Fatalf("parent = %q, want %q", roles.Parent, p2)
	}
	if _, err := h.ledger.SetUcacAddr(ctx, parent, ucacID1, unitT); err == nil {
		t.Fatal("expected replaced parent to lose authority")
	}
	if _, err := h.ledger.SetUcacAddr(ctx, p2, ucacID1, unitT); err != nil {
		t.Fatalf("new parent set ucac addr: %v", err)
	}
}

func TestSetTokenAndCurrentToken(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()

	current, err := h.ledger.CurrentToken(ctx)
	if err != nil {
		t.Fatalf("current token: %v", err)
	}
	if current != "" {
		t.Fatalf("initial token = %q, want empty", current)
	}
	_, err = h.ledger.SetToken(ctx, admin1, "")
	assertCode(t, err, apperrors.CodeInvalidArgument)

	h.setToken(t, unitT)
	h.setToken(t, unitTPrime)
	current, err = h.ledger.CurrentToken(ctx)
	if err != nil {
		t.Fatalf("current token: %v", err)
	}
	if current != unitTPrime {
		t.Fatalf("current token = %q, want %q", current, unitTPrime)
	}
}

func TestUcacInfoSetAndReset(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setToken(t, unitT)

	_, err := h.ledger.SetUcacAddr(ctx, admin1, ucacID1, unitT)
	assertCode(t, err, apperrors.CodeUnauthorized)
	record, err := h.ledger.Ucac(ctx, ucacID1)
	if err != nil {
		t.Fatalf("ucac: %v", err)
	}
	if record != (domain.UcacRecord{ID: ucacID1}) {
		t.Fatalf("ucac after rejected write = %+v", record)
	}

	if _, err := h.ledger.SetUcacAddr(ctx, parent, ucacID1, unitT); err != nil {
		t.Fatalf("set ucac addr: %v", err)
	}
	if _, err := h.ledger.SetOwner1(ctx, parent, ucacID1, admin1); err != nil {
		t.Fatalf("set owner1: %v", err)
	}
	if _, err := h.ledger.SetOwner2(ctx, parent, ucacID1, admin1); err != nil {
		t.Fatalf("set owner2: %v", err)
	}
	addr, err := h.ledger.UcacAddr(ctx, ucacID1)
	if err != nil || addr != unitT {
		t.Fatalf("ucac addr = %q, %v", addr, err)
	}
	assertOwner(t, h, unitT, ucacID1, admin1, true)
	assertOwner(t, h, unitT, ucacID1, admin2, false)

	if _, err := h.ledger.SetUcacAddr(ctx, parent, ucacID2, "3"); err != nil {
		t.Fatalf("set ucac addr: %v", err)
	}
	if _, err := h.ledger.SetOwner1(ctx, parent, ucacID2, admin1); err != nil {
		t.Fatalf("set owner1: %v", err)
	}
	record, err = h.ledger.SetOwner2(ctx, parent, ucacID2, admin2)
	if err != nil {
		t.Fatalf("set owner2: %v", err)
	}
	want := domain.UcacRecord{ID: ucacID2, Address: "3", Owner1: admin1, Owner2: admin2}
	if record != want {
		t.Fatalf("ucac2 = %+v, want %+v", record, want)
	}
	owner1, err := h.ledger.Owner1(ctx, ucacID2)
	if err != nil || owner1 != admin1 {
		t.Fatalf("owner1 = %q, %v", owner1, err)
	}
	owner2, err := h.ledger.Owner2(ctx, ucacID2)
	if err != nil || owner2 != admin2 {
		t.Fatalf("owner2 = %q, %v", owner2, err)
	}
	assertOwner(t, h, unitT, ucacID2, admin1, true)
	assertOwner(t, h, unitT, ucacID2, parent, false)

	if _, err := h.ledger.SetUcacAddr(ctx, parent, ucacID2, unitTPrime); err != nil {
		t.Fatalf("reset ucac addr: %v", err)
	}
	record, err = h.ledger.Ucac(ctx, ucacID2)
	if err != nil {
		t.Fatalf("ucac: %v", err)
	}
	if record.Address != unitTPrime || record.Owner1 != admin1 || record.Owner2 != admin2 {
		t.Fatalf("reset touched other fields: %+v", record)
	}
}

func TestIsUcacOwnerIsExact(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	if _, err := h.ledger.SetOwner1(ctx, parent, ucacID1, p1); err != nil {
		t.Fatalf("set owner1: %v", err)
	}

	assertOwner(t, h, unitT, ucacID1, p1, true)
	assertOwner(t, h, "ignored", ucacID1, p1, true)
	for _, who := range []domain.Identity{admin1, admin2, parent, p2, ""} {
		assertOwner(t, h, unitT, ucacID1, who, false)
	}
	assertOwner(t, h, unitT, domain.MustParseUcacID("unknown"), "", false)
}

func assertOwner(t *testing.T, h *harness, u domain.Address, ucac domain.UcacID, who domain.Identity, want bool) {
	t.Helper()
	got, err := h.ledger.IsUcacOwner(context.Background(), u, ucac, who)
	if err != nil {
		t.Fatalf("is owner: %v", err)
	}
	if got != want {
		t.Fatalf("IsUcacOwner(%s, %q) = %v, want %v", ucac.Text(), who, got, want)
	}
}

func TestStakeAndUnstakeAcrossTokenSwitch(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setToken(t, unitT)
	h.fund(t, h.t, admin1, wei(1000), wei(10))
	h.fund(t, h.t, admin2, wei(2000), big.NewInt(0))

	if _, err := h.ledger.StakeTokens(ctx, parent, ucacID1, admin1, wei(10)); err != nil {
		t.Fatalf("stake: %v", err)
	}
	h.assertStaked(t, unitT, admin1, ucacID1, wei(10))

	if _, err := h.ledger.UnstakeTokens(ctx, admin1, unitT, ucacID1, wei(5)); err != nil {
		t.Fatalf("unstake: %v", err)
	}
	h.assertStaked(t, unitT, admin1, ucacID1, wei(5))

	h.fund(t, h.tPrime, admin1, wei(6), wei(6))
	if _, err := h.tPrime.Mint(ctx, admin2, wei(2)); err != nil {
		t.Fatalf("mint: %v", err)
	}
	h.setToken(t, unitTPrime)

	if _, err := h.ledger.StakeTokens(ctx, parent, ucacID1, admin1, wei(3)); err != nil {
		t.Fatalf("stake under T-prime: %v", err)
	}
	h.assertStaked(t, unitTPrime, admin1, ucacID1, wei(3))
	h.assertStaked(t, unitT, admin1, ucacID1, wei(5))

	if _, err := h.ledger.UnstakeTokens(ctx, admin1, unitT, ucacID1, wei(5)); err != nil {
		t.Fatalf("unstake old epoch: %v", err)
	}
	h.assertStaked(t, unitT, admin1, ucacID1, big.NewInt(0))

	if _, err := h.ledger.UnstakeTokens(ctx, admin1, unitTPrime, ucacID1, wei(2)); err != nil {
		t.Fatalf("unstake current epoch: %v", err)
	}
	h.assertStaked(t, unitTPrime, admin1, ucacID1, wei(1))

	if _, err := h.ledger.StakeTokens(ctx, parent, ucacID2, admin1, wei(3)); err != nil {
		t.Fatalf("stake ucac2: %v", err)
	}
	h.assertStaked(t, unitTPrime, admin1, ucacID2, wei(3))

	assertBalance(t, h.tPrime, admin1, wei(2))
	assertBalance(t, h.t, admin1, wei(1000))
	assertBalance(t, h.t, custody, big.NewInt(0))
	assertBalance(t, h.tPrime, custody, wei(4))
}

func TestCrossEpochLiteralValues(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setToken(t, unitT)
	h.fund(t, h.t, p1, big.NewInt(100), big.NewInt(100))
	h.fund(t, h.tPrime, p1, big.NewInt(100), big.NewInt(100))

	steps := []struct {
		name      string
		run       func() error
		wantT     int64
		wantPrime int64
	}{
		{name: "stake 10 under T", run: func() error {
			_, err := h.ledger.StakeTokens(ctx, parent, ucacID1, p1, big.NewInt(10))
			return err
		}, wantT: 10},
		{name: "unstake 5 under T", run: func() error {
			_, err := h.ledger.UnstakeTokens(ctx, p1, unitT, ucacID1, big.NewInt(5))
			return err
		}, wantT: 5},
		{name: "switch to T-prime", run: func() error {
			_, err := h.ledger.SetToken(ctx, admin1, unitTPrime)
			return err
		}, wantT: 5},
		{name: "stake 3 under T-prime", run: func() error {
			_, err := h.ledger.StakeTokens(ctx, parent, ucacID1, p1, big.NewInt(3))
			return err
		}, wantT: 5, wantPrime: 3},
		{name: "unstake remaining 5 under T", run: func() error {
			_, err := h.ledger.UnstakeTokens(ctx, p1, unitT, ucacID1, big.NewInt(5))
			return err
		}, wantT: 0, wantPrime: 3},
		{name: "unstake 2 under T-prime", run: func() error {
			_, err := h.ledger.UnstakeTokens(ctx, p1, unitTPrime, ucacID1, big.NewInt(2))
			return err
		}, wantT: 0, wantPrime: 1},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		h.assertStaked(t, unitT, p1, ucacID1, big.NewInt(step.wantT))
		h.assertStaked(t, unitTPrime, p1, ucacID1, big.NewInt(step.wantPrime))
	}
	h.assertTotal(t, ucacID1, big.NewInt(1))
}

func TestMultipleAccountsStake(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setToken(t, unitT)
	h.fund(t, h.t, admin1, wei(1000), wei(10))
	h.fund(t, h.t, admin2, wei(2000), wei(10))

	_, err := h.ledger.StakeTokens(ctx, admin1, ucacID1, admin1, wei(10))
	assertCode(t, err, apperrors.CodeUnauthorized)
	if _, err := h.ledger.StakeTokens(ctx, parent, ucacID1, admin1, wei(10)); err != nil {
		t.Fatalf("stake admin1: %v", err)
	}
	h.assertStaked(t, unitT, admin1, ucacID1, wei(10))

	if _, err := h.ledger.StakeTokens(ctx, parent, ucacID1, admin2, wei(10)); err != nil {
		t.Fatalf("stake admin2: %v", err)
	}
	h.assertStaked(t, unitT, admin2, ucacID1, wei(10))
	h.assertTotal(t, ucacID1, wei(20))
	assertBalance(t, h.t, custody, wei(20))
}

func TestTotalStakedTokensForMultipleUcacs(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setToken(t, unitT)
	h.fund(t, h.t, admin1, wei(1000), wei(500))

	stake := func(ucac domain.UcacID, units int64) {
		t.Helper()
		if _, err := h.ledger.StakeTokens(ctx, parent, ucac, admin1, wei(units)); err != nil {
			t.Fatalf("stake %d to %s: %v", units, ucac.Text(), err)
		}
	}

	stake(ucacID1, 10)
	h.assertTotal(t, ucacID1, wei(10))
	stake(ucacID2, 3)
	h.assertTotal(t, ucacID2, wei(3))
	stake(ucacID2, 5)
	h.assertTotal(t, ucacID2, wei(8))

	if _, err := h.ledger.UnstakeTokens(ctx, admin1, unitT, ucacID2, wei(1)); err != nil {
		t.Fatalf("unstake: %v", err)
	}
	h.assertTotal(t, ucacID2, wei(7))
	h.assertTotal(t, ucacID1, wei(10))
}

func TestRoundTripRestoresBalance(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setToken(t, unitT)
	h.fund(t, h.t, p1, big.NewInt(50), big.NewInt(50))

	entry, err := h.ledger.StakeTokens(ctx, parent, ucacID1, p1, big.NewInt(42))
	if err != nil {
		t.Fatalf("stake: %v", err)
	}
	if entry.Key.Unit != unitT || entry.Amount.Int64() != 42 {
		t.Fatalf("stake entry = %+v", entry)
	}
	assertBalance(t, h.t, p1, big.NewInt(8))

	entry, err = h.ledger.UnstakeTokens(ctx, p1, unitT, ucacID1, big.NewInt(42))
	if err != nil {
		t.Fatalf("unstake: %v", err)
	}
	if entry.Amount.Sign() != 0 {
		t.Fatalf("entry after round trip = %s, want 0", entry.Amount)
	}
	h.assertStaked(t, unitT, p1, ucacID1, big.NewInt(0))
	assertBalance(t, h.t, p1, big.NewInt(50))
	assertBalance(t, h.t, custody, big.NewInt(0))
}

func TestStakeRejectionsLeaveNoTrace(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()

	_, err := h.ledger.StakeTokens(ctx, parent, ucacID1, p1, big.NewInt(1))
	assertCode(t, err, apperrors.CodeTokenNotSet)

	h.setToken(t, unitT)
	h.fund(t, h.t, p1, big.NewInt(10), big.NewInt(3))
	before := h.journalKinds(t)

	tests := []struct {
		name   string
		caller domain.Identity
		acct   domain.Identity
		amount *big.Int
		code   apperrors.Code
	}{
		{name: "non-parent", caller: p1, acct: p1, amount: big.NewInt(1), code: apperrors.CodeUnauthorized},
		{name: "admin1 is not parent", caller: admin1, acct: p1, amount: big.NewInt(1), code: apperrors.CodeUnauthorized},
		{name: "zero amount", caller: parent, acct: p1, amount: big.NewInt(0), code: apperrors.CodeInvalidAmount},
		{name: "negative amount", caller: parent, acct: p1, amount: big.NewInt(-2), code: apperrors.CodeInvalidAmount},
		{name: "missing account", caller: parent, acct: "", amount: big.NewInt(1), code: apperrors.CodeInvalidArgument},
		{name: "insufficient allowance", caller: parent, acct: p1, amount: big.NewInt(4), code: apperrors.CodeExternalCallFailure},
		{name: "insufficient balance", caller: parent, acct: p2, amount: big.NewInt(1), code: apperrors.CodeExternalCallFailure},
	}
	for _, tc := range tests {
		_, err := h.ledger.StakeTokens(ctx, tc.caller, ucacID1, tc.acct, tc.amount)
		if !apperrors.HasCode(err, tc.code) {
			t.Fatalf("%s: error = %v, want %s", tc.name, err, tc.code)
		}
	}

	h.assertStaked(t, unitT, p1, ucacID1, big.NewInt(0))
	h.assertTotal(t, ucacID1, big.NewInt(0))
	assertBalance(t, h.t, p1, big.NewInt(10))
	assertBalance(t, h.t, custody, big.NewInt(0))
	if got := h.journalKinds(t); len(got) != len(before) {
		t.Fatalf("journal grew on rejected calls: %v", got)
	}
}

func TestUnstakeRejections(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setToken(t, unitT)
	h.fund(t, h.t, p1, big.NewInt(10), big.NewInt(10))
	if _, err := h.ledger.StakeTokens(ctx, parent, ucacID1, p1, big.NewInt(4)); err != nil {
		t.Fatalf("stake: %v", err)
	}

	_, err := h.ledger.UnstakeTokens(ctx, p1, unitT, ucacID1, big.NewInt(5))
	assertCode(t, err, apperrors.CodeInsufficientStake)
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) || domainErr.Metadata["Staked"] != "4" || domainErr.Metadata["Requested"] != "5" {
		t.Fatalf("insufficient stake metadata = %+v", domainErr)
	}

	_, err = h.ledger.UnstakeTokens(ctx, p2, unitT, ucacID1, big.NewInt(1))
	assertCode(t, err, apperrors.CodeInsufficientStake)
	_, err = h.ledger.UnstakeTokens(ctx, "", unitT, ucacID1, big.NewInt(1))
	assertCode(t, err, apperrors.CodeUnauthorized)
	_, err = h.ledger.UnstakeTokens(ctx, p1, "", ucacID1, big.NewInt(1))
	assertCode(t, err, apperrors.CodeInvalidArgument)
	_, err = h.ledger.UnstakeTokens(ctx, p1, unitT, ucacID1, big.NewInt(0))
	assertCode(t, err, apperrors.CodeInvalidAmount)
	_, err = h.ledger.UnstakeTokens(ctx, p1, unitT, ucacID2, big.NewInt(1))
	assertCode(t, err, apperrors.CodeInsufficientStake)

	h.assertStaked(t, unitT, p1, ucacID1, big.NewInt(4))
	assertBalance(t, h.t, p1, big.NewInt(6))
}

func TestUnstakeRollsBackWhenPushFails(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setToken(t, unitT)
	h.fund(t, h.t, p1, big.NewInt(10), big.NewInt(10))
	if _, err := h.ledger.StakeTokens(ctx, parent, ucacID1, p1, big.NewInt(6)); err != nil {
		t.Fatalf("stake: %v", err)
	}

	// Drain custody out of band so the push transfer is rejected.
	if err := h.t.PushTransfer(ctx, custody, "elsewhere", big.NewInt(6)); err != nil {
		t.Fatalf("drain custody: %v", err)
	}
	_, err := h.ledger.UnstakeTokens(ctx, p1, unitT, ucacID1, big.NewInt(6))
	assertCode(t, err, apperrors.CodeExternalCallFailure)
	if !errors.Is(err, unit.ErrInsufficientBalance) {
		t.Fatalf("error chain = %v, want %v", err, unit.ErrInsufficientBalance)
	}
	h.assertStaked(t, unitT, p1, ucacID1, big.NewInt(6))
}

// cancelAfterTransfer cancels the caller's context once a transfer has
// gone through, the way a client disconnecting mid-call would.
type cancelAfterTransfer struct {
	unit.Unit
	cancel context.CancelFunc
}

func (c *cancelAfterTransfer) PullTransfer(ctx context.Context, from, to domain.Identity, amount *big.Int) error {
	err := c.Unit.PullTransfer(ctx, from, to, amount)
	if c.cancel != nil {
		c.cancel()
	}
	return err
}

func (c *cancelAfterTransfer) PushTransfer(ctx context.Context, from, to domain.Identity, amount *big.Int) error {
	err := c.Unit.PushTransfer(ctx, from, to, amount)
	if c.cancel != nil {
		c.cancel()
	}
	return err
}

func TestCancellationAfterTransferStillCommits(t *testing.T) {
	t.Parallel()

	canceller := &cancelAfterTransfer{}
	h := newHarnessWrapping(t, func(u unit.Unit) unit.Unit {
		canceller.Unit = u
		return canceller
	})
	h.setToken(t, unitT)
	h.fund(t, h.t, p1, big.NewInt(10), big.NewInt(10))
	h.fund(t, h.t, p2, big.NewInt(10), big.NewInt(10))

	ctx, cancel := context.WithCancel(context.Background())
	canceller.cancel = cancel
	if _, err := h.ledger.StakeTokens(ctx, parent, ucacID1, p1, big.NewInt(10)); err != nil {
		t.Fatalf("stake: %v", err)
	}
	if ctx.Err() == nil {
		t.Fatal("expected the caller context to be cancelled by the unit")
	}
	h.assertStaked(t, unitT, p1, ucacID1, big.NewInt(10))
	assertBalance(t, h.t, p1, big.NewInt(0))
	assertBalance(t, h.t, custody, big.NewInt(10))

	canceller.cancel = nil
	if _, err := h.ledger.StakeTokens(context.Background(), parent, ucacID1, p2, big.NewInt(10)); err != nil {
		t.Fatalf("stake p2: %v", err)
	}

	ctx, cancel = context.WithCancel(context.Background())
	canceller.cancel = cancel
	if _, err := h.ledger.UnstakeTokens(ctx, p1, unitT, ucacID1, big.NewInt(10)); err != nil {
		t.Fatalf("unstake: %v", err)
	}
	h.assertStaked(t, unitT, p1, ucacID1, big.NewInt(0))
	assertBalance(t, h.t, p1, big.NewInt(10))

	// The entry was debited, so the same stake cannot be withdrawn twice.
	canceller.cancel = nil
	_, err := h.ledger.UnstakeTokens(context.Background(), p1, unitT, ucacID1, big.NewInt(10))
	assertCode(t, err, apperrors.CodeInsufficientStake)
	assertBalance(t, h.t, p1, big.NewInt(10))
	assertBalance(t, h.t, custody, big.NewInt(10))
	h.assertStaked(t, unitT, p2, ucacID1, big.NewInt(10))
	h.assertTotal(t, ucacID1, big.NewInt(10))
	kinds := h.journalKinds(t)
	if got := kinds[len(kinds)-1]; got != domain.KindStakeRemoved {
		t.Fatalf("last journal kind = %s, want %s", got, domain.KindStakeRemoved)
	}
}

func TestCancelledCallerMovesNothing(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.setToken(t, unitT)
	h.fund(t, h.t, p1, big.NewInt(10), big.NewInt(10))
	before := h.journalKinds(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.ledger.StakeTokens(ctx, parent, ucacID1, p1, big.NewInt(5))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want %v", err, context.Canceled)
	}
	h.assertStaked(t, unitT, p1, ucacID1, big.NewInt(0))
	assertBalance(t, h.t, p1, big.NewInt(10))
	assertBalance(t, h.t, custody, big.NewInt(0))
	if got := h.journalKinds(t); len(got) != len(before) {
		t.Fatalf("journal grew on cancelled call: %v", got)
	}
}

func TestStakeUnderUnknownUnitFails(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setToken(t, "nowhere")

	_, err := h.ledger.StakeTokens(ctx, parent, ucacID1, p1, big.NewInt(1))
	assertCode(t, err, apperrors.CodeExternalCallFailure)
	if !errors.Is(err, unit.ErrUnknownUnit) {
		t.Fatalf("error chain = %v, want %v", err, unit.ErrUnknownUnit)
	}
	h.assertStaked(t, "nowhere", p1, ucacID1, big.NewInt(0))
}

func TestJournalRecordsCommittedMutations(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setToken(t, unitT)
	if _, err := h.ledger.SetUcacAddr(ctx, parent, ucacID1, unitT); err != nil {
		t.Fatalf("set ucac addr: %v", err)
	}
	if _, err := h.ledger.SetOwner1(ctx, parent, ucacID1, p1); err != nil {
		t.Fatalf("set owner1: %v", err)
	}
	if _, err := h.ledger.SetOwner2(ctx, parent, ucacID1, p2); err != nil {
		t.Fatalf("set owner2: %v", err)
	}
	h.fund(t, h.t, p1, big.NewInt(5), big.NewInt(5))
	if _, err := h.ledger.StakeTokens(ctx, parent, ucacID1, p1, big.NewInt(5)); err != nil {
		t.Fatalf("stake: %v", err)
	}
	if _, err := h.ledger.UnstakeTokens(ctx, p1, unitT, ucacID1, big.NewInt(2)); err != nil {
		t.Fatalf("unstake: %v", err)
	}

	want := []domain.JournalKind{
		domain.KindAdmin2Set,
		domain.KindParentChanged,
		domain.KindTokenSet,
		domain.KindUcacAddressSet,
		domain.KindUcacOwner1Set,
		domain.KindUcacOwner2Set,
		domain.KindStakeAdded,
		domain.KindStakeRemoved,
	}
	got := h.journalKinds(t)
	if len(got) != len(want) {
		t.Fatalf("journal kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("journal[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	page, err := h.ledger.ListJournal(ctx, 100, "")
	if err != nil {
		t.Fatalf("list journal: %v", err)
	}
	last := page.Entries[len(page.Entries)-1]
	if last.Actor != p1 || last.Unit != unitT || last.Ucac != ucacID1 || last.Amount.Int64() != 2 {
		t.Fatalf("unstake journal entry = %+v", last)
	}
	if last.ID != "j8" {
		t.Fatalf("journal id = %q, want j8", last.ID)
	}
}

func TestListStakesValidatesInput(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setToken(t, unitT)
	h.fund(t, h.t, p1, big.NewInt(5), big.NewInt(5))
	h.fund(t, h.t, p2, big.NewInt(5), big.NewInt(5))
	for _, who := range []domain.Identity{p1, p2} {
		if _, err := h.ledger.StakeTokens(ctx, parent, ucacID1, who, big.NewInt(2)); err != nil {
			t.Fatalf("stake %s: %v", who, err)
		}
	}

	page, err := h.ledger.ListStakes(ctx, 10, "", `account = "p2"`)
	if err != nil {
		t.Fatalf("list stakes: %v", err)
	}
	if len(page.Entries) != 1 || page.Entries[0].Key.Account != p2 {
		t.Fatalf("filtered page = %+v", page.Entries)
	}

	_, err = h.ledger.ListStakes(ctx, 10, "", `owner = "p2"`)
	assertCode(t, err, apperrors.CodeInvalidArgument)
	_, err = h.ledger.ListStakes(ctx, 10, "{", "")
	assertCode(t, err, apperrors.CodeInvalidArgument)
	_, err = h.ledger.ListJournal(ctx, 10, "x")
	assertCode(t, err, apperrors.CodeInvalidArgument)
}

func TestRecorderObservesOutcomes(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	_, _ = h.ledger.SetToken(context.Background(), p1, unitT)
	h.setToken(t, unitT)

	h.recorder.mu.Lock()
	defer h.recorder.mu.Unlock()
	n := len(h.recorder.ops)
	if n < 2 {
		t.Fatalf("recorded ops = %v", h.recorder.ops)
	}
	if got := h.recorder.ops[n-2]; got != (recordedOp{operation: "set_token", outcome: string(apperrors.CodeUnauthorized)}) {
		t.Fatalf("rejected op = %+v", got)
	}
	if got := h.recorder.ops[n-1]; got != (recordedOp{operation: "set_token", outcome: "ok"}) {
		t.Fatalf("accepted op = %+v", got)
	}
}

func TestConcurrentStakesSerialize(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.setToken(t, unitT)
	h.fund(t, h.t, p1, big.NewInt(100), big.NewInt(100))

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.ledger.StakeTokens(ctx, parent, ucacID1, p1, big.NewInt(5))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent stake: %v", err)
		}
	}
	h.assertStaked(t, unitT, p1, ucacID1, big.NewInt(100))
	assertBalance(t, h.t, p1, big.NewInt(0))
	assertBalance(t, h.t, custody, big.NewInt(100))
}

var _ storage.LedgerStore = (*sqlite.Store)(nil)
