package server

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	stakev1 "github.com/louisbranch/stakeledger/api/stake/v1"
	apperrors "github.com/louisbranch/stakeledger/internal/platform/errors"
	platformgrpc "github.com/louisbranch/stakeledger/internal/platform/grpc"
	"github.com/louisbranch/stakeledger/internal/services/stake/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

func testIdentityConfig() auth.TokenConfig {
	return auth.TokenConfig{
		Issuer:   "stake-ledger",
		Audience: "stake-ledger",
		Key:      []byte("0123456789abcdef0123456789abcdef"),
	}
}

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Addr:        "127.0.0.1:0",
		MetricsAddr: "127.0.0.1:0",
		DBPath:      filepath.Join(t.TempDir(), "nested", "stake.db"),
		Admin1:      "admin1",
		Custody:     "stake-ledger",
		Units:       []string{"T", " ", "T-prime"},
		Identity:    testIdentityConfig(),
	}
}

func serve(t *testing.T, server *Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("serve: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})
}

func dial(t *testing.T, addr string, opts ...grpc.DialOption) *grpc.ClientConn {
	t.Helper()
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := platformgrpc.WaitForHealth(ctx, conn, stakev1.StakeLedgerService_ServiceDesc.ServiceName, nil); err != nil {
		t.Fatalf("wait for health: %v", err)
	}
	return conn
}

func TestServerServesLedgerWithIdentityTokens(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	server, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	serve(t, server)

	token, err := auth.IssueToken(cfg.Identity, "admin1", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	admin := stakev1.NewStakeLedgerServiceClient(dial(t, server.Addr(), platformgrpc.WithBearerToken(token)))
	anonymous := stakev1.NewStakeLedgerServiceClient(dial(t, server.Addr()))
	ctx := context.Background()

	resp, err := admin.SetToken(ctx, &stakev1.SetTokenRequest{Address: "T"})
	if err != nil {
		t.Fatalf("set token: %v", err)
	}
	if resp.GetAddress() != "T" {
		t.Fatalf("address = %q, want T", resp.GetAddress())
	}

	_, err = anonymous.SetToken(ctx, &stakev1.SetTokenRequest{Address: "T-prime"})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for anonymous caller, got %v", err)
	}

	current, err := anonymous.CurrentToken(ctx, &stakev1.CurrentTokenRequest{})
	if err != nil {
		t.Fatalf("current token: %v", err)
	}
	if current.GetAddress() != "T" {
		t.Fatalf("current token = %q, want T", current.GetAddress())
	}

	forged := stakev1.NewStakeLedgerServiceClient(dial(t, server.Addr(), platformgrpc.WithBearerToken("forged.token.value")))
	_, err = forged.GetRoles(ctx, &stakev1.GetRolesRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated for forged token, got %v", err)
	}

	httpResp, err := http.Get("http://" + server.MetricsAddr() + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer httpResp.Body.Close()
	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	for _, want := range []string{
		"stake_ledger_grpc_requests_total",
		`stake_ledger_ledger_operations_total{operation="set_token",outcome="ok"} 1`,
		`stake_ledger_unit_breaker_state{unit="T-prime"} 0`,
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("metrics missing %q", want)
		}
	}
}

func TestNewRequiresAdmin1(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Admin1 = " "
	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatal("expected error for missing admin1")
	}
}

func TestNewRejectsDifferentAdmin1OnReopen(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.MetricsAddr = ""
	first, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if first.MetricsAddr() != "" {
		t.Fatalf("expected metrics disabled, got %q", first.MetricsAddr())
	}
	first.Close()

	cfg.Admin1 = "someone-else"
	_, err = New(context.Background(), cfg)
	if !apperrors.HasCode(err, apperrors.CodeAdmin1Mismatch) {
		t.Fatalf("expected %s, got %v", apperrors.CodeAdmin1Mismatch, err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Identity = auth.TokenConfig{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
}
