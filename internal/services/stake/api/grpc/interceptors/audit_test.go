package interceptors

import (
	"context"
	"fmt"
	"strings"
	"testing"

	stakev1 "github.com/louisbranch/stakeledger/api/stake/v1"
	"github.com/louisbranch/stakeledger/internal/platform/requestctx"
	grpcmeta "github.com/louisbranch/stakeledger/internal/services/stake/api/grpc/metadata"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassifyMethodKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		want   string
	}{
		{stakev1.StakeLedgerService_StakeTokens_FullMethodName, "write"},
		{stakev1.StakeLedgerService_UnstakeTokens_FullMethodName, "write"},
		{stakev1.StakeLedgerService_SetToken_FullMethodName, "write"},
		{stakev1.UnitService_Mint_FullMethodName, "write"},
		{stakev1.StakeLedgerService_StakedTokens_FullMethodName, "read"},
		{stakev1.StakeLedgerService_ListJournal_FullMethodName, "read"},
		{stakev1.UnitService_BalanceOf_FullMethodName, "read"},
		{"/grpc.health.v1.Health/Check", "read"},
	}
	for _, tc := range tests {
		if got := ClassifyMethodKind(tc.method); got != tc.want {
			t.Fatalf("ClassifyMethodKind(%s) = %s, want %s", tc.method, got, tc.want)
		}
	}
}

func TestAuditInterceptorLogsCall(t *testing.T) {
	t.Parallel()

	var lines []string
	logf := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	ctx := requestctx.WithCaller(grpcmeta.WithRequestID(context.Background(), "req-9"), "parent")
	info := &grpc.UnaryServerInfo{FullMethod: stakev1.StakeLedgerService_StakeTokens_FullMethodName}
	wantErr := status.Error(codes.PermissionDenied, "nope")
	resp, err := AuditInterceptor(logf)(ctx, nil, info, func(context.Context, any) (any, error) {
		return "ignored", wantErr
	})
	if err != wantErr || resp != "ignored" {
		t.Fatalf("expected handler result passthrough, got %v / %v", resp, err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected one audit line, got %d", len(lines))
	}
	for _, want := range []string{"kind=write", "caller=parent", "code=PermissionDenied", "request_id=req-9", "trace_id=-"} {
		if !strings.Contains(lines[0], want) {
			t.Fatalf("audit line %q missing %q", lines[0], want)
		}
	}
}

func TestAuditInterceptorAnonymousCaller(t *testing.T) {
	t.Parallel()

	var line string
	logf := func(format string, args ...any) { line = fmt.Sprintf(format, args...) }
	info := &grpc.UnaryServerInfo{FullMethod: stakev1.StakeLedgerService_GetRoles_FullMethodName}
	if _, err := AuditInterceptor(logf)(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, nil
	}); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if !strings.Contains(line, "caller=anonymous") || !strings.Contains(line, "code=OK") || !strings.Contains(line, "kind=read") {
		t.Fatalf("unexpected audit line %q", line)
	}
}
