// Package interceptors holds the stake ledger's gRPC server interceptors.
package interceptors

import (
	"context"
	"log"
	"time"

	stakev1 "github.com/louisbranch/stakeledger/api/stake/v1"
	"github.com/louisbranch/stakeledger/internal/platform/requestctx"
	grpcmeta "github.com/louisbranch/stakeledger/internal/services/stake/api/grpc/metadata"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// AuditInterceptor writes one log line per unary call with the caller, the
// read/write classification, and the resulting status code. A nil logf
// uses log.Printf.
func AuditInterceptor(logf func(string, ...any)) grpc.UnaryServerInterceptor {
	if logf == nil {
		logf = log.Printf
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		caller := requestctx.CallerFromContext(ctx)
		if caller == "" {
			caller = "anonymous"
		}
		traceID := "-"
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			traceID = sc.TraceID().String()
		}
		logf("audit method=%s kind=%s caller=%s code=%s request_id=%s trace_id=%s elapsed=%s",
			info.FullMethod,
			ClassifyMethodKind(info.FullMethod),
			caller,
			status.Code(err).String(),
			grpcmeta.RequestIDFromContext(ctx),
			traceID,
			time.Since(start).Round(time.Microsecond),
		)
		return resp, err
	}
}

// ClassifyMethodKind reports "write" for methods that can mutate ledger or
// unit state and "read" otherwise.
func ClassifyMethodKind(fullMethod string) string {
	switch fullMethod {
	case stakev1.StakeLedgerService_SetAdmin2_FullMethodName,
		stakev1.StakeLedgerService_ChangeParent_FullMethodName,
		stakev1.StakeLedgerService_SetToken_FullMethodName,
		stakev1.StakeLedgerService_SetUcacAddr_FullMethodName,
		stakev1.StakeLedgerService_SetOwner1_FullMethodName,
		stakev1.StakeLedgerService_SetOwner2_FullMethodName,
		stakev1.StakeLedgerService_StakeTokens_FullMethodName,
		stakev1.StakeLedgerService_UnstakeTokens_FullMethodName,
		stakev1.UnitService_Mint_FullMethodName,
		stakev1.UnitService_Approve_FullMethodName:
		return "write"
	default:
		return "read"
	}
}
