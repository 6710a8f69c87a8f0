package metadata

import (
	"context"
	"strings"

	"github.com/louisbranch/stakeledger/internal/platform/id"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the gRPC metadata key for request correlation IDs.
const RequestIDHeader = "x-stake-ledger-request-id"

// IdentityHeader carries the caller identity when no token signer is configured.
const IdentityHeader = "x-stake-ledger-identity"

// LocaleHeader selects the locale of error messages.
const LocaleHeader = "x-stake-ledger-locale"

// AuthorizationHeader carries "Bearer <token>" identity tokens.
const AuthorizationHeader = "authorization"

type contextKey string

const requestIDContextKey contextKey = "stake-ledger-request-id"

// RequestIDFromContext returns the request ID stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey).(string)
	return value
}

// WithRequestID stores the request ID in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// LocaleFromContext returns the requested locale from incoming metadata.
func LocaleFromContext(ctx context.Context) string {
	return metadataValueFromIncomingContext(ctx, LocaleHeader)
}

// IdentityFromContext returns the identity header from incoming metadata.
func IdentityFromContext(ctx context.Context) string {
	return strings.TrimSpace(metadataValueFromIncomingContext(ctx, IdentityHeader))
}

// BearerTokenFromContext returns the bearer token from incoming metadata, if any.
func BearerTokenFromContext(ctx context.Context) string {
	value := strings.TrimSpace(metadataValueFromIncomingContext(ctx, AuthorizationHeader))
	if len(value) < len("bearer ") || !strings.EqualFold(value[:len("bearer ")], "bearer ") {
		return ""
	}
	return strings.TrimSpace(value[len("bearer "):])
}

// IsPrintableASCII reports whether a string contains only printable ASCII characters.
func IsPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// FirstMetadataValue returns the first printable ASCII metadata value for a key.
func FirstMetadataValue(md metadata.MD, key string) string {
	if len(md) == 0 {
		return ""
	}
	for mdKey, values := range md {
		if !strings.EqualFold(mdKey, key) {
			continue
		}
		for _, value := range values {
			if IsPrintableASCII(value) {
				return value
			}
		}
	}
	return ""
}

// UnaryServerInterceptor guarantees every unary call carries a request ID,
// generating one when the client omits it, and echoes it in response headers.
func UnaryServerInterceptor(idGenerator func() (string, error)) grpc.UnaryServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		updatedCtx, requestID, err := ensureRequestID(ctx, idGenerator)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "ensure request metadata: %v", err)
		}
		if err := grpc.SetHeader(updatedCtx, metadata.Pairs(RequestIDHeader, requestID)); err != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		return handler(updatedCtx, req)
	}
}

func ensureRequestID(ctx context.Context, idGenerator func() (string, error)) (context.Context, string, error) {
	requestID := metadataValueFromIncomingContext(ctx, RequestIDHeader)
	if requestID == "" {
		generated, err := idGenerator()
		if err != nil {
			return nil, "", err
		}
		requestID = generated
	}
	return WithRequestID(ctx, requestID), requestID, nil
}

func metadataValueFromIncomingContext(ctx context.Context, header string) string {
	if ctx == nil {
		return ""
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	return FirstMetadataValue(md, header)
}
