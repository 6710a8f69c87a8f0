package metadata

import (
	"context"

	apperrors "github.com/louisbranch/stakeledger/internal/platform/errors"
	"github.com/louisbranch/stakeledger/internal/platform/requestctx"
	"google.golang.org/grpc"
)

// TokenVerifier resolves a bearer token to the identity it names.
type TokenVerifier func(token string) (string, error)

// IdentityUnaryServerInterceptor authenticates the caller and stores the
// identity with requestctx.WithCaller.
//
// With a verifier, only a valid bearer token names a caller; a request
// without one proceeds anonymously and a bad token is rejected. Without a
// verifier the IdentityHeader value is trusted as is.
func IdentityUnaryServerInterceptor(verify TokenVerifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		caller, err := callerIdentity(ctx, verify)
		if err != nil {
			return nil, apperrors.HandleError(err, LocaleFromContext(ctx))
		}
		return handler(requestctx.WithCaller(ctx, caller), req)
	}
}

func callerIdentity(ctx context.Context, verify TokenVerifier) (string, error) {
	if verify == nil {
		return IdentityFromContext(ctx), nil
	}
	token := BearerTokenFromContext(ctx)
	if token == "" {
		return "", nil
	}
	return verify(token)
}
