// Package requestctx carries the authenticated caller identity through request context.
package requestctx

import "context"

// callerContextKey is the context key for the authenticated caller identity.
type callerContextKey struct{}

// WithCaller stores the authenticated caller identity in context.
func WithCaller(ctx context.Context, caller string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, callerContextKey{}, caller)
}

// CallerFromContext returns the caller identity stored in context, or the
// empty identity for anonymous requests.
func CallerFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(callerContextKey{}).(string)
	return value
}
