package errors

import (
	"context"
	stderrors "errors"

	"github.com/louisbranch/stakeledger/internal/platform/errors/i18n"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// HandleError converts domain errors to a gRPC status for client responses.
// The user-facing message comes from the i18n catalog for locale, defaulting
// to en-US when locale is empty or unsupported.
func HandleError(err error, locale string) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if stderrors.As(err, &appErr) {
		catalog := i18n.GetCatalog(locale)
		userMsg := catalog.Format(string(appErr.Code), appErr.Metadata)
		return appErr.ToGRPCStatus(catalog.Locale(), userMsg)
	}

	switch {
	case stderrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case stderrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	if st, ok := status.FromError(err); ok {
		return st.Err()
	}
	return status.Error(codes.Internal, "an unexpected error occurred")
}
