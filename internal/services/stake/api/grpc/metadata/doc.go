// Package metadata provides utilities for handling stake ledger gRPC request
// metadata.
//
// # Header Constants
//
//   - RequestIDHeader: correlates audit log lines across calls.
//   - IdentityHeader: trusted caller identity in development mode.
//   - LocaleHeader: preferred locale for localized error messages.
//   - AuthorizationHeader: bearer identity token when signing is configured.
package metadata
