// Package stake serves the stake.v1 gRPC API on top of the ledger core.
//
// Handlers parse wire strings into domain ids and amounts, take the caller
// from request context, and translate domain errors into localized gRPC
// statuses. They hold no state of their own.
package stake
