// Package server wires the stake ledger runtime: the SQLite store, the
// hosted value units, the ledger core, the gRPC API, and the metrics
// endpoint.
package server
