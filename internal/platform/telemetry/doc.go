// Package telemetry groups the operational observability of the stake ledger.
//
// # Ledger Journal
//
// The ledger journal is the durable record of committed mutations. It lives
// in ledger storage, is written in the same transaction as the mutation, and
// is not telemetry.
//
// # Operational Metrics (telemetry/metrics)
//
// Operational metrics capture system health and performance:
//   - RPC latency and outcomes
//   - Ledger operation outcomes
//   - Value-unit circuit breaker state
//
// Traces are exported through OpenTelemetry (see platform/otel).
package telemetry
