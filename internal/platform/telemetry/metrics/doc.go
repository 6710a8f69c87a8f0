// Package metrics provides operational metrics collection.
//
// # Metric Categories
//
//   - Latency: request and ledger operation duration histograms
//   - Errors: outcome counts by gRPC code and ledger error code
//   - Dependencies: value-unit circuit breaker state
//   - Resources: Go runtime and process collectors
//
// # Integration
//
// RPC metrics are collected via a gRPC unary interceptor and every metric is
// exposed in Prometheus format by Handler. A nil *Registry is a valid no-op
// so callers never need to guard metric calls.
package metrics
