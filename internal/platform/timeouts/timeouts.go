// Package timeouts defines shared timeout constants used across the ledger binaries.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the ledger and waiting for health.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single CLI request.
const GRPCRequest = 5 * time.Second

// ReadHeader limits how long the metrics HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the metrics HTTP server waits for in-flight scrapes
// during graceful shutdown.
const Shutdown = 5 * time.Second
