// Package cmd holds the startup plumbing shared by every stake ledger binary.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/stakeledger/internal/platform/config"
	"github.com/louisbranch/stakeledger/internal/platform/otel"
)

// telemetryFlushTimeout bounds the span flush after a run returns, including
// runs whose context was cancelled by a signal.
const telemetryFlushTimeout = 5 * time.Second

// Service names reported as the OpenTelemetry service.name resource.
const (
	ServiceStake    = "stake"
	ServiceStakeCtl = "stakectl"
)

// ParseConfig loads STAKE_LEDGER_* environment defaults into cfg. Callers
// register flags on top of the loaded values and then call ParseArgs.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry installs the tracer provider for service, runs run, and
// flushes spans before returning run's error.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("%s telemetry: %w", service, err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryFlushTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("%s telemetry flush: %v", service, err)
		}
	}()
	return run(ctx)
}
