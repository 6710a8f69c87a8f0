// Package stake parses stake ledger service flags and launches the service.
package stake

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/stakeledger/internal/platform/cmd"
	"github.com/louisbranch/stakeledger/internal/platform/discovery"
	server "github.com/louisbranch/stakeledger/internal/services/stake/app"
	"github.com/louisbranch/stakeledger/internal/services/stake/auth"
	"github.com/louisbranch/stakeledger/internal/services/stake/unit"
)

// Config holds stake command configuration.
type Config struct {
	Port        int      `env:"STAKE_LEDGER_PORT"`
	MetricsAddr string   `env:"STAKE_LEDGER_METRICS_ADDR" envDefault:":9095"`
	DBPath      string   `env:"STAKE_LEDGER_DB_PATH"      envDefault:"data/stake.db"`
	Admin1      string   `env:"STAKE_LEDGER_ADMIN1"`
	Custody     string   `env:"STAKE_LEDGER_CUSTODY"      envDefault:"stake-ledger"`
	Units       []string `env:"STAKE_LEDGER_UNITS"        envDefault:"T"            envSeparator:","`

	BreakerFailures    uint32        `env:"STAKE_LEDGER_BREAKER_FAILURES"     envDefault:"5"`
	BreakerTimeout     time.Duration `env:"STAKE_LEDGER_BREAKER_TIMEOUT"      envDefault:"30s"`
	BreakerMaxRequests uint32        `env:"STAKE_LEDGER_BREAKER_MAX_REQUESTS" envDefault:"1"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Port == 0 {
		cfg.Port = discovery.DefaultGRPCPort(discovery.ServiceStake)
	}
	units := strings.Join(cfg.Units, ",")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The stake ledger gRPC server port")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Prometheus listen address (empty disables)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite ledger database path")
	fs.StringVar(&cfg.Admin1, "admin1", cfg.Admin1, "Bootstrap admin1 identity")
	fs.StringVar(&units, "units", units, "Comma-separated in-process value unit addresses")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Units = splitList(units)
	if strings.TrimSpace(cfg.Admin1) == "" {
		return Config{}, fmt.Errorf("admin1 is required (STAKE_LEDGER_ADMIN1 or -admin1)")
	}
	return cfg, nil
}

// Run starts the stake ledger gRPC service.
func Run(ctx context.Context, cfg Config) error {
	identity, err := auth.LoadTokenConfigFromEnv(nil)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStake, func(ctx context.Context) error {
		return server.Run(ctx, serverConfig(cfg, identity))
	})
}

func serverConfig(cfg Config, identity auth.TokenConfig) server.Config {
	return server.Config{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		MetricsAddr: cfg.MetricsAddr,
		DBPath:      cfg.DBPath,
		Admin1:      cfg.Admin1,
		Custody:     cfg.Custody,
		Units:       cfg.Units,
		Breaker: unit.BreakerConfig{
			MaxRequests:      cfg.BreakerMaxRequests,
			Timeout:          cfg.BreakerTimeout,
			FailureThreshold: cfg.BreakerFailures,
		},
		Identity: identity,
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
