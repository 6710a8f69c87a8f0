// Package hmackey generates signing keys for stake ledger identity tokens.
package hmackey

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/louisbranch/stakeledger/internal/services/stake/auth"
)

// EnvName is the variable the ledger reads its identity signing key from.
const EnvName = "STAKE_LEDGER_IDENTITY_HMAC_KEY"

// Config holds configuration for key generation.
type Config struct {
	Bytes  int
	Export bool
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Bytes: 32}
	fs.IntVar(&cfg.Bytes, "bytes", cfg.Bytes, "number of random bytes")
	fs.BoolVar(&cfg.Export, "export", false, "prefix the line with export for shell sourcing")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates a key the ledger will accept and writes it to out as an
// env assignment.
func Run(cfg Config, out io.Writer, reader io.Reader) error {
	if cfg.Bytes < auth.MinKeyBytes {
		return fmt.Errorf("bytes must be at least %d", auth.MinKeyBytes)
	}
	if out == nil {
		return errors.New("output is required")
	}
	if reader == nil {
		reader = rand.Reader
	}

	buf := make([]byte, cfg.Bytes)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return fmt.Errorf("generate random bytes: %w", err)
	}
	key := hex.EncodeToString(buf)
	if _, err := auth.ParseHMACKey(key); err != nil {
		return err
	}
	prefix := ""
	if cfg.Export {
		prefix = "export "
	}
	_, err := fmt.Fprintf(out, "%s%s=%s\n", prefix, EnvName, key)
	return err
}
