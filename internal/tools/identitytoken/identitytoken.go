// Package identitytoken mints bearer tokens for stake ledger callers using
// the signing key from the environment.
package identitytoken

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/louisbranch/stakeledger/internal/services/stake/auth"
)

// Config holds token minting options.
type Config struct {
	Identity string
	TTL      time.Duration
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{TTL: time.Hour}
	fs.StringVar(&cfg.Identity, "identity", "", "caller identity placed in the token subject")
	fs.DurationVar(&cfg.TTL, "ttl", cfg.TTL, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.Identity) == "" {
		return Config{}, errors.New("-identity is required")
	}
	return cfg, nil
}

// Run signs a token with signer and writes it to out.
func Run(cfg Config, signer auth.TokenConfig, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if !signer.Enabled() {
		return errors.New("STAKE_LEDGER_IDENTITY_HMAC_KEY is not set")
	}
	token, err := auth.IssueToken(signer, cfg.Identity, cfg.TTL)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
