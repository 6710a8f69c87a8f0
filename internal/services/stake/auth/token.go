// Package auth issues and verifies the bearer tokens that carry a caller
// identity into the stake ledger API.
package auth

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/louisbranch/stakeledger/internal/platform/config"
	apperrors "github.com/louisbranch/stakeledger/internal/platform/errors"
	"github.com/louisbranch/stakeledger/internal/platform/id"
)

// MinKeyBytes is the shortest HMAC key accepted for signing identity tokens.
const MinKeyBytes = 16

const signingMethod = "HS256"

// tokenEnv holds raw env values before post-parse validation.
type tokenEnv struct {
	HMACKey  string `env:"STAKE_LEDGER_IDENTITY_HMAC_KEY"`
	Issuer   string `env:"STAKE_LEDGER_IDENTITY_ISSUER"   envDefault:"stake-ledger"`
	Audience string `env:"STAKE_LEDGER_IDENTITY_AUDIENCE" envDefault:"stake-ledger"`
}

// TokenConfig defines how identity tokens are signed and verified.
type TokenConfig struct {
	Issuer   string
	Audience string
	Key      []byte
	Now      func() time.Time
}

// Enabled reports whether a signing key is configured.
func (c TokenConfig) Enabled() bool {
	return len(c.Key) > 0
}

// Claims captures validated identity token claims.
type Claims struct {
	Identity  string
	Issuer    string
	Audience  []string
	ExpiresAt time.Time
	IssuedAt  time.Time
	TokenID   string
}

// LoadTokenConfigFromEnv reads identity token configuration. An unset key
// yields a disabled config rather than an error.
func LoadTokenConfigFromEnv(now func() time.Time) (TokenConfig, error) {
	var raw tokenEnv
	if err := config.ParseEnv(&raw); err != nil {
		return TokenConfig{}, fmt.Errorf("parse identity token env: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	cfg := TokenConfig{
		Issuer:   strings.TrimSpace(raw.Issuer),
		Audience: strings.TrimSpace(raw.Audience),
		Now:      now,
	}
	keyText := strings.TrimSpace(raw.HMACKey)
	if keyText == "" {
		return cfg, nil
	}
	key, err := ParseHMACKey(keyText)
	if err != nil {
		return TokenConfig{}, fmt.Errorf("STAKE_LEDGER_IDENTITY_HMAC_KEY: %w", err)
	}
	if cfg.Issuer == "" {
		return TokenConfig{}, errors.New("STAKE_LEDGER_IDENTITY_ISSUER is required")
	}
	if cfg.Audience == "" {
		return TokenConfig{}, errors.New("STAKE_LEDGER_IDENTITY_AUDIENCE is required")
	}
	cfg.Key = key
	return cfg, nil
}

// ParseHMACKey decodes a hex encoded signing key.
func ParseHMACKey(value string) ([]byte, error) {
	key, err := hex.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("decode hmac key: %w", err)
	}
	if len(key) < MinKeyBytes {
		return nil, fmt.Errorf("hmac key must be at least %d bytes", MinKeyBytes)
	}
	return key, nil
}

// IssueToken signs a token naming identity, valid for ttl.
func IssueToken(cfg TokenConfig, identity string, ttl time.Duration) (string, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return "", errors.New("identity is required")
	}
	if ttl <= 0 {
		return "", errors.New("ttl must be positive")
	}
	if err := cfg.validate(); err != nil {
		return "", err
	}
	tokenID, err := id.NewID()
	if err != nil {
		return "", err
	}
	now := cfg.now()
	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Subject:   identity,
		Audience:  jwt.ClaimStrings{cfg.Audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        tokenID,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Key)
	if err != nil {
		return "", fmt.Errorf("sign identity token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the signature and registered claims of token and
// returns the identity it names.
func VerifyToken(cfg TokenConfig, token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, apperrors.New(apperrors.CodeIdentityTokenInvalid, "identity token is required")
	}
	if err := cfg.validate(); err != nil {
		return Claims{}, err
	}

	var parsed jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return cfg.Key, nil
	},
		jwt.WithValidMethods([]string{signingMethod}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return Claims{}, mapJWTError(err)
	}

	if parsed.Issuer != cfg.Issuer {
		return Claims{}, apperrors.WithMetadata(
			apperrors.CodeIdentityTokenInvalid,
			"identity token issuer mismatch",
			map[string]string{apperrors.FieldKey: "issuer"},
		)
	}
	if !audienceContains(parsed.Audience, cfg.Audience) {
		return Claims{}, apperrors.WithMetadata(
			apperrors.CodeIdentityTokenInvalid,
			"identity token audience mismatch",
			map[string]string{apperrors.FieldKey: "audience"},
		)
	}
	subject := strings.TrimSpace(parsed.Subject)
	if subject == "" {
		return Claims{}, apperrors.New(apperrors.CodeIdentityTokenInvalid, "identity token sub is required")
	}
	if parsed.ExpiresAt == nil {
		return Claims{}, apperrors.New(apperrors.CodeIdentityTokenInvalid, "identity token exp is required")
	}

	now := cfg.now().UTC()
	exp := parsed.ExpiresAt.Time.UTC()
	if !exp.After(now) {
		return Claims{}, apperrors.New(apperrors.CodeIdentityTokenInvalid, "identity token is expired")
	}
	if parsed.NotBefore != nil && now.Before(parsed.NotBefore.Time.UTC()) {
		return Claims{}, apperrors.New(apperrors.CodeIdentityTokenInvalid, "identity token not active yet")
	}

	claims := Claims{
		Identity:  subject,
		Issuer:    parsed.Issuer,
		Audience:  []string(parsed.Audience),
		ExpiresAt: exp,
		TokenID:   parsed.ID,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return claims, nil
}

func (c TokenConfig) validate() error {
	if c.Issuer == "" || c.Audience == "" || len(c.Key) < MinKeyBytes {
		return errors.New("identity token signer is not configured")
	}
	return nil
}

func (c TokenConfig) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// mapJWTError translates jwt library errors to application errors.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrSignatureInvalid) {
		return apperrors.New(apperrors.CodeIdentityTokenInvalid, "identity token signature is invalid")
	}
	if errors.Is(err, jwt.ErrTokenUnverifiable) {
		return apperrors.New(apperrors.CodeIdentityTokenInvalid, "identity token alg is invalid")
	}
	return apperrors.New(apperrors.CodeIdentityTokenInvalid, "identity token is invalid")
}

func audienceContains(aud jwt.ClaimStrings, value string) bool {
	for _, item := range aud {
		if item == value {
			return true
		}
	}
	return false
}
