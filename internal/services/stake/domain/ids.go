package domain

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// Identity names an account or a role holder. The zero identity never
// matches a role and is never an owner.
type Identity string

// ParseIdentity trims surrounding whitespace. Identities are case-sensitive.
func ParseIdentity(raw string) Identity {
	return Identity(strings.TrimSpace(raw))
}

// IsZero reports whether the identity is unset.
func (i Identity) IsZero() bool { return i == "" }

func (i Identity) String() string { return string(i) }

// Address names a value-unit component.
type Address string

// ParseAddress trims surrounding whitespace.
func ParseAddress(raw string) Address {
	return Address(strings.TrimSpace(raw))
}

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool { return a == "" }

func (a Address) String() string { return string(a) }

// UcacIDSize is the fixed byte width of a UCAC id.
const UcacIDSize = 32

// UcacID identifies a UCAC. Shorter inputs are right zero-padded.
type UcacID [UcacIDSize]byte

// UcacTextPrefix marks a UCAC id given as text even when it looks like hex.
const UcacTextPrefix = "text:"

// ParseUcacID accepts 0x-prefixed hex or plain ASCII text of at most 32 bytes.
// Any value starting with 0x is decoded as hex, so a text id that itself
// starts with 0x must be written with UcacTextPrefix ("text:0xabc").
func ParseUcacID(raw string) (UcacID, error) {
	var id UcacID
	value := strings.TrimSpace(raw)
	if value == "" {
		return id, ErrInvalidUcacID(raw, "ucac id is required")
	}

	var data []byte
	switch {
	case strings.HasPrefix(value, UcacTextPrefix):
		data = []byte(value[len(UcacTextPrefix):])
		if len(data) == 0 {
			return id, ErrInvalidUcacID(raw, "ucac id is required")
		}
	case looksLikeHex(value):
		digits := value[2:]
		if digits == "" {
			return id, ErrInvalidUcacID(raw, "ucac id is required")
		}
		decoded, err := hex.DecodeString(digits)
		if err != nil {
			return id, ErrInvalidUcacID(raw, "ucac id is not valid hex")
		}
		data = decoded
	default:
		data = []byte(value)
	}
	if len(data) > UcacIDSize {
		return id, ErrInvalidUcacID(raw, fmt.Sprintf("ucac id is %d bytes, max %d", len(data), UcacIDSize))
	}
	copy(id[:], data)
	return id, nil
}

// MustParseUcacID is ParseUcacID for literals known to be valid.
func MustParseUcacID(raw string) UcacID {
	id, err := ParseUcacID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical 0x-prefixed lowercase hex form.
func (id UcacID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// IsZero reports whether every byte is zero.
func (id UcacID) IsZero() bool { return id == UcacID{} }

// Text returns the id as ASCII with trailing zero padding removed, or the
// canonical form when the bytes are not printable. The result always parses
// back to the same id.
func (id UcacID) Text() string {
	trimmed := strings.TrimRight(string(id[:]), "\x00")
	if trimmed == "" {
		return id.String()
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] < 0x20 || trimmed[i] > 0x7e {
			return id.String()
		}
	}
	if trimmed != strings.TrimSpace(trimmed) {
		return id.String()
	}
	if looksLikeHex(trimmed) || strings.HasPrefix(trimmed, UcacTextPrefix) {
		return UcacTextPrefix + trimmed
	}
	return trimmed
}

func looksLikeHex(value string) bool {
	return strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X")
}

// ParseAmount parses a strictly positive base-10 integer.
func ParseAmount(raw string) (*big.Int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, ErrInvalidAmount(raw, "amount is required")
	}
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, ErrInvalidAmount(raw, "amount is not a base-10 integer")
	}
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount(raw, "amount must be greater than zero")
	}
	return amount, nil
}

// RequireAmount checks that an already parsed amount is strictly positive.
func RequireAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount(fmt.Sprint(amount), "amount must be greater than zero")
	}
	return nil
}

// StakeKey addresses one entry of the composite stake table.
type StakeKey struct {
	Unit    Address
	Account Identity
	Ucac    UcacID
}

// Validate rejects keys with an unset unit or account.
func (k StakeKey) Validate() error {
	if k.Unit.IsZero() {
		return ErrInvalidArgument("unit_address", "unit address is required")
	}
	if k.Account.IsZero() {
		return ErrInvalidArgument("account", "account is required")
	}
	return nil
}
