package starkgate

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// feltPrime is the STARK field modulus, 2^251 + 17*2^192 + 1. Every valid
// field element is in [0, feltPrime).
var feltPrime, _ = new(big.Int).SetString(
	"3618502788666131213697322783095070105623107215331596699973092056135872020481", 10)

// Felt is an arbitrary-precision field element. It is the internal type of
// every on-chain numeric value: contract addresses, entry-point selectors,
// calldata words, signature components, storage keys and transaction hashes.
//
// The zero value is the field element 0 and is ready to use. Felt values
// are immutable; all operations return new values.
type Felt struct {
	value *big.Int
}

// NewFelt creates a Felt from an arbitrary-precision integer. The input is
// copied, so later mutation of v does not affect the Felt.
func NewFelt(v *big.Int) Felt {
	return Felt{value: new(big.Int).Set(v)}
}

// FeltFromUint64 creates a Felt from a native integer.
func FeltFromUint64(v uint64) Felt {
	return Felt{value: new(big.Int).SetUint64(v)}
}

// FeltFromString parses a Felt from a decimal string or a 0x-prefixed
// hexadecimal string. It returns ErrMalformedNumber for anything else,
// including negative values, which are not valid field elements.
func FeltFromString(s string) (Felt, error) {
	trimmed := strings.TrimSpace(s)

	var v *big.Int
	var ok bool
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		v, ok = new(big.Int).SetString(trimmed[2:], 16)
	} else {
		v, ok = new(big.Int).SetString(trimmed, 10)
	}
	if !ok || v.Sign() < 0 {
		return Felt{}, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	return Felt{value: v}, nil
}

// MustFelt is like FeltFromString but panics on error. Intended for
// constants and tests.
func MustFelt(s string) Felt {
	f, err := FeltFromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

// bigInt returns the backing integer, never nil.
func (f Felt) bigInt() *big.Int {
	if f.value == nil {
		return new(big.Int)
	}
	return f.value
}

// BigInt returns a copy of the value as an arbitrary-precision integer.
func (f Felt) BigInt() *big.Int {
	return new(big.Int).Set(f.bigInt())
}

// Hex returns the canonical hexadecimal encoding: lowercase, 0x-prefixed,
// with no leading zeros. The zero value encodes as "0x0".
func (f Felt) Hex() string {
	return "0x" + f.bigInt().Text(16)
}

// String returns the decimal representation.
func (f Felt) String() string {
	return f.bigInt().Text(10)
}

// Equal reports whether two field elements hold the same value.
func (f Felt) Equal(other Felt) bool {
	return f.bigInt().Cmp(other.bigInt()) == 0
}

// IsZero reports whether the value is 0.
func (f Felt) IsZero() bool {
	return f.bigInt().Sign() == 0
}

// MarshalJSON encodes the value as an unquoted decimal integer literal of
// full precision. Values beyond the float64-safe integer range are emitted
// exactly; the default number handling of most JSON consumers would round
// them, which the gateway's verifier does not tolerate.
func (f Felt) MarshalJSON() ([]byte, error) {
	return []byte(f.bigInt().Text(10)), nil
}

// UnmarshalJSON decodes an unquoted integer literal, a quoted decimal
// string, or a quoted 0x hexadecimal string, recovering the exact value.
func (f *Felt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMalformedNumber, s)
		}
		parsed, err := FeltFromString(unquoted)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	}

	// Unquoted literal: the decoder hands over the raw text, so precision
	// is preserved no matter the magnitude. Floats and exponents are not
	// valid field elements.
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return fmt.Errorf("%w: %s", ErrMalformedNumber, s)
	}
	f.value = v
	return nil
}
