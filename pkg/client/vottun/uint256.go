package vottun

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common/math"
)

var ErrInvalidUint256 = errors.New("must be an unsigned 256-bit integer")

// Uint256 is a token id or amount in canonical decimal form. It is sent as a
// JSON number so ids above 2^63 reach the API without losing digits.
type Uint256 string

// ParseUint256 accepts a decimal or 0x-prefixed hex string.
func ParseUint256(s string) (Uint256, error) {
	v, ok := parseUint256(s)
	if !ok {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidUint256)
	}
	return Uint256(v.String()), nil
}

func NewUint256(v uint64) Uint256 {
	return Uint256(strconv.FormatUint(v, 10))
}

// Uint256s is a shorthand for small literal id lists.
func Uint256s(vs ...uint64) []Uint256 {
	out := make([]Uint256, len(vs))
	for i, v := range vs {
		out[i] = NewUint256(v)
	}
	return out
}

func (u Uint256) String() string {
	if v, ok := parseUint256(string(u)); ok {
		return v.String()
	}
	return string(u)
}

func (u Uint256) MarshalJSON() ([]byte, error) {
	v, ok := parseUint256(string(u))
	if !ok {
		return nil, fmt.Errorf("%q: %w", string(u), ErrInvalidUint256)
	}
	return []byte(v.String()), nil
}

// UnmarshalJSON takes either a JSON number or a quoted string.
func (u *Uint256) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}

	parsed, err := ParseUint256(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func parseUint256(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	v, ok := math.ParseBig256(s)
	if !ok || v.Sign() < 0 {
		return nil, false
	}
	return v, true
}
