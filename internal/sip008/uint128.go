package sip008

import (
	"bytes"
	"fmt"
	"math/big"

	"gopkg.in/yaml.v3"
)

// Uint128 is an unsigned 128-bit traffic counter. It is a comparable
// value and encodes as a bare JSON integer.
type Uint128 struct {
	Hi, Lo uint64
}

func U128(lo uint64) Uint128 { return Uint128{Lo: lo} }

// ParseUint128 parses a base-10 string.
func ParseUint128(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, fmt.Errorf("invalid u128: empty")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Uint128{}, fmt.Errorf("invalid u128 %q", s)
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("u128 out of range: %s", s)
	}
	lo := new(big.Int).And(n, new(big.Int).SetUint64(^uint64(0)))
	return Uint128{
		Hi: new(big.Int).Rsh(n, 64).Uint64(),
		Lo: lo.Uint64(),
	}, nil
}

func (u Uint128) Big() *big.Int {
	n := new(big.Int).SetUint64(u.Hi)
	n.Lsh(n, 64)
	return n.Or(n, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	return u.Big().String()
}

func (u Uint128) MarshalJSON() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint128) UnmarshalJSON(data []byte) error {
	v, err := ParseUint128(string(bytes.TrimSpace(data)))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalYAML writes an untagged plain scalar.
func (u Uint128) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: u.String()}, nil
}

func (u *Uint128) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseUint128(value.Value)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
