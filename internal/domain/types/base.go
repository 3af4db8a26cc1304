package types

import (
	"fmt"
	"strings"
)

// Base identifies one of the supported positional numeral systems.
type Base string

const (
	Binary      Base = "bin"
	Octal       Base = "oct"
	Decimal     Base = "dec"
	Hexadecimal Base = "hex"
)

type baseInfo struct {
	radix int
	name  string
}

var baseTable = map[Base]baseInfo{
	Binary:      {radix: 2, name: "Binary"},
	Octal:       {radix: 8, name: "Octal"},
	Decimal:     {radix: 10, name: "Decimal"},
	Hexadecimal: {radix: 16, name: "Hexadecimal"},
}

// baseOrder is the listing order used by selectors.
var baseOrder = [...]Base{Binary, Decimal, Hexadecimal, Octal}

// Bases returns every supported base in listing order.
func Bases() []Base {
	out := make([]Base, len(baseOrder))
	copy(out, baseOrder[:])
	return out
}

// String returns the short identifier of the base.
func (b Base) String() string { return string(b) }

// Known reports whether b is one of the supported bases.
func (b Base) Known() bool {
	_, ok := baseTable[b]
	return ok
}

// Radix returns the number of digit symbols, or 0 for an unknown base.
func (b Base) Radix() int { return baseTable[b].radix }

// Name returns the display name, e.g. "Hexadecimal".
func (b Base) Name() string { return baseTable[b].name }

// ParseBase accepts a short identifier ("hex"), a display name
// ("Hexadecimal") or a radix ("16"), case-insensitively.
func ParseBase(s string) (Base, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, b := range baseOrder {
		info := baseTable[b]
		if key == string(b) || key == strings.ToLower(info.name) || key == fmt.Sprint(info.radix) {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown base %q (want one of bin, oct, dec, hex)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (b Base) MarshalText() ([]byte, error) {
	if !b.Known() {
		return nil, fmt.Errorf("unknown base %q", string(b))
	}
	return []byte(b), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseBase.
func (b *Base) UnmarshalText(text []byte) error {
	parsed, err := ParseBase(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
