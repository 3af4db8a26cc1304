package radix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"baseconv/internal/domain"
)

// Parse reads the leading integer of value in base. See the package
// documentation for the accepted syntax.
func Parse(value string, base domain.Base) (int64, error) {
	if !base.Known() {
		return 0, fmt.Errorf("%w %q", ErrUnknownBase, string(base))
	}
	radix := uint64(base.Radix())

	s := strings.TrimLeftFunc(value, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if radix == 16 && len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	var n uint64
	digits := 0
	for _, r := range s {
		d, ok := DigitValue(r)
		if !ok || uint64(d) >= radix {
			break
		}
		if n > (limit-uint64(d))/radix {
			return 0, &NumberError{Value: value, Base: base, Reason: "out of range"}
		}
		n = n*radix + uint64(d)
		digits++
	}
	if digits == 0 {
		return 0, &NumberError{Value: value, Base: base, Reason: "no digits"}
	}
	if neg && n > 0 {
		// n may be MaxInt64+1, which only fits once negated.
		return -int64(n-1) - 1, nil
	}
	return int64(n), nil
}

// Format renders n in base. Hexadecimal digits are upper-case.
func Format(n int64, base domain.Base) string {
	out := strconv.FormatInt(n, base.Radix())
	if base == domain.Hexadecimal {
		out = strings.ToUpper(out)
	}
	return out
}

// Convert parses value in from and renders it in to.
func Convert(value string, from, to domain.Base) (string, error) {
	if !to.Known() {
		return "", fmt.Errorf("%w %q", ErrUnknownBase, string(to))
	}
	n, err := Parse(value, from)
	if err != nil {
		return "", err
	}
	return Format(n, to), nil
}
