package radix

import "baseconv/internal/domain"

// DigitValue maps an ASCII digit or letter to its digit value. ok is false
// for every other rune.
func DigitValue(r rune) (value int, ok bool) {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0'), true
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 10, true
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// FirstInvalid returns the byte offset of the first character in value that
// is not a digit of base, or -1 if there is none.
func FirstInvalid(value string, base domain.Base) int {
	radix := base.Radix()
	for i, r := range value {
		d, ok := DigitValue(r)
		if !ok || d >= radix {
			return i
		}
	}
	return -1
}

// IsValid reports whether every character of value is a digit of base.
func IsValid(value string, base domain.Base) bool {
	return FirstInvalid(value, base) < 0
}
