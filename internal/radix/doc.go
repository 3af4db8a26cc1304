// Package radix validates and converts integer numerals between the
// supported bases.
//
// # Validation
//
// IsValid accepts a numeral when every character is a digit whose value is
// below the base's radix: '0'-'9' map to 0-9 and letters map to 10 and up,
// case-insensitively. Any other character (sign, whitespace, punctuation,
// non-ASCII) is never a digit. The empty string is valid.
//
// # Conversion
//
// Convert is more lenient than IsValid. It skips leading whitespace, accepts
// a sign and, for hexadecimal input, a 0x prefix, then reads the longest run
// of digits and ignores whatever follows. It fails with ErrInvalidNumber only
// when no digit can be read or the value does not fit in an int64.
// Hexadecimal output is upper-case; other bases render lower-case.
package radix
