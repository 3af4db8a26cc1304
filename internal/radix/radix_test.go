package radix_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"baseconv/internal/domain"
	"baseconv/internal/radix"
)

const digitAlphabet = "0123456789abcdefABCDEF"

// randomNumeral builds a numeral of up to 12 digits that is well-formed in base.
func randomNumeral(rng *rand.Rand, base domain.Base) string {
	var allowed []byte
	for i := 0; i < len(digitAlphabet); i++ {
		d, _ := radix.DigitValue(rune(digitAlphabet[i]))
		if d < base.Radix() {
			allowed = append(allowed, digitAlphabet[i])
		}
	}
	n := 1 + rng.Intn(12)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(allowed[rng.Intn(len(allowed))])
	}
	return b.String()
}

func TestConvert_KnownValues(t *testing.T) {
	cases := []struct {
		value    string
		from, to domain.Base
		want     string
	}{
		{"FF", domain.Hexadecimal, domain.Decimal, "255"},
		{"ff", domain.Hexadecimal, domain.Decimal, "255"},
		{"255", domain.Decimal, domain.Hexadecimal, "FF"},
		{"1010", domain.Binary, domain.Decimal, "10"},
		{"777", domain.Octal, domain.Binary, "111111111"},
		{"10", domain.Decimal, domain.Octal, "12"},
		{"0", domain.Decimal, domain.Hexadecimal, "0"},
		{"12z", domain.Decimal, domain.Binary, "1100"},
		{"0x1f", domain.Hexadecimal, domain.Decimal, "31"},
		{"  42", domain.Decimal, domain.Decimal, "42"},
		{"-ff", domain.Hexadecimal, domain.Decimal, "-255"},
		{"-255", domain.Decimal, domain.Hexadecimal, "-FF"},
		{"-0", domain.Decimal, domain.Binary, "0"},
		{"+7", domain.Octal, domain.Decimal, "7"},
		{"102", domain.Binary, domain.Decimal, "2"},
		{"9223372036854775807", domain.Decimal, domain.Hexadecimal, "7FFFFFFFFFFFFFFF"},
		{"-9223372036854775808", domain.Decimal, domain.Hexadecimal, "-8000000000000000"},
	}
	for _, tc := range cases {
		got, err := radix.Convert(tc.value, tc.from, tc.to)
		require.NoError(t, err, "convert %q %s->%s", tc.value, tc.from, tc.to)
		require.Equal(t, tc.want, got, "convert %q %s->%s", tc.value, tc.from, tc.to)
	}
}

func TestConvert_InvalidNumber(t *testing.T) {
	cases := []struct {
		value string
		from  domain.Base
	}{
		{"", domain.Decimal},
		{"   ", domain.Decimal},
		{"-", domain.Decimal},
		{"2", domain.Binary},
		{"g", domain.Hexadecimal},
		{"0x", domain.Hexadecimal},
		{"0x1", domain.Decimal},
		{"9", domain.Octal},
		{"9223372036854775808", domain.Decimal},
		{"-9223372036854775809", domain.Decimal},
	}
	for _, tc := range cases {
		_, err := radix.Convert(tc.value, tc.from, domain.Hexadecimal)
		require.ErrorIs(t, err, radix.ErrInvalidNumber, "value %q base %s", tc.value, tc.from)

		var numErr *radix.NumberError
		require.ErrorAs(t, err, &numErr)
		require.Equal(t, tc.value, numErr.Value)
		require.Equal(t, tc.from, numErr.Base)
	}
}

func TestConvert_DecimalPrefixOfHexLiteral(t *testing.T) {
	// "0x1" in decimal stops at the 'x' and yields zero.
	got, err := radix.Convert("0x1", domain.Decimal, domain.Decimal)
	require.NoError(t, err)
	require.Equal(t, "0", got)
}

func TestConvert_UnknownBase(t *testing.T) {
	_, err := radix.Convert("1", domain.Base("b3"), domain.Decimal)
	require.ErrorIs(t, err, radix.ErrUnknownBase)
	require.NotErrorIs(t, err, radix.ErrInvalidNumber)

	_, err = radix.Convert("1", domain.Decimal, domain.Base("b3"))
	require.ErrorIs(t, err, radix.ErrUnknownBase)
}

func TestIsValid_KnownValues(t *testing.T) {
	cases := []struct {
		value string
		base  domain.Base
		want  bool
	}{
		{"", domain.Binary, true},
		{"", domain.Hexadecimal, true},
		{"2", domain.Binary, false},
		{"101", domain.Binary, true},
		{"8", domain.Octal, false},
		{"1234567", domain.Octal, true},
		{"a", domain.Decimal, false},
		{"deadBEEF", domain.Hexadecimal, true},
		{"g", domain.Hexadecimal, false},
		{"1-0", domain.Decimal, false},
		{"1 0", domain.Decimal, false},
		{"-1", domain.Decimal, false},
		{"0x1f", domain.Hexadecimal, false},
		{"1.5", domain.Decimal, false},
		{"@", domain.Hexadecimal, false},
		{"[", domain.Hexadecimal, false},
		{"١", domain.Decimal, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, radix.IsValid(tc.value, tc.base), "IsValid(%q, %s)", tc.value, tc.base)
	}
}

func TestFirstInvalid(t *testing.T) {
	require.Equal(t, -1, radix.FirstInvalid("ff", domain.Hexadecimal))
	require.Equal(t, 2, radix.FirstInvalid("10z1", domain.Decimal))
	require.Equal(t, 0, radix.FirstInvalid("x", domain.Binary))
	require.Equal(t, 0, radix.FirstInvalid("1", domain.Base("nope")))
	require.Equal(t, -1, radix.FirstInvalid("", domain.Base("nope")))
}

func TestIsValid_WellFormedNumerals(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, base := range domain.Bases() {
		for i := 0; i < 200; i++ {
			s := randomNumeral(rng, base)
			require.True(t, radix.IsValid(s, base), "IsValid(%q, %s)", s, base)
		}
	}
}

func TestConvert_SameBaseRoundTrip(t *testing.T) {
	for _, base := range domain.Bases() {
		prop := func(n int64) bool {
			n &= math.MaxInt64
			rendered := radix.Format(n, base)
			got, err := radix.Convert(rendered, base, base)
			return err == nil && got == rendered
		}
		require.NoError(t, quick.Check(prop, nil), "base %s", base)
	}
}

func TestConvert_CrossBaseRoundTripPreservesValue(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, from := range domain.Bases() {
		for _, to := range domain.Bases() {
			for i := 0; i < 50; i++ {
				s := randomNumeral(rng, from)
				want, err := radix.Parse(s, from)
				require.NoError(t, err)

				there, err := radix.Convert(s, from, to)
				require.NoError(t, err)
				back, err := radix.Convert(there, to, from)
				require.NoError(t, err)

				got, err := radix.Parse(back, from)
				require.NoError(t, err)
				require.Equal(t, want, got, "%q %s->%s->%s", s, from, to, from)
				require.Equal(t, strings.TrimLeft(strings.ToLower(s), "0"), strings.TrimLeft(strings.ToLower(back), "0"))
			}
		}
	}
}

func TestFormat_Case(t *testing.T) {
	require.Equal(t, "ABCDEF", radix.Format(0xabcdef, domain.Hexadecimal))
	require.Equal(t, "11259375", radix.Format(0xabcdef, domain.Decimal))
	require.Equal(t, "52746757", radix.Format(0xabcdef, domain.Octal))
}
