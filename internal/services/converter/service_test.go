package converter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"baseconv/internal/domain"
	"baseconv/internal/radix"
	"baseconv/internal/services/converter"
)

func TestBases_Descriptors(t *testing.T) {
	want := []domain.BaseDescriptor{
		{ID: domain.Binary, Radix: 2, Name: "Binary", Label: "BIN"},
		{ID: domain.Decimal, Radix: 10, Name: "Decimal", Label: "DEC"},
		{ID: domain.Hexadecimal, Radix: 16, Name: "Hexadecimal", Label: "HEX"},
		{ID: domain.Octal, Radix: 8, Name: "Octal", Label: "OCT"},
	}
	if diff := cmp.Diff(want, converter.New().Bases()); diff != "" {
		t.Fatalf("Bases() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	svc := converter.New()

	got := svc.Validate("10a", domain.Decimal)
	require.Equal(t, domain.Validation{Value: "10a", Base: domain.Decimal, Valid: false, FirstInvalid: 2}, got)

	got = svc.Validate("", domain.Binary)
	require.True(t, got.Valid)
	require.Equal(t, -1, got.FirstInvalid)
}

func TestConvert(t *testing.T) {
	svc := converter.New()

	conv, err := svc.Convert("255", domain.Decimal, domain.Hexadecimal)
	require.NoError(t, err)
	require.Equal(t, domain.Conversion{Value: "255", From: domain.Decimal, To: domain.Hexadecimal, Result: "FF"}, conv)

	_, err = svc.Convert("", domain.Decimal, domain.Hexadecimal)
	require.ErrorIs(t, err, radix.ErrInvalidNumber)
}
