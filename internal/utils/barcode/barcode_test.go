package barcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValidCodes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"EAN-13", "4009900382250", "4009900382250"},
		{"EAN-13 zero check digit", "4006381333931", "4006381333931"},
		{"EAN-8", "96385074", "96385074"},
		{"EAN-14", "04009900382250", "04009900382250"},
		{"UPC-A normalized to 13 digits", "036000291452", "0036000291452"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeRejectsInvalidCodes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrNotNumeric},
		{"letters", "40099003822ab", ErrNotNumeric},
		{"too short", "1234567", ErrInvalidLength},
		{"unsupported length", "123456789", ErrInvalidLength},
		{"too long", "123456789012345", ErrInvalidLength},
		{"wrong check digit EAN-13", "4009900382251", ErrInvalidCheckDigit},
		{"wrong check digit EAN-8", "96385075", ErrInvalidCheckDigit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("4009900382250"))
	assert.False(t, Valid("4009900382251"))
	assert.False(t, Valid("not-a-barcode"))
}
