package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBase(t *testing.T) {
	tests := []struct {
		in       string
		from, to int
		want     string
	}{
		{"255", 10, 16, "FF"},
		{"ff", 16, 10, "255"},
		{"FF", 16, 2, "11111111"},
		{"777", 8, 10, "511"},
		{"-1010", 2, 10, "-10"},
		{"-255", 10, 16, "-FF"},
		{"0", 10, 2, "0"},
		{"", 16, 10, "0"},
		{" 42 ", 10, 8, "52"},
		{"FFFFFFFFFFFFFFFFFFFF", 16, 10, "1208925819614629174706175"},
		{"10", 10, 10, "10"},
	}

	for _, tt := range tests {
		got, err := ConvertBase(tt.in, tt.from, tt.to)
		require.NoError(t, err, "%q %d -> %d", tt.in, tt.from, tt.to)
		assert.Equal(t, tt.want, got, "%q %d -> %d", tt.in, tt.from, tt.to)
	}
}

func TestConvertBaseRejectsBadInput(t *testing.T) {
	_, err := ConvertBase("2", 2, 10)
	assert.ErrorIs(t, err, ErrInvalidDigit)

	_, err = ConvertBase("1G", 16, 10)
	assert.ErrorIs(t, err, ErrInvalidDigit)

	_, err = ConvertBase("1.5", 10, 2)
	assert.ErrorIs(t, err, ErrInvalidDigit)

	_, err = ConvertBase("-", 10, 2)
	assert.ErrorIs(t, err, ErrInvalidDigit)

	_, err = ConvertBase("10", 1, 10)
	assert.ErrorIs(t, err, ErrInvalidBase)

	_, err = ConvertBase("10", 10, 17)
	assert.ErrorIs(t, err, ErrInvalidBase)
}

func TestBaseRoundTrip(t *testing.T) {
	for _, from := range SupportedBases {
		for _, to := range SupportedBases {
			for _, n := range []string{"0", "1", "10", "-11", "101101"} {
				there, err := ConvertBase(n, from, to)
				require.NoError(t, err)
				back, err := ConvertBase(there, to, from)
				require.NoError(t, err)

				want, err := ParseInBase(n, from)
				require.NoError(t, err)
				got, err := ParseInBase(back, from)
				require.NoError(t, err)
				assert.Zero(t, want.Cmp(got), "%s base %d via base %d", n, from, to)
			}
		}
	}
}

func TestFormatInBaseNil(t *testing.T) {
	s, err := FormatInBase(nil, 16)
	require.NoError(t, err)
	assert.Equal(t, "0", s)
}
