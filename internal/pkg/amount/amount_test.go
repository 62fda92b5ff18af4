package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"plain digits", "500000", 500000, false},
		{"thousands separated", "1,500,000", 1500000, false},
		{"naira sign", "₦2,000,000", 2000000, false},
		{"currency code", "NGN 750 000", 750000, false},
		{"zero fraction", "1,000.00", 1000, false},
		{"surrounding space", "  42  ", 42, false},
		{"non zero fraction", "1,000.50", 0, true},
		{"letters", "abc", 0, true},
		{"negative", "-5", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInt(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntEmpty(t *testing.T) {
	_, err := ParseInt("  ,  ")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseDecimal(t *testing.T) {
	got, err := ParseDecimal("1,200.5")
	require.NoError(t, err)
	assert.Equal(t, 1200.5, got)

	got, err = ParseDecimal("1e3")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)

	for _, input := range []string{"one", "Inf", "+inf", "infinity", "1e400", "-2"} {
		_, err = ParseDecimal(input)
		assert.Error(t, err, input)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0", Format(0))
	assert.Equal(t, "999", Format(999))
	assert.Equal(t, "1,500,000", Format(1500000))
	assert.Equal(t, "2.5", FormatDecimal(2.5))
	assert.Equal(t, "7", FormatDecimal(7))
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, n := range []int64{1, 12, 1234, 123456789} {
		got, err := ParseInt(Format(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}
