package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOCTToRawString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1000000"},
		{"0.5", "500000"},
		{"1.9999999", "1999999"}, // truncated, not rounded
		{"0.000001", "1"},
		{"0.0000009", "0"},
		{"0", "0"},
		{"0.0", "0"},
		{"000.000000", "0"},
		{"007.25", "7250000"},
		{".5", "500000"},
		{"1234.567890123", "1234567890"},
	}
	for _, tt := range tests {
		got, err := OCTToRawString(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		require.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestOCTToRawStringInvalid(t *testing.T) {
	for _, in := range []string{"", ".", "1.2.3", "1,5", "-1", "1e6", "abc"} {
		_, err := OCTToRawString(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestMicroToOCT(t *testing.T) {
	require.Equal(t, "0.000000", MicroToOCT(0))
	require.Equal(t, "0.000001", MicroToOCT(1))
	require.Equal(t, "1.000000", MicroToOCT(1_000_000))
	require.Equal(t, "24.981836", MicroToOCT(24_981_836))
}

func TestOCTToMicroRoundTrip(t *testing.T) {
	for _, micro := range []uint64{0, 1, 999_999, 1_000_000, 123_456_789} {
		got, err := OCTToMicro(MicroToOCT(micro))
		require.NoError(t, err)
		require.Equal(t, micro, got)
	}
}

func TestCompareOCTAmounts(t *testing.T) {
	cmp, err := CompareOCTAmounts("1.5", "1.500000")
	require.NoError(t, err)
	require.Equal(t, 0, cmp)

	cmp, err = CompareOCTAmounts("1.499999", "1.5")
	require.NoError(t, err)
	require.Equal(t, -1, cmp)

	cmp, err = CompareOCTAmounts("2", "1.999999")
	require.NoError(t, err)
	require.Equal(t, 1, cmp)

	_, err = CompareOCTAmounts("x", "1")
	require.Error(t, err)
}
