package protocol

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendBool(t *testing.T) {
	require.Equal(t, "t", string(AppendBool(nil, true)))
	require.Equal(t, "f", string(AppendBool(nil, false)))
}

func TestAppendInt64(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{0, "0i"},
		{1, "1i"},
		{-1, "-1i"},
		{10, "10i"},
		{math.MaxInt64, "9223372036854775807i"},
		{math.MinInt64, "-9223372036854775808i"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, string(AppendInt64(nil, tt.value)))
	}
}

func TestAppendFloat64(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "0"},
		{"simple", 1.5, "1.5"},
		{"negative", -2.25, "-2.25"},
		{"integral", 100, "100"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
		{"nan", math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, string(AppendFloat64(nil, tt.value)))
		})
	}
}

func TestAppendFloat64_RoundTrip(t *testing.T) {
	values := []float64{
		0.1,
		1e-9,
		1.7976931348623157e308,
		5e-324,
		math.Pi,
		-123456.789,
	}

	for _, v := range values {
		token := string(AppendFloat64(nil, v))
		parsed, err := strconv.ParseFloat(token, 64)
		require.NoError(t, err)
		require.Equal(t, v, parsed, "token %q must round-trip", token)
	}
}

func TestAppendTimestamp(t *testing.T) {
	require.Equal(t, "0", string(AppendTimestamp(nil, 0)))
	require.Equal(t, "123", string(AppendTimestamp(nil, 123)))
	require.Equal(t, "1669300000000000000", string(AppendTimestamp(nil, 1669300000000000000)))
	require.Equal(t, "-1", string(AppendTimestamp(nil, -1)))
}
