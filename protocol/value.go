package protocol

import (
	"math"
	"strconv"
)

// AppendBool appends the wire token for a boolean column value: `t` or `f`.
func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 't')
	}

	return append(dst, 'f')
}

// AppendInt64 appends the wire token for a 64-bit integer column value:
// decimal digits followed by the `i` suffix that distinguishes integers from
// floats in the wire grammar.
func AppendInt64(dst []byte, v int64) []byte {
	dst = strconv.AppendInt(dst, v, 10)

	return append(dst, 'i')
}

// AppendFloat64 appends the wire token for a 64-bit float column value.
//
// Finite values use the shortest decimal representation that round-trips.
// The infinities render as the literal sentinels `Infinity` and `-Infinity`.
// NaN has no special casing on the wire and renders as `NaN`.
func AppendFloat64(dst []byte, v float64) []byte {
	switch {
	case math.IsInf(v, 1):
		return append(dst, "Infinity"...)
	case math.IsInf(v, -1):
		return append(dst, "-Infinity"...)
	default:
		return strconv.AppendFloat(dst, v, 'g', -1, 64)
	}
}

// AppendTimestamp appends an epoch-nanosecond timestamp in decimal.
func AppendTimestamp(dst []byte, epochNanos int64) []byte {
	return strconv.AppendInt(dst, epochNanos, 10)
}
