package protocol

import (
	"slices"
)

// escapeUnquoted reports whether b needs a preceding backslash in an
// unquoted field (table names, symbol/column keys, symbol values).
func escapeUnquoted(b byte) bool {
	switch b {
	case ' ', ',', '=', '\n', '\r', '"', '\\':
		return true
	default:
		return false
	}
}

// escapeQuoted reports whether b needs a preceding backslash inside a quoted
// string column value.
func escapeQuoted(b byte) bool {
	switch b {
	case '\n', '\r', '"', '\\':
		return true
	default:
		return false
	}
}

// appendEscaped appends s to dst, backslash-escaping every byte for which
// mustEscape returns true.
//
// Both escape sets are ASCII-only, so the scan works byte-wise: multi-byte
// UTF-8 sequences never match and are copied through untouched, as are
// invalid UTF-8 bytes.
//
// It runs a counting pass first: when nothing needs escaping the source is
// appended in one bulk copy, otherwise dst is pre-grown to hold the escaped
// length and filled byte by byte.
func appendEscaped(dst []byte, s string, mustEscape func(byte) bool) []byte {
	toEscape := 0
	for i := 0; i < len(s); i++ {
		if mustEscape(s[i]) {
			toEscape++
		}
	}

	if toEscape == 0 {
		return append(dst, s...)
	}

	dst = slices.Grow(dst, len(s)+toEscape)
	for i := 0; i < len(s); i++ {
		if mustEscape(s[i]) {
			dst = append(dst, '\\')
		}
		dst = append(dst, s[i])
	}

	return dst
}

// AppendUnquoted appends s with unquoted-field escaping: a backslash before
// each of space, comma, equals, newline, carriage return, double quote and
// backslash. No surrounding quotes are emitted.
func AppendUnquoted(dst []byte, s string) []byte {
	return appendEscaped(dst, s, escapeUnquoted)
}

// AppendQuoted appends s as a quoted string column value: wrapped in double
// quotes, with a backslash before each of newline, carriage return, double
// quote and backslash.
func AppendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	dst = appendEscaped(dst, s, escapeQuoted)

	return append(dst, '"')
}
