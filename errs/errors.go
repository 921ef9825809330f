// Package errs defines the sentinel errors returned by lineproto.
//
// Callers match them with errors.Is; the wrapping message carries the
// human-readable detail (offending character, failed connection step, hint
// about the expected call).
package errs

import "errors"

var (
	// ErrInvalidName indicates a table, symbol or column name that is empty
	// or contains a reserved character. The connection stays usable; the
	// caller may correct the name and retry.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidAPICall indicates sender methods called in the wrong order,
	// e.g. Symbol after a column, or any call on a poisoned sender. The
	// sender is unusable afterwards and must be closed.
	ErrInvalidAPICall = errors.New("invalid API call order")

	// ErrAddrResolution indicates the destination host, port or bind
	// interface could not be resolved to a TCP address.
	ErrAddrResolution = errors.New("could not resolve address")

	// ErrSocket indicates a network failure while connecting or flushing.
	// A flush failure poisons the sender.
	ErrSocket = errors.New("socket error")
)
