// Package protocol implements the pure core of the line text format: the
// call-order state machine, identifier validation, quoted/unquoted escaping
// and value token formatting.
//
// Everything in this package is deterministic and allocation-conscious. The
// Append* functions follow the strconv.Append* shape: they append the wire
// encoding to a caller-supplied byte slice and return the extended slice,
// so a sender can build many lines into one reused buffer.
//
// # Wire format
//
// One record per line, newline-terminated:
//
//	table_name[,symbol_key=symbol_value]* column_key=column_value[,column_key=column_value]* [timestamp]\n
//
//   - Table names, symbol/column keys and symbol values use unquoted
//     escaping: space, comma, equals, newline, carriage return, double quote
//     and backslash are preceded by a backslash.
//   - String column values use quoted escaping: wrapped in double quotes,
//     with newline, carriage return, double quote and backslash escaped.
//   - Integer columns are decimal digits with a trailing `i`; floats are
//     shortest round-trip decimal with `Infinity`/`-Infinity` sentinels;
//     booleans are `t`/`f`.
//   - The timestamp is decimal nanoseconds since the epoch, or omitted for
//     server-assigned timestamps.
//
// # Call-order state machine
//
// Legal operations per state:
//
//	Connected        table
//	TableWritten     symbol, column
//	SymbolWritten    symbol, column, at
//	ColumnWritten    column, at
//	MayFlushOrTable  flush, table
//	Moribund         (none)
//
// Transition enforces the table above. An illegal operation returns
// StateMoribund, a terminal state from which every further operation fails;
// this guarantees a caller can never flush a half-written line after an
// ordering mistake.
package protocol
