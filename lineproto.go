// Package lineproto implements a client-side encoder for a line-oriented
// text ingestion protocol: one newline-terminated row of table name,
// comma-separated symbol and column key=value pairs, and an optional
// timestamp, accumulated in a buffer and flushed to a TCP endpoint.
//
// # Core Features
//
//   - Incremental line building with a call-order state machine that makes
//     syntactically invalid output impossible
//   - Identifier validation with exact offending-character reporting
//   - Quoted and unquoted escaping strategies with a zero-allocation fast
//     path for values needing no escaping
//   - Integer (`i`-suffixed), float (`Infinity` sentinels), boolean and
//     quoted-string column formatting
//   - Poison-on-misuse: an out-of-order call or failed flush leaves the
//     sender in a terminal state instead of emitting a half-written line
//
// # Basic Usage
//
//	s, err := lineproto.Connect("localhost", "9009")
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	if err := s.Table("trades"); err != nil {
//	    return err
//	}
//	s.Symbol("venue", "xetra")
//	s.Float64Column("price", 101.5)
//	s.Int64Column("qty", 300)
//	if err := s.AtNow(); err != nil {
//	    return err
//	}
//	if err := s.Flush(); err != nil {
//	    return err
//	}
//
// This produces the line:
//
//	trades,venue=xetra price=101.5,qty=300i\n
//
// Connection behavior is tuned with functional options, e.g.
// sender.WithNetInterface to bind the outgoing socket and
// sender.WithInitBufferSize to size the output buffer.
//
// The subpackages carry the implementation: package protocol holds the pure
// encoding core (state machine, validation, escaping, formatting), package
// sender the buffered TCP orchestration, and package errs the sentinel
// errors for errors.Is matching.
package lineproto

import (
	"github.com/arloliu/lineproto/sender"
)

// Connect opens a TCP connection to the ingestion endpoint at host:port and
// returns a sender ready for its first Table call.
//
// It is a convenience wrapper around sender.Connect.
func Connect(host, port string, opts ...sender.Option) (*sender.LineSender, error) {
	return sender.Connect(host, port, opts...)
}
