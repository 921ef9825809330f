package sender

import (
	"fmt"
	"io"
	"net"

	"github.com/arloliu/lineproto/errs"
	"github.com/arloliu/lineproto/internal/hash"
	"github.com/arloliu/lineproto/internal/namecache"
	"github.com/arloliu/lineproto/internal/pool"
	"github.com/arloliu/lineproto/protocol"
)

// LineSender accumulates protocol lines in an output buffer and hands the
// buffered bytes to the transport on Flush.
//
// Every mutating method validates its inputs and the call order before
// touching the buffer, so a line is either appended whole or not at all.
// An out-of-order call or a failed flush poisons the sender (see MustClose);
// the only recovery is Close and a fresh Connect.
//
// Note: LineSender is NOT thread-safe. Each instance must be used by a
// single goroutine at a time.
type LineSender struct {
	conn          io.WriteCloser
	state         protocol.State
	buf           *pool.ByteBuffer
	lastLineStart int
	names         *namecache.Cache
}

// Connect resolves host and port, opens a TCP stream with TCP_NODELAY set,
// optionally binds it to a local interface (WithNetInterface), and returns a
// sender ready for a Table call.
//
// Resolution failures wrap errs.ErrAddrResolution; socket and connect
// failures wrap errs.ErrSocket with a prefix naming the failed step. No
// partially connected sender is ever returned.
func Connect(host, port string, opts ...Option) (*LineSender, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	addr, err := cfg.resolver.ResolveHostPort(host, port)
	if err != nil {
		return nil, err
	}

	var localAddr *net.TCPAddr
	if cfg.netInterface != "" {
		bindAddr, err := cfg.resolver.ResolveHost(cfg.netInterface)
		if err != nil {
			return nil, err
		}
		localAddr = &net.TCPAddr{IP: bindAddr.IP}
	}

	conn, err := net.DialTCP("tcp4", localAddr, addr)
	if err != nil {
		if localAddr != nil {
			return nil, fmt.Errorf("%w: could not connect to %q from interface address %q: %v",
				errs.ErrSocket, net.JoinHostPort(host, port), cfg.netInterface, err)
		}

		return nil, fmt.Errorf("%w: could not connect to %q: %v",
			errs.ErrSocket, net.JoinHostPort(host, port), err)
	}

	if err := conn.SetNoDelay(true); err != nil {
		conn.Close()

		return nil, fmt.Errorf("%w: could not set TCP_NODELAY: %v", errs.ErrSocket, err)
	}

	return newLineSender(conn, cfg), nil
}

// newLineSender wires a sender onto an already-open transport. Tests use it
// with an in-memory transport.
func newLineSender(conn io.WriteCloser, cfg *senderConfig) *LineSender {
	return &LineSender{
		conn:  conn,
		state: protocol.StateConnected,
		buf:   pool.NewByteBuffer(cfg.initBufSize),
		names: namecache.New(),
	}
}

// checkName validates a table, symbol or column name, consulting the
// validated-name cache first. Only successful validations are cached, and
// validation failures never change the sender state.
func (s *LineSender) checkName(name string) error {
	id := hash.ID(name)
	if s.names.Seen(id, name) {
		return nil
	}
	if err := protocol.ValidateName(name); err != nil {
		return err
	}
	s.names.Add(id, name)

	return nil
}

// transition drives the protocol state machine. On an illegal op the sender
// adopts the Moribund state before the error is returned.
func (s *LineSender) transition(op protocol.Op) error {
	next, err := protocol.Transition(s.state, op)
	s.state = next

	return err
}

// Table starts a new line for the given table.
// Legal as the first call after Connect and after At/AtNow.
func (s *LineSender) Table(name string) error {
	if err := s.checkName(name); err != nil {
		return err
	}
	if err := s.transition(protocol.OpTable); err != nil {
		return err
	}
	s.buf.Grow(len(name))
	s.buf.B = protocol.AppendUnquoted(s.buf.B, name)

	return nil
}

// Symbol appends a symbol (an always-text, never-quoted field) to the
// current line. Symbols must precede all columns.
func (s *LineSender) Symbol(name, value string) error {
	if err := s.checkName(name); err != nil {
		return err
	}
	if err := s.transition(protocol.OpSymbol); err != nil {
		return err
	}
	s.buf.Grow(len(name) + len(value) + 2)
	s.buf.B = append(s.buf.B, ',')
	s.buf.B = protocol.AppendUnquoted(s.buf.B, name)
	s.buf.B = append(s.buf.B, '=')
	s.buf.B = protocol.AppendUnquoted(s.buf.B, value)

	return nil
}

// columnKey validates name, checks call order and writes the separator plus
// the escaped key and equals sign shared by all column kinds.
//
// The separator depends on where the line stands: the first column after the
// table name or the symbol section is preceded by a space, later columns by
// a comma. The symbol-permission test on the pre-transition state encodes
// exactly that distinction.
func (s *LineSender) columnKey(name string) error {
	if err := s.checkName(name); err != nil {
		return err
	}

	sep := byte(',')
	if s.state.Allows(protocol.OpSymbol) {
		sep = ' '
	}

	if err := s.transition(protocol.OpColumn); err != nil {
		return err
	}

	s.buf.Grow(len(name) + 2)
	s.buf.B = append(s.buf.B, sep)
	s.buf.B = protocol.AppendUnquoted(s.buf.B, name)
	s.buf.B = append(s.buf.B, '=')

	return nil
}

// BoolColumn appends a boolean column to the current line.
func (s *LineSender) BoolColumn(name string, value bool) error {
	if err := s.columnKey(name); err != nil {
		return err
	}
	s.buf.B = protocol.AppendBool(s.buf.B, value)

	return nil
}

// Int64Column appends a 64-bit integer column to the current line.
func (s *LineSender) Int64Column(name string, value int64) error {
	if err := s.columnKey(name); err != nil {
		return err
	}
	s.buf.B = protocol.AppendInt64(s.buf.B, value)

	return nil
}

// Float64Column appends a 64-bit float column to the current line.
func (s *LineSender) Float64Column(name string, value float64) error {
	if err := s.columnKey(name); err != nil {
		return err
	}
	s.buf.B = protocol.AppendFloat64(s.buf.B, value)

	return nil
}

// StringColumn appends a string column to the current line. The value is
// written with quoted escaping; symbols use Symbol instead.
func (s *LineSender) StringColumn(name, value string) error {
	if err := s.columnKey(name); err != nil {
		return err
	}
	s.buf.Grow(len(value) + 2)
	s.buf.B = protocol.AppendQuoted(s.buf.B, value)

	return nil
}

// At terminates the current line with an explicit timestamp in nanoseconds
// since the Unix epoch and commits the line to the buffer.
func (s *LineSender) At(epochNanos int64) error {
	if err := s.transition(protocol.OpAt); err != nil {
		return err
	}
	s.buf.B = append(s.buf.B, ' ')
	s.buf.B = protocol.AppendTimestamp(s.buf.B, epochNanos)
	s.buf.B = append(s.buf.B, '\n')
	s.lastLineStart = s.buf.Len()

	return nil
}

// AtNow terminates the current line without a timestamp; the server assigns
// one on receipt.
func (s *LineSender) AtNow() error {
	if err := s.transition(protocol.OpAt); err != nil {
		return err
	}
	s.buf.B = append(s.buf.B, '\n')
	s.lastLineStart = s.buf.Len()

	return nil
}

// PendingSize returns the number of buffered bytes awaiting Flush, or 0 when
// the sender is poisoned and nothing is safe to send.
func (s *LineSender) PendingSize() int {
	if s.state == protocol.StateMoribund {
		return 0
	}

	return s.buf.Len()
}

// Flush writes all buffered lines to the transport.
//
// On success the buffer is cleared and the sender is ready for the next
// Table call. On a transport failure the sender is poisoned and the buffer
// is left untouched; the caller must Close and reconnect.
func (s *LineSender) Flush() error {
	if err := s.transition(protocol.OpFlush); err != nil {
		return err
	}

	if err := s.writeAll(s.buf.Bytes()); err != nil {
		s.state = protocol.StateMoribund

		return fmt.Errorf("%w: could not flush buffered lines: %v", errs.ErrSocket, err)
	}

	s.buf.Reset()
	s.lastLineStart = 0

	return nil
}

// writeAll writes b to the transport, retrying short writes.
func (s *LineSender) writeAll(b []byte) error {
	for len(b) > 0 {
		n, err := s.conn.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}

	return nil
}

// MustClose reports whether the sender is poisoned. A poisoned sender fails
// every mutating call; the caller must Close it and connect again.
func (s *LineSender) MustClose() bool {
	return s.state == protocol.StateMoribund
}

// Close releases the transport. The sender is unusable afterwards.
// Closing an already-closed sender is a no-op.
func (s *LineSender) Close() error {
	if s.conn == nil {
		return nil
	}
	conn := s.conn
	s.conn = nil
	s.state = protocol.StateMoribund

	return conn.Close()
}
