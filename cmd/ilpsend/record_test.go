package main

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lineproto/sender"
)

// newLoopbackSender connects a sender to a local listener and returns a
// channel delivering everything the listener received once the sender
// closes.
func newLoopbackSender(t *testing.T) (*sender.LineSender, <-chan []byte) {
	t.Helper()

	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			close(received)
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	s, err := sender.Connect(host, port)
	require.NoError(t, err)

	return s, received
}

func TestSendRecord_FullRecord(t *testing.T) {
	s, received := newLoopbackSender(t)

	rec := `{"table":"trades","symbols":{"venue":"xetra"},"columns":{"price":101.5,"qty":100},"at":1669300000000000000}`
	require.NoError(t, sendRecord(s, []byte(rec)))
	require.NoError(t, s.Flush())
	require.NoError(t, s.Close())

	require.Equal(t,
		"trades,venue=xetra price=101.5,qty=100i 1669300000000000000\n",
		string(<-received))
}

func TestSendRecord_ColumnTypesAndServerTimestamp(t *testing.T) {
	s, received := newLoopbackSender(t)

	rec := `{"table":"t","columns":{"a_bool":true,"b_str":"hi there","c_float":2.5}}`
	require.NoError(t, sendRecord(s, []byte(rec)))
	require.NoError(t, s.Flush())
	require.NoError(t, s.Close())

	require.Equal(t, "t a_bool=t,b_str=\"hi there\",c_float=2.5\n", string(<-received))
}

func TestSendRecord_MalformedRecordsDoNotPoison(t *testing.T) {
	s, received := newLoopbackSender(t)

	bad := []string{
		`not json`,
		`[1, 2, 3]`,
		`{"columns":{"a":1}}`,
		`{"table":"t"}`,
		`{"table":"t","symbols":{"s":42}}`,
		`{"table":"t","columns":{"a":1},"at":"soon"}`,
		`{"table":"bad table","columns":{"a":1}}`,
		`{"table":"t","symbols":{"bad sym":"v"},"columns":{"a":1}}`,
		`{"table":"t","columns":{"bad.col":1}}`,
		`{"table":"t","columns":{"a":{"nested":1}}}`,
	}
	for _, rec := range bad {
		require.Error(t, sendRecord(s, []byte(rec)), "record %s", rec)
		require.False(t, s.MustClose(), "record %s must not poison the sender", rec)
		require.Equal(t, 0, s.PendingSize(), "record %s must not leave a partial line", rec)
	}

	// The sender is still usable after every rejected record, and only the
	// valid record's line reaches the wire.
	require.NoError(t, sendRecord(s, []byte(`{"table":"t","columns":{"a":1}}`)))
	require.NoError(t, s.Flush())
	require.NoError(t, s.Close())

	require.Equal(t, "t a=1i\n", string(<-received))
}
