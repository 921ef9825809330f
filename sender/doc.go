// Package sender implements the line sender: the stateful composition of
// the protocol core with an output buffer and a TCP transport.
//
// A sender is obtained with Connect and driven through the per-line call
// sequence Table -> Symbol* -> *Column* -> At/AtNow, repeated per line, with
// an explicit Flush handing the accumulated lines to the server:
//
//	sender, err := sender.Connect("localhost", "9009")
//	if err != nil {
//	    return err
//	}
//	defer sender.Close()
//
//	err = sender.Table("trades")
//	err = sender.Symbol("venue", "xetra")
//	err = sender.Float64Column("price", 101.5)
//	err = sender.Int64Column("qty", 300)
//	err = sender.AtNow()
//	err = sender.Flush()
//
// Errors are synchronous and never retried or logged internally. Invalid
// names leave the sender usable; an out-of-order call or a flush failure
// poisons it (MustClose reports this) and the sender must be closed.
//
// The sender performs no internal locking; concurrent use from multiple
// goroutines requires external mutual exclusion.
package sender
