package protocol

import (
	"fmt"

	"github.com/arloliu/lineproto/errs"
)

// Op identifies one of the sender's mutating operations. Ops are declared as
// bits so a state's permission set can be expressed as a union.
type Op uint8

const (
	OpTable Op = 1 << iota
	OpSymbol
	OpColumn
	OpAt
	OpFlush
)

func (op Op) String() string {
	switch op {
	case OpTable:
		return "table"
	case OpSymbol:
		return "symbol"
	case OpColumn:
		return "column"
	case OpAt:
		return "at"
	case OpFlush:
		return "flush"
	default:
		return "unknown"
	}
}

// State is the line builder's position in the protocol grammar.
//
// StateMoribund is terminal: it is entered after an out-of-order call or a
// failed flush, permits no further operation, and can only be left by
// discarding the sender.
type State uint8

const (
	StateConnected State = iota
	StateTableWritten
	StateSymbolWritten
	StateColumnWritten
	StateMayFlushOrTable
	StateMoribund
)

// legalOps maps each state to the set of operations permitted from it.
// This table is the single source of truth for call-order legality.
var legalOps = [...]Op{
	StateConnected:       OpTable,
	StateTableWritten:    OpSymbol | OpColumn,
	StateSymbolWritten:   OpSymbol | OpColumn | OpAt,
	StateColumnWritten:   OpColumn | OpAt,
	StateMayFlushOrTable: OpFlush | OpTable,
	StateMoribund:        0,
}

// nextState maps each operation to the state reached after performing it.
// OpFlush maps to its success state; a transport failure during flush is the
// caller's signal to move to StateMoribund instead.
var nextState = map[Op]State{
	OpTable:  StateTableWritten,
	OpSymbol: StateSymbolWritten,
	OpColumn: StateColumnWritten,
	OpAt:     StateMayFlushOrTable,
	OpFlush:  StateConnected,
}

// Allows reports whether op is legal from state s.
func (s State) Allows(op Op) bool {
	return legalOps[s]&op != 0
}

// Hint describes, for error messages, which operation should have been
// performed from state s.
func (s State) Hint() string {
	switch s {
	case StateConnected:
		return "should have called `table` instead"
	case StateTableWritten:
		return "should have called `symbol` or `column` instead"
	case StateSymbolWritten:
		return "should have called `symbol`, `column` or `at` instead"
	case StateColumnWritten:
		return "should have called `column` or `at` instead"
	case StateMayFlushOrTable:
		return "should have called `flush` or `table` instead"
	case StateMoribund:
		return "unrecoverable state due to previous error"
	default:
		return "unknown state"
	}
}

func (s State) String() string {
	switch s {
	case StateConnected:
		return "Connected"
	case StateTableWritten:
		return "TableWritten"
	case StateSymbolWritten:
		return "SymbolWritten"
	case StateColumnWritten:
		return "ColumnWritten"
	case StateMayFlushOrTable:
		return "MayFlushOrTable"
	case StateMoribund:
		return "Moribund"
	default:
		return "Unknown"
	}
}

// Transition attempts op from state s and returns the next state.
//
// An illegal op returns StateMoribund together with an error naming the
// attempted operation and the expected one; the caller must adopt the
// returned state in both cases so that a misuse poisons the line builder
// before any buffer mutation can happen.
func Transition(s State, op Op) (State, error) {
	if s.Allows(op) {
		return nextState[op], nil
	}

	return StateMoribund, fmt.Errorf("%w: bad call to `%s`, %s; sender must be closed",
		errs.ErrInvalidAPICall, op, s.Hint())
}
