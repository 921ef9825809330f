package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lineproto/errs"
)

func TestState_Allows(t *testing.T) {
	allOps := []Op{OpTable, OpSymbol, OpColumn, OpAt, OpFlush}

	legal := map[State][]Op{
		StateConnected:       {OpTable},
		StateTableWritten:    {OpSymbol, OpColumn},
		StateSymbolWritten:   {OpSymbol, OpColumn, OpAt},
		StateColumnWritten:   {OpColumn, OpAt},
		StateMayFlushOrTable: {OpFlush, OpTable},
		StateMoribund:        {},
	}

	for state, ops := range legal {
		allowed := make(map[Op]bool, len(ops))
		for _, op := range ops {
			allowed[op] = true
		}
		for _, op := range allOps {
			require.Equal(t, allowed[op], state.Allows(op),
				"state %s op %s", state, op)
		}
	}
}

func TestTransition_LegalPaths(t *testing.T) {
	tests := []struct {
		from State
		op   Op
		want State
	}{
		{StateConnected, OpTable, StateTableWritten},
		{StateTableWritten, OpSymbol, StateSymbolWritten},
		{StateTableWritten, OpColumn, StateColumnWritten},
		{StateSymbolWritten, OpSymbol, StateSymbolWritten},
		{StateSymbolWritten, OpColumn, StateColumnWritten},
		{StateSymbolWritten, OpAt, StateMayFlushOrTable},
		{StateColumnWritten, OpColumn, StateColumnWritten},
		{StateColumnWritten, OpAt, StateMayFlushOrTable},
		{StateMayFlushOrTable, OpTable, StateTableWritten},
		{StateMayFlushOrTable, OpFlush, StateConnected},
	}

	for _, tt := range tests {
		next, err := Transition(tt.from, tt.op)
		require.NoError(t, err, "%s -> %s", tt.from, tt.op)
		require.Equal(t, tt.want, next)
	}
}

func TestTransition_IllegalPoisons(t *testing.T) {
	tests := []struct {
		from State
		op   Op
	}{
		{StateConnected, OpSymbol},
		{StateConnected, OpColumn},
		{StateConnected, OpAt},
		{StateConnected, OpFlush},
		{StateTableWritten, OpTable},
		{StateTableWritten, OpAt},
		{StateTableWritten, OpFlush},
		{StateSymbolWritten, OpTable},
		{StateSymbolWritten, OpFlush},
		{StateColumnWritten, OpTable},
		{StateColumnWritten, OpSymbol},
		{StateColumnWritten, OpFlush},
		{StateMayFlushOrTable, OpSymbol},
		{StateMayFlushOrTable, OpColumn},
		{StateMayFlushOrTable, OpAt},
	}

	for _, tt := range tests {
		next, err := Transition(tt.from, tt.op)
		require.ErrorIs(t, err, errs.ErrInvalidAPICall, "%s -> %s", tt.from, tt.op)
		require.Equal(t, StateMoribund, next)
		require.Contains(t, err.Error(), "bad call to `"+tt.op.String()+"`")
		require.Contains(t, err.Error(), tt.from.Hint())
	}
}

func TestTransition_MoribundIsTerminal(t *testing.T) {
	for _, op := range []Op{OpTable, OpSymbol, OpColumn, OpAt, OpFlush} {
		next, err := Transition(StateMoribund, op)
		require.ErrorIs(t, err, errs.ErrInvalidAPICall)
		require.Equal(t, StateMoribund, next)
		require.Contains(t, err.Error(), "unrecoverable")
	}
}
