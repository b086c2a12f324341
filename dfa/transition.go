package dfa

import "github.com/coregx/pyre/ast"

// Transition encodes a DFA edge and its capture edits in 64 bits.
//
// Bit layout (high to low):
//   - Bits 32-63: next StateID
//   - Bits 16-31: open mask, bit g-1 set when group g opens on this edge
//   - Bits 0-15: close mask, bit g-1 set when group g closes on this edge
//
// One uint64 lookup per input byte yields the next state and every capture
// edit to apply, so the match loop needs no side tables.
type Transition uint64

const (
	stateIDShift = 32
	openShift    = 16
	maskBits     = 0xFFFF
)

// NewTransition packs a target state and the capture edits of the edge.
func NewTransition(next StateID, edits ast.EditSet) Transition {
	return Transition(next)<<stateIDShift |
		Transition(edits.Open)<<openShift |
		Transition(edits.Close)
}

// NextState extracts the target state.
func (t Transition) NextState() StateID {
	return StateID(t >> stateIDShift)
}

// OpenMask returns the groups opening on this edge, one bit per group.
func (t Transition) OpenMask() uint16 {
	return uint16((t >> openShift) & maskBits)
}

// CloseMask returns the groups closing on this edge, one bit per group.
func (t Transition) CloseMask() uint16 {
	return uint16(t & maskBits)
}

// HasEdits reports whether the edge carries any capture edits.
func (t Transition) HasEdits() bool {
	return t&((maskBits<<openShift)|maskBits) != 0
}
