// Package dfa builds and represents the deterministic automaton of a
// regular-expression term.
//
// Construction is the classic Brzozowski worklist: every state is a
// canonical term, the start state is the compiled pattern itself, and the
// outgoing edges of a state are the derivatives of its term, one per block
// of the term's character-class partition. Interning canonical terms makes
// equal derivatives the same state, which keeps the automaton finite and
// small.
//
// Capture tracking lives on the edges: each transition carries the open and
// close edits recorded while its derivative was computed, so the match loop
// recovers group spans in a single pass with no backtracking.
//
// A DFA is immutable after Compile returns and safe to share across
// goroutines; per-match state belongs to the caller.
package dfa

import (
	"fmt"
	"strings"

	"github.com/coregx/pyre/ast"
)

// StateID identifies a DFA state.
type StateID uint32

// noState marks the absence of a state (e.g. no dead state was interned).
const noState = StateID(0xFFFFFFFF)

// DFA is a compiled automaton with a dense transition table.
//
// The table is laid out as table[stateID << stride2 | byteClass], with
// stride the next power of two at or above the alphabet size, so stepping
// on one input byte is a shift, an or and a single load.
type DFA struct {
	start     StateID
	dead      StateID // state of the ∅ term, or noState
	numGroups int

	classes     *ByteClasses
	alphabetLen int
	stride      int
	stride2     uint

	table  []Transition
	accept []bool

	// terms keeps each state's canonical term for debug output.
	terms []*ast.Node
}

// Start returns the start state.
func (d *DFA) Start() StateID { return d.start }

// NumStates returns the number of interned states.
func (d *DFA) NumStates() int { return len(d.accept) }

// NumGroups returns the number of capture groups in the pattern.
func (d *DFA) NumGroups() int { return d.numGroups }

// IsAccept reports whether s accepts (its term is nullable).
func (d *DFA) IsAccept(s StateID) bool { return d.accept[s] }

// IsDead reports whether s is the dead state: the ∅ term, from which no
// input can ever reach an accepting state.
func (d *DFA) IsDead(s StateID) bool { return s == d.dead }

// Next returns the transition taken from s on input byte b.
func (d *DFA) Next(s StateID, b byte) Transition {
	return d.table[int(s)<<d.stride2|int(d.classes.Get(b))]
}

// Compile constructs the DFA of a canonical term.
//
// Construction terminates for every term: the set of canonical derivatives
// is finite. Config.MaxStates bounds the state count as a resource ceiling
// and construction fails with a StateLimitExceeded BuildError beyond it.
func Compile(root *ast.Node, config Config) (*DFA, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	numGroups := ast.MaxGroup(root)
	if numGroups > ast.MaxCaptureGroups {
		return nil, &BuildError{
			Kind: TooManyCaptures,
			Message: fmt.Sprintf("pattern has %d capture groups, limit is %d",
				numGroups, ast.MaxCaptureGroups),
		}
	}

	b := &builder{
		config:   config,
		classes:  byteClassesFor(root),
		interned: map[string]StateID{},
	}
	if _, err := b.intern(root); err != nil {
		return nil, err
	}

	// Expand states in interning order. Every intern appends exactly one
	// term, so the slice doubles as the worklist.
	for id := 0; id < len(b.terms); id++ {
		if err := b.expand(StateID(id)); err != nil {
			return nil, err
		}
	}

	return b.freeze(numGroups), nil
}

// DebugString renders the automaton: one block per state with its canonical
// term, accept flag and per-class transitions with capture edits.
func (d *DFA) DebugString() string {
	var sb strings.Builder
	classSets := d.classSets()
	fmt.Fprintf(&sb, "states: %d, byte classes: %d, groups: %d\n",
		d.NumStates(), d.alphabetLen, d.numGroups)
	for id := range d.accept {
		s := StateID(id)
		mark := " "
		if d.IsAccept(s) {
			mark = "*"
		}
		fmt.Fprintf(&sb, "q%d%s: %s\n", id, mark, d.terms[id])
		for class, set := range classSets {
			t := d.table[int(s)<<d.stride2|class]
			fmt.Fprintf(&sb, "    %s -> q%d", set, t.NextState())
			writeEditMask(&sb, " open", t.OpenMask())
			writeEditMask(&sb, " close", t.CloseMask())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// classSets inverts the byte-class mapping back into one ClassSet per class.
func (d *DFA) classSets() []ast.ClassSet {
	ranges := make([][]ast.Range, d.alphabetLen)
	for b := 0; b < 256; b++ {
		c := d.classes.Get(byte(b))
		ranges[c] = append(ranges[c], ast.Range{Lo: byte(b), Hi: byte(b)})
	}
	sets := make([]ast.ClassSet, d.alphabetLen)
	for c, rs := range ranges {
		sets[c] = ast.NewClassSet(rs...)
	}
	return sets
}

func writeEditMask(sb *strings.Builder, label string, mask uint16) {
	if mask == 0 {
		return
	}
	sb.WriteString(label)
	sb.WriteByte('{')
	first := true
	for g := 1; g <= ast.MaxCaptureGroups; g++ {
		if mask&(1<<(g-1)) == 0 {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		fmt.Fprintf(sb, "%d", g)
	}
	sb.WriteByte('}')
}
