package meta

import (
	"sync/atomic"

	"github.com/coregx/pyre/ast"
)

// captures is the per-attempt capture table: current start and end position
// per group plus two masks tracking which groups have opened at all and
// which are open right now. The whole struct copies by value, which is how
// the match loop snapshots the table at each accepting position.
type captures struct {
	start [ast.MaxCaptureGroups + 1]int
	end   [ast.MaxCaptureGroups + 1]int
	seen  uint16
	open  uint16
}

// apply executes the capture edits of one transition. Opens record the
// pre-consumption position, closes the post-consumption position. Reopening
// a group overwrites its previous span: the last iteration wins.
func (c *captures) apply(openMask, closeMask uint16, pos int) {
	for g := 1; openMask != 0 || closeMask != 0; g++ {
		bit := uint16(1) << (g - 1)
		if openMask&bit != 0 {
			c.start[g] = pos
			c.seen |= bit
			c.open |= bit
			openMask &^= bit
		}
		if closeMask&bit != 0 {
			c.end[g] = pos + 1
			c.open &^= bit
			closeMask &^= bit
		}
	}
}

// span returns group g's span given the accepting position. A group still
// open at the accepting position closes there.
func (c *captures) span(g int, acceptPos int) (Span, bool) {
	bit := uint16(1) << (g - 1)
	if c.seen&bit == 0 {
		return Span{}, false
	}
	if c.open&bit != 0 {
		return Span{Start: c.start[g], End: acceptPos}, true
	}
	return Span{Start: c.start[g], End: c.end[g]}, true
}

// Match runs the pattern anchored at position 0 and returns the group spans
// of the longest accepting prefix, or nil when no prefix accepts.
//
// With the engine in non-greedy mode the first accepting prefix wins
// instead of the longest.
func (e *Engine) Match(input []byte) Groups {
	atomic.AddUint64(&e.stats.MatchCalls, 1)
	groups, _, ok := e.matchAt(input, 0)
	if !ok {
		return nil
	}
	return groups
}

// matchAt runs the DFA anchored at off. It returns the group table and end
// position of the chosen accepting prefix.
func (e *Engine) matchAt(input []byte, off int) (Groups, int, bool) {
	d := e.dfa
	state := d.Start()

	var caps, best captures
	bestEnd := -1
	if d.IsAccept(state) {
		bestEnd = off
		if !e.greedy {
			return e.finalize(&best, off, bestEnd), bestEnd, true
		}
	}

	for i := off; i < len(input); i++ {
		t := d.Next(state, input[i])
		next := t.NextState()
		if d.IsDead(next) {
			break
		}
		if t.HasEdits() {
			caps.apply(t.OpenMask(), t.CloseMask(), i)
		}
		state = next
		if d.IsAccept(state) {
			best = caps
			bestEnd = i + 1
			if !e.greedy {
				break
			}
		}
	}

	if bestEnd < 0 {
		return nil, 0, false
	}
	return e.finalize(&best, off, bestEnd), bestEnd, true
}

// finalize turns a capture snapshot into the reported group map.
func (e *Engine) finalize(caps *captures, off, end int) Groups {
	groups := Groups{0: Span{Start: off, End: end}}
	for g := 1; g <= e.dfa.NumGroups(); g++ {
		if span, ok := caps.span(g, end); ok {
			groups[g] = span
		}
	}
	return groups
}
