// Package meta drives matching: it owns the compiled DFA, an optional
// literal prefilter, and the search strategies built on top of them.
//
// The three entry points mirror the engine's public API: Match (anchored,
// longest accepting prefix), Search (leftmost match) and SearchAll
// (non-overlapping matches, left to right). All of them run the same tight
// loop: state, position, capture table — no backtracking and constant stack
// depth.
package meta

import (
	"sync/atomic"

	"github.com/coregx/pyre/dfa"
	"github.com/coregx/pyre/prefilter"
)

// Span is a half-open byte range [Start, End) into the input.
type Span struct {
	Start, End int
}

// Groups maps capture group ids to their spans for a single match.
// Group 0 is the full match. A nil Groups means no match.
type Groups map[int]Span

// AllGroups maps capture group ids to one span per match in which the group
// participated. Group 0 lists every full-match span.
type AllGroups map[int][]Span

// Engine executes a compiled pattern. It is immutable after construction
// and safe for concurrent use; all per-call state lives on the stack of the
// calling goroutine. Stats counters are updated atomically.
type Engine struct {
	dfa    *dfa.DFA
	pf     prefilter.Prefilter
	greedy bool

	stats Stats
}

// Stats counts engine activity. Counters are cumulative and updated with
// atomic operations, so a snapshot may be read while searches run.
type Stats struct {
	// MatchCalls counts anchored match attempts through the public API.
	MatchCalls uint64

	// SearchCalls counts Search and SearchAll invocations.
	SearchCalls uint64

	// PrefilterSeeks counts candidate lookups delegated to the prefilter.
	PrefilterSeeks uint64
}

// NewEngine builds an engine for a compiled DFA.
//
// pf may be nil. The prefilter is only consulted when the pattern cannot
// match the empty string; a nullable pattern matches at every offset and
// skipping ahead would change results.
func NewEngine(d *dfa.DFA, pf prefilter.Prefilter, greedy bool) *Engine {
	if d.IsAccept(d.Start()) {
		pf = nil
	}
	return &Engine{dfa: d, pf: pf, greedy: greedy}
}

// DFA returns the engine's compiled automaton.
func (e *Engine) DFA() *dfa.DFA { return e.dfa }

// NumGroups returns the number of capture groups in the pattern.
func (e *Engine) NumGroups() int { return e.dfa.NumGroups() }

// Stats returns a snapshot of the engine's counters.
func (e *Engine) Stats() Stats {
	return Stats{
		MatchCalls:     atomic.LoadUint64(&e.stats.MatchCalls),
		SearchCalls:    atomic.LoadUint64(&e.stats.SearchCalls),
		PrefilterSeeks: atomic.LoadUint64(&e.stats.PrefilterSeeks),
	}
}
