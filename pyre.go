// Package pyre is a regular-expression engine built on Brzozowski
// derivatives.
//
// Instead of compiling through an NFA and subset construction, pyre builds
// a DFA directly from the expression: every state is a canonical regex
// term, and the outgoing edges of a state are its derivatives. Because
// derivatives are closed under boolean operations, the surface syntax
// supports two operators mainstream engines lack: intersection (R&S) and
// complement (~R), plus difference (R-S) and symmetric difference (R^S) on
// top of them.
//
// Basic usage:
//
//	re, err := pyre.Compile(`(a|b)c`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	groups := re.Match([]byte("ac"))
//	// groups[0] == pyre.Span{Start: 0, End: 2}
//	// groups[1] == pyre.Span{Start: 0, End: 1}
//
// Boolean operators:
//
//	re := pyre.MustCompile(`.*&~.*bad.*`) // anything not containing "bad"
//	re.Match([]byte("good things"))       // matches
//
// Matching is anchored and longest-prefix for Match; Search and SearchAll
// scan for the leftmost and for all non-overlapping matches. Capture-group
// spans are recovered in the same single pass over the input; there is no
// backtracking and matching is O(n) in the input length.
//
// A compiled Regex is immutable and safe for concurrent use from multiple
// goroutines.
package pyre

import (
	"github.com/coregx/pyre/dfa"
	"github.com/coregx/pyre/literal"
	"github.com/coregx/pyre/meta"
	"github.com/coregx/pyre/prefilter"
	"github.com/coregx/pyre/syntax"
)

// Span is a half-open byte range [Start, End) into the input.
type Span = meta.Span

// Groups maps capture group ids to spans for one match; group 0 is the
// full match. A nil Groups means no match.
type Groups = meta.Groups

// AllGroups maps capture group ids to one span per match; group 0 lists
// the full-match spans.
type AllGroups = meta.AllGroups

// Config adjusts compilation and matching behavior.
type Config struct {
	// MaxStates bounds DFA construction; compilation of a pattern needing
	// more canonical states fails with a "pattern too complex" error.
	MaxStates int

	// DotExcludesNewline makes '.' match any byte except '\n'. Off by
	// default: '.' matches any byte.
	DotExcludesNewline bool

	// Greedy selects longest-prefix matching (the default). When false a
	// match ends at the first accepting position instead.
	Greedy bool
}

// DefaultConfig returns the defaults used by Compile.
func DefaultConfig() Config {
	return Config{
		MaxStates: 10000,
		Greedy:    true,
	}
}

// Regex is a compiled pattern.
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern with the default configuration.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a pattern and panics on failure. Useful for
// patterns known valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("pyre: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with explicit configuration.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	tree, err := syntax.Parse(pattern, syntax.Options{
		DotExcludesNewline: config.DotExcludesNewline,
	})
	if err != nil {
		return nil, err
	}

	d, err := dfa.Compile(tree.Root, dfa.Config{MaxStates: config.MaxStates})
	if err != nil {
		return nil, err
	}

	pf := prefilter.FromSeq(literal.Prefixes(tree.Root, literal.DefaultConfig()))
	return &Regex{
		engine:  meta.NewEngine(d, pf, config.Greedy),
		pattern: pattern,
	}, nil
}

// Match runs the pattern anchored at the start of input and returns the
// group spans of the longest accepting prefix, or nil when no prefix
// matches.
func (re *Regex) Match(input []byte) Groups {
	return re.engine.Match(input)
}

// MatchString is Match on a string input.
func (re *Regex) MatchString(input string) Groups {
	return re.engine.Match([]byte(input))
}

// Search scans input for the leftmost match and returns its group spans,
// or nil when the pattern matches nowhere.
func (re *Regex) Search(input []byte) Groups {
	return re.engine.Search(input)
}

// SearchString is Search on a string input.
func (re *Regex) SearchString(input string) Groups {
	return re.engine.Search([]byte(input))
}

// SearchAll returns the group spans of every non-overlapping match, left
// to right, or nil when the pattern matches nowhere.
func (re *Regex) SearchAll(input []byte) AllGroups {
	return re.engine.SearchAll(input)
}

// IsMatch reports whether the pattern matches anywhere in input.
func (re *Regex) IsMatch(input []byte) bool {
	return re.engine.IsMatch(input)
}

// NumGroups returns the number of capture groups in the pattern.
func (re *Regex) NumGroups() int {
	return re.engine.NumGroups()
}

// String returns the source pattern.
func (re *Regex) String() string {
	return re.pattern
}

// DebugString renders the compiled DFA for inspection: states with their
// canonical terms, accept flags and per-class transitions with capture
// edits.
func (re *Regex) DebugString() string {
	return re.engine.DFA().DebugString()
}

// Stats returns a snapshot of the engine's activity counters.
func (re *Regex) Stats() meta.Stats {
	return re.engine.Stats()
}
