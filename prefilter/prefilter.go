// Package prefilter provides fast candidate filtering for unanchored
// search.
//
// A prefilter scans the haystack for the prefix literals extracted from the
// pattern and reports positions where a match could begin; the DFA then
// verifies only those positions. Strategy is picked from the literal shape:
//
//   - single one-byte literal → bytes.IndexByte
//   - single literal → bytes.Index
//   - several literals → Aho-Corasick multi-pattern automaton
//
// A prefilter candidate is a necessary condition, not a match; the caller
// always verifies with the full engine unless IsComplete reports that the
// literal set is the entire language of the pattern.
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/pyre/literal"
)

// Prefilter finds candidate match start positions.
type Prefilter interface {
	// Find returns the first candidate position at or after start, or -1.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is guaranteed to be a match,
	// i.e. the literal set covers the pattern's entire language.
	IsComplete() bool
}

// FromSeq builds the best prefilter for a literal sequence, or nil when the
// sequence does not support one.
func FromSeq(seq *literal.Seq) Prefilter {
	if seq == nil || seq.Len() == 0 || seq.HasEmpty() {
		return nil
	}
	complete := seq.AllComplete()

	if seq.Len() == 1 {
		lit := seq.Get(0).Bytes
		if len(lit) == 1 {
			return &memchrPrefilter{b: lit[0], complete: complete}
		}
		return &memmemPrefilter{needle: lit, complete: complete}
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{auto: auto, complete: complete}
}

// memchrPrefilter finds occurrences of a single byte.
type memchrPrefilter struct {
	b        byte
	complete bool
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	i := bytes.IndexByte(haystack[start:], p.b)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *memchrPrefilter) IsComplete() bool { return p.complete }

// memmemPrefilter finds occurrences of a single literal.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	i := bytes.Index(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *memmemPrefilter) IsComplete() bool { return p.complete }

// ahoCorasickPrefilter finds occurrences of any of several literals with a
// multi-pattern automaton.
type ahoCorasickPrefilter struct {
	auto     *ahocorasick.Automaton
	complete bool
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }
