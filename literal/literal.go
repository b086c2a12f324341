// Package literal extracts literal byte sequences from regular-expression
// terms for prefilter optimization.
//
// A match of the pattern must begin with one of the extracted prefix
// literals, so an unanchored search can skip directly between literal
// occurrences instead of attempting a match at every offset. Extraction is
// conservative: when a term's prefixes cannot be enumerated exactly (large
// classes, complement, intersection), extraction reports failure and the
// caller searches without a prefilter.
package literal

import "bytes"

// Literal is one byte sequence a match can start with. Complete marks a
// literal that is an entire match of the pattern, not just a prefix.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// Seq is a set of alternative literals.
type Seq struct {
	lits []Literal
}

// Len returns the number of literals.
func (s *Seq) Len() int { return len(s.lits) }

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal { return s.lits[i] }

// AllComplete reports whether every literal is a complete match.
func (s *Seq) AllComplete() bool {
	for _, l := range s.lits {
		if !l.Complete {
			return false
		}
	}
	return true
}

// HasEmpty reports whether any literal is empty. An empty prefix means the
// pattern can match starting anywhere, which makes a prefilter useless.
func (s *Seq) HasEmpty() bool {
	for _, l := range s.lits {
		if len(l.Bytes) == 0 {
			return true
		}
	}
	return false
}

// dedup removes duplicate literals, keeping the first occurrence.
// Completeness differences are resolved pessimistically.
func (s *Seq) dedup() {
	out := s.lits[:0]
	for _, l := range s.lits {
		dup := false
		for i, kept := range out {
			if bytes.Equal(kept.Bytes, l.Bytes) {
				if !l.Complete {
					out[i].Complete = false
				}
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	s.lits = out
}

// Config bounds extraction so pathological patterns cannot blow up the
// literal set.
type Config struct {
	// MaxLiterals caps the number of alternative literals.
	MaxLiterals int

	// MaxLiteralLen caps the length of each literal; longer literals are
	// cut off and marked incomplete.
	MaxLiteralLen int

	// MaxClassSize caps the size of character classes expanded into
	// individual literals. [abc] expands; [a-z] does not.
	MaxClassSize int
}

// DefaultConfig returns extraction limits suitable for typical patterns.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  8,
	}
}
