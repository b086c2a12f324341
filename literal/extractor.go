package literal

import "github.com/coregx/pyre/ast"

// Prefixes extracts the prefix literals of a term.
//
// Returns nil when no useful prefix set exists: extraction failed on an
// inexact construct, produced no literals, or produced an empty literal
// (the pattern can match from any position).
func Prefixes(n *ast.Node, cfg Config) *Seq {
	seq := prefixes(n, cfg)
	if seq == nil {
		return nil
	}
	seq.dedup()
	if seq.Len() == 0 || seq.HasEmpty() {
		return nil
	}
	return seq
}

// prefixes returns the prefix literal set of n, or nil when the set cannot
// be enumerated within the configured bounds.
func prefixes(n *ast.Node, cfg Config) *Seq {
	switch n.Op() {
	case ast.OpEmpty:
		return &Seq{}

	case ast.OpEpsilon:
		return &Seq{lits: []Literal{{Bytes: nil, Complete: true}}}

	case ast.OpClass:
		set := n.ClassRanges()
		if set.Size() > cfg.MaxClassSize {
			return nil
		}
		var seq Seq
		for _, r := range set {
			for c := int(r.Lo); c <= int(r.Hi); c++ {
				seq.lits = append(seq.lits, Literal{
					Bytes:    []byte{byte(c)},
					Complete: true,
				})
			}
		}
		return &seq

	case ast.OpCat:
		left := prefixes(n.Sub(0), cfg)
		if left == nil {
			return nil
		}
		if !left.AllComplete() {
			return left
		}
		right := prefixes(n.Sub(1), cfg)
		if right == nil {
			return incomplete(left)
		}
		return cross(left, right, cfg)

	case ast.OpAlt:
		var out Seq
		for i := 0; i < n.NumSub(); i++ {
			sub := prefixes(n.Sub(i), cfg)
			if sub == nil {
				return nil
			}
			out.lits = append(out.lits, sub.lits...)
			if len(out.lits) > cfg.MaxLiterals {
				return nil
			}
		}
		return &out

	case ast.OpGroup, ast.OpActive:
		return prefixes(n.Sub(0), cfg)

	case ast.OpStar:
		// r* matches ε, so anything can follow immediately; the empty,
		// incomplete literal propagates that fact upward.
		return &Seq{lits: []Literal{{Bytes: nil, Complete: false}}}

	case ast.OpAnd, ast.OpNot:
		// Prefixes of intersections and complements are not enumerable from
		// the operands' prefixes.
		return nil
	}
	return nil
}

// incomplete marks every literal of s as a mere prefix.
func incomplete(s *Seq) *Seq {
	for i := range s.lits {
		s.lits[i].Complete = false
	}
	return s
}

// cross concatenates every left literal with every right literal.
func cross(left, right *Seq, cfg Config) *Seq {
	if left.Len()*right.Len() > cfg.MaxLiterals {
		return incomplete(left)
	}
	var out Seq
	for _, l := range left.lits {
		for _, r := range right.lits {
			b := make([]byte, 0, len(l.Bytes)+len(r.Bytes))
			b = append(b, l.Bytes...)
			b = append(b, r.Bytes...)
			complete := r.Complete
			if len(b) > cfg.MaxLiteralLen {
				b = b[:cfg.MaxLiteralLen]
				complete = false
			}
			out.lits = append(out.lits, Literal{Bytes: b, Complete: complete})
		}
	}
	return &out
}
