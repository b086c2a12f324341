package dfa

import (
	"fmt"

	"github.com/coregx/pyre/ast"
	"github.com/coregx/pyre/internal/conv"
)

// builder holds the mutable state of one DFA construction. The interner is
// the only shared mutable structure and the builder owns it for the whole
// build; the frozen DFA has no reference to it.
type builder struct {
	config  Config
	classes *ByteClasses

	interned map[string]StateID // canonical key -> state
	terms    []*ast.Node
	rows     [][]Transition // per-state, indexed by byte class
	accept   []bool
	dead     StateID
	hasDead  bool
}

// intern returns the state of a canonical term, allocating a fresh id the
// first time the term is seen.
func (b *builder) intern(t *ast.Node) (StateID, error) {
	if id, ok := b.interned[t.Key()]; ok {
		return id, nil
	}
	if len(b.terms) >= b.config.MaxStates {
		return 0, &BuildError{
			Kind: StateLimitExceeded,
			Message: fmt.Sprintf("pattern too complex: more than %d states",
				b.config.MaxStates),
		}
	}
	id := StateID(conv.IntToUint32(len(b.terms)))
	b.interned[t.Key()] = id
	b.terms = append(b.terms, t)
	if t.Op() == ast.OpEmpty {
		b.dead = id
		b.hasDead = true
	}
	return id, nil
}

// expand materializes the outgoing transitions of state id: one derivative
// per block of the term's character-class partition, applied to every byte
// class the block covers.
func (b *builder) expand(id StateID) error {
	term := b.terms[id]
	row := make([]Transition, b.classes.AlphabetLen())

	for _, block := range ast.Partition(term) {
		rep := block.Min()
		var edits ast.EditSet
		deriv := ast.Derive(term, rep, &edits, false)
		next, err := b.intern(deriv)
		if err != nil {
			return err
		}
		t := NewTransition(next, edits)
		// Every byte class is contained in exactly one partition block (the
		// byte classes refine every state's partition), so filling per byte
		// writes each cell a consistent value.
		for _, r := range block {
			for c := int(r.Lo); c <= int(r.Hi); c++ {
				row[b.classes.Get(byte(c))] = t
			}
		}
	}

	b.rows = append(b.rows, row)
	b.accept = append(b.accept, term.Nullable())
	return nil
}

// freeze packs the per-state rows into the dense indexed table.
func (b *builder) freeze(numGroups int) *DFA {
	alphabetLen := b.classes.AlphabetLen()
	stride := 1
	stride2 := uint(0)
	for stride < alphabetLen {
		stride <<= 1
		stride2++
	}

	d := &DFA{
		start:       0,
		dead:        noState,
		numGroups:   numGroups,
		classes:     b.classes,
		alphabetLen: alphabetLen,
		stride:      stride,
		stride2:     stride2,
		table:       make([]Transition, len(b.rows)*stride),
		accept:      b.accept,
		terms:       b.terms,
	}
	if b.hasDead {
		d.dead = b.dead
	}
	for id, row := range b.rows {
		copy(d.table[id<<stride2:], row)
	}
	return d
}
