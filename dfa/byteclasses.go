package dfa

import "github.com/coregx/pyre/ast"

// ByteClasses maps each byte value to its equivalence class.
//
// This is an alphabet reduction: bytes the pattern can never tell apart
// share a class, so a DFA state stores one transition per class instead of
// 256. For a pattern like [a-z]+ that is three classes (below 'a', 'a'-'z',
// above 'z') instead of 256 transitions per state.
//
// The classes are computed once, from the character-class leaves of the
// compiled term. Derivatives never introduce byte sets that are not already
// leaves of the original term, so this single mapping is a refinement of
// every state's transition partition and is valid for the whole DFA.
type ByteClasses struct {
	classes [256]byte
	count   int
}

// Get returns the equivalence class of b.
func (bc *ByteClasses) Get(b byte) byte {
	return bc.classes[b]
}

// AlphabetLen returns the number of distinct classes.
func (bc *ByteClasses) AlphabetLen() int {
	return bc.count
}

// Representatives returns one byte per class, in class order.
func (bc *ByteClasses) Representatives() []byte {
	reps := make([]byte, 0, bc.count)
	seen := make([]bool, bc.count)
	for b := 0; b < 256; b++ {
		c := bc.classes[b]
		if !seen[c] {
			seen[c] = true
			reps = append(reps, byte(b))
		}
	}
	return reps
}

// byteClassesFor builds the byte equivalence classes for a term.
//
// Every range boundary of every class leaf starts a new equivalence class;
// bytes between two consecutive boundaries behave identically in every leaf
// and therefore in every derivative.
func byteClassesFor(root *ast.Node) *ByteClasses {
	// boundary[b] marks that a new class starts at byte value b.
	var boundary [257]bool
	boundary[0] = true
	ast.VisitClasses(root, func(s ast.ClassSet) {
		for _, r := range s {
			boundary[r.Lo] = true
			boundary[int(r.Hi)+1] = true
		}
	})

	bc := &ByteClasses{}
	class := -1
	for b := 0; b < 256; b++ {
		if boundary[b] {
			class++
		}
		bc.classes[b] = byte(class)
	}
	bc.count = class + 1
	return bc
}
