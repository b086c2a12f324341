package ast

import "testing"

func TestPartitionShapes(t *testing.T) {
	digits := Class(NewClassSet(Range{'0', '9'}))
	lower := Class(NewClassSet(Range{'a', 'z'}))

	tests := []struct {
		name       string
		node       *Node
		wantBlocks int
	}{
		{"empty", Empty(), 1},
		{"epsilon", Epsilon(), 1},
		{"class", digits, 2},
		{"full class", Class(AnyByte()), 1},
		{"alt of disjoint classes", Alt(digits, lower), 3},
		{"cat not nullable uses left only", Cat(digits, lower), 2},
		{"cat nullable refines", Cat(Star(digits), lower), 3},
		{"not transparent", Not(digits), 2},
		{"group transparent", Group(1, digits), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Partition(tt.node)
			if len(blocks) != tt.wantBlocks {
				t.Errorf("Partition(%v) has %d blocks %v, want %d",
					tt.node, len(blocks), blocks, tt.wantBlocks)
			}
		})
	}
}

// TestPartitionCoversAlphabet checks the blocks are a partition: disjoint
// and jointly covering all 256 byte values.
func TestPartitionCoversAlphabet(t *testing.T) {
	terms := []*Node{
		Empty(),
		Class(NewClassSet(Range{'a', 'm'})),
		Alt(Class(NewClassSet(Range{'a', 'm'})), Class(NewClassSet(Range{'g', 'z'}))),
		Cat(Star(lit('a')), Alt(lit('b'), Class(NewClassSet(Range{'0', '9'})))),
		Not(Star(Alt(lit('x'), lit('y')))),
	}

	for _, term := range terms {
		blocks := Partition(term)
		var count [256]int
		for _, block := range blocks {
			for _, r := range block {
				for c := int(r.Lo); c <= int(r.Hi); c++ {
					count[c]++
				}
			}
		}
		for c, n := range count {
			if n != 1 {
				t.Errorf("term %v: byte %#x covered %d times", term, c, n)
			}
		}
	}
}

// TestPartitionCorrectness checks the defining property: bytes within one
// block have structurally equal derivatives.
func TestPartitionCorrectness(t *testing.T) {
	terms := []*Node{
		Class(NewClassSet(Range{'a', 'm'})),
		Alt(Cat(lit('a'), lit('b')), Class(NewClassSet(Range{'c', 'f'}))),
		Cat(Star(Class(NewClassSet(Range{'a', 'z'}))), Class(NewClassSet(Range{'0', '9'}))),
		And(Star(lit('a')), Not(Cat(lit('a'), lit('a')))),
		Star(Group(1, Alt(lit('p'), lit('q')))),
	}

	for _, term := range terms {
		for _, block := range Partition(term) {
			ref := derive(term, block.Min())
			for _, r := range block {
				for c := int(r.Lo); c <= int(r.Hi); c++ {
					if got := derive(term, byte(c)); !got.Equal(ref) {
						t.Errorf("term %v: ∂_%#x = %v differs from block representative's %v",
							term, c, got, ref)
					}
				}
			}
		}
	}
}
