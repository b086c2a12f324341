package ast

import "testing"

func lit(b byte) *Node {
	return Class(SingleByte(b))
}

func TestSmartConstructorIdentities(t *testing.T) {
	a, b, c := lit('a'), lit('b'), lit('c')

	tests := []struct {
		name string
		got  *Node
		want *Node
	}{
		{"cat empty left", Cat(Empty(), a), Empty()},
		{"cat empty right", Cat(a, Empty()), Empty()},
		{"cat epsilon left", Cat(Epsilon(), a), a},
		{"cat epsilon right", Cat(a, Epsilon()), a},
		{"cat right assoc", Cat(Cat(a, b), c), Cat(a, Cat(b, c))},

		{"alt empty left", Alt(Empty(), a), a},
		{"alt empty right", Alt(a, Empty()), a},
		{"alt idempotent", Alt(a, a), a},
		{"alt commutative", Alt(b, a), Alt(a, b)},
		{"alt flattens", Alt(Alt(a, b), c), Alt(a, Alt(b, c))},
		{"alt dedups across nesting", Alt(Alt(a, b), Alt(b, a)), Alt(a, b)},

		{"and empty", And(a, Empty()), Empty()},
		{"and idempotent", And(a, a), a},
		{"and commutative", And(b, a), And(a, b)},
		{"and sigma star", And(Star(Class(AnyByte())), a), a},

		{"not involution", Not(Not(a)), a},

		{"star empty", Star(Empty()), Epsilon()},
		{"star epsilon", Star(Epsilon()), Epsilon()},
		{"star star", Star(Star(a)), Star(a)},

		{"class empty", Class(nil), Empty()},

		{"group of empty", Group(1, Empty()), Empty()},
		{"group of epsilon", Group(1, Epsilon()), Epsilon()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestGroupNotSimplifiedAway(t *testing.T) {
	a := lit('a')
	if Group(1, a).Equal(a) {
		t.Error("Group(1, a) must stay distinct from a")
	}
	if Group(1, a).Equal(Group(2, a)) {
		t.Error("groups with different ids must differ")
	}
}

func TestTotalOrder(t *testing.T) {
	a, b := lit('a'), lit('b')

	if Compare(a, a) != 0 {
		t.Error("Compare(a, a) != 0")
	}
	if Compare(a, b) == 0 {
		t.Error("Compare(a, b) == 0")
	}
	if Compare(a, b) == Compare(b, a) {
		t.Error("Compare must be antisymmetric")
	}
	// Constructor tag is the primary sort key.
	if Compare(Empty(), a) >= 0 {
		t.Error("∅ must sort before a class term")
	}
}

func TestNullable(t *testing.T) {
	a, b := lit('a'), lit('b')

	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"empty", Empty(), false},
		{"epsilon", Epsilon(), true},
		{"class", a, false},
		{"cat not nullable", Cat(a, b), false},
		{"cat nullable", Cat(Star(a), Star(b)), true},
		{"cat mixed", Cat(Star(a), b), false},
		{"alt nullable", Alt(a, Epsilon()), true},
		{"alt not nullable", Alt(a, b), false},
		{"and nullable", And(Star(a), Star(b)), true},
		{"and mixed", And(Star(a), b), false},
		{"not flips", Not(a), true},
		{"not flips back", Not(Star(a)), false},
		{"star", Star(a), true},
		{"group transparent", Group(1, Star(a)), true},
		{"group not nullable", Group(1, a), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Nullable(); got != tt.want {
				t.Errorf("Nullable(%v) = %v, want %v", tt.node, got, tt.want)
			}
		})
	}
}

func TestMaxGroup(t *testing.T) {
	a, b := lit('a'), lit('b')
	n := Cat(Group(1, a), Alt(Group(3, b), Group(2, a)))
	if got := MaxGroup(n); got != 3 {
		t.Errorf("MaxGroup = %d, want 3", got)
	}
	if got := MaxGroup(Cat(a, b)); got != 0 {
		t.Errorf("MaxGroup without groups = %d, want 0", got)
	}
}

func TestVisitClasses(t *testing.T) {
	n := Cat(lit('a'), Not(Alt(lit('b'), Star(Class(NewClassSet(Range{'0', '9'}))))))
	var seen []ClassSet
	VisitClasses(n, func(s ClassSet) { seen = append(seen, s) })
	if len(seen) != 3 {
		t.Fatalf("visited %d classes, want 3", len(seen))
	}
}
