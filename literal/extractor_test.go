package literal

import (
	"testing"

	"github.com/coregx/pyre/ast"
)

func lit(b byte) *ast.Node {
	return ast.Class(ast.SingleByte(b))
}

func str(s string) *ast.Node {
	out := ast.Epsilon()
	for i := 0; i < len(s); i++ {
		out = ast.Cat(out, lit(s[i]))
	}
	return out
}

func literals(seq *Seq) []string {
	if seq == nil {
		return nil
	}
	out := make([]string, seq.Len())
	for i := range out {
		out[i] = string(seq.Get(i).Bytes)
	}
	return out
}

func TestPrefixes(t *testing.T) {
	tests := []struct {
		name         string
		node         *ast.Node
		want         []string
		wantComplete bool
	}{
		{
			"literal string",
			str("hello"),
			[]string{"hello"},
			true,
		},
		{
			"alternation of literals",
			ast.Alt(str("foo"), str("bar")),
			[]string{"foo", "bar"},
			true,
		},
		{
			"alternation crossed with suffix",
			ast.Cat(ast.Alt(str("foo"), str("bar")), str("baz")),
			[]string{"foobaz", "barbaz"},
			true,
		},
		{
			"literal then open tail",
			ast.Cat(str("ab"), ast.Star(ast.Class(ast.AnyByte()))),
			[]string{"ab"},
			false,
		},
		{
			"group transparent",
			ast.Group(1, str("ab")),
			[]string{"ab"},
			true,
		},
		{
			"small class expands",
			ast.Cat(ast.Class(ast.NewClassSet(ast.Range{Lo: 'a', Hi: 'c'})), lit('x')),
			[]string{"ax", "bx", "cx"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := Prefixes(tt.node, DefaultConfig())
			if seq == nil {
				t.Fatalf("Prefixes(%v) = nil, want %v", tt.node, tt.want)
			}
			got := literals(seq)
			if len(got) != len(tt.want) {
				t.Fatalf("Prefixes(%v) = %v, want %v", tt.node, got, tt.want)
			}
			seen := map[string]bool{}
			for _, l := range got {
				seen[l] = true
			}
			for _, w := range tt.want {
				if !seen[w] {
					t.Errorf("Prefixes(%v) = %v, missing %q", tt.node, got, w)
				}
			}
			if seq.AllComplete() != tt.wantComplete {
				t.Errorf("AllComplete = %v, want %v", seq.AllComplete(), tt.wantComplete)
			}
		})
	}
}

func TestPrefixesUnusable(t *testing.T) {
	tests := []struct {
		name string
		node *ast.Node
	}{
		{"nullable pattern", ast.Star(lit('a'))},
		{"leading star", ast.Cat(ast.Star(lit('a')), lit('b'))},
		{"large class", ast.Class(ast.NewClassSet(ast.Range{Lo: 'a', Hi: 'z'}))},
		{"complement", ast.Not(str("ab"))},
		{"intersection", ast.And(str("ab"), ast.Star(ast.Alt(lit('a'), lit('b'))))},
		{"alternation with open branch", ast.Alt(str("ab"), ast.Not(lit('x')))},
		{"epsilon", ast.Epsilon()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if seq := Prefixes(tt.node, DefaultConfig()); seq != nil {
				t.Errorf("Prefixes(%v) = %v, want nil", tt.node, literals(seq))
			}
		})
	}
}

func TestPrefixesRespectsLimits(t *testing.T) {
	// The cross product of two 8-way classes exceeds MaxLiterals, so
	// extraction falls back to the left side, marked incomplete.
	left := ast.Class(ast.NewClassSet(ast.Range{Lo: 'a', Hi: 'h'}))
	right := ast.Class(ast.NewClassSet(ast.Range{Lo: '0', Hi: '7'}))
	cfg := Config{MaxLiterals: 16, MaxLiteralLen: 8, MaxClassSize: 8}

	seq := Prefixes(ast.Cat(left, right), cfg)
	if seq == nil {
		t.Fatal("Prefixes = nil, want left-side literals")
	}
	if seq.Len() != 8 {
		t.Errorf("len = %d, want 8", seq.Len())
	}
	if seq.AllComplete() {
		t.Error("truncated cross product must not be complete")
	}
}
