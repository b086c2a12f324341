// Package syntax parses the surface regex syntax into the engine's term
// language.
//
// Grammar, loosest to tightest binding:
//
//	expr    := and (('|' | '^' | '-') and)*     union, xor, difference
//	and     := not ('&' not)*                   intersection
//	not     := '~' not | concat                 complement
//	concat  := postfix+                         juxtaposition
//	postfix := primary ('*' | '+' | '?' | '{' repeat '}')*
//	primary := '(' expr ')' | '[' class ']' | '.' | 'ε' | '\d'
//	         | escaped | char
//
// Difference and symmetric difference desugar into the core algebra
// (r-s = r&~s, r^s = (r&~s)|(s&~r)); '+', '?' and counted repeats expand
// structurally. Capture groups are numbered left to right by opening
// parenthesis, starting at 1.
package syntax

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/coregx/pyre/ast"
)

// Options adjusts surface-syntax interpretation.
type Options struct {
	// DotExcludesNewline makes '.' match any byte except '\n'.
	// The default ('.' matches any byte) follows the CLI's behavior.
	DotExcludesNewline bool
}

// Tree is a parsed pattern.
type Tree struct {
	// Root is the canonical term of the pattern.
	Root *ast.Node

	// NumGroups is the number of capture groups.
	NumGroups int
}

// Parse parses a pattern into its canonical term.
func Parse(pattern string, opts Options) (*Tree, error) {
	toks, err := lexPattern(pattern)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, opts: opts}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected %q", t.val)
	}
	return &Tree{Root: root, NumGroups: p.groupCount}, nil
}

type parser struct {
	toks       []token
	pos        int
	groupCount int
	opts       Options
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &Error{Pos: t.off, Msg: fmt.Sprintf(format, args...)}
}

// parseExpr handles the loosest level: union, symmetric difference and
// difference, all left-associative at the same precedence.
func (p *parser) parseExpr() (*ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case "Or":
			p.next()
			right, err := p.parseAnd()
			if err != nil {
				return nil, err
			}
			left = ast.Alt(left, right)
		case "Minus":
			p.next()
			right, err := p.parseAnd()
			if err != nil {
				return nil, err
			}
			left = ast.And(left, ast.Not(right))
		case "Caret":
			p.next()
			right, err := p.parseAnd()
			if err != nil {
				return nil, err
			}
			left = ast.Alt(
				ast.And(left, ast.Not(right)),
				ast.And(right, ast.Not(left)),
			)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseAnd() (*ast.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == "And" {
		p.next()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = ast.And(left, right)
	}
	return left, nil
}

func (p *parser) parseNot() (*ast.Node, error) {
	if p.peek().kind == "Not" {
		p.next()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ast.Not(inner), nil
	}
	return p.parseConcat()
}

func (p *parser) parseConcat() (*ast.Node, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for p.startsPrimary() {
		right, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		left = ast.Cat(left, right)
	}
	return left, nil
}

func (p *parser) startsPrimary() bool {
	switch p.peek().kind {
	case "LParen", "LSquare", "Dot", "Epsilon", "Digits", "Escaped", "Char":
		return true
	}
	return false
}

func (p *parser) parsePostfix() (*ast.Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case "Star":
			p.next()
			node = ast.Star(node)
		case "Plus":
			p.next()
			node = ast.Cat(node, ast.Star(node))
		case "QMark":
			p.next()
			node = ast.Alt(node, ast.Epsilon())
		case "LCurly":
			p.next()
			node, err = p.parseRepeat(node)
			if err != nil {
				return nil, err
			}
		default:
			return node, nil
		}
	}
}

func (p *parser) parsePrimary() (*ast.Node, error) {
	t := p.next()
	switch t.kind {
	case "LParen":
		if p.groupCount >= 255 {
			return nil, p.errorf(t, "too many capture groups")
		}
		p.groupCount++
		g := p.groupCount
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if end := p.next(); end.kind != "RParen" {
			return nil, p.errorf(end, "expected ')'")
		}
		return ast.Group(g, inner), nil

	case "LSquare":
		return p.parseClass(t)

	case "Dot":
		if p.opts.DotExcludesNewline {
			return ast.Class(ast.SingleByte('\n').Complement()), nil
		}
		return ast.Class(ast.AnyByte()), nil

	case "Epsilon":
		return ast.Epsilon(), nil

	case "Digits":
		return ast.Class(ast.ClassSet{{Lo: '0', Hi: '9'}}), nil

	case "Escaped":
		return literalNode(unescape(t.val)), nil

	case "Char":
		r, _ := utf8.DecodeRuneInString(t.val)
		return literalNode(r), nil
	}
	return nil, p.errorf(t, "unexpected %q", t.val)
}

// parseClass consumes the body of a bracket expression; the opening
// LSquare has already been read.
func (p *parser) parseClass(open token) (*ast.Node, error) {
	negate := false
	if p.peek().kind == "ClassCaret" {
		p.next()
		negate = true
	}

	var ranges []ast.Range
	seen := false
	for {
		t := p.next()
		switch t.kind {
		case "ClassEnd":
			if !seen {
				return nil, p.errorf(open, "empty character class")
			}
			set := ast.NewClassSet(ranges...)
			if negate {
				set = set.Complement()
			}
			return ast.Class(set), nil

		case tokEOF:
			return nil, p.errorf(t, "unterminated character class")

		default:
			lo, err := p.classByte(t)
			if err != nil {
				return nil, err
			}
			hi := lo
			if p.peek().kind == "ClassMinus" {
				p.next()
				end := p.next()
				hi, err = p.classByte(end)
				if err != nil {
					return nil, err
				}
				if hi < lo {
					return nil, p.errorf(end, "range out of order")
				}
			}
			ranges = append(ranges, ast.Range{Lo: lo, Hi: hi})
			seen = true
		}
	}
}

// classByte interprets a token inside a bracket expression as one byte.
func (p *parser) classByte(t token) (byte, error) {
	switch t.kind {
	case "ClassChar":
		r, _ := utf8.DecodeRuneInString(t.val)
		if r > 0x7F {
			return 0, p.errorf(t, "non-ASCII character in class")
		}
		return byte(r), nil
	case "ClassEscaped":
		r := unescape(t.val)
		if r > 0x7F {
			return 0, p.errorf(t, "non-ASCII character in class")
		}
		return byte(r), nil
	case "ClassCaret":
		return '^', nil
	case "ClassMinus":
		return 0, p.errorf(t, "misplaced '-' in class")
	}
	return 0, p.errorf(t, "unexpected %q in class", t.val)
}

// parseRepeat consumes a counted repetition; the opening LCurly has been
// read. The forms {n}, {m,}, {,n} and {m,n} all expand structurally.
func (p *parser) parseRepeat(node *ast.Node) (*ast.Node, error) {
	var lo, hi int
	haveLo, haveHi, comma := false, false, false

	for {
		t := p.next()
		switch t.kind {
		case "Int":
			v, err := strconv.Atoi(t.val)
			if err != nil {
				return nil, p.errorf(t, "bad repeat count")
			}
			if comma {
				hi, haveHi = v, true
			} else {
				lo, haveLo = v, true
			}
		case "Comma":
			if comma {
				return nil, p.errorf(t, "unexpected ','")
			}
			comma = true
		case "RepeatEnd":
			return expandRepeat(node, lo, hi, haveLo, haveHi, comma, t, p)
		case tokEOF:
			return nil, p.errorf(t, "unterminated repetition")
		default:
			return nil, p.errorf(t, "unexpected %q in repetition", t.val)
		}
	}
}

func expandRepeat(node *ast.Node, lo, hi int, haveLo, haveHi, comma bool, t token, p *parser) (*ast.Node, error) {
	switch {
	case haveLo && !comma:
		// {n}: exactly n copies.
		return timesExactly(node, lo), nil

	case haveLo && comma && !haveHi:
		// {m,}: m copies then closure.
		return ast.Cat(timesExactly(node, lo), ast.Star(node)), nil

	case !haveLo && comma && haveHi:
		// {,n}: 0 through n copies.
		return timesUpTo(node, 0, hi), nil

	case haveLo && comma && haveHi:
		if hi < lo {
			return nil, p.errorf(t, "repetition bounds out of order")
		}
		return timesUpTo(node, lo, hi), nil
	}
	return nil, p.errorf(t, "empty repetition")
}

// timesExactly builds n concatenated copies of node; zero copies is ε.
func timesExactly(node *ast.Node, n int) *ast.Node {
	out := ast.Epsilon()
	for i := 0; i < n; i++ {
		out = ast.Cat(out, node)
	}
	return out
}

// timesUpTo builds the union of lo through hi concatenated copies.
func timesUpTo(node *ast.Node, lo, hi int) *ast.Node {
	out := ast.Empty()
	for k := lo; k <= hi; k++ {
		out = ast.Alt(out, timesExactly(node, k))
	}
	return out
}

// literalNode builds the term matching a single rune literally. Runes
// beyond ASCII match their UTF-8 encoding byte by byte.
func literalNode(r rune) *ast.Node {
	if r < utf8.RuneSelf {
		return ast.Class(ast.SingleByte(byte(r)))
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	out := ast.Epsilon()
	for _, b := range buf[:n] {
		out = ast.Cat(out, ast.Class(ast.SingleByte(b)))
	}
	return out
}

// unescape maps an Escaped token ("\x") to the rune it denotes. Control
// escapes follow C; any other escaped rune stands for itself.
func unescape(val string) rune {
	r, _ := utf8.DecodeRuneInString(val[1:])
	switch r {
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 't':
		return '\t'
	case 'n':
		return '\n'
	case 'v':
		return '\v'
	case 'f':
		return '\f'
	case 'r':
		return '\r'
	}
	return r
}
