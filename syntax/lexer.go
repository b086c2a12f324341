package syntax

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// The lexer is stateful: '[' switches into the Class state where
// metacharacters lose their meaning, '{' into the Repeat state where only
// integers and a comma are valid. This mirrors the three lexing modes of
// the surface grammar. Spaces and tabs are insignificant in a pattern,
// inside classes and repetitions too (match a literal space with '\ ').
var lexerDef = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Digits", Pattern: `\\d`},
		{Name: "Escaped", Pattern: `\\[\s\S]`},
		{Name: "Epsilon", Pattern: `ε`},
		{Name: "LSquare", Pattern: `\[`, Action: lexer.Push("Class")},
		{Name: "LCurly", Pattern: `\{`, Action: lexer.Push("Repeat")},
		{Name: "Or", Pattern: `\|`},
		{Name: "And", Pattern: `&`},
		{Name: "Not", Pattern: `~`},
		{Name: "Caret", Pattern: `\^`},
		{Name: "Minus", Pattern: `-`},
		{Name: "Star", Pattern: `\*`},
		{Name: "Plus", Pattern: `\+`},
		{Name: "QMark", Pattern: `\?`},
		{Name: "Dot", Pattern: `\.`},
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},
		{Name: "Char", Pattern: `[\s\S]`},
	},
	"Class": {
		{Name: "ClassWS", Pattern: `[ \t]+`},
		{Name: "ClassEnd", Pattern: `\]`, Action: lexer.Pop()},
		{Name: "ClassEscaped", Pattern: `\\[\s\S]`},
		{Name: "ClassCaret", Pattern: `\^`},
		{Name: "ClassMinus", Pattern: `-`},
		{Name: "ClassChar", Pattern: `[^\]]`},
	},
	"Repeat": {
		{Name: "RepeatWS", Pattern: `[ \t]+`},
		{Name: "RepeatEnd", Pattern: `\}`, Action: lexer.Pop()},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Comma", Pattern: `,`},
	},
})

// token is one lexed token with its kind name and byte offset.
type token struct {
	kind string
	val  string
	off  int
}

const tokEOF = "EOF"

// lexPattern tokenizes the whole pattern up front, dropping insignificant
// whitespace. The parser works on the resulting slice.
func lexPattern(pattern string) ([]token, error) {
	names := make(map[lexer.TokenType]string, len(lexerDef.Symbols()))
	for name, typ := range lexerDef.Symbols() {
		names[typ] = name
	}

	lx, err := lexerDef.LexString("pattern", pattern)
	if err != nil {
		return nil, &Error{Pos: 0, Msg: err.Error()}
	}

	var toks []token
	for {
		t, err := lx.Next()
		if err != nil {
			return nil, &Error{Pos: len(pattern), Msg: err.Error()}
		}
		if t.EOF() {
			break
		}
		kind := names[t.Type]
		if kind == "Whitespace" || kind == "ClassWS" || kind == "RepeatWS" {
			continue
		}
		toks = append(toks, token{kind: kind, val: t.Value, off: t.Pos.Offset})
	}
	toks = append(toks, token{kind: tokEOF, off: len(pattern)})
	return toks, nil
}
