/*
Package sexp parses and pretty-prints S-expressions.

Lists render on a single line when they fit the page width. A list which
does not fit breaks after the elements that still fit, with continuation
lines indented by one, aligning them under the first element:

	((lambda (f) (f f))
	 (lambda (f) (f f)))

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package sexp

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/npillmayer/pretty"
)

var sexpLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Atom", Pattern: `[^()\s]+`},
})

var exprParser = participle.MustBuild[Expr](
	participle.Lexer(sexpLexer),
	participle.Elide("Whitespace"),
)

// Expr is an S-expression: either an atom or a list of sub-expressions.
type Expr struct {
	Atom *string `parser:"  @Atom"`
	List []*Expr `parser:"| '(' @@* ')'"`
}

// Parse reads a single S-expression from r.
func Parse(r io.Reader) (*Expr, error) {
	return exprParser.Parse("", r)
}

// ParseString parses a single S-expression.
func ParseString(input string) (*Expr, error) {
	return exprParser.ParseString("", input)
}

// Doc returns the layout description of the expression.
func (e *Expr) Doc() pretty.Doc {
	if e.Atom != nil {
		return pretty.Text(*e.Atom)
	}
	if len(e.List) == 0 {
		return pretty.Text("()")
	}
	// separator groups nest to the right, so a broken list keeps as many
	// leading elements on the line as fit
	inner := e.List[len(e.List)-1].Doc()
	for i := len(e.List) - 2; i >= 0; i-- {
		inner = pretty.Concat(e.List[i].Doc(), pretty.Group(pretty.Concat(pretty.Line(), inner)))
	}
	return pretty.Group(pretty.Concat(
		pretty.Char('('),
		pretty.Concat(pretty.Nest(1, inner), pretty.Char(')')),
	))
}

// String returns the expression on a single line.
func (e *Expr) String() string {
	return pretty.RenderPretty(1.0, 1<<30, e.Doc()).String()
}

// Pretty parses an S-expression and renders it at the given page width,
// with the default ribbon fraction.
func Pretty(input string, pageWidth int) (string, error) {
	e, err := ParseString(input)
	if err != nil {
		return "", err
	}
	return pretty.Sprint(pageWidth, e.Doc()), nil
}
