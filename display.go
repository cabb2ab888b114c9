package pretty

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.
*/

import (
	"io"
	"iter"
	"strings"
)

// TokenKind discriminates the output tokens of a rendered document.
type TokenKind byte

const (
	TokChar TokenKind = iota // a single character
	TokText                  // a literal run
	TokLine                  // a newline plus Indent spaces
)

// Token is one element of the output sequence of a SimpleDoc. A sink
// receives characters and literal runs verbatim; for a TokLine it emits a
// newline followed by exactly Indent space characters.
type Token struct {
	Kind   TokenKind
	Char   rune   // set for TokChar
	Text   string // set for TokText
	Indent int    // set for TokLine
}

// Tokens returns an iterator over the output tokens of the rendered
// document, in emission order. The walk is a single left-to-right pass;
// consuming the sequence more than once repeats it.
func (sd *SimpleDoc) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for node := sd; node != nil; node = node.next {
			var tok Token
			switch node.kind {
			case simpleChar:
				tok = Token{Kind: TokChar, Char: node.c}
			case simpleText:
				tok = Token{Kind: TokText, Text: node.text}
			case simpleLine:
				tok = Token{Kind: TokLine, Indent: node.indent}
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// WriteTo writes the rendered document to w. It implements io.WriterTo.
func (sd *SimpleDoc) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for tok := range sd.Tokens() {
		var n int
		var err error
		switch tok.Kind {
		case TokChar:
			n, err = io.WriteString(w, string(tok.Char))
		case TokText:
			n, err = io.WriteString(w, tok.Text)
		case TokLine:
			n, err = io.WriteString(w, "\n"+strings.Repeat(" ", tok.Indent))
		}
		written += int64(n)
		if err != nil {
			tracer().Errorf("pretty: writing rendered document: %v", err)
			return written, err
		}
	}
	return written, nil
}

// String returns the rendered document as a Go string.
func (sd *SimpleDoc) String() string {
	var bf strings.Builder
	_, _ = sd.WriteTo(&bf)
	return bf.String()
}
