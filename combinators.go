package pretty

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.
*/

import "strings"

// This file holds the derived combinator library: pure compositions over
// the document algebra, with no algorithmic content of their own. The
// selection follows Leijen's wl-pprint.

// String converts a Go string to a document, splitting it at embedded line
// feeds. Each line feed becomes a Line, so grouping a String flattens the
// breaks back to spaces.
func String(s string) Doc {
	parts := strings.Split(s, "\n")
	d := Text(parts[0])
	for _, part := range parts[1:] {
		d = Concat(d, Concat(Line(), Text(part)))
	}
	return d
}

// SoftLine behaves like a space if the output fits, and like a line break
// otherwise.
func SoftLine() Doc {
	return Group(Line())
}

// SoftBreak behaves like nothing if the output fits, and like a line break
// otherwise.
func SoftBreak() Doc {
	return Group(LineBreak())
}

// Space returns a single-space document.
func Space() Doc { return docChar{c: ' '} }

// Comma returns a single-comma document.
func Comma() Doc { return docChar{c: ','} }

func fold(f func(a, b Doc) Doc, ds []Doc) Doc {
	if len(ds) == 0 {
		return Empty()
	}
	d := ds[0]
	for _, next := range ds[1:] {
		d = f(d, next)
	}
	return d
}

// HSep concatenates the documents horizontally, with a space in between.
func HSep(ds ...Doc) Doc {
	return fold(func(a, b Doc) Doc { return Concat(a, Concat(Space(), b)) }, ds)
}

// VSep concatenates the documents vertically, with a line break in
// between. When a VSep is flattened by an enclosing Group, the breaks
// become spaces.
func VSep(ds ...Doc) Doc {
	return fold(func(a, b Doc) Doc { return Concat(a, Concat(Line(), b)) }, ds)
}

// Sep puts the documents on a single line, separated by spaces, if they
// fit; otherwise each goes on its own line.
func Sep(ds ...Doc) Doc {
	return Group(VSep(ds...))
}

// FillSep concatenates the documents with soft lines in between, filling
// each output line with as many documents as fit.
func FillSep(ds ...Doc) Doc {
	return fold(func(a, b Doc) Doc { return Concat(a, Concat(SoftLine(), b)) }, ds)
}

// HCat concatenates the documents horizontally, with nothing in between.
func HCat(ds ...Doc) Doc {
	return fold(Concat, ds)
}

// VCat concatenates the documents vertically. When flattened by an
// enclosing Group, the breaks vanish.
func VCat(ds ...Doc) Doc {
	return fold(func(a, b Doc) Doc { return Concat(a, Concat(LineBreak(), b)) }, ds)
}

// Cat puts the documents on a single line, with nothing in between, if
// they fit; otherwise each goes on its own line.
func Cat(ds ...Doc) Doc {
	return Group(VCat(ds...))
}

// FillCat concatenates the documents with soft breaks in between, filling
// each output line with as many documents as fit.
func FillCat(ds ...Doc) Doc {
	return fold(func(a, b Doc) Doc { return Concat(a, Concat(SoftBreak(), b)) }, ds)
}

// Punctuate appends p to every document except the last one.
func Punctuate(p Doc, ds []Doc) []Doc {
	if len(ds) == 0 {
		return nil
	}
	out := make([]Doc, len(ds))
	for i, d := range ds[:len(ds)-1] {
		out[i] = Concat(d, p)
	}
	out[len(ds)-1] = ds[len(ds)-1]
	return out
}

// Align renders d with the indentation level set to the current column, so
// that all its line breaks line up under the first character of d.
func Align(d Doc) Doc {
	return Column(func(col int) Doc {
		return Nesting(func(indent int) Doc {
			return Nest(col-indent, d)
		})
	})
}

// Hang renders d with the indentation level set to the current column plus
// indent: continuation lines hang under the first line, shifted right.
func Hang(indent int, d Doc) Doc {
	return Align(Nest(indent, d))
}

// Indent shifts the whole of d right by indent characters.
func Indent(indent int, d Doc) Doc {
	return Hang(indent, Concat(Text(spaces(indent)), d))
}

// Width renders d and then f applied to the width d occupied on the
// current line.
func Width(d Doc, f func(w int) Doc) Doc {
	return Column(func(col1 int) Doc {
		return Concat(d, Column(func(col2 int) Doc {
			return f(col2 - col1)
		}))
	})
}

// Fill renders d and pads it with spaces up to a width of w. If d is
// already wider than w, nothing is appended. Useful for aligning columns,
// e.g. names in a declaration list.
func Fill(w int, d Doc) Doc {
	return Width(d, func(used int) Doc {
		if used >= w {
			return Empty()
		}
		return Text(spaces(w - used))
	})
}

// FillBreak pads d with spaces up to a width of w like Fill, but if d is
// already wider, it inserts a line break and indents the continuation by
// w.
func FillBreak(w int, d Doc) Doc {
	return Width(d, func(used int) Doc {
		if used > w {
			return Nest(w, LineBreak())
		}
		return Text(spaces(w - used))
	})
}

// EncloseSep renders the documents between left and right, separated by
// sep. If the result does not fit on one line, the separators go at the
// start of each broken line, aligned under the opening delimiter:
//
//	[10,200,3000]        [10
//	                     ,200
//	                     ,3000]
func EncloseSep(left, right, sep Doc, ds ...Doc) Doc {
	switch len(ds) {
	case 0:
		return Concat(left, right)
	case 1:
		return Concat(left, Concat(ds[0], right))
	}
	inner := ds[0]
	for _, d := range ds[1:] {
		inner = Concat(inner, Concat(LineBreak(), Concat(sep, d)))
	}
	return Align(Concat(Group(Concat(left, inner)), right))
}

// List renders the documents as a comma-separated list in square
// brackets.
func List(ds ...Doc) Doc {
	return EncloseSep(Char('['), Char(']'), Comma(), ds...)
}

// Tupled renders the documents as a comma-separated tuple in parentheses.
func Tupled(ds ...Doc) Doc {
	return EncloseSep(Char('('), Char(')'), Comma(), ds...)
}

// Enclose renders d between left and right.
func Enclose(left, right, d Doc) Doc {
	return Concat(left, Concat(d, right))
}

// Parens renders d between parentheses.
func Parens(d Doc) Doc { return Enclose(Char('('), Char(')'), d) }

// Brackets renders d between square brackets.
func Brackets(d Doc) Doc { return Enclose(Char('['), Char(']'), d) }

// Braces renders d between curly braces.
func Braces(d Doc) Doc { return Enclose(Char('{'), Char('}'), d) }

// Angles renders d between angle brackets.
func Angles(d Doc) Doc { return Enclose(Char('<'), Char('>'), d) }

// SingleQuotes renders d between single quotes.
func SingleQuotes(d Doc) Doc { return Enclose(Char('\''), Char('\''), d) }

// DoubleQuotes renders d between double quotes.
func DoubleQuotes(d Doc) Doc { return Enclose(Char('"'), Char('"'), d) }

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
