package pretty

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.
*/

// Doc is an immutable description of the possible layouts of a piece of
// text. Documents are persistent trees: constructors never copy or mutate
// their arguments, and the same subtree may be referenced from multiple
// parents. A Doc is safe for concurrent use.
//
// The zero-information document is Empty(). Clients compose documents with
// the constructors below and the derived combinators, then resolve them to
// a concrete layout with RenderPretty or RenderCompact.
type Doc interface {
	isDoc()
}

type docEmpty struct{}

type docChar struct {
	c rune
}

type docText struct {
	width int // display width of s in characters, fixed at construction
	s     string
}

type docLine struct {
	// omit selects what the break turns into when a group is flattened:
	// false = a single space, true = nothing. A line that survives into
	// rendering is always a real break, regardless of omit.
	omit bool
}

type docConcat struct {
	left, right Doc
}

type docNest struct {
	indent int
	doc    Doc
}

type docUnion struct {
	wide, narrow Doc
}

type docColumn struct {
	f func(col int) Doc
}

type docNesting struct {
	f func(indent int) Doc
}

func (docEmpty) isDoc()   {}
func (docChar) isDoc()    {}
func (docText) isDoc()    {}
func (docLine) isDoc()    {}
func (docConcat) isDoc()  {}
func (docNest) isDoc()    {}
func (docUnion) isDoc()   {}
func (docColumn) isDoc()  {}
func (docNesting) isDoc() {}

// Empty returns the document with zero width and zero height. It is the
// neutral element of Concat.
func Empty() Doc {
	return docEmpty{}
}

// Char returns a document holding a single character. c must not be a
// line feed; use Line or LineBreak for breaks.
func Char(c rune) Doc {
	assert(c != '\n', "pretty.Char: line feed is not a printable character")
	return docChar{c: c}
}

// Text returns a document holding a literal run of text. s must not
// contain line feeds; use String for text with embedded breaks. The
// display width of s is computed once, as a character (rune) count.
func Text(s string) Doc {
	if s == "" {
		return docEmpty{}
	}
	w := 0
	for _, c := range s {
		assert(c != '\n', "pretty.Text: literal run must not contain line feeds")
		w++
	}
	return docText{width: w, s: s}
}

// Line returns a line break which flattens to a single space when undone
// by a group.
func Line() Doc {
	return docLine{}
}

// LineBreak returns a line break which flattens to nothing when undone by
// a group.
func LineBreak() Doc {
	return docLine{omit: true}
}

// Concat places right directly after left, with no separator.
func Concat(left, right Doc) Doc {
	return docConcat{left: left, right: right}
}

// Nest increases the indentation of all line breaks within d by indent.
// indent may be negative. Indentation takes effect only after a break;
// it never shifts the current line.
func Nest(indent int, d Doc) Doc {
	return docNest{indent: indent, doc: d}
}

// Union holds two candidate renderings of the same content. The layout
// engine picks wide if its first line fits, narrow otherwise.
//
// Callers must ensure that no first line of narrow is longer than the
// corresponding first line of wide: the engine relies on this ordering to
// choose without backtracking. Most clients should use Group, which
// constructs unions satisfying the invariant.
func Union(wide, narrow Doc) Doc {
	return docUnion{wide: wide, narrow: narrow}
}

// Column defers document construction until the column position at its
// location in the output is known. f must be pure and must return a finite
// document.
func Column(f func(col int) Doc) Doc {
	return docColumn{f: f}
}

// Nesting defers document construction until the indentation level at its
// location in the output is known. f must be pure and must return a finite
// document.
func Nesting(f func(indent int) Doc) Doc {
	return docNesting{f: f}
}
