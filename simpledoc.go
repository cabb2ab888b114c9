package pretty

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.
*/

// SimpleDoc is the fully resolved, decision-free form of a document: a
// linked sequence of characters, literal runs and line breaks with
// concrete indentation. All layout alternatives, column callbacks and
// nesting arithmetic have been resolved by the time a SimpleDoc exists.
//
// A nil *SimpleDoc marks the end of the sequence. SimpleDocs are produced
// by the renderers and consumed by Display/WriteTo; clients normally do
// not inspect them beyond that.
type SimpleDoc struct {
	kind   simpleKind
	c      rune   // simpleChar
	text   string // simpleText
	width  int    // simpleText: display width of text
	indent int    // simpleLine: indentation of the following line
	next   *SimpleDoc
}

type simpleKind byte

const (
	simpleChar simpleKind = iota
	simpleText
	simpleLine
)
