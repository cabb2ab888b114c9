/*
Package pretty is a pretty-printing engine for structured text.

Clients describe how a piece of text could be laid out — not how it must be
laid out — by composing a document value from small combinators: literal
text, concatenation, indentation, line breaks and layout alternatives. A
renderer then picks a concrete layout which fits a target page width,
preferring horizontal compaction over vertical expansion wherever possible.

The engine implements the classic Wadler/Leijen layout algorithm with
ribbon-width control, as described in

	Philip Wadler: “A prettier printer”, 2003

and popularized by Daan Leijen's wl-pprint library.

_________________________________________________________________________

Documents

A Document is an immutable, persistent tree. Subtrees may be shared freely
between parents and across concurrent renders; nothing is ever mutated
after construction. Rendering is a pure function from a document and a page
width to a SimpleDoc, the fully resolved, decision-free linear form, which
in turn is written to any output sink.

	d := pretty.Group(pretty.Concat(
	        pretty.Text("hello,"),
	        pretty.Concat(pretty.Line(), pretty.Text("world")),
	))
	fmt.Println(pretty.Sprint(80, d))   // hello, world
	fmt.Println(pretty.Sprint(8, d))    // hello,
	                                    // world

Column widths are measured in characters (runes). The engine is not aware
of East Asian wide characters or grapheme clusters; clients needing
script-aware line breaking may pre-segment prose with package para.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package pretty

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pretty'
func tracer() tracing.Trace {
	return tracing.Select("pretty")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// DocError is an error type for the pretty module.
type DocError string

func (e DocError) Error() string {
	return string(e)
}

// ErrIllegalArguments signals an illegal (e.g. nil) argument at one of the
// package boundaries. The renderers themselves are total and never fail.
const ErrIllegalArguments = DocError("illegal arguments")
