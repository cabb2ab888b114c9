/*
Package para converts prose into documents.

Prose has no layout of its own: any break opportunity between words is as
good as the next one. This package segments a string at UAX#14 line-break
opportunities and produces a document which fills each output line with as
many fragments as fit, so that paragraph text flows within whatever page
width the renderer is given.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package para

import (
	"bufio"
	"strings"

	"github.com/npillmayer/pretty"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// tracer writes to trace with key 'pretty'
func tracer() tracing.Trace {
	return tracing.Select("pretty")
}

// Fill segments prose at UAX#14 line-break opportunities and returns a
// document which puts as many fragments on each line as fit. Fragments
// separated by white space rejoin with a single space when they end up on
// the same line; fragments split at other break opportunities (e.g. after
// a hyphen) rejoin seamlessly.
//
// Runs of white space, including embedded newlines, collapse; their exact
// shape in the input does not survive into the document.
func Fill(prose string) pretty.Doc {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(prose)))
	d := pretty.Empty()
	first, space := true, false
	count := 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		trimmed := strings.TrimRight(frag, " \t\n\r")
		if trimmed == "" {
			space = true
			continue
		}
		count++
		piece := pretty.Text(trimmed)
		switch {
		case first:
			d = piece
			first = false
		case space:
			d = pretty.Concat(d, pretty.Concat(pretty.SoftLine(), piece))
		default:
			d = pretty.Concat(d, pretty.Concat(pretty.SoftBreak(), piece))
		}
		space = trimmed != frag
	}
	tracer().Debugf("para.Fill: %d fragments", count)
	return d
}

// Words splits prose at white space, without consulting UAX#14 rules, and
// fills lines with the resulting words. A cheaper alternative to Fill for
// simple Latin text.
func Words(prose string) pretty.Doc {
	fields := strings.Fields(prose)
	ds := make([]pretty.Doc, len(fields))
	for i, f := range fields {
		ds[i] = pretty.Text(f)
	}
	return pretty.FillSep(ds...)
}
