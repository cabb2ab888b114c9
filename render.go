package pretty

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.
*/

import "math"

// workList is the render engine's explicit continuation: a persistent
// linked list of (indentation, document) pairs awaiting output. Using a
// heap-allocated list instead of call recursion keeps memory use bounded
// for very wide or very deep documents, and lets the fits predicate scan a
// candidate continuation without copying it.
type workList struct {
	indent int
	doc    Doc
	rest   *workList
}

func push(indent int, d Doc, rest *workList) *workList {
	return &workList{indent: indent, doc: d, rest: rest}
}

// RenderPretty resolves d against a page of width pageWidth and returns
// the chosen layout. At every group it prefers the single-line form if
// that form's first line fits, otherwise it breaks.
//
// ribbonFrac (0.0–1.0, clamped) limits the ribbon: the maximum width of
// the non-indentation part of a line. The ribbon constrains deeply
// indented content independently of how far it is shifted right, so a
// page of width 80 with ribbonFrac 0.5 never carries more than 40
// characters of content per line.
//
// RenderPretty is total: it cannot fail, and any document renders in time
// linear in the output size plus a bounded one-line lookahead per group.
// Zero or negative page widths are legal and force every group to break.
func RenderPretty(ribbonFrac float64, pageWidth int, d Doc) *SimpleDoc {
	ribbon := int(math.Round(float64(pageWidth) * ribbonFrac))
	if ribbon < 0 {
		ribbon = 0
	} else if ribbon > pageWidth {
		ribbon = pageWidth
	}
	return best(pageWidth, ribbon, d)
}

// best walks the work list front to back, carrying the indentation of the
// current line and the current column. Groups are resolved on the spot
// with the fits predicate; everything else is bookkeeping.
func best(pageWidth, ribbon int, d Doc) *SimpleDoc {
	var head SimpleDoc // sentinel
	tail := &head
	indent, column := 0, 0
	work := push(0, d, nil)
	for work != nil {
		item := work
		work = work.rest
		switch x := item.doc.(type) {
		case docEmpty:
		case docChar:
			tail.next = &SimpleDoc{kind: simpleChar, c: x.c}
			tail = tail.next
			column++
		case docText:
			tail.next = &SimpleDoc{kind: simpleText, text: x.s, width: x.width}
			tail = tail.next
			column += x.width
		case docLine:
			tail.next = &SimpleDoc{kind: simpleLine, indent: item.indent}
			tail = tail.next
			indent, column = item.indent, item.indent
		case docConcat:
			work = push(item.indent, x.left, push(item.indent, x.right, work))
		case docNest:
			work = push(item.indent+x.indent, x.doc, work)
		case docUnion:
			avail := min(pageWidth-column, ribbon-column+indent)
			if fits(avail, column, push(item.indent, x.wide, work)) {
				work = push(item.indent, x.wide, work)
			} else {
				work = push(item.indent, x.narrow, work)
			}
		case docColumn:
			work = push(item.indent, x.f(column), work)
		case docNesting:
			work = push(item.indent, x.f(item.indent), work)
		}
	}
	return head.next
}

// fits reports whether the first line produced by the work list stays
// within w characters. It generates and checks one token at a time,
// stopping at the first line break, so the scan is bounded by the width
// budget, never by document size. A negative w fails immediately.
//
// Nested groups encountered during the scan are resolved the way best
// would resolve them: try the wide branch's first line, fall back to the
// narrow one. Both budgets shrink in lockstep within a single line, so the
// remaining width w is exactly the budget a nested group would see.
func fits(w int, column int, work *workList) bool {
	for w >= 0 {
		if work == nil {
			return true
		}
		item := work
		work = work.rest
		switch x := item.doc.(type) {
		case docEmpty:
		case docChar:
			w--
			column++
		case docText:
			w -= x.width
			column += x.width
		case docLine:
			return true
		case docConcat:
			work = push(item.indent, x.left, push(item.indent, x.right, work))
		case docNest:
			work = push(item.indent+x.indent, x.doc, work)
		case docUnion:
			if fits(w, column, push(item.indent, x.wide, work)) {
				return true
			}
			work = push(item.indent, x.narrow, work)
		case docColumn:
			work = push(item.indent, x.f(column), work)
		case docNesting:
			work = push(item.indent, x.f(item.indent), work)
		}
	}
	return false
}

// RenderCompact resolves d without any pretty-printing: every group keeps
// the line breaks of its unflattened form, indentation is dropped
// entirely, and column/nesting callbacks see position 0. The result is the
// most compact rendering of the document as written.
//
// Taking the unflattened branch is deliberate: compact output reproduces
// the breaks of the source document instead of joining lines.
func RenderCompact(d Doc) *SimpleDoc {
	var head SimpleDoc // sentinel
	tail := &head
	work := push(0, d, nil)
	for work != nil {
		item := work
		work = work.rest
		switch x := item.doc.(type) {
		case docEmpty:
		case docChar:
			tail.next = &SimpleDoc{kind: simpleChar, c: x.c}
			tail = tail.next
		case docText:
			tail.next = &SimpleDoc{kind: simpleText, text: x.s, width: x.width}
			tail = tail.next
		case docLine:
			tail.next = &SimpleDoc{kind: simpleLine}
			tail = tail.next
		case docConcat:
			work = push(0, x.left, push(0, x.right, work))
		case docNest:
			work = push(0, x.doc, work)
		case docUnion:
			work = push(0, x.narrow, work)
		case docColumn:
			work = push(0, x.f(0), work)
		case docNesting:
			work = push(0, x.f(0), work)
		}
	}
	return head.next
}
