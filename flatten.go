package pretty

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.
*/

// Group marks d as a unit which the layout engine tries to put on a single
// line. If the flattened form of d does not fit the remaining line width,
// d is rendered unchanged, with all its line breaks intact.
//
// Groups nest: when an outer group is broken, every inner group decides
// again on its own.
func Group(d Doc) Doc {
	return docUnion{wide: flatten(d), narrow: d}
}

// flatten produces the single-line form of a document: line breaks become
// a space or nothing, depending on how they were constructed. Flattening
// is structural and knows nothing about widths.
func flatten(d Doc) Doc {
	switch x := d.(type) {
	case docConcat:
		return docConcat{left: flatten(x.left), right: flatten(x.right)}
	case docNest:
		return docNest{indent: x.indent, doc: flatten(x.doc)}
	case docLine:
		if x.omit {
			return docEmpty{}
		}
		return docText{width: 1, s: " "}
	case docUnion:
		// a nested group inside a flattened region has no choice left
		return flatten(x.wide)
	case docColumn:
		return docColumn{f: func(col int) Doc { return flatten(x.f(col)) }}
	case docNesting:
		return docNesting{f: func(indent int) Doc { return flatten(x.f(indent)) }}
	default:
		return d
	}
}
