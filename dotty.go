package pretty

import (
	"fmt"
	"io"
)

// Doc2Dot outputs the structure of a document tree in Graphviz DOT format
// (for debugging purposes). Shared subtrees are drawn once per reference.
// Column and Nesting nodes are drawn as leaves, since their children only
// exist once an output position is known.
func Doc2Dot(d Doc, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	max := 0
	var walk func(d Doc) int
	walk = func(d Doc) int {
		max++
		id := max
		label, isleaf := docDotLabel(d)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, docDotStyles(isleaf))
		switch x := d.(type) {
		case docConcat:
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, walk(x.left))
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, walk(x.right))
		case docNest:
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, walk(x.doc))
		case docUnion:
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=\"wide\"];\n", id, walk(x.wide))
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=\"narrow\"];\n", id, walk(x.narrow))
		}
		return id
	}
	walk(d)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func docDotLabel(d Doc) (string, bool) {
	switch x := d.(type) {
	case docEmpty:
		return "ε", true
	case docChar:
		return fmt.Sprintf("'%c'", x.c), true
	case docText:
		return fmt.Sprintf("%d\\n“%s”", x.width, x.s), true
	case docLine:
		if x.omit {
			return "break", true
		}
		return "line", true
	case docConcat:
		return "∘", false
	case docNest:
		return fmt.Sprintf("nest %d", x.indent), false
	case docUnion:
		return "union", false
	case docColumn:
		return "column", true
	case docNesting:
		return "nesting", true
	}
	return "?", true
}

func docDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
