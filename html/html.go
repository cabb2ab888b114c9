/*
Package html pretty-prints HTML fragments.

The layout mirrors the element hierarchy: an element which fits the page
width renders on a single line; one which does not gets its children on
separate lines, indented below the opening tag. Text content flows like
paragraph prose, filling the available width word by word.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/pretty"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DocFromHTML parses an HTML fragment and returns a document describing
// its layout. The fragment is parsed as body content.
func DocFromHTML(input io.Reader) (pretty.Doc, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(input, context)
	if err != nil {
		return nil, err
	}
	ds := make([]pretty.Doc, 0, len(nodes))
	for _, n := range nodes {
		if d := nodeDoc(n); !isEmpty(d) {
			ds = append(ds, d)
		}
	}
	return pretty.VCat(ds...), nil
}

// DocFromNode returns a document describing the layout of an HTML element
// node and all its descendents.
func DocFromNode(n *html.Node) (pretty.Doc, error) {
	if n == nil {
		return nil, pretty.ErrIllegalArguments
	}
	return nodeDoc(n), nil
}

func nodeDoc(n *html.Node) pretty.Doc {
	switch n.Type {
	case html.TextNode:
		words := strings.Fields(n.Data)
		ds := make([]pretty.Doc, len(words))
		for i, w := range words {
			ds[i] = pretty.Text(w)
		}
		return pretty.FillSep(ds...)
	case html.ElementNode:
		return elementDoc(n)
	case html.DocumentNode:
		var ds []pretty.Doc
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if d := nodeDoc(c); !isEmpty(d) {
				ds = append(ds, d)
			}
		}
		return pretty.VCat(ds...)
	default:
		// comments, doctypes and CDATA carry no layout
		return pretty.Empty()
	}
}

func elementDoc(n *html.Node) pretty.Doc {
	open := openTag(n)
	var kids []pretty.Doc
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if d := nodeDoc(c); !isEmpty(d) {
			kids = append(kids, d)
		}
	}
	if len(kids) == 0 {
		return pretty.Text(open + closeTag(n))
	}
	body := pretty.VCat(kids...)
	return pretty.Group(pretty.Concat(
		pretty.Text(open),
		pretty.Concat(
			pretty.Nest(2, pretty.Concat(pretty.LineBreak(), body)),
			pretty.Concat(pretty.LineBreak(), pretty.Text(closeTag(n))),
		),
	))
}

func openTag(n *html.Node) string {
	var bf strings.Builder
	bf.WriteByte('<')
	bf.WriteString(n.Data)
	for _, a := range n.Attr {
		val := strings.ReplaceAll(a.Val, "\n", " ")
		fmt.Fprintf(&bf, " %s=%q", a.Key, val)
	}
	bf.WriteByte('>')
	return bf.String()
}

func closeTag(n *html.Node) string {
	return "</" + n.Data + ">"
}

func isEmpty(d pretty.Doc) bool {
	return d == pretty.Empty()
}
