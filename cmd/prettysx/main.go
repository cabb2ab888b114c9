// prettysx reads an S-expression from its arguments or from stdin and
// pretty-prints it to stdout.
//
// Usage:
//
//	prettysx [-width n] [-ribbon f] [-compact] [expression]
//
// With -width 0 (the default) the page width is taken from the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/pretty"
	"github.com/npillmayer/pretty/console"
	"github.com/npillmayer/pretty/sexp"
)

func main() {
	width := flag.Int("width", 0, "page width in characters (0 = detect from terminal)")
	ribbon := flag.Float64("ribbon", pretty.DefaultRibbon, "ribbon fraction (0.0-1.0)")
	compact := flag.Bool("compact", false, "render without pretty-printing")
	flag.Parse()

	var input string
	if flag.NArg() > 0 {
		input = strings.Join(flag.Args(), " ")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading stdin: %v\n", err)
			os.Exit(1)
		}
		input = string(data)
	}

	e, err := sexp.ParseString(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing expression: %v\n", err)
		os.Exit(1)
	}

	d := e.Doc()
	if *compact {
		fmt.Println(pretty.SprintCompact(d))
		return
	}
	w := *width
	if w <= 0 {
		w = console.ConfigFromTerminal().PageWidth
	}
	fmt.Println(pretty.RenderPretty(*ribbon, w, d).String())
}
