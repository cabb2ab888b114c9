package console

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.
*/

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/pretty"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

// tracer writes to trace with key 'pretty'
func tracer() tracing.Trace {
	return tracing.Select("pretty")
}

// Config represents a set of output parameters for printing documents to a
// console.
type Config struct {
	PageWidth int     // target line width in fixed-width character positions
	Ribbon    float64 // ribbon fraction, see pretty.RenderPretty
}

// Print renders a document to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print(d pretty.Doc, config *Config) error {
	return Fprint(os.Stdout, d, config)
}

// Fprint renders a document to w. A nil config is filled in from the
// current terminal's properties.
func Fprint(w io.Writer, d pretty.Doc, config *Config) error {
	if d == nil {
		return pretty.ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	sd := pretty.RenderPretty(config.Ribbon, config.PageWidth, d)
	_, err := sd.WriteTo(w)
	return err
}

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks whether stdout is a terminal, and if so it reads the
// terminal's width and sets the Config.PageWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{Ribbon: pretty.DefaultRibbon}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.PageWidth = 65
		} else {
			if w > 65 {
				config.PageWidth = w - 10
			} else if w > 30 {
				config.PageWidth = w - 5
			} else if w > 10 {
				config.PageWidth = w
			} else {
				config.PageWidth = 10
			}
		}
	} else {
		config.PageWidth = 65
	}
	tracer().P("format", "console").Infof("setting page width to %d en", config.PageWidth)
	return config
}

// --- Token dump ------------------------------------------------------------

// Palette maps output token kinds to display colors for DumpTokens. It may
// cover just a subset of the kinds.
type Palette map[pretty.TokenKind]*color.Color

func makeDefaultPalette() Palette {
	return Palette{
		pretty.TokText: color.New(color.FgBlue),
		pretty.TokChar: color.New(color.FgCyan),
		pretty.TokLine: color.New(color.FgRed),
	}
}

// DumpTokens writes a colorized view of the token sequence of a rendered
// document, one token per line, for debugging layout decisions. colors may
// be nil, selecting a default palette.
func DumpTokens(sd *pretty.SimpleDoc, w io.Writer, colors Palette) {
	if colors == nil {
		colors = makeDefaultPalette()
	}
	emit := func(kind pretty.TokenKind, format string, args ...interface{}) {
		if c, ok := colors[kind]; ok {
			c.Fprintf(w, format, args...)
		} else {
			fmt.Fprintf(w, format, args...)
		}
		io.WriteString(w, "\n")
	}
	for tok := range sd.Tokens() {
		switch tok.Kind {
		case pretty.TokChar:
			emit(tok.Kind, "CHAR '%c'", tok.Char)
		case pretty.TokText:
			emit(tok.Kind, "TEXT %q", tok.Text)
		case pretty.TokLine:
			emit(tok.Kind, "LINE indent=%d", tok.Indent)
		}
	}
}
