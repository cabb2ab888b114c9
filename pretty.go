package pretty

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file in the repository root.
*/

import "io"

// Defaults used by the convenience entry points.
const (
	DefaultWidth  = 80  // page width in characters
	DefaultRibbon = 0.8 // ribbon fraction of the page width
)

// Fprint renders d with the default ribbon fraction and writes the result
// to w.
func Fprint(w io.Writer, pageWidth int, d Doc) error {
	_, err := RenderPretty(DefaultRibbon, pageWidth, d).WriteTo(w)
	return err
}

// Fprintln renders d like Fprint and appends a trailing newline.
func Fprintln(w io.Writer, pageWidth int, d Doc) error {
	if err := Fprint(w, pageWidth, d); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Sprint renders d with the default ribbon fraction and returns the result
// as a string.
func Sprint(pageWidth int, d Doc) string {
	return RenderPretty(DefaultRibbon, pageWidth, d).String()
}

// SprintCompact renders d without pretty-printing (see RenderCompact) and
// returns the result as a string.
func SprintCompact(d Doc) string {
	return RenderCompact(d).String()
}
