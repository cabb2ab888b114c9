package para

import (
	"strings"
	"testing"

	"github.com/npillmayer/pretty"
)

func TestFillSingleLineWhenItFits(t *testing.T) {
	d := Fill("the quick brown fox")
	if got := pretty.Sprint(80, d); got != "the quick brown fox" {
		t.Errorf("got %q", got)
	}
}

func TestFillBreaksAtSpaces(t *testing.T) {
	d := Fill("the quick brown fox")
	got := pretty.RenderPretty(1.0, 10, d).String()
	if got != "the quick\nbrown fox" {
		t.Errorf("got %q", got)
	}
}

func TestFillCollapsesWhitespace(t *testing.T) {
	d := Fill("one  \t two\nthree")
	if got := pretty.Sprint(80, d); got != "one two three" {
		t.Errorf("got %q", got)
	}
}

func TestFillRespectsPageWidth(t *testing.T) {
	prose := strings.Repeat("lorem ipsum dolor sit amet ", 8)
	d := Fill(prose)
	for _, width := range []int{12, 24, 40} {
		out := pretty.RenderPretty(1.0, width, d).String()
		for _, line := range strings.Split(out, "\n") {
			if len(line) > width {
				t.Errorf("width %d: line %q exceeds page width", width, line)
			}
		}
	}
}

func TestFillEmptyProse(t *testing.T) {
	if got := pretty.Sprint(80, Fill("   ")); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestWordsFillsLines(t *testing.T) {
	d := Words("a bb ccc dddd")
	if got := pretty.Sprint(80, d); got != "a bb ccc dddd" {
		t.Errorf("got %q", got)
	}
	if got := pretty.RenderPretty(1.0, 4, d).String(); got != "a bb\nccc\ndddd" {
		t.Errorf("got %q", got)
	}
}
