package pretty

import (
	"strings"
	"testing"
)

func TestRenderCompactKeepsSourceBreaks(t *testing.T) {
	// compact output reproduces the document's breaks, it never flattens
	d := Group(Concat(Text("a"), Concat(Line(), Text("b"))))
	if got := SprintCompact(d); got != "a\nb" {
		t.Errorf("got %q, want %q", got, "a\nb")
	}
}

func TestRenderCompactDropsIndentation(t *testing.T) {
	d := Nest(6, VSep(Text("x"), Text("y"), Text("z")))
	got := SprintCompact(d)
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, " ") {
			t.Errorf("compact output carries indentation: %q", got)
		}
	}
	if got != "x\ny\nz" {
		t.Errorf("got %q", got)
	}
}

func TestRenderCompactCallbacksSeeZero(t *testing.T) {
	d := Concat(Text("abc"), Column(func(col int) Doc {
		if col != 0 {
			t.Errorf("compact column callback saw %d, want 0", col)
		}
		return Nesting(func(indent int) Doc {
			if indent != 0 {
				t.Errorf("compact nesting callback saw %d, want 0", indent)
			}
			return Text("!")
		})
	}))
	if got := SprintCompact(d); got != "abc!" {
		t.Errorf("got %q", got)
	}
}

func TestRenderCompactLambda(t *testing.T) {
	// every group resolves to its unflattened branch, so all breaks of the
	// document as written survive, without indentation
	want := "((lambda\n(f)\n(f\nf))\n(lambda\n(f)\n(f\nf)))"
	got := SprintCompact(lambdaTerm())
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
