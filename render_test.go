package pretty

import (
	"strings"
	"testing"
)

// sexpr lays out a parenthesized list: flat if it fits, otherwise breaking
// after the first elements that still fit, with continuation lines
// indented by one.
func sexpr(elems ...Doc) Doc {
	if len(elems) == 0 {
		return Text("()")
	}
	inner := elems[len(elems)-1]
	for i := len(elems) - 2; i >= 0; i-- {
		inner = Concat(elems[i], Group(Concat(Line(), inner)))
	}
	return Group(Concat(Char('('), Concat(Nest(1, inner), Char(')'))))
}

func lambdaTerm() Doc {
	abs := func() Doc {
		return sexpr(Text("lambda"), sexpr(Text("f")), sexpr(Text("f"), Text("f")))
	}
	return sexpr(abs(), abs())
}

func TestRenderPrettyLambdaAcrossWidths(t *testing.T) {
	cases := []struct {
		width int
		want  string
	}{
		{80, "((lambda (f) (f f)) (lambda (f) (f f)))"},
		{40, "((lambda (f) (f f))\n (lambda (f) (f f)))"},
		{20, "((lambda\n  (f) (f f))\n (lambda\n  (f) (f f)))"},
		{10, "((lambda\n  (f)\n  (f f))\n (lambda\n  (f)\n  (f f)))"},
	}
	for _, c := range cases {
		got := RenderPretty(0.8, c.width, lambdaTerm()).String()
		if got != c.want {
			t.Errorf("width %d: got\n%s\nwant\n%s", c.width, got, c.want)
		}
	}
}

func TestRenderPrettyRespectsPageWidth(t *testing.T) {
	words := make([]Doc, 0, 20)
	for _, w := range strings.Fields("the quick brown fox jumps over the lazy dog and then some more of it") {
		words = append(words, Text(w))
	}
	for _, width := range []int{10, 20, 30, 60} {
		out := RenderPretty(1.0, width, FillSep(words...)).String()
		for _, line := range strings.Split(out, "\n") {
			if len(line) > width {
				t.Errorf("width %d: line %q exceeds page width", width, line)
			}
		}
	}
}

func TestRenderPrettyZeroWidthBreaksEveryGroup(t *testing.T) {
	d := Group(Concat(Text("a"), Concat(Line(), Text("b"))))
	got := RenderPretty(0.8, 0, d).String()
	if got != "a\nb" {
		t.Errorf("expected maximal breaking at width 0, got %q", got)
	}
}

func TestRenderPrettyRibbonLimitsContent(t *testing.T) {
	// 40 characters would fit the page, but not the ribbon of 0.8*40=32.
	got := RenderPretty(0.8, 40, lambdaTerm()).String()
	if !strings.Contains(got, "\n") {
		t.Errorf("expected ribbon to force a break, got %q", got)
	}
	// ribbon fraction 1.0 lifts the restriction
	got = RenderPretty(1.0, 40, lambdaTerm()).String()
	if strings.Contains(got, "\n") {
		t.Errorf("expected single-line layout at ribbon 1.0, got %q", got)
	}
}

func TestRenderPrettyClampsRibbonFraction(t *testing.T) {
	flat := RenderPretty(7.5, 40, lambdaTerm()).String()
	if flat != RenderPretty(1.0, 40, lambdaTerm()).String() {
		t.Errorf("ribbon fraction above 1.0 should clamp to the page width")
	}
	broken := RenderPretty(-2.0, 40, lambdaTerm()).String()
	if broken != RenderPretty(0.0, 40, lambdaTerm()).String() {
		t.Errorf("negative ribbon fraction should clamp to 0")
	}
}

func TestRenderPrettyNestingAppliesAtBreaks(t *testing.T) {
	d := Concat(Text("begin"), Concat(Nest(4, Concat(Line(), Text("stmt"))), Concat(Line(), Text("end"))))
	got := RenderPretty(0.8, 80, d).String()
	want := "begin\n    stmt\nend"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderPrettyNegativeNest(t *testing.T) {
	d := Nest(4, Concat(Text("a"), Concat(Line(), Nest(-2, Concat(Text("b"), Concat(Line(), Text("c")))))))
	got := RenderPretty(0.8, 80, d).String()
	want := "a\n    b\n  c"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderPrettyColumnCallback(t *testing.T) {
	d := Concat(Text("ab"), Column(func(col int) Doc {
		if col != 2 {
			t.Errorf("column callback saw %d, want 2", col)
		}
		return Text("|")
	}))
	if got := RenderPretty(0.8, 80, d).String(); got != "ab|" {
		t.Errorf("got %q", got)
	}
}

func TestRenderPrettyNestingCallback(t *testing.T) {
	d := Nest(3, Nesting(func(indent int) Doc {
		if indent != 3 {
			t.Errorf("nesting callback saw %d, want 3", indent)
		}
		return Text("x")
	}))
	if got := RenderPretty(0.8, 80, d).String(); got != "x" {
		t.Errorf("got %q", got)
	}
}

func TestRenderPrettySurvivesWideDocuments(t *testing.T) {
	// 100k concat nodes: the work list must not translate into call depth.
	d := Empty()
	for i := 0; i < 100000; i++ {
		d = Concat(d, Text("x"))
	}
	out := RenderPretty(0.8, 80, d).String()
	if len(out) != 100000 {
		t.Errorf("expected 100000 characters, got %d", len(out))
	}
}

func TestRenderPrettySurvivesDeepNesting(t *testing.T) {
	d := Text("x")
	for i := 0; i < 100000; i++ {
		d = Nest(1, d)
	}
	if got := RenderPretty(0.8, 80, d).String(); got != "x" {
		t.Errorf("got %q", got)
	}
}

func TestRenderPrettySharedSubtrees(t *testing.T) {
	shared := Group(Concat(Text("a"), Concat(Line(), Text("b"))))
	d := Concat(shared, Concat(Line(), shared))
	got := RenderPretty(0.8, 80, d).String()
	if got != "a b\na b" {
		t.Errorf("got %q", got)
	}
}

func TestFitsMonotonicInWidth(t *testing.T) {
	work := push(0, flatten(lambdaTerm()), nil)
	held := false
	for w := -2; w <= 50; w++ {
		ok := fits(w, 0, work)
		if held && !ok {
			t.Fatalf("fits is not monotonic: holds below width %d but not at it", w)
		}
		held = ok
	}
	if !held {
		t.Fatalf("expected fits to hold at width 50")
	}
}

func TestFitsStopsAtFirstLine(t *testing.T) {
	// only the first line counts, the overlong second line is irrelevant
	d := Concat(Text("ab"), Concat(Line(), Text(strings.Repeat("x", 1000))))
	if !fits(2, 0, push(0, d, nil)) {
		t.Errorf("expected first line of width 2 to fit")
	}
	if fits(1, 0, push(0, d, nil)) {
		t.Errorf("expected first line of width 2 not to fit into 1")
	}
}

func TestFitsNegativeWidthFails(t *testing.T) {
	if fits(-1, 0, nil) {
		t.Errorf("empty work list must not fit a negative width")
	}
	if fits(-1, 0, push(0, Line(), nil)) {
		t.Errorf("line break must not fit a negative width")
	}
	if !fits(0, 0, nil) {
		t.Errorf("empty work list must fit width 0")
	}
}
