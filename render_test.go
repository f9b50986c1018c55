package marmoset

import (
	"strings"
	"testing"
)

type recordingTerm struct {
	out strings.Builder
}

func (r *recordingTerm) WriteString(s string) { r.out.WriteString(s) }
func (r *recordingTerm) String() string       { return r.out.String() }
func (r *recordingTerm) Reset()               { r.out.Reset() }

func newTestRenderer(color bool) (*Renderer, *recordingTerm) {
	term := &recordingTerm{}
	cfg := DefaultConfig()
	cfg.Color = color
	return NewRenderer(term, cfg, NewLogger(false)), term
}

func TestRenderValue(t *testing.T) {
	r, term := newTestRenderer(false)
	r.Result(EvalResult{Kind: KindValue, Text: "3"}, ">> ")

	if got := term.String(); got != "3\r\n>> " {
		t.Errorf("rendered %q, want %q", got, "3\r\n>> ")
	}
}

func TestRenderEmpty(t *testing.T) {
	r, term := newTestRenderer(false)
	r.Result(EvalResult{Kind: KindEmpty}, ">> ")

	if got := term.String(); got != ">> " {
		t.Errorf("rendered %q, want just the prompt", got)
	}
}

func TestRenderDiagnostic(t *testing.T) {
	r, term := newTestRenderer(false)
	r.Result(EvalResult{Kind: KindDiagnostic, Text: "identifier not found: foo"}, ">> ")

	want := "error: identifier not found: foo\r\n>> "
	if got := term.String(); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestRenderDiagnosticWithSpan(t *testing.T) {
	r, term := newTestRenderer(false)
	r.Result(EvalResult{
		Kind: KindDiagnostic,
		Text: "unexpected token",
		Span: &Span{Line: 2, Column: 7},
	}, ">> ")

	want := "error: unexpected token at 2:7\r\n>> "
	if got := term.String(); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestRenderDiagnosticColor(t *testing.T) {
	r, term := newTestRenderer(true)
	r.Result(EvalResult{Kind: KindDiagnostic, Text: "boom"}, ">> ")

	want := "\x1b[31merror: boom\x1b[0m\r\n>> "
	if got := term.String(); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestRenderMultiLineValue(t *testing.T) {
	r, term := newTestRenderer(false)
	r.Result(EvalResult{Kind: KindValue, Text: "a\nb"}, ">> ")

	want := "a\r\nb\r\n>> "
	if got := term.String(); got != want {
		t.Errorf("rendered %q, want %q (every newline paired with CR)", got, want)
	}
}

func TestRenderRedrawLine(t *testing.T) {
	r, term := newTestRenderer(false)
	r.RedrawLine(">> ", "hello", 2)

	want := "\r\x1b[K>> hello\x1b[3D"
	if got := term.String(); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestRenderRedrawLineCursorAtEnd(t *testing.T) {
	r, term := newTestRenderer(false)
	r.RedrawLine(">> ", "hi", 2)

	want := "\r\x1b[K>> hi"
	if got := term.String(); got != want {
		t.Errorf("rendered %q, want %q (no cursor move at end)", got, want)
	}
}

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a\nb", "a\r\nb"},
		{"a\r\nb", "a\r\nb"},
		{"\n", "\r\n"},
		{"a\n\nb", "a\r\n\r\nb"},
	}
	for _, tt := range tests {
		if got := normalizeNewlines(tt.in); got != tt.want {
			t.Errorf("normalizeNewlines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
