package marmoset

import (
	"fmt"
	"strings"
)

// Escape sequences the renderer emits. The host terminal (xterm.js or a
// real tty in raw mode) interprets these; the bridge never tracks screen
// geometry beyond the current input line.
const (
	seqClearLine   = "\r\x1b[K"
	seqClearScreen = "\x1b[2J\x1b[H"
	seqCursorLeft  = "\x1b[D"
	seqCursorRight = "\x1b[C"

	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// Renderer owns every byte written to the terminal. Raw terminals treat
// \n as line-feed-only, so all logical newlines leave here as \r\n.
type Renderer struct {
	term   TerminalWriter
	color  bool
	logger *Logger
}

func NewRenderer(term TerminalWriter, cfg *Config, logger *Logger) *Renderer {
	return &Renderer{term: term, color: cfg.Color, logger: logger}
}

// Prompt writes a prompt at the current position.
func (r *Renderer) Prompt(prompt string) {
	r.term.WriteString(prompt)
}

// Echo writes inserted text verbatim (used when typing at end of line).
func (r *Renderer) Echo(s string) {
	r.term.WriteString(s)
}

// Newline moves to the start of the next row.
func (r *Renderer) Newline() {
	r.term.WriteString("\r\n")
}

// Result renders one evaluation outcome followed by the next prompt.
// KindIncomplete never reaches here; the session turns it into a
// continuation prompt instead.
func (r *Renderer) Result(res EvalResult, prompt string) {
	switch res.Kind {
	case KindValue:
		r.term.WriteString(normalizeNewlines(res.Text) + "\r\n" + prompt)
	case KindEmpty:
		r.term.WriteString(prompt)
	case KindDiagnostic:
		r.term.WriteString(r.formatDiagnostic(res) + "\r\n" + prompt)
	default:
		if r.logger != nil {
			r.logger.Warn(CatRender, "unexpected result kind %d", res.Kind)
		}
		r.term.WriteString(prompt)
	}
}

func (r *Renderer) formatDiagnostic(res EvalResult) string {
	msg := "error: " + normalizeNewlines(res.Text)
	if res.Span != nil {
		msg += fmt.Sprintf(" at %d:%d", res.Span.Line, res.Span.Column)
	}
	if r.color {
		return colorRed + msg + colorReset
	}
	return msg
}

// Interrupted echoes the conventional ^C marker and starts a fresh prompt.
func (r *Renderer) Interrupted(prompt string) {
	r.term.WriteString("^C\r\n" + prompt)
}

// RedrawLine repaints the input row from scratch: clear, prompt, contents,
// then walk the cursor back to its logical offset. Used after any edit
// that isn't a plain append.
func (r *Renderer) RedrawLine(prompt, contents string, cursor int) {
	var sb strings.Builder
	sb.WriteString(seqClearLine)
	sb.WriteString(prompt)
	sb.WriteString(contents)
	if back := len([]rune(contents)) - cursor; back > 0 {
		fmt.Fprintf(&sb, "\x1b[%dD", back)
	}
	r.term.WriteString(sb.String())
}

// ClearScreen wipes the terminal, homes the cursor, and repaints the
// input row.
func (r *Renderer) ClearScreen(prompt, contents string, cursor int) {
	r.term.WriteString(seqClearScreen)
	r.RedrawLine(prompt, contents, cursor)
}

// CursorLeft and CursorRight move the visible cursor one cell without
// touching the line contents.
func (r *Renderer) CursorLeft() {
	r.term.WriteString(seqCursorLeft)
}

func (r *Renderer) CursorRight() {
	r.term.WriteString(seqCursorRight)
}

// Passthrough forwards bytes the translator did not recognize. They have
// display-only effect; the line buffer never sees them.
func (r *Renderer) Passthrough(raw []byte) {
	r.term.WriteString(string(raw))
}

// normalizeNewlines rewrites bare \n as \r\n, leaving existing \r\n pairs
// alone. Engine output uses logical newlines; the terminal needs both.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	prev := byte(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' && prev != '\r' {
			sb.WriteByte('\r')
		}
		sb.WriteByte(c)
		prev = c
	}
	return sb.String()
}
