package marmoset

import (
	"fmt"
	"io"
)

// TerminalWriter is the one-way byte sink to the host terminal. The wasm
// host backs it with xterm.js term.write; the CLI backs it with stdout.
// Implementations must not reorder or buffer across calls: the renderer's
// escape sequences assume bytes reach the terminal in call order.
type TerminalWriter interface {
	WriteString(s string)
}

// WriterFunc adapts a plain function to TerminalWriter.
type WriterFunc func(s string)

func (f WriterFunc) WriteString(s string) { f(s) }

// NewIOWriter adapts an io.Writer (stdout, a test buffer) to
// TerminalWriter. Write errors are reported through the logger; the
// terminal path has no way to surface them to the user.
func NewIOWriter(w io.Writer, logger *Logger) TerminalWriter {
	return WriterFunc(func(s string) {
		if _, err := io.WriteString(w, s); err != nil && logger != nil {
			logger.Error(CatRender, "terminal write failed: %v", err)
		}
	})
}

// Attach starts a REPL session on the given terminal: it writes the banner
// (when configured) and the first primary prompt, then returns the session
// ready to receive input via HandleData. cfg may be nil for defaults.
func Attach(term TerminalWriter, eval Evaluator, cfg *Config) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := NewLogger(cfg.Debug)
	s := NewSession(term, eval, cfg, logger)
	if cfg.Banner != "" {
		term.WriteString(fmt.Sprintf("%s\r\n", cfg.Banner))
	}
	term.WriteString(cfg.PrimaryPrompt)
	return s
}
