package marmoset

import (
	"strings"
)

// State is the session's lifecycle phase. Transitions happen only inside
// Apply, so observers between events always see a settled state.
type State int

const (
	// StateIdle: prompt shown, editing the current line.
	StateIdle State = iota
	// StateEvaluating: a submission is inside the engine. Input arriving
	// now is queued and replayed afterward in arrival order.
	StateEvaluating
	// StateContinuation: prior lines parsed as incomplete; collecting more.
	StateContinuation
)

// Session is the REPL state machine. It owns the line buffer, history,
// and continuation accumulator, and drives the renderer and evaluator.
// All methods run on the host's single event thread; evaluation is
// run-to-completion, so nothing here needs locking.
type Session struct {
	cfg    *Config
	eval   Evaluator
	render *Renderer
	logger *Logger

	buf   *LineBuffer
	state State
	lines []string // completed lines of a pending multi-line statement

	history   []string
	histIdx   int
	savedLine string
	inHistory bool

	busy   bool
	queue  [][]byte
	closed bool

	// OnExit is called once when the user ends the session (EOF on an
	// empty line, or an exit command). Nil means exit requests are ignored.
	OnExit func()
}

// NewSession wires a session from its collaborators. Hosts normally call
// Attach instead, which also writes the banner and first prompt.
func NewSession(term TerminalWriter, eval Evaluator, cfg *Config, logger *Logger) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = NewLogger(cfg.Debug)
	}
	return &Session{
		cfg:    cfg.clone(),
		eval:   Guard(eval, logger),
		render: NewRenderer(term, cfg, logger),
		logger: logger,
		buf:    NewLineBuffer(),
	}
}

// State reports the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Empty reports whether nothing is buffered: no partial line and no
// pending continuation.
func (s *Session) Empty() bool {
	return s.buf.Len() == 0 && len(s.lines) == 0
}

// HandleData feeds one host input chunk (key event or paste payload)
// through the translator and applies each resulting command. Chunks that
// arrive while an evaluation is in flight are queued whole and replayed
// in order once it finishes.
func (s *Session) HandleData(data []byte) {
	if s.closed {
		return
	}
	if s.busy {
		chunk := append([]byte(nil), data...)
		s.queue = append(s.queue, chunk)
		s.logger.Debug(CatSession, "queued %d bytes during evaluation", len(chunk))
		return
	}
	for _, cmd := range Translate(data) {
		s.Apply(cmd)
		if s.closed {
			return
		}
	}
}

// Apply executes one editing command against the current state.
func (s *Session) Apply(cmd Command) {
	if s.closed {
		return
	}

	switch cmd.Kind {
	case CmdInsertRune:
		s.inHistory = false
		atEnd := s.buf.Cursor() == s.buf.Len()
		s.buf.Insert(cmd.Rune)
		if atEnd {
			s.render.Echo(string(cmd.Rune))
		} else {
			s.redraw()
		}
	case CmdBackspace:
		if s.buf.DeleteBackward() {
			s.redraw()
		}
	case CmdDeleteForward:
		if s.buf.DeleteForward() {
			s.redraw()
		}
	case CmdMoveLeft:
		if s.buf.MoveCursor(-1) {
			s.render.CursorLeft()
		}
	case CmdMoveRight:
		if s.buf.MoveCursor(1) {
			s.render.CursorRight()
		}
	case CmdWordLeft:
		if s.buf.WordLeft() {
			s.redraw()
		}
	case CmdWordRight:
		if s.buf.WordRight() {
			s.redraw()
		}
	case CmdHome:
		if s.buf.Home() {
			s.redraw()
		}
	case CmdEnd:
		if s.buf.End() {
			s.redraw()
		}
	case CmdKillLine:
		s.buf.TakeContents()
		s.redraw()
	case CmdKillToEnd:
		if s.buf.KillToEnd() {
			s.redraw()
		}
	case CmdHistoryPrev:
		s.historyPrev()
	case CmdHistoryNext:
		s.historyNext()
	case CmdSubmit:
		s.submit()
	case CmdInterrupt:
		s.interrupt()
	case CmdEOF:
		s.handleEOF()
	case CmdClearScreen:
		s.render.ClearScreen(s.currentPrompt(), s.buf.Contents(), s.buf.Cursor())
	case CmdPassthrough:
		s.render.Passthrough(cmd.Raw)
	}
}

// Detach ends the session. Further input is dropped; no bytes are written.
func (s *Session) Detach() {
	s.closed = true
	s.queue = nil
}

func (s *Session) currentPrompt() string {
	if s.state == StateContinuation {
		return s.cfg.ContinuationPrompt
	}
	return s.cfg.PrimaryPrompt
}

func (s *Session) redraw() {
	s.render.RedrawLine(s.currentPrompt(), s.buf.Contents(), s.buf.Cursor())
}

// submit finalizes the current line: echo the newline, fold the line into
// any pending statement, and either evaluate or ask for more input.
func (s *Session) submit() {
	s.render.Newline()
	s.inHistory = false

	line := s.buf.TakeContents()
	s.rememberLine(line)
	s.lines = append(s.lines, line)
	source := strings.Join(s.lines, "\n")

	if strings.TrimSpace(source) == "" {
		s.lines = nil
		s.state = StateIdle
		s.render.Prompt(s.cfg.PrimaryPrompt)
		return
	}

	if s.state != StateContinuation && s.isExitCommand(line) {
		s.exit()
		return
	}

	s.state = StateEvaluating
	s.busy = true
	s.logger.Debug(CatSession, "evaluating %d line(s)", len(s.lines))
	res := s.eval.Eval(source)
	s.busy = false

	if res.Kind == KindIncomplete {
		s.state = StateContinuation
		s.render.Prompt(s.cfg.ContinuationPrompt)
		s.drainQueue()
		return
	}

	s.lines = nil
	s.state = StateIdle
	s.render.Result(res, s.cfg.PrimaryPrompt)
	s.drainQueue()
}

// drainQueue replays chunks that arrived during evaluation, oldest first.
// A replayed submit may queue more input; the loop picks that up too.
func (s *Session) drainQueue() {
	for len(s.queue) > 0 && !s.closed && !s.busy {
		chunk := s.queue[0]
		s.queue = s.queue[1:]
		for _, cmd := range Translate(chunk) {
			s.Apply(cmd)
			if s.closed {
				return
			}
		}
	}
}

// interrupt abandons whatever is in progress and returns to a fresh
// primary prompt. With nothing buffered it only repaints the prompt, so
// repeated interrupts settle into the same display and state. The replay
// queue is left alone: input that arrived after a queued ^C still replays
// in order.
func (s *Session) interrupt() {
	hadContent := s.buf.Len() > 0 || len(s.lines) > 0 || s.state == StateContinuation
	s.buf.TakeContents()
	s.lines = nil
	s.inHistory = false
	s.state = StateIdle
	if hadContent {
		s.render.Interrupted(s.cfg.PrimaryPrompt)
	} else {
		s.render.RedrawLine(s.cfg.PrimaryPrompt, "", 0)
	}
}

// handleEOF ends the session on an empty idle line; otherwise it behaves
// like delete-forward, matching the usual readline treatment of Ctrl+D.
func (s *Session) handleEOF() {
	if s.state == StateIdle && s.Empty() {
		s.render.Newline()
		s.exit()
		return
	}
	if s.buf.DeleteForward() {
		s.redraw()
	}
}

func (s *Session) isExitCommand(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, cmd := range s.cfg.ExitCommands {
		if trimmed == cmd {
			return true
		}
	}
	return false
}

func (s *Session) exit() {
	s.closed = true
	s.queue = nil
	s.logger.Debug(CatSession, "session ended")
	if s.OnExit != nil {
		s.OnExit()
	}
}

// rememberLine appends a submitted line to history, skipping blanks and
// immediate repeats.
func (s *Session) rememberLine(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if n := len(s.history); n > 0 && s.history[n-1] == line {
		return
	}
	s.history = append(s.history, line)
}

func (s *Session) historyPrev() {
	if len(s.history) == 0 {
		return
	}
	if !s.inHistory {
		s.savedLine = s.buf.Contents()
		s.histIdx = len(s.history)
		s.inHistory = true
	}
	if s.histIdx == 0 {
		return
	}
	s.histIdx--
	s.setLine(s.history[s.histIdx])
}

func (s *Session) historyNext() {
	if !s.inHistory {
		return
	}
	s.histIdx++
	if s.histIdx >= len(s.history) {
		s.inHistory = false
		s.setLine(s.savedLine)
		return
	}
	s.setLine(s.history[s.histIdx])
}

func (s *Session) setLine(text string) {
	s.buf.TakeContents()
	for _, r := range text {
		s.buf.Insert(r)
	}
	s.redraw()
}
