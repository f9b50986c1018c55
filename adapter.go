package marmoset

// ResultKind tags the outcome of one evaluation.
type ResultKind int

const (
	// KindValue carries rendered value text to display.
	KindValue ResultKind = iota
	// KindEmpty means evaluation succeeded but produced nothing to show.
	KindEmpty
	// KindDiagnostic carries an error message and an optional source span.
	KindDiagnostic
	// KindIncomplete signals the input is syntactically unfinished and the
	// session should collect another line before evaluating.
	KindIncomplete
)

// Span is a 1-based source location attached to a diagnostic.
type Span struct {
	Line   int
	Column int
}

// EvalResult is the closed result variant every engine outcome is folded
// into. It is produced once per submission and consumed immediately by the
// renderer; the bridge keeps no evaluation history.
type EvalResult struct {
	Kind ResultKind
	Text string
	Span *Span
}

// Evaluator is the narrow contract to an embedded interpreter engine.
// Implementations keep whatever environment their language defines as
// session-durable, but a failed evaluation must not corrupt it. Eval is
// synchronous and run-to-completion; calls never overlap.
type Evaluator interface {
	Eval(source string) EvalResult
}

// internalErrorText is shown when an engine fault escapes as a panic.
const internalErrorText = "internal error"

// Guard wraps an evaluator so that no engine fault can take down the
// session: a panic inside Eval becomes a generic diagnostic and the
// session returns to a usable prompt.
func Guard(ev Evaluator, logger *Logger) Evaluator {
	return &guardedEvaluator{ev: ev, logger: logger}
}

type guardedEvaluator struct {
	ev     Evaluator
	logger *Logger
}

func (g *guardedEvaluator) Eval(source string) (result EvalResult) {
	defer func() {
		if r := recover(); r != nil {
			if g.logger != nil {
				g.logger.Error(CatEval, "engine panic: %v", r)
			}
			result = EvalResult{Kind: KindDiagnostic, Text: internalErrorText}
		}
	}()
	return g.ev.Eval(source)
}
