package marmoset

import (
	"errors"

	"github.com/marmoset-lang/marmoset/lang"
)

// MarmosetEvaluator adapts the embedded Marmoset engine to the Evaluator
// contract. The engine's environment persists for the session; null
// results (let bindings, bare if with false condition) render as Empty so
// the terminal shows just the next prompt.
type MarmosetEvaluator struct {
	engine *lang.Engine
}

func NewMarmosetEvaluator() *MarmosetEvaluator {
	return &MarmosetEvaluator{engine: lang.NewEngine()}
}

func (m *MarmosetEvaluator) Eval(source string) EvalResult {
	obj, err := m.engine.Eval(source)
	if err != nil {
		if errors.Is(err, lang.ErrIncomplete) {
			return EvalResult{Kind: KindIncomplete}
		}
		var diag *lang.Diagnostic
		if errors.As(err, &diag) {
			res := EvalResult{Kind: KindDiagnostic, Text: diag.Message}
			if diag.Line > 0 {
				res.Span = &Span{Line: diag.Line, Column: diag.Column}
			}
			return res
		}
		return EvalResult{Kind: KindDiagnostic, Text: err.Error()}
	}

	if _, isNull := obj.(lang.Null); isNull {
		return EvalResult{Kind: KindEmpty}
	}
	return EvalResult{Kind: KindValue, Text: obj.Inspect()}
}
