package marmoset

import (
	"strings"

	"github.com/dop251/goja"
)

// JSEvaluator adapts a goja JavaScript runtime to the Evaluator contract,
// proving the bridge is engine-agnostic. Unlike sandboxed batch executors
// the runtime is persistent: bindings survive across evaluations for the
// lifetime of the session.
type JSEvaluator struct {
	vm      *goja.Runtime
	printed strings.Builder
}

func NewJSEvaluator() *JSEvaluator {
	e := &JSEvaluator{vm: goja.New()}

	printFunc := func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		e.printed.WriteString(strings.Join(parts, " "))
		e.printed.WriteString("\n")
		return goja.Undefined()
	}
	_ = e.vm.Set("print", printFunc)

	console := e.vm.NewObject()
	_ = console.Set("log", printFunc)
	_ = e.vm.Set("console", console)

	return e
}

func (e *JSEvaluator) Eval(source string) EvalResult {
	e.printed.Reset()

	val, err := e.vm.RunString(source)
	if err != nil {
		// An open brace or paren at end of input means the statement is
		// unfinished, not wrong.
		if strings.Contains(err.Error(), "Unexpected end of input") {
			return EvalResult{Kind: KindIncomplete}
		}
		if ex, ok := err.(*goja.Exception); ok {
			return EvalResult{Kind: KindDiagnostic, Text: ex.Value().String()}
		}
		return EvalResult{Kind: KindDiagnostic, Text: err.Error()}
	}

	var value string
	if val != nil && !goja.IsUndefined(val) && !goja.IsNull(val) {
		value = val.String()
	}

	text := e.printed.String() + value
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return EvalResult{Kind: KindEmpty}
	}
	return EvalResult{Kind: KindValue, Text: text}
}
