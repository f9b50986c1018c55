package lang

import (
	"strings"

	"github.com/alecthomas/participle/v2"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(3),
)

// Engine evaluates Marmoset source against a persistent environment.
// Bindings accumulate across Eval calls; a failed evaluation leaves the
// environment exactly as it was, because let only assigns after its value
// expression evaluated cleanly.
type Engine struct {
	env *Environment
}

func NewEngine() *Engine {
	return &Engine{env: NewEnvironment()}
}

// Eval parses and evaluates source. It returns ErrIncomplete when the
// source is syntactically unfinished, a *Diagnostic for any lex, parse or
// runtime error, and otherwise the value of the last statement.
func (e *Engine) Eval(source string) (Object, error) {
	if strings.TrimSpace(source) == "" {
		return Null{}, nil
	}
	if Incomplete(source) {
		return nil, ErrIncomplete
	}

	program, err := parser.ParseString("repl", source)
	if err != nil {
		if pe, ok := err.(participle.Error); ok {
			pos := pe.Position()
			return nil, &Diagnostic{Message: pe.Message(), Line: pos.Line, Column: pos.Column}
		}
		return nil, &Diagnostic{Message: err.Error()}
	}

	return evalProgram(program, e.env)
}

// Parse exposes the grammar without evaluation, for hosts that only want
// syntax checking.
func Parse(name, source string) (*Program, error) {
	return parser.ParseString(name, source)
}
