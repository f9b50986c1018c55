package lang

import (
	"unicode/utf8"
)

var builtins = map[string]*Builtin{
	"len": {Name: "len", Fn: builtinLen},
}

func builtinLen(args []Object) (Object, error) {
	if len(args) != 1 {
		return nil, &Diagnostic{Message: "wrong number of arguments to len: got " + Integer(len(args)).Inspect() + ", want 1"}
	}
	switch arg := args[0].(type) {
	case String:
		return Integer(utf8.RuneCountInString(string(arg))), nil
	case Array:
		return Integer(len(arg)), nil
	case Hash:
		return Integer(len(arg)), nil
	default:
		return nil, &Diagnostic{Message: "argument to len not supported, got " + string(arg.Type())}
	}
}
