package lang

import (
	"fmt"
	"strings"
)

// ObjectType names a runtime value kind, used in diagnostics.
type ObjectType string

const (
	IntegerType  ObjectType = "INTEGER"
	BooleanType  ObjectType = "BOOLEAN"
	StringType   ObjectType = "STRING"
	NullType     ObjectType = "NULL"
	ArrayType    ObjectType = "ARRAY"
	HashType     ObjectType = "HASH"
	FunctionType ObjectType = "FUNCTION"
	BuiltinType  ObjectType = "BUILTIN"
	returnType   ObjectType = "RETURN"
)

// Object is a runtime value.
type Object interface {
	Type() ObjectType
	Inspect() string
}

type Integer int64

func (Integer) Type() ObjectType  { return IntegerType }
func (i Integer) Inspect() string { return fmt.Sprintf("%d", int64(i)) }

type Boolean bool

func (Boolean) Type() ObjectType  { return BooleanType }
func (b Boolean) Inspect() string { return fmt.Sprintf("%t", bool(b)) }

type String string

func (String) Type() ObjectType  { return StringType }
func (s String) Inspect() string { return string(s) }

type Null struct{}

func (Null) Type() ObjectType { return NullType }
func (Null) Inspect() string  { return "null" }

type Array []Object

func (Array) Type() ObjectType { return ArrayType }
func (a Array) Inspect() string {
	parts := make([]string, len(a))
	for i, el := range a {
		parts[i] = el.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// HashKey is the comparable form of a hashable object.
type HashKey struct {
	Type  ObjectType
	Value string
}

// HashPair keeps the original key object so Inspect can show it.
type HashPair struct {
	Key   Object
	Value Object
}

type Hash map[HashKey]HashPair

func (Hash) Type() ObjectType { return HashType }
func (h Hash) Inspect() string {
	parts := make([]string, 0, len(h))
	for _, pair := range h {
		parts = append(parts, pair.Key.Inspect()+": "+pair.Value.Inspect())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// hashKey returns the comparable key for obj, or false if obj is not
// hashable (only integers, booleans and strings are).
func hashKey(obj Object) (HashKey, bool) {
	switch obj.(type) {
	case Integer, Boolean, String:
		return HashKey{Type: obj.Type(), Value: obj.Inspect()}, true
	default:
		return HashKey{}, false
	}
}

// Function is a closure: parameters, body, and the environment captured at
// definition time.
type Function struct {
	Params []string
	Body   *Block
	Env    *Environment
}

func (*Function) Type() ObjectType { return FunctionType }
func (f *Function) Inspect() string {
	return "fn(" + strings.Join(f.Params, ", ") + ") { ... }"
}

// BuiltinFunc is a native function exposed to Marmoset code.
type BuiltinFunc func(args []Object) (Object, error)

type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (*Builtin) Type() ObjectType  { return BuiltinType }
func (b *Builtin) Inspect() string { return "builtin " + b.Name }

// returnValue wraps a value produced by a return statement so it can
// unwind block evaluation without being confused with a plain result.
type returnValue struct {
	value Object
}

func (returnValue) Type() ObjectType  { return returnType }
func (r returnValue) Inspect() string { return r.value.Inspect() }

// Environment is a chain of binding scopes. The session's root environment
// persists across evaluations; function calls extend it temporarily.
type Environment struct {
	store map[string]Object
	outer *Environment
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

func (e *Environment) Set(name string, val Object) {
	e.store[name] = val
}
