package lang

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Tree-walking evaluator. Every function returns (Object, error); the error
// is always a *Diagnostic so the REPL layer can render it with a source
// location. Return statements unwind through blocks via the returnValue
// wrapper and are unwrapped at program and call boundaries.

func evalProgram(program *Program, env *Environment) (Object, error) {
	var result Object = Null{}
	for _, stmt := range program.Statements {
		var err error
		result, err = evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if rv, ok := result.(returnValue); ok {
			return rv.value, nil
		}
	}
	return result, nil
}

func evalBlock(block *Block, env *Environment) (Object, error) {
	var result Object = Null{}
	for _, stmt := range block.Statements {
		var err error
		result, err = evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if _, ok := result.(returnValue); ok {
			// Keep the wrapper so nested blocks unwind too.
			return result, nil
		}
	}
	return result, nil
}

func evalStatement(stmt *Statement, env *Environment) (Object, error) {
	switch {
	case stmt.Let != nil:
		val, err := evalExpr(stmt.Let.Value, env)
		if err != nil {
			return nil, err
		}
		env.Set(stmt.Let.Name, val)
		return Null{}, nil
	case stmt.Return != nil:
		if stmt.Return.Value == nil {
			return returnValue{value: Null{}}, nil
		}
		val, err := evalExpr(stmt.Return.Value, env)
		if err != nil {
			return nil, err
		}
		return returnValue{value: val}, nil
	case stmt.Expr != nil:
		return evalExpr(stmt.Expr.Expr, env)
	}
	return Null{}, nil
}

func evalExpr(expr *Expr, env *Environment) (Object, error) {
	left, err := evalCmp(expr.Head, env)
	if err != nil {
		return nil, err
	}
	for _, op := range expr.Tail {
		right, err := evalCmp(op.Right, env)
		if err != nil {
			return nil, err
		}
		left, err = evalInfix(op.Pos, op.Op, left, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func evalCmp(expr *CmpExpr, env *Environment) (Object, error) {
	left, err := evalAdd(expr.Head, env)
	if err != nil {
		return nil, err
	}
	for _, op := range expr.Tail {
		right, err := evalAdd(op.Right, env)
		if err != nil {
			return nil, err
		}
		left, err = evalInfix(op.Pos, op.Op, left, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func evalAdd(expr *AddExpr, env *Environment) (Object, error) {
	left, err := evalMul(expr.Head, env)
	if err != nil {
		return nil, err
	}
	for _, op := range expr.Tail {
		right, err := evalMul(op.Right, env)
		if err != nil {
			return nil, err
		}
		left, err = evalInfix(op.Pos, op.Op, left, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func evalMul(expr *MulExpr, env *Environment) (Object, error) {
	left, err := evalUnary(expr.Head, env)
	if err != nil {
		return nil, err
	}
	for _, op := range expr.Tail {
		right, err := evalUnary(op.Right, env)
		if err != nil {
			return nil, err
		}
		left, err = evalInfix(op.Pos, op.Op, left, right)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func evalInfix(pos lexer.Position, op string, left, right Object) (Object, error) {
	if left.Type() != right.Type() {
		return nil, diagAt(pos, "type mismatch: %s %s %s", left.Type(), op, right.Type())
	}

	switch l := left.(type) {
	case Integer:
		r := right.(Integer)
		switch op {
		case "+":
			return l + r, nil
		case "-":
			return l - r, nil
		case "*":
			return l * r, nil
		case "/":
			if r == 0 {
				return nil, diagAt(pos, "division by zero")
			}
			return l / r, nil
		case "<":
			return Boolean(l < r), nil
		case ">":
			return Boolean(l > r), nil
		case "==":
			return Boolean(l == r), nil
		case "!=":
			return Boolean(l != r), nil
		}
	case Boolean:
		r := right.(Boolean)
		switch op {
		case "==":
			return Boolean(l == r), nil
		case "!=":
			return Boolean(l != r), nil
		}
	case String:
		if op == "+" {
			return l + right.(String), nil
		}
	}

	return nil, diagAt(pos, "unknown operator: %s %s %s", left.Type(), op, right.Type())
}

func evalUnary(expr *UnaryExpr, env *Environment) (Object, error) {
	if expr.Operand != nil {
		operand, err := evalUnary(expr.Operand, env)
		if err != nil {
			return nil, err
		}
		switch expr.Op {
		case "!":
			return Boolean(!isTruthy(operand)), nil
		case "-":
			if i, ok := operand.(Integer); ok {
				return -i, nil
			}
			return nil, diagAt(expr.Pos, "unknown operator: -%s", operand.Type())
		}
		return nil, diagAt(expr.Pos, "unknown operator: %s%s", expr.Op, operand.Type())
	}
	return evalPostfix(expr.Postfix, env)
}

func evalPostfix(expr *PostfixExpr, env *Environment) (Object, error) {
	obj, err := evalPrimary(expr.Primary, env)
	if err != nil {
		return nil, err
	}
	for _, op := range expr.Ops {
		switch {
		case op.Call != nil:
			obj, err = evalCall(op.Call, obj, env)
		case op.Index != nil:
			obj, err = evalIndex(op.Index, obj, env)
		}
		if err != nil {
			return nil, err
		}
	}
	return obj, nil
}

func evalCall(call *CallOp, callee Object, env *Environment) (Object, error) {
	args := make([]Object, len(call.Args))
	for i, argExpr := range call.Args {
		arg, err := evalExpr(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	switch fn := callee.(type) {
	case *Function:
		if len(args) != len(fn.Params) {
			return nil, diagAt(call.Pos, "wrong number of arguments: got %d, want %d", len(args), len(fn.Params))
		}
		extended := NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Params {
			extended.Set(param, args[i])
		}
		result, err := evalBlock(fn.Body, extended)
		if err != nil {
			return nil, err
		}
		if rv, ok := result.(returnValue); ok {
			return rv.value, nil
		}
		return result, nil
	case *Builtin:
		result, err := fn.Fn(args)
		if err != nil {
			if d, ok := err.(*Diagnostic); ok {
				if d.Line == 0 {
					d.Line, d.Column = call.Pos.Line, call.Pos.Column
				}
				return nil, d
			}
			return nil, diagAt(call.Pos, "%s", err.Error())
		}
		return result, nil
	default:
		return nil, diagAt(call.Pos, "not a function: %s", callee.Type())
	}
}

func evalIndex(idx *IndexOp, left Object, env *Environment) (Object, error) {
	index, err := evalExpr(idx.Index, env)
	if err != nil {
		return nil, err
	}

	switch container := left.(type) {
	case Array:
		i, ok := index.(Integer)
		if !ok {
			return nil, diagAt(idx.Pos, "array index must be an integer, got %s", index.Type())
		}
		if i < 0 || int64(i) >= int64(len(container)) {
			return Null{}, nil
		}
		return container[i], nil
	case Hash:
		key, ok := hashKey(index)
		if !ok {
			return nil, diagAt(idx.Pos, "unusable as hash key: %s", index.Type())
		}
		pair, found := container[key]
		if !found {
			return Null{}, nil
		}
		return pair.Value, nil
	default:
		return nil, diagAt(idx.Pos, "index operator not supported: %s", left.Type())
	}
}

func evalPrimary(p *Primary, env *Environment) (Object, error) {
	switch {
	case p.If != nil:
		return evalIf(p.If, env)
	case p.Fn != nil:
		return &Function{Params: p.Fn.Params, Body: p.Fn.Body, Env: env}, nil
	case p.Array != nil:
		elems := make(Array, len(p.Array.Elems))
		for i, elemExpr := range p.Array.Elems {
			elem, err := evalExpr(elemExpr, env)
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return elems, nil
	case p.Hash != nil:
		return evalHash(p.Hash, env)
	case p.Bool != nil:
		return Boolean(*p.Bool == "true"), nil
	case p.Int != nil:
		return Integer(*p.Int), nil
	case p.Str != nil:
		return String(*p.Str), nil
	case p.Ident != nil:
		name := *p.Ident
		if val, ok := env.Get(name); ok {
			return val, nil
		}
		if builtin, ok := builtins[name]; ok {
			return builtin, nil
		}
		return nil, diagAt(p.Pos, "identifier not found: %s", name)
	case p.Group != nil:
		return evalExpr(p.Group, env)
	}
	return Null{}, nil
}

func evalIf(expr *IfExpr, env *Environment) (Object, error) {
	cond, err := evalExpr(expr.Cond, env)
	if err != nil {
		return nil, err
	}
	// The returnValue wrapper passes through untouched; only program and
	// call boundaries unwrap it.
	if isTruthy(cond) {
		return evalBlock(expr.Then, env)
	}
	if expr.Else != nil {
		return evalBlock(expr.Else, env)
	}
	return Null{}, nil
}

func evalHash(lit *HashLit, env *Environment) (Object, error) {
	hash := make(Hash, len(lit.Pairs))
	for _, pairLit := range lit.Pairs {
		key, err := evalExpr(pairLit.Key, env)
		if err != nil {
			return nil, err
		}
		hk, ok := hashKey(key)
		if !ok {
			return nil, diagAt(pairLit.Pos, "unusable as hash key: %s", key.Type())
		}
		value, err := evalExpr(pairLit.Value, env)
		if err != nil {
			return nil, err
		}
		hash[hk] = HashPair{Key: key, Value: value}
	}
	return hash, nil
}

func isTruthy(obj Object) bool {
	switch v := obj.(type) {
	case Null:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}
