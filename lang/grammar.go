package lang

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar is layered by precedence: equality, comparison, additive,
// multiplicative, unary, postfix (call/index), primary. Each layer folds
// left-to-right during evaluation.

type Program struct {
	Pos lexer.Position

	Statements []*Statement `@@*`
}

type Statement struct {
	Pos lexer.Position

	Let    *LetStmt    `  @@`
	Return *ReturnStmt `| @@`
	Expr   *ExprStmt   `| @@`
}

type LetStmt struct {
	Pos lexer.Position

	Name  string `"let" @Ident "="`
	Value *Expr  `@@ [ ";" ]`
}

type ReturnStmt struct {
	Pos lexer.Position

	Value *Expr `"return" [ @@ ] [ ";" ]`
}

type ExprStmt struct {
	Pos lexer.Position

	Expr *Expr `@@ [ ";" ]`
}

type Expr struct {
	Pos lexer.Position

	Head *CmpExpr `@@`
	Tail []*EqOp  `@@*`
}

type EqOp struct {
	Pos lexer.Position

	Op    string   `@("==" | "!=")`
	Right *CmpExpr `@@`
}

type CmpExpr struct {
	Pos lexer.Position

	Head *AddExpr `@@`
	Tail []*CmpOp `@@*`
}

type CmpOp struct {
	Pos lexer.Position

	Op    string   `@("<" | ">")`
	Right *AddExpr `@@`
}

type AddExpr struct {
	Pos lexer.Position

	Head *MulExpr `@@`
	Tail []*AddOp `@@*`
}

type AddOp struct {
	Pos lexer.Position

	Op    string   `@("+" | "-")`
	Right *MulExpr `@@`
}

type MulExpr struct {
	Pos lexer.Position

	Head *UnaryExpr `@@`
	Tail []*MulOp   `@@*`
}

type MulOp struct {
	Pos lexer.Position

	Op    string     `@("*" | "/")`
	Right *UnaryExpr `@@`
}

type UnaryExpr struct {
	Pos lexer.Position

	Op      string       `( @("!" | "-")`
	Operand *UnaryExpr   `  @@ )`
	Postfix *PostfixExpr `| @@`
}

type PostfixExpr struct {
	Pos lexer.Position

	Primary *Primary     `@@`
	Ops     []*PostfixOp `@@*`
}

type PostfixOp struct {
	Pos lexer.Position

	Call  *CallOp  `  @@`
	Index *IndexOp `| @@`
}

type CallOp struct {
	Pos lexer.Position

	Args []*Expr `"(" [ @@ ( "," @@ )* ] ")"`
}

type IndexOp struct {
	Pos lexer.Position

	Index *Expr `"[" @@ "]"`
}

type Primary struct {
	Pos lexer.Position

	If    *IfExpr   `  @@`
	Fn    *FnExpr   `| @@`
	Array *ArrayLit `| @@`
	Hash  *HashLit  `| @@`
	Bool  *string   `| @("true" | "false")`
	Int   *int64    `| @Int`
	Str   *string   `| @String`
	Ident *string   `| @Ident`
	Group *Expr     `| "(" @@ ")"`
}

type IfExpr struct {
	Pos lexer.Position

	Cond *Expr  `"if" "(" @@ ")"`
	Then *Block `@@`
	Else *Block `[ "else" @@ ]`
}

type FnExpr struct {
	Pos lexer.Position

	Params []string `"fn" "(" [ @Ident ( "," @Ident )* ] ")"`
	Body   *Block   `@@`
}

type Block struct {
	Pos lexer.Position

	Statements []*Statement `"{" @@* "}"`
}

type ArrayLit struct {
	Pos lexer.Position

	Elems []*Expr `"[" [ @@ ( "," @@ )* ] "]"`
}

type HashLit struct {
	Pos lexer.Position

	Pairs []*HashPairLit `"{" [ @@ ( "," @@ )* ] "}"`
}

type HashPairLit struct {
	Pos lexer.Position

	Key   *Expr `@@ ":"`
	Value *Expr `@@`
}
