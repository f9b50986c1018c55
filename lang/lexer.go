package lang

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes Marmoset source. Keywords lex as Ident and are matched
// literally by the grammar, so identifiers and keywords share one rule.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Operator", Pattern: `==|!=|[-+*/<>=!]`},
		{Name: "Punct", Pattern: `[(){}\[\],:;]`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
})
