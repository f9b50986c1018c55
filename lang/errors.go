package lang

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// ErrIncomplete reports that the source is syntactically unfinished (open
// delimiter or string) and more input may complete it. REPL hosts use this
// to switch to a continuation prompt instead of reporting an error.
var ErrIncomplete = errors.New("incomplete input")

// Diagnostic is the single error shape every lexer, parser and runtime
// failure is folded into. Line and Column are 1-based; zero means the
// failure has no useful source location.
type Diagnostic struct {
	Message string
	Line    int
	Column  int
}

func (d *Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s at %d:%d", d.Message, d.Line, d.Column)
	}
	return d.Message
}

func diagAt(pos lexer.Position, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Message: fmt.Sprintf(format, args...),
		Line:    pos.Line,
		Column:  pos.Column,
	}
}

// Incomplete scans source for unbalanced parens, brackets, braces or an
// unterminated string. It understands backslash escapes inside strings and
// ignores line comments, but does no real parsing; the grammar has the
// final say on anything balanced.
func Incomplete(source string) bool {
	depth := 0
	inString := false
	inComment := false
	escaped := false
	var prev rune

	for _, ch := range source {
		if inComment {
			if ch == '\n' {
				inComment = false
			}
			prev = ch
			continue
		}
		if inString {
			if escaped {
				escaped = false
			} else if ch == '\\' {
				escaped = true
			} else if ch == '"' {
				inString = false
			}
			prev = ch
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '/':
			if prev == '/' {
				inComment = true
			}
		}
		prev = ch
	}

	return inString || depth > 0
}
