package parser

import (
	"fmt"
	"strings"
)

// An Element is a child of a parse-tree node: either a *Token or a Node
// (the concrete result returned by a Kind's parse).
type Element interface {
	element()
}

// Token is an immutable record of one consumed match.
type Token struct {
	Lex    Lexeme // the lexeme that produced the match
	Value  string
	Start  int // half-open range into the input
	End    int
	Line   int // zero-based line of Start
	Col    int // zero-based column of Start within its line
	Indent int // leading-space count of the line at construction time

	// IsMissing marks the synthetic token appended by the incomplete-parse
	// policy. A missing token has an empty Value and Start == End.
	IsMissing bool

	// Expr points back at the grammar expression that produced (or, for a
	// missing token, failed to produce) this token.
	Expr *GrammarExpr

	// DecorBefore and DecorAfter are free decoration slots for downstream
	// formatters. The engine never reads them.
	DecorBefore string
	DecorAfter  string
}

func (t *Token) element() {}

// IsWhitespace reports whether the token carries only whitespace.
func (t *Token) IsWhitespace() bool {
	return !t.IsMissing && strings.TrimSpace(t.Value) == ""
}

func (t *Token) String() string {
	if t.IsMissing {
		return "‹missing›"
	}
	return fmt.Sprintf("%q", t.Value)
}

var _ Element = &Token{}
