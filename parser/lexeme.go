package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// A Lexeme is a terminal matcher: either a literal string or an anchored
// regular expression. Lexemes are the only values the Scanner knows how to
// match.
type Lexeme interface {
	match(src string, pos int) (string, bool)
	fmt.Stringer
}

// Lit is a finite, non-empty literal. Plain Go strings in shape items are
// converted to Lit.
type Lit string

func (l Lit) match(src string, pos int) (string, bool) {
	if strings.HasPrefix(src[pos:], string(l)) {
		return string(l), true
	}
	return "", false
}

func (l Lit) String() string {
	return fmt.Sprintf("%q", string(l))
}

// RE is the author-facing regex form. It is compiled into a *Pat when a
// Shape is built.
type RE string

// Pat is an anchored regular expression lexeme. Anchoring is baked in at
// compile time: a leading ^ in the author's expression is stripped and the
// whole expression is wrapped in \A(?:...).
type Pat struct {
	expr string
	re   *regexp.Regexp
}

// NewPat compiles an author regex into an anchored Pat. It panics if the
// expression does not compile or if it matches the empty string, which would
// stall the repetition loop.
func NewPat(expr string) *Pat {
	src := strings.TrimPrefix(expr, "^")
	re := regexp.MustCompile(`(?m)\A(?:` + src + `)`)
	if re.MatchString("") {
		panic(fmt.Errorf("pattern %q matches the empty string", expr))
	}
	return &Pat{expr: src, re: re}
}

func newRawPat(expr string) *Pat {
	return &Pat{expr: expr, re: regexp.MustCompile(`(?m)\A(?:` + expr + `)`)}
}

func (p *Pat) match(src string, pos int) (string, bool) {
	loc := p.re.FindStringIndex(src[pos:])
	if loc == nil {
		return "", false
	}
	if loc[0] != 0 {
		panic(`re not \A-anchored`)
	}
	return src[pos : pos+loc[1]], true
}

func (p *Pat) String() string {
	return "/" + p.expr + "/"
}

var _ Lexeme = Lit("")
var _ Lexeme = &Pat{}
