package parser

import (
	"strings"

	"github.com/iancoleman/strcase"
)

type strategy int

const (
	strategyBase strategy = iota
	strategyLeftRecursive
	strategyIndentBlock
)

// Kind is a user-defined grammar rule: a name, a shape and the parse policy
// flags. The zero values of the flags match the base driver defaults except
// FallbackToFirstExp and IncompleteParseThreshold, which NewKind sets to
// true and 1.
type Kind struct {
	Name  string
	Shape *Shape

	// FallbackToFirstExp returns the first successfully parsed sub-node when
	// the rest of the shape cannot complete.
	FallbackToFirstExp bool

	// AllowIncompleteParse substitutes missing tokens for unmatched trailing
	// expressions once IncompleteParseThreshold content children have
	// accumulated.
	AllowIncompleteParse     bool
	IncompleteParseThreshold int

	// Validate is the author's extra validation hook, invoked by
	// Node.Validate after the missing-element walk.
	Validate func(*Node) []Diag

	strategy strategy
}

// NewKind declares a node kind with the base parse driver.
func NewKind(name string, items ...interface{}) *Kind {
	return &Kind{
		Name:                     name,
		Shape:                    NewShape(items...),
		FallbackToFirstExp:       true,
		IncompleteParseThreshold: 1,
	}
}

// NewLeftRecursiveKind declares a kind parsed by the left-recursive chain
// driver. The shape must open with the operand expression followed by the
// chain delimiter.
func NewLeftRecursiveKind(name string, items ...interface{}) *Kind {
	k := NewKind(name, items...)
	k.strategy = strategyLeftRecursive
	return k
}

// NewIndentBlockKind declares a kind parsed by the indentation-block driver.
// The shape describes a single child entry; block mode collects one entry
// per subordinate line.
func NewIndentBlockKind(name string, items ...interface{}) *Kind {
	k := NewKind(name, items...)
	k.strategy = strategyIndentBlock
	return k
}

// Tag is the kind's display name, $SCREAMING_SNAKE.
func (k *Kind) Tag() string {
	if k.Name == "" {
		return "$_"
	}
	return "$" + strcase.ToScreamingSnake(k.Name)
}

// Parse drives the kind's shape against the scanner. It returns the parsed
// node, the fallback element when only the leading sub-node matched, or nil
// on clean failure. A successful parse leaves the cursor past the match; a
// failed one restores it exactly.
func (k *Kind) Parse(s *Scanner) Element {
	defer enterf("%s %s", k.Tag(), k.Shape).exitf(s)
	switch k.strategy {
	case strategyLeftRecursive:
		return k.parseLeftRecursive(s)
	case strategyIndentBlock:
		return k.parseIndentBlock(s)
	}
	return k.parseBase(s)
}

func (k *Kind) parseBase(s *Scanner) Element {
	startCursor := s.cursor
	var firstExp Element
	firstExpCursor := startCursor
	var exps []Element

	for i, g := range k.Shape.exprs {
		res, ok := g.parse(s)
		if ok {
			if i == 0 && g.lexeme() == nil {
				if el := firstContent(res); el != nil {
					firstExp = el
					firstExpCursor = s.cursor
				}
			}
			exps = append(exps, res...)
			continue
		}
		if k.AllowIncompleteParse && contentCount(exps) >= k.IncompleteParseThreshold {
			exps = append(exps, missingToken(s, g))
			continue
		}
		if k.FallbackToFirstExp && firstExp != nil {
			s.cursor = firstExpCursor
			return firstExp
		}
		s.cursor = startCursor
		return nil
	}
	return &Node{Kind: k, Exps: exps}
}

// firstContent picks the fallback candidate out of a leading expression's
// results: the first sub-node, or failing that the first content token.
func firstContent(res []Element) Element {
	for _, el := range res {
		if _, ok := el.(*Node); ok {
			return el
		}
	}
	for _, el := range res {
		if isContent(el) {
			return el
		}
	}
	return nil
}

func contentCount(exps []Element) int {
	count := 0
	for _, el := range exps {
		if isContent(el) {
			count++
		}
	}
	return count
}

func missingToken(s *Scanner, g *GrammarExpr) *Token {
	line := s.lineAt(s.cursor)
	return &Token{
		Lex:       g.lexeme(),
		Value:     "",
		Start:     s.cursor,
		End:       s.cursor,
		Line:      line,
		Col:       s.cursor - s.LineStart(line),
		Indent:    s.lineIndents[line],
		IsMissing: true,
		Expr:      g,
	}
}

// ParseText is the convenience entry point: scan src, parse kind, and
// require the whole input to be consumed (trailing whitespace aside).
func ParseText(k *Kind, src string) (Element, error) {
	s := NewScanner(src)
	el := k.Parse(s)
	if el == nil {
		return nil, newParseError(k, "could not be parsed", s)
	}
	if rest := strings.TrimRight(src[s.cursor:], " \n"); rest != "" {
		return el, UnconsumedInput(s, el)
	}
	return el, nil
}
