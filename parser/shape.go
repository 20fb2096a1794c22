package parser

import (
	"strings"
)

// Limit is the inline repetition descriptor. In a shape item list it binds
// to the immediately preceding expression. Max 0 means unbounded.
type Limit struct {
	Min int
	Max int
}

// Shape is the ordered sequence of grammar expressions defining a node
// kind's body.
type Shape struct {
	exprs []*GrammarExpr
}

// NewShape builds a shape from the variadic author form. Two sugars apply:
// a Limit descriptor binds its bounds to the preceding item, and a literal
// or pattern following an item (across an intervening Limit) is additionally
// recorded as that item's right-delimiter while remaining an expression at
// its own position.
func NewShape(items ...interface{}) *Shape {
	sh := &Shape{}
	for _, item := range items {
		if lim, ok := item.(Limit); ok {
			if len(sh.exprs) == 0 {
				panic("limit descriptor with no preceding expression")
			}
			last := sh.exprs[len(sh.exprs)-1]
			last.min, last.max = lim.Min, lim.Max
			continue
		}
		sh.exprs = append(sh.exprs, Expr(item))
	}

	for i := 0; i+1 < len(sh.exprs); i++ {
		g := sh.exprs[i]
		if l := sh.exprs[i+1].lexeme(); l != nil && g.rightDelim == nil {
			g.rightDelim = l
		}
	}
	return sh
}

// Exprs returns the shape's expressions in order.
func (sh *Shape) Exprs() []*GrammarExpr { return sh.exprs }

func (sh *Shape) String() string {
	parts := make([]string, 0, len(sh.exprs))
	for _, g := range sh.exprs {
		parts = append(parts, g.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
