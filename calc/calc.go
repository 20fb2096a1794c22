// Package calc declares a small expression language on top of the grammar
// engine: numbers, identifiers, grouped expressions, left-associative sum
// and product chains, and let-blocks introduced by indentation.
package calc

import (
	"fmt"

	"github.com/arr-ai/frozen"

	"github.com/treeshape/treeshape/parser"
)

// Number and Ident are the terminals.
var (
	Number *parser.Kind
	Ident  *parser.Kind

	// Group wraps an expression in parentheses. The inner reference is lazy:
	// Expr is not declared yet.
	Group *parser.Kind

	// Atom is the bottom precedence layer.
	Atom *parser.Kind

	// Product chains atoms with * or /, folding left.
	Product *parser.Kind

	// Sum chains products with + or -, folding left. Products bind tighter
	// by construction: the sum operand is the product layer.
	Sum *parser.Kind

	// Expr is the top expression layer. Its shape is a single alternation,
	// so it always completes and wraps what it matched in an expr node, even
	// for a bare atom.
	Expr *parser.Kind

	// Assign is one `name = expr` entry.
	Assign *parser.Kind

	// Body collects assignments indented under the introducing token.
	Body *parser.Kind

	// Script is a let-block: `let` followed by indented assignments.
	Script *parser.Kind
)

func init() {
	// These are declared via init (rather than var initializers) because the
	// closures below reference later kinds (e.g. Group references Expr), and
	// Go's static initialization-dependency analysis treats such references
	// as cycles even though the closures are only evaluated lazily at parse
	// time, long after all kinds exist.
	Number = parser.NewKind("number", parser.RE(`\d+(?:\.\d+)?`))
	Ident = parser.NewKind("ident", parser.RE(`[A-Za-z_]\w*`))

	Group = parser.NewKind("group",
		"(",
		func() interface{} { return Expr },
		")",
	)

	Atom = parser.NewKind("atom",
		[]interface{}{Group, Number, Ident},
	)

	Product = parser.NewLeftRecursiveKind("product",
		Atom,
		parser.RE(`[*/]`),
		func() interface{} { return Product },
	)

	Sum = parser.NewLeftRecursiveKind("sum",
		Product,
		parser.RE(`[+-]`),
		func() interface{} { return Sum },
	)

	Expr = parser.NewKind("expr",
		[]interface{}{Sum},
	)

	Assign = parser.NewKind("assign",
		Ident,
		"=",
		parser.Expr(func() interface{} { return Expr }).Expecting("expression after '='"),
	)

	Body = parser.NewIndentBlockKind("body",
		func() interface{} { return Assign },
	)

	Script = parser.NewKind("script",
		"let",
		Body,
	)

	// a dangling `name =` still yields a tree; Validate reports the hole
	Assign.AllowIncompleteParse = true

	Script.Validate = checkDuplicateAssigns
}

// checkDuplicateAssigns reports every assignment that rebinds a name already
// bound earlier in the same script.
func checkDuplicateAssigns(n *parser.Node) []parser.Diag {
	var out []parser.Diag
	seen := frozen.Map[interface{}, interface{}]{}
	for _, el := range n.ContentExps() {
		body, ok := el.(*parser.Node)
		if !ok || body.Kind != Body {
			continue
		}
		for _, entry := range body.ContentExps() {
			assign, ok := entry.(*parser.Node)
			if !ok || assign.Kind != Assign {
				continue
			}
			toks := assign.ContentTokens()
			if len(toks) == 0 {
				continue
			}
			name := toks[0]
			if _, dup := seen.Get(name.Value); dup {
				out = append(out, parser.Diag{
					Line:    name.Line,
					Col:     name.Col,
					Message: fmt.Sprintf("duplicate assignment to %q", name.Value),
				})
				continue
			}
			seen = seen.With(name.Value, struct{}{})
		}
	}
	return out
}

var kinds frozen.Map[string, interface{}]

func init() {
	kinds = frozen.Map[string, interface{}]{}.
		With("number", Number).
		With("ident", Ident).
		With("group", Group).
		With("atom", Atom).
		With("product", Product).
		With("sum", Sum).
		With("expr", Expr).
		With("assign", Assign).
		With("body", Body).
		With("script", Script)
}

// Kind looks a kind up by name.
func Kind(name string) (*parser.Kind, bool) {
	if v, ok := kinds.Get(name); ok {
		return v.(*parser.Kind), true
	}
	return nil, false
}

// KindNames lists the registered kind names.
func KindNames() []string {
	var out []string
	for i := kinds.Range(); i.Next(); {
		out = append(out, i.Key())
	}
	return out
}

// Parse parses src as an expression, requiring full consumption.
func Parse(src string) (parser.Element, error) {
	return parser.ParseText(Expr, src)
}
