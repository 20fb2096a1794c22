package parser

// Diag is one collected diagnostic.
type Diag struct {
	Line    int
	Col     int
	Message string
}

// Validate walks the tree collecting diagnostics: one "missing element" per
// synthetic missing token, plus whatever each kind's own Validate hook
// reports. It never panics and never fails.
func (n *Node) Validate() []Diag {
	var out []Diag
	for _, el := range n.Exps {
		switch x := el.(type) {
		case *Token:
			if x.IsMissing {
				msg := "missing element"
				if x.Expr != nil && x.Expr.expect != "" {
					msg = "missing element: " + x.Expr.expect
				}
				out = append(out, Diag{Line: x.Line, Col: x.Col, Message: msg})
			}
		case *Node:
			out = append(out, x.Validate()...)
		}
	}
	if n.Kind != nil && n.Kind.Validate != nil {
		out = append(out, n.Kind.Validate(n)...)
	}
	return out
}
