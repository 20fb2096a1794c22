package parser

// parseLeftRecursive drives shapes of the form [operand, delim, ...] that
// would left-recurse under the base driver. The operand is parsed once,
// then, for as long as the operand's right-delimiter is sighted, a tail is
// parsed against the remainder of the shape and folded into a new parent
// node. Chaining is left-associative; recursion depth stays constant.
func (k *Kind) parseLeftRecursive(s *Scanner) Element {
	startCursor := s.cursor
	head := k.Shape.exprs[0]
	res, ok := head.parse(s)
	if !ok || len(res) == 0 {
		s.cursor = startCursor
		return nil
	}

	var left Element
	if len(res) == 1 {
		left = res[0]
	} else {
		left = &Node{Kind: k, Exps: res}
	}

	tail := k.tailKind()
	for head.rightDelim != nil {
		if _, sighted := s.Taste(head.rightDelim); !sighted {
			break
		}
		good := s.cursor
		el := tail.Parse(s)
		tn, isNode := el.(*Node)
		if !isNode {
			s.cursor = good
			break
		}
		left = &Node{Kind: k, Exps: append([]Element{left}, tn.Exps...)}
	}
	return left
}

// tailKind is the synthetic kind for the chain remainder. Self references
// in the tail are replaced by the operand expression: the driver's own loop
// supplies the recursion.
func (k *Kind) tailKind() *Kind {
	exprs := make([]*GrammarExpr, 0, len(k.Shape.exprs)-1)
	for _, g := range k.Shape.exprs[1:] {
		g.resolve()
		if g.class == classRef && g.ref == k {
			operand := *k.Shape.exprs[0]
			operand.rightDelim = nil
			g = &operand
		}
		exprs = append(exprs, g)
	}
	return &Kind{
		Name:                     k.Name,
		Shape:                    &Shape{exprs: exprs},
		IncompleteParseThreshold: 1,
	}
}
