package parser

import (
	"fmt"
	"strings"

	"github.com/treeshape/treeshape/tree"
)

// Node is a parse-tree node: the kind that produced it and the ordered
// children actually matched, whitespace tokens included. Nodes are created
// only by the parse drivers and are immutable once returned.
type Node struct {
	Kind *Kind
	Exps []Element
}

func (n *Node) element() {}

// Tokens returns a pre-order flattening of every token contained in the
// node, whitespace included.
func (n *Node) Tokens() []*Token {
	var out []*Token
	for _, el := range n.Exps {
		switch x := el.(type) {
		case *Token:
			out = append(out, x)
		case *Node:
			out = append(out, x.Tokens()...)
		}
	}
	return out
}

func isContent(el Element) bool {
	if tok, ok := el.(*Token); ok {
		return !tok.IsMissing && strings.TrimSpace(tok.Value) != ""
	}
	return true
}

// ContentExps returns the children with pure-whitespace and missing tokens
// filtered out.
func (n *Node) ContentExps() []Element {
	var out []Element
	for _, el := range n.Exps {
		if isContent(el) {
			out = append(out, el)
		}
	}
	return out
}

// ContentTokens returns the flattened tokens with whitespace and missing
// tokens filtered out.
func (n *Node) ContentTokens() []*Token {
	var out []*Token
	for _, tok := range n.Tokens() {
		if !tok.IsMissing && !tok.IsWhitespace() {
			out = append(out, tok)
		}
	}
	return out
}

// Text concatenates every token value in order, whitespace preserved. For
// any node this equals the input substring spanned by its tokens.
func (n *Node) Text() string {
	var b strings.Builder
	for _, tok := range n.Tokens() {
		b.WriteString(tok.Value)
	}
	return b.String()
}

func (n *Node) firstToken() *Token {
	toks := n.Tokens()
	if len(toks) == 0 {
		return nil
	}
	return toks[0]
}

func (n *Node) Line() int {
	if tok := n.firstToken(); tok != nil {
		return tok.Line
	}
	return 0
}

func (n *Node) Col() int {
	if tok := n.firstToken(); tok != nil {
		return tok.Col
	}
	return 0
}

// LineStart and LineEnd are the first and last line indexes covered by the
// node's tokens.
func (n *Node) LineStart() int {
	return n.Line()
}

func (n *Node) LineEnd() int {
	toks := n.Tokens()
	end := 0
	for _, tok := range toks {
		if tok.Line > end {
			end = tok.Line
		}
	}
	return end
}

func (n *Node) String() string {
	parts := make([]string, 0, len(n.Exps))
	for _, el := range n.Exps {
		parts = append(parts, fmt.Sprintf("%v", el))
	}
	return fmt.Sprintf("%s[%s]", n.Kind.Tag(), strings.Join(parts, ", "))
}

// Dump renders the node as an indented tree.
func (n *Node) Dump() string {
	return elementTree(n).Print()
}

func elementTree(el Element) tree.Tree {
	switch x := el.(type) {
	case *Node:
		t := tree.New(x.Kind.Tag())
		for _, child := range x.Exps {
			if tok, ok := child.(*Token); ok && tok.IsWhitespace() {
				continue
			}
			t.AddTree(elementTree(child))
		}
		return t
	case *Token:
		return tree.New(x.String())
	}
	return tree.New(fmt.Sprintf("%v", el))
}

var _ Element = &Node{}
