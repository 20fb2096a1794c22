package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeTextSpansInput(t *testing.T) {
	t.Parallel()

	num := numberKind()
	add := NewKind("add", num, "+", num)
	src := "12 + 34"
	n := parseNode(t, add, src)

	assert.Equal(t, src, n.Text())

	toks := n.Tokens()
	require.NotEmpty(t, toks)
	first, last := toks[0], toks[len(toks)-1]
	assert.Equal(t, src[first.Start:last.End], n.Text())
}

func TestNodePositions(t *testing.T) {
	t.Parallel()

	num := numberKind()
	add := NewKind("add", num, "+", num)
	n := parseNode(t, add, "1 +\n  2")

	assert.Equal(t, 0, n.Line())
	assert.Equal(t, 0, n.Col())
	assert.Equal(t, 0, n.LineStart())
	assert.Equal(t, 1, n.LineEnd())

	two := n.ContentExps()[2].(*Node)
	assert.Equal(t, 1, two.Line())
	assert.Equal(t, 2, two.Col())
}

func TestNodeString(t *testing.T) {
	t.Parallel()

	n := parseNode(t, numberKind(), "42")
	assert.Equal(t, `$NUMBER["42"]`, n.String())
}

func TestNodeDump(t *testing.T) {
	t.Parallel()

	num := numberKind()
	add := NewKind("add", num, "+", num)
	dump := parseNode(t, add, "1 + 2").Dump()

	assert.True(t, strings.HasPrefix(dump, "$ADD\n"))
	assert.Contains(t, dump, "$NUMBER")
	assert.Contains(t, dump, `"+"`)
	// whitespace tokens are not rendered
	assert.NotContains(t, dump, `" "`)
}

func TestMissingTokenString(t *testing.T) {
	t.Parallel()

	tok := &Token{IsMissing: true}
	assert.Equal(t, "‹missing›", tok.String())
	assert.False(t, tok.IsWhitespace())
	assert.False(t, isContent(tok))
}

func TestValidateHook(t *testing.T) {
	t.Parallel()

	num := numberKind()
	num.Validate = func(n *Node) []Diag {
		if n.Text() == "13" {
			return []Diag{{Line: n.Line(), Col: n.Col(), Message: "unlucky"}}
		}
		return nil
	}
	add := NewKind("add", num, "+", num)

	n := parseNode(t, add, "1 + 13")
	diags := n.Validate()
	require.Len(t, diags, 1)
	assert.Equal(t, "unlucky", diags[0].Message)
	assert.Equal(t, 4, diags[0].Col)
}
