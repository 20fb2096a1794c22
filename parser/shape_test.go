package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeLimitBindsToPrecedingExpr(t *testing.T) {
	t.Parallel()

	sh := NewShape("a", RE(`\d+`), Limit{Min: 2, Max: 5}, "b")
	require.Len(t, sh.Exprs(), 3)
	g := sh.Exprs()[1]
	assert.Equal(t, 2, g.min)
	assert.Equal(t, 5, g.max)

	// untouched expressions keep the single-occurrence default
	assert.Equal(t, 1, sh.Exprs()[0].min)
	assert.Equal(t, 1, sh.Exprs()[0].max)
}

func TestShapeLimitWithoutPrecedingExprPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewShape(Limit{Min: 1})
	})
}

func TestShapeRightDelimiterInference(t *testing.T) {
	t.Parallel()

	sh := NewShape(RE(`\d+`), Limit{Min: 1}, ",")
	require.Len(t, sh.Exprs(), 2)

	// the following literal doubles as the repetition's right-delimiter and
	// remains an expression at its own position
	assert.Equal(t, Lit(","), sh.Exprs()[0].rightDelim)
	assert.Equal(t, Lit(","), sh.Exprs()[1].lexeme())

	// a non-lexeme follower infers nothing
	sh = NewShape(RE(`\d+`), numberKind())
	assert.Nil(t, sh.Exprs()[0].rightDelim)
}

func TestShapeExplicitDelimiterWins(t *testing.T) {
	t.Parallel()

	sh := NewShape(Expr(RE(`\d+`)).Delimited(Lit(";")), ",")
	assert.Equal(t, Lit(";"), sh.Exprs()[0].rightDelim)
}

func TestShapeString(t *testing.T) {
	t.Parallel()

	num := numberKind()
	sh := NewShape("let", num, []interface{}{Lit("a"), RE(`b+`)})
	assert.Equal(t, `["let" $NUMBER ("a" | /b+/)]`, sh.String())
}
