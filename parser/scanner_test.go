package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTasteLiteral(t *testing.T) {
	t.Parallel()

	s := NewScanner("hello world")
	v, ok := s.Taste(Lit("hello"))
	assert.True(t, ok)
	assert.Equal(t, "hello", v)
	// the main cursor never moves
	assert.Equal(t, 0, s.Cursor())

	_, ok = s.Taste(Lit("world"))
	assert.False(t, ok)
}

func TestTastePattern(t *testing.T) {
	t.Parallel()

	s := NewScanner("42 plus 1")
	v, ok := s.Taste(NewPat(`\d+`))
	assert.True(t, ok)
	assert.Equal(t, "42", v)
	assert.Equal(t, 0, s.Cursor())

	_, ok = s.Taste(NewPat(`[a-z]+`))
	assert.False(t, ok)
}

func TestEatSkipsWhitespace(t *testing.T) {
	t.Parallel()

	s := NewScanner("  \n  abc")
	tok := s.Eat(Lit("abc"))
	require.NotNil(t, tok)
	assert.Equal(t, "abc", tok.Value)
	assert.Equal(t, 5, tok.Start)
	assert.Equal(t, 8, tok.End)
	assert.Equal(t, 1, tok.Line)
	assert.Equal(t, 2, tok.Col)
	assert.Equal(t, 2, tok.Indent)
	assert.Equal(t, 8, s.Cursor())
}

func TestEatFailureLeavesCursor(t *testing.T) {
	t.Parallel()

	s := NewScanner("abc")
	assert.Nil(t, s.Eat(Lit("xyz")))
	assert.Equal(t, 0, s.Cursor())
}

func TestEatPastEnd(t *testing.T) {
	t.Parallel()

	s := NewScanner("ab")
	require.NotNil(t, s.Eat(Lit("ab")))
	assert.Nil(t, s.Eat(Lit("c")))
	assert.Nil(t, s.Eat(NewPat(`\w`)))
	assert.Equal(t, 2, s.Cursor())
}

func TestWhitespaceSkipIsUnconditional(t *testing.T) {
	t.Parallel()

	// a pattern that explicitly matches whitespace cannot match through the
	// skip: the cursor is already past it
	s := NewScanner("   x")
	v, ok := s.Taste(NewPat(` +x`))
	assert.False(t, ok, "got %q", v)

	// tabs are not skipped
	s = NewScanner("\tx")
	_, ok = s.Taste(Lit("x"))
	assert.False(t, ok)
}

func TestTokenValueMatchesInput(t *testing.T) {
	t.Parallel()

	src := " one\n two three"
	s := NewScanner(src)
	for _, w := range []string{"one", "two", "three"} {
		tok := s.Eat(Lit(w))
		require.NotNil(t, tok)
		assert.Equal(t, tok.Value, src[tok.Start:tok.End])
		assert.Equal(t, tok.Col, tok.Start-s.LineStart(tok.Line))
	}
}

func TestLineAccounting(t *testing.T) {
	t.Parallel()

	s := NewScanner("ab\n  cd\n    ef")

	assert.Equal(t, 3, s.LineCount())
	assert.Equal(t, 0, s.LineStart(0))
	assert.Equal(t, 2, s.LineEnd(0))
	assert.Equal(t, 3, s.LineStart(1))
	assert.Equal(t, 7, s.LineEnd(1))
	assert.Equal(t, 8, s.LineStart(2))
	assert.Equal(t, 14, s.LineEnd(2))

	assert.Equal(t, 0, s.LineIndent(0))
	assert.Equal(t, 2, s.LineIndent(1))
	assert.Equal(t, 4, s.LineIndent(2))

	assert.Equal(t, 5, s.LineContentStart(1))
	assert.Equal(t, 7, s.LineContentEnd(1))

	assert.Equal(t, []int{1}, s.LinesInRange(3, 7))
	assert.Equal(t, []int{0, 1}, s.LinesInRange(1, 4))
	assert.Equal(t, []int{0, 1, 2}, s.LinesInRange(0, 14))
}

func TestLineSearchConsistency(t *testing.T) {
	t.Parallel()

	src := "a\n\nbb\n  c\n"
	s := NewScanner(src)
	for k := 0; k <= len(src); k++ {
		line := s.lineAt(k)
		assert.LessOrEqual(t, s.LineStart(line), k, "offset %d", k)
		assert.LessOrEqual(t, k, s.LineEnd(line), "offset %d", k)
	}
}

func TestPositionOnNewlineBelongsToPrecedingLine(t *testing.T) {
	t.Parallel()

	s := NewScanner("ab\ncd")
	assert.Equal(t, 0, s.lineAt(2))
	assert.Equal(t, 1, s.lineAt(3))
}

func TestCursorStack(t *testing.T) {
	t.Parallel()

	s := NewScanner("one two three")
	s.PushCursor()
	require.NotNil(t, s.Eat(Lit("one")))
	require.NotNil(t, s.Eat(Lit("two")))
	s.PushCursor()
	require.NotNil(t, s.Eat(Lit("three")))
	s.PopCursor()
	assert.Equal(t, 7, s.Cursor())
	s.PopCursor()
	assert.Equal(t, 0, s.Cursor())

	// popping an empty stack is a no-op
	s.PopCursor()
	assert.Equal(t, 0, s.Cursor())
}

func TestCache(t *testing.T) {
	t.Parallel()

	s := NewScanner("")
	_, ok := s.CacheGet("k")
	assert.False(t, ok)
	s.CacheSet("k", 42)
	v, ok := s.CacheGet("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestContext(t *testing.T) {
	t.Parallel()

	s := NewScannerWithFilename("one\ntwo\nthree", "in.txt")
	require.NotNil(t, s.Eat(Lit("one")))
	assert.Contains(t, s.Context(NoLimit), "in.txt:1:4:")
}
