package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arr-ai/frozen"
)

// wsPat matches a run of spaces optionally followed by a single newline, or
// a bare newline. It is the only whitespace the engine tokenizes between
// grammar expressions.
var wsPat = newRawPat(` +\n?|\n`)

// Scanner owns an input string and a cursor over it. Matching goes through
// Taste (lookahead, moves only the scratch cursor) and Eat (consume,
// produces a Token). Both skip leading runs of ASCII space and newline
// before attempting a match. A Scanner must not be shared across concurrent
// parses.
type Scanner struct {
	src         string
	name        string
	cursor      int
	tasteCursor int
	cursorStack []int

	lines       []string
	lineOffsets [][2]int
	lineIndents []int

	cache frozen.Map[interface{}, interface{}]
}

func NewScanner(src string) *Scanner {
	return NewScannerWithFilename(src, "")
}

// NewScannerWithFilename attaches a filename used only in Context output.
func NewScannerWithFilename(src, filename string) *Scanner {
	s := &Scanner{src: src, name: filename}
	s.lines = strings.Split(src, "\n")
	s.lineOffsets = make([][2]int, len(s.lines))
	s.lineIndents = make([]int, len(s.lines))
	offset := 0
	for i, line := range s.lines {
		s.lineOffsets[i] = [2]int{offset, offset + len(line)}
		s.lineIndents[i] = len(line) - len(strings.TrimLeft(line, " "))
		offset += len(line) + 1
	}
	return s
}

// The name of the file from which the source is derived (or empty if none).
func (s *Scanner) Filename() string { return s.name }

func (s *Scanner) Source() string { return s.src }

func (s *Scanner) Cursor() int { return s.cursor }

func (s *Scanner) String() string { return s.src[s.cursor:] }

// - matching

func isSkippable(c byte) bool { return c == ' ' || c == '\n' }

func (s *Scanner) skipFrom(pos int) int {
	for pos < len(s.src) && isSkippable(s.src[pos]) {
		pos++
	}
	return pos
}

// Taste attempts a match without consuming. The main cursor is never
// modified; only the scratch taste cursor advances. Returns the matched text
// and whether the match succeeded.
func (s *Scanner) Taste(l Lexeme) (string, bool) {
	if l == nil {
		return "", false
	}
	s.tasteCursor = s.skipFrom(s.cursor)
	value, ok := l.match(s.src, s.tasteCursor)
	if !ok {
		return "", false
	}
	s.tasteCursor += len(value)
	return value, true
}

// Eat attempts a match and, on success, consumes it, returning a Token
// carrying the position metadata of the match start (after the whitespace
// skip). On failure the cursor is unchanged and nil is returned.
func (s *Scanner) Eat(l Lexeme) *Token {
	value, ok := s.Taste(l)
	if !ok {
		return nil
	}
	start := s.tasteCursor - len(value)
	s.cursor = start
	tok := s.newToken(l, value, start)
	s.cursor = start + len(value)
	return tok
}

// eatWhitespace matches the whitespace pattern at the raw cursor, without
// the implicit skip (which would swallow it first).
func (s *Scanner) eatWhitespace() *Token {
	value, ok := wsPat.match(s.src, s.cursor)
	if !ok {
		return nil
	}
	tok := s.newToken(wsPat, value, s.cursor)
	s.cursor += len(value)
	return tok
}

func (s *Scanner) newToken(l Lexeme, value string, start int) *Token {
	line := s.lineAt(start)
	return &Token{
		Lex:    l,
		Value:  value,
		Start:  start,
		End:    start + len(value),
		Line:   line,
		Col:    start - s.LineStart(line),
		Indent: s.lineIndents[line],
	}
}

// - line accounting

// lineAt finds the line containing pos. A position exactly at a line's end
// (i.e. on the separating newline) belongs to that line.
func (s *Scanner) lineAt(pos int) int {
	i := sort.Search(len(s.lineOffsets), func(i int) bool {
		return pos <= s.lineOffsets[i][1]
	})
	if i >= len(s.lineOffsets) {
		return len(s.lineOffsets) - 1
	}
	return i
}

func (s *Scanner) CurrentLine() int { return s.lineAt(s.cursor) }

func (s *Scanner) CurrentCol() int {
	col := s.cursor - s.LineStart(s.CurrentLine())
	if col < 0 {
		col = 0
	}
	return col
}

func (s *Scanner) LineCount() int { return len(s.lines) }

func (s *Scanner) LineStart(i int) int { return s.lineOffsets[i][0] }

func (s *Scanner) LineEnd(i int) int { return s.lineOffsets[i][1] }

func (s *Scanner) LineIndent(i int) int { return s.lineIndents[i] }

func (s *Scanner) LineContentStart(i int) int {
	return s.lineOffsets[i][0] + s.lineIndents[i]
}

func (s *Scanner) LineContentEnd(i int) int {
	return s.lineOffsets[i][0] + len(strings.TrimRight(s.lines[i], " \t"))
}

// LinesInRange returns every line index whose [start, end] interval overlaps
// [a, b] inclusively.
func (s *Scanner) LinesInRange(a, b int) []int {
	var out []int
	for i, off := range s.lineOffsets {
		if off[0] <= b && a <= off[1] {
			out = append(out, i)
		}
	}
	return out
}

// - cursor stack

func (s *Scanner) PushCursor() {
	s.cursorStack = append(s.cursorStack, s.cursor)
}

// PopCursor restores the most recently pushed cursor and discards it. It is
// a no-op on an empty stack.
func (s *Scanner) PopCursor() {
	if n := len(s.cursorStack); n > 0 {
		s.cursor = s.cursorStack[n-1]
		s.cursorStack = s.cursorStack[:n-1]
	}
}

// - memo cache

// CacheGet and CacheSet expose a keyed cache for grammar authors
// implementing packrat-style memoization. The engine itself never consults
// it.
func (s *Scanner) CacheGet(key interface{}) (interface{}, bool) {
	return s.cache.Get(key)
}

func (s *Scanner) CacheSet(key, value interface{}) {
	s.cache = s.cache.With(key, value)
}

// - diagnostics

var (
	NoLimit      = -1
	DefaultLimit = 1
)

// Context renders the source around the cursor, the remainder highlighted,
// limited to limitLines of context on either side (or NoLimit).
func (s *Scanner) Context(limitLines int) string {
	line, col := s.CurrentLine()+1, s.CurrentCol()+1

	above := s.src[:s.cursor]
	below := s.src[s.cursor:]
	if limitLines != NoLimit {
		a := strings.Split(above, "\n")
		if len(a) > limitLines {
			above = strings.Join(a[len(a)-limitLines-1:], "\n")
		}
		b := strings.Split(below, "\n")
		if len(b) > limitLines {
			below = strings.Join(b[:limitLines+1], "\n")
		}
	}

	return fmt.Sprintf("%s:%d:%d:\n%s⟨⟩%s", s.name, line, col, above, below)
}
