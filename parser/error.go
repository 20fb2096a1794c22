package parser

import (
	"fmt"

	"github.com/treeshape/treeshape/tree"
)

// ParseError is returned by ParseText when a kind cleanly fails against the
// whole input. The core drivers themselves never error; clean failure is
// nil.
type ParseError struct {
	kind    *Kind
	msg     string
	context string
}

func newParseError(k *Kind, msg string, s *Scanner) *ParseError {
	return &ParseError{kind: k, msg: msg, context: s.Context(DefaultLimit)}
}

func (p *ParseError) Error() string {
	t := tree.New("parse failed")
	x := t.Add(fmt.Sprintf("kind(%s) - %s", p.kind.Tag(), p.msg))
	x.Add(p.context)
	return "\n" + t.Print()
}

// UnconsumedInputError is returned by a successful parse that didn't fully
// consume the input.
type UnconsumedInputError struct {
	residue string
	context string
	result  Element
}

func UnconsumedInput(s *Scanner, result Element) UnconsumedInputError {
	return UnconsumedInputError{
		residue: s.String(),
		context: s.Context(DefaultLimit),
		result:  result,
	}
}

func (e UnconsumedInputError) Error() string {
	return fmt.Sprintf("unconsumed input\n %v", e.context)
}

func (e UnconsumedInputError) Result() Element { return e.result }

func (e UnconsumedInputError) Residue() string { return e.residue }
