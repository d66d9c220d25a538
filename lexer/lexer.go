package lexer

import (
	"bytes"
	"errors"
	"io"
	"text/scanner"
)

// EOF is the character returned by Peek and Next once the input is exhausted
const EOF rune = scanner.EOF

// Lexer is a read cursor over a stream of characters. It does not produce
// tokens, callers classify characters as they consume them.
type Lexer struct {
	in *scanner.Scanner

	lastErr error
	errPos  Position
}

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	lx := &Lexer{}

	s := &scanner.Scanner{}
	s.Init(r)
	s.Mode = 0
	s.Error = func(s *scanner.Scanner, msg string) {
		if lx.lastErr == nil {
			lx.lastErr = errors.New(msg)
			lx.errPos = newPosition(s.Pos())
		}
	}

	lx.in = s
	return lx
}

// NewBytes initializes a Lexer that reads from the given bytes
func NewBytes(in []byte) *Lexer {
	return New(bytes.NewReader(in))
}

// Peek returns the next character without consuming it
func (lx *Lexer) Peek() rune {
	return lx.in.Peek()
}

// Next consumes and returns the next character
func (lx *Lexer) Next() rune {
	return lx.in.Next()
}

// Pos returns the position of the next character
func (lx *Lexer) Pos() Position {
	return newPosition(lx.in.Pos())
}

// SkipWhitespace advances the cursor past any run of whitespace.
func (lx *Lexer) SkipWhitespace() {
	for IsWhitespace(lx.Peek()) {
		lx.Next()
	}
}

// Collect consumes the longest run of characters accepted by the given
// function and returns it.
func (lx *Lexer) Collect(accept func(rune) bool) string {
	buf := []rune{}
	for r := lx.Peek(); r != EOF && accept(r); r = lx.Peek() {
		buf = append(buf, lx.Next())
	}
	return string(buf)
}

// Err returns the first decoding error found in the input, if any.
func (lx *Lexer) Err() error {
	return lx.lastErr
}

// ErrPos returns the position of the error returned by Err.
func (lx *Lexer) ErrPos() Position {
	return lx.errPos
}
