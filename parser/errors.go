package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/cons-sexpr/lexer"
)

var (
	ErrUnexpectedEOF    = errors.New("unexpected end of input")
	ErrUnexpectedClose  = errors.New("unexpected closing parenthesis")
	ErrUnterminatedList = errors.New("unterminated list")
	ErrOverflow         = errors.New("number out of range")
	ErrInvalidInput     = errors.New("invalid input")
)

// SyntaxError describes malformed input. Err is one of the errors declared
// above.
type SyntaxError struct {
	Err  error
	Pos  lexer.Position
	Char rune
	Text string
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Text != "":
		return fmt.Sprintf("%v: %v: %s", e.Pos, e.Err, e.Text)
	case e.Char == lexer.EOF:
		return fmt.Sprintf("%v: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("%v: %v: %q", e.Pos, e.Err, e.Char)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
