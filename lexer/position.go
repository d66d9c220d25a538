package lexer

import (
	"fmt"
	"text/scanner"
)

// Position represents the location of a character within the input
type Position struct {
	Offset int
	Line   int
	Col    int
}

func newPosition(p scanner.Position) Position {
	return Position{
		Offset: p.Offset,
		Line:   p.Line,
		Col:    p.Column,
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
