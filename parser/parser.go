package parser

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/xiam/cons-sexpr/ast"
	"github.com/xiam/cons-sexpr/lexer"
)

// DefaultMaxDepth is the nesting limit used by Parse and ParseString.
const DefaultMaxDepth = 10000

// Parser reads a single expression from a stream of characters.
type Parser struct {
	lx *lexer.Lexer

	maxDepth int
	trace    *log.Logger
}

// New creates a parser that reads from r. The nesting depth is not limited
// unless MaxDepth is set.
func New(r io.Reader) *Parser {
	return &Parser{
		lx: lexer.New(r),
	}
}

// MaxDepth sets the maximum number of nested lists, n <= 0 disables the
// check.
func (p *Parser) MaxDepth(n int) *Parser {
	p.maxDepth = n
	return p
}

// Trace sets a logger that receives a line for every parse step.
func (p *Parser) Trace(l *log.Logger) *Parser {
	p.trace = l
	return p
}

// Parse reads the first complete expression. Anything after it is left
// unread.
func (p *Parser) Parse() (ast.Expr, error) {
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.lx.Err(); err != nil {
		return nil, &SyntaxError{
			Err:  ErrInvalidInput,
			Pos:  p.lx.ErrPos(),
			Text: err.Error(),
		}
	}
	return expr, nil
}

func (p *Parser) tracef(format string, args ...interface{}) {
	if p.trace != nil {
		p.trace.Printf(format, args...)
	}
}

func (p *Parser) syntaxError(err error, pos lexer.Position, r rune) error {
	p.tracef("error %v: %v", pos, err)
	return &SyntaxError{
		Err:  err,
		Pos:  pos,
		Char: r,
	}
}

func (p *Parser) parseExpression(depth int) (ast.Expr, error) {
	p.lx.SkipWhitespace()

	pos, r := p.lx.Pos(), p.lx.Peek()
	p.tracef("expression %v: %q", pos, r)

	switch {
	case lexer.IsEOF(r):
		return nil, p.syntaxError(ErrUnexpectedEOF, pos, r)

	case lexer.IsCloseList(r):
		return nil, p.syntaxError(ErrUnexpectedClose, pos, r)

	case lexer.IsOpenList(r):
		if p.maxDepth > 0 && depth >= p.maxDepth {
			return nil, fmt.Errorf("%v: %w: more than %d nested lists", pos, ast.ErrRecursionLimitExceeded, p.maxDepth)
		}
		p.lx.Next()
		return p.parseList(depth+1, pos)

	case lexer.IsDigit(r):
		return p.parseNumber()

	default:
		return p.parseSymbol()
	}
}

func (p *Parser) parseNumber() (ast.Expr, error) {
	pos := p.lx.Pos()
	digits := p.lx.Collect(lexer.IsDigit)

	i64, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		p.tracef("error %v: %v", pos, err)
		return nil, &SyntaxError{
			Err:  ErrOverflow,
			Pos:  pos,
			Text: digits,
		}
	}

	p.tracef("number %v: %d", pos, i64)
	return ast.Number(i64), nil
}

func (p *Parser) parseSymbol() (ast.Expr, error) {
	pos := p.lx.Pos()
	word := p.lx.Collect(func(r rune) bool {
		return !lexer.IsDelimiter(r)
	})

	p.tracef("symbol %v: %q", pos, word)
	return ast.Symbol(word), nil
}

// parseList reads the elements of a list whose opening parenthesis was
// already consumed at the given position.
func (p *Parser) parseList(depth int, open lexer.Position) (ast.Expr, error) {
	elems := []ast.Expr{}
	for {
		p.lx.SkipWhitespace()

		r := p.lx.Peek()
		switch {
		case lexer.IsEOF(r):
			return nil, p.syntaxError(ErrUnterminatedList, open, '(')

		case lexer.IsCloseList(r):
			p.lx.Next()
			p.tracef("list %v: end", open)
			return ast.List(elems...), nil
		}

		elem, err := p.parseExpression(depth)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}

// Parse reads the first expression within the given bytes.
func Parse(in []byte) (ast.Expr, error) {
	return New(bytes.NewReader(in)).MaxDepth(DefaultMaxDepth).Parse()
}

// ParseString reads the first expression within the given string.
func ParseString(in string) (ast.Expr, error) {
	return New(strings.NewReader(in)).MaxDepth(DefaultMaxDepth).Parse()
}
