package sexpr

import (
	"bytes"
	"log"

	"github.com/xiam/cons-sexpr/ast"
	"github.com/xiam/cons-sexpr/parser"
)

// Interpreter runs the parse, evaluate and format stages with a shared set of
// limits.
type Interpreter struct {
	maxDepth int
	trace    *log.Logger
}

var defaultInterpreter = New(DefaultConfig())

// New creates an interpreter configured by cfg.
func New(cfg Config) *Interpreter {
	return &Interpreter{
		maxDepth: cfg.MaxDepth,
	}
}

// Trace sets a logger that receives the parser and evaluator traces.
func (in *Interpreter) Trace(l *log.Logger) *Interpreter {
	in.trace = l
	return in
}

// Parse reads the first expression within src.
func (in *Interpreter) Parse(src []byte) (ast.Expr, error) {
	return parser.New(bytes.NewReader(src)).
		MaxDepth(in.maxDepth).
		Trace(in.trace).
		Parse()
}

// Evaluate reduces every call within expr.
func (in *Interpreter) Evaluate(expr ast.Expr) (ast.Expr, error) {
	return NewContext().
		MaxDepth(in.maxDepth).
		Trace(in.trace).
		Evaluate(expr)
}

// Run parses the first expression within src, evaluates it and returns the
// formatted result.
func (in *Interpreter) Run(src []byte) (string, error) {
	expr, err := in.Parse(src)
	if err != nil {
		return "", err
	}

	value, err := in.Evaluate(expr)
	if err != nil {
		return "", err
	}

	return Format(value), nil
}

// Parse reads the first expression within the given bytes.
func Parse(in []byte) (ast.Expr, error) {
	return defaultInterpreter.Parse(in)
}

// Format returns the text representation of an expression.
func Format(expr ast.Expr) string {
	return ast.Format(expr)
}

// Run parses, evaluates and formats the first expression within the given
// bytes.
func Run(in []byte) (string, error) {
	return defaultInterpreter.Run(in)
}
