package sexpr

import (
	"errors"
	"fmt"

	"github.com/xiam/cons-sexpr/ast"
)

var (
	ErrUndefinedFunction = errors.New("undefined function")
	ErrNotAFunction      = errors.New("not a function")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrMalformed         = errors.New("malformed argument list")
	ErrNotAList          = errors.New("not a list")
	ErrOverflow          = errors.New("integer overflow")
)

// EvalError is returned when an expression can't be reduced. Err is one of
// the errors declared above, Name is the function being called and Value the
// offending expression, when known.
type EvalError struct {
	Err   error
	Name  string
	Value ast.Expr
}

func (e *EvalError) Error() string {
	switch {
	case e.Err == ErrUndefinedFunction:
		return fmt.Sprintf("%v %q", e.Err, e.Name)
	case e.Name != "" && e.Value != nil:
		return fmt.Sprintf("%s: %v: %s", e.Name, e.Err, ast.Format(e.Value))
	case e.Name != "":
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	case e.Value != nil:
		return fmt.Sprintf("%v: %s", e.Err, ast.Format(e.Value))
	}
	return e.Err.Error()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
