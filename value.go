package sexpr

import (
	"github.com/xiam/cons-sexpr/ast"
)

// integers returns the elements of a proper list of numbers.
func integers(args ast.Expr) ([]int64, error) {
	elems, end := ast.Elements(args)
	if !ast.IsEmpty(end) {
		return nil, &EvalError{Err: ErrMalformed, Value: args}
	}

	values := make([]int64, 0, len(elems))
	for _, elem := range elems {
		n, ok := elem.(ast.Number)
		if !ok {
			return nil, &EvalError{Err: ErrTypeMismatch, Value: elem}
		}
		values = append(values, int64(n))
	}
	return values, nil
}

// innerList expects an argument list shaped as (list) where list is a pair,
// and returns that pair.
func innerList(args ast.Expr) (*ast.Pair, error) {
	outer, ok := args.(*ast.Pair)
	if !ok || !ast.IsEmpty(outer.Tail) {
		return nil, &EvalError{Err: ErrNotAList, Value: args}
	}

	inner, ok := outer.Head.(*ast.Pair)
	if !ok {
		return nil, &EvalError{Err: ErrNotAList, Value: outer.Head}
	}
	return inner, nil
}
