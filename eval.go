package sexpr

import (
	"errors"
	"fmt"

	"github.com/xiam/cons-sexpr/ast"
)

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 10000

// Evaluate reduces every call within the given expression.
func Evaluate(expr ast.Expr) (ast.Expr, error) {
	return NewContext().Evaluate(expr)
}

// Evaluate reduces every call within the given expression. Arguments are
// evaluated innermost first, from left to right, before the call they belong
// to. Anything that is not a pair evaluates to itself.
func (ctx *Context) Evaluate(expr ast.Expr) (ast.Expr, error) {
	return ctx.eval(expr, 0)
}

func (ctx *Context) eval(expr ast.Expr, depth int) (ast.Expr, error) {
	if _, ok := expr.(*ast.Pair); ok && ctx.maxDepth > 0 && depth >= ctx.maxDepth {
		return nil, fmt.Errorf("%w: more than %d nested calls", ast.ErrRecursionLimitExceeded, ctx.maxDepth)
	}

	flat, err := ctx.flattenHeads(expr, depth+1)
	if err != nil {
		return nil, err
	}

	switch v := flat.(type) {
	case *ast.Pair:
		return ctx.call(v)
	case ast.Number, ast.Symbol, ast.EmptyList:
		return v, nil
	}

	panic("unreachable")
}

// flattenHeads replaces the head of every pair along the chain with its
// evaluated form.
func (ctx *Context) flattenHeads(expr ast.Expr, depth int) (ast.Expr, error) {
	elems, end := ast.Elements(expr)
	if end == nil {
		return nil, &EvalError{Err: ErrMalformed, Value: expr}
	}

	for i := range elems {
		head, err := ctx.eval(elems[i], depth)
		if err != nil {
			return nil, err
		}
		elems[i] = head
	}

	out := end
	for i := len(elems) - 1; i >= 0; i-- {
		out = ast.Cons(elems[i], out)
	}
	return out, nil
}

func (ctx *Context) call(p *ast.Pair) (ast.Expr, error) {
	name, ok := p.Head.(ast.Symbol)
	if !ok {
		return nil, &EvalError{Err: ErrNotAFunction, Value: p.Head}
	}

	fn, err := ctx.st.Get(string(name))
	if err != nil {
		ctx.tracef("error: %v", err)
		return nil, err
	}

	if ctx.trace != nil {
		ctx.tracef("call %s %s", name, ast.Format(p.Tail))
	}

	out, err := fn(p.Tail)
	if err != nil {
		var evalErr *EvalError
		if errors.As(err, &evalErr) && evalErr.Name == "" {
			evalErr.Name = string(name)
		}
		ctx.tracef("error: %v", err)
		return nil, err
	}

	if ctx.trace != nil {
		ctx.tracef("return %s %s", name, ast.Format(out))
	}
	return out, nil
}
