package sexpr

import (
	"log"
	"math"

	"github.com/xiam/cons-sexpr/ast"
)

var builtins = newSymbolTable()

func init() {
	defn(fold(0, addInt), "+", "plus", "add")
	defn(fold(1, mulInt), "*", "times", "mul")
	defn(listFn, "list")
	defn(firstFn, "first")
	defn(tailFn, "tail")
}

func defn(fn Function, names ...string) {
	for _, name := range names {
		if err := builtins.Set(name, fn); err != nil {
			log.Fatalf("defn: %v", err)
		}
	}
}

// Builtins returns the names of all the built-in functions, sorted.
func Builtins() []string {
	return builtins.Names()
}

func fold(identity int64, op func(a, b int64) (int64, bool)) Function {
	return func(args ast.Expr) (ast.Expr, error) {
		values, err := integers(args)
		if err != nil {
			return nil, err
		}

		acc := identity
		for _, v := range values {
			var ok bool
			if acc, ok = op(acc, v); !ok {
				return nil, &EvalError{Err: ErrOverflow, Value: args}
			}
		}
		return ast.Number(acc), nil
	}
}

func addInt(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

func listFn(args ast.Expr) (ast.Expr, error) {
	return args, nil
}

func firstFn(args ast.Expr) (ast.Expr, error) {
	list, err := innerList(args)
	if err != nil {
		return nil, err
	}
	return list.Head, nil
}

func tailFn(args ast.Expr) (ast.Expr, error) {
	list, err := innerList(args)
	if err != nil {
		return nil, err
	}
	return list.Tail, nil
}
