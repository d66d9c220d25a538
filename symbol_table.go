package sexpr

import (
	"fmt"
	"sort"

	"github.com/xiam/cons-sexpr/ast"
)

// Function is a built-in operation. It receives the list of already evaluated
// arguments.
type Function func(args ast.Expr) (ast.Expr, error)

type symbolTable struct {
	n map[string]Function
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		n: make(map[string]Function),
	}
}

func (st *symbolTable) Set(name string, fn Function) error {
	if _, ok := st.n[name]; ok {
		return fmt.Errorf("function %q already defined", name)
	}
	st.n[name] = fn
	return nil
}

func (st *symbolTable) Get(name string) (Function, error) {
	if fn, ok := st.n[name]; ok {
		return fn, nil
	}
	return nil, &EvalError{Err: ErrUndefinedFunction, Name: name}
}

func (st *symbolTable) Names() []string {
	names := make([]string, 0, len(st.n))
	for name := range st.n {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
