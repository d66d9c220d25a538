package sexpr

import (
	"log"
)

// Context holds the settings of an evaluation.
type Context struct {
	maxDepth int
	trace    *log.Logger

	st *symbolTable
}

// NewContext creates an evaluation context bound to the built-in functions
// and limited to DefaultMaxDepth nested calls.
func NewContext() *Context {
	return &Context{
		maxDepth: DefaultMaxDepth,
		st:       builtins,
	}
}

// MaxDepth sets the maximum number of nested calls, n <= 0 disables the
// check.
func (ctx *Context) MaxDepth(n int) *Context {
	ctx.maxDepth = n
	return ctx
}

// Trace sets a logger that receives a line for every function call.
func (ctx *Context) Trace(l *log.Logger) *Context {
	ctx.trace = l
	return ctx
}

func (ctx *Context) tracef(format string, args ...interface{}) {
	if ctx.trace != nil {
		ctx.trace.Printf(format, args...)
	}
}
