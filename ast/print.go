package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format transforms an expression into its text representation. Every pair is
// written as "( head : tail )". A missing node is written as ":nil".
func Format(e Expr) string {
	var b strings.Builder
	format(&b, e)
	return b.String()
}

func format(b *strings.Builder, e Expr) {
	closing := 0
	for {
		v, ok := e.(*Pair)
		if !ok || v == nil {
			break
		}
		b.WriteString("( ")
		format(b, v.Head)
		b.WriteString(" : ")
		e = v.Tail
		closing++
	}

	switch v := e.(type) {
	case nil, *Pair:
		b.WriteString(":nil")
	case EmptyList:
		b.WriteString("[]")
	case Number:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Symbol:
		b.WriteString(string(v))
	default:
		panic("unreachable")
	}

	b.WriteString(strings.Repeat(" )", closing))
}

// Print writes a human-readable representation of the tree, one node per
// line.
func Print(w io.Writer, e Expr) {
	printLevel(w, e, 0)
}

func printLevel(w io.Writer, e Expr, level int) {
	for {
		indent := strings.Repeat("    ", level)
		if p, ok := e.(*Pair); e == nil || ok && p == nil {
			fmt.Fprintf(w, "%s:nil\n", indent)
			return
		}
		fmt.Fprintf(w, "%s(%s)", indent, e.Type())
		switch v := e.(type) {

		case *Pair:
			fmt.Fprintf(w, "\n")
			printLevel(w, v.Head, level+1)
			e, level = v.Tail, level+1
			continue

		case Number, Symbol:
			fmt.Fprintf(w, " %s\n", Format(v))

		case EmptyList:
			fmt.Fprintf(w, "\n")

		default:
			panic("unreachable")
		}
		return
	}
}
