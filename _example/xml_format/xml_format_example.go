package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/cons-sexpr/ast"
	"github.com/xiam/cons-sexpr/parser"
)

func printTree(node ast.Expr) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node ast.Expr, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	switch n := node.(type) {
	case *ast.Pair:
		fmt.Printf("%s<%s>\n", indent, n.Type())
		printIndentedTree(n.Head, indentationLevel+1)
		printIndentedTree(n.Tail, indentationLevel+1)
		fmt.Printf("%s</%s>\n", indent, n.Type())
	case ast.EmptyList:
		fmt.Printf("%s<%s/>\n", indent, n.Type())
	default:
		fmt.Printf("%s<%s>%v</%s>\n", indent, n.Type(), n, n.Type())
	}
}

func main() {
	input := `(fn_a (fn_b (89 A B (67 3))) (fn_c 66 3 53 😊))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
