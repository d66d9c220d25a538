package main

import (
	"log"
	"os"

	"github.com/xiam/cons-sexpr/ast"
	"github.com/xiam/cons-sexpr/parser"
)

func main() {
	input := `(fn_a (fn_b (89 A B (67 3))) (fn_c 66 3 53 😊))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(os.Stdout, root)
}
