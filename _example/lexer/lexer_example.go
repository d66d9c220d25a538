package main

import (
	"fmt"

	"github.com/xiam/cons-sexpr/lexer"
)

func main() {
	input := "(fn_a\n\t(fn_b 89 (67 3))\n\t(fn_c 66 3 53))"

	lx := lexer.NewBytes([]byte(input))
	for i := 0; lx.Peek() != lexer.EOF; i++ {
		pos := lx.Pos()
		r := lx.Next()

		fmt.Printf("char[%d] (class: %v, line: %d, col: %d)\n\t-> %q\n\n", i, lexer.Classify(r), pos.Line, pos.Col, r)
	}
}
