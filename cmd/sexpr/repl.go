package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	sexpr "github.com/xiam/cons-sexpr"
	"github.com/xiam/cons-sexpr/ast"
	"github.com/xiam/cons-sexpr/parser"
)

const banner = "Please input an S-Expression (:help for help, Ctrl-D to exit)"

// lineReader is satisfied by *liner.State.
type lineReader interface {
	Prompt(prompt string) (string, error)
}

type plainReader struct {
	sc *bufio.Scanner
}

func newPlainReader(r io.Reader) *plainReader {
	return &plainReader{sc: bufio.NewScanner(r)}
}

func (r *plainReader) Prompt(string) (string, error) {
	if r.sc.Scan() {
		return strings.TrimSuffix(r.sc.Text(), "\r"), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

type shell struct {
	in   *sexpr.Interpreter
	cfg  sexpr.Config
	dump bool

	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

func (sh *shell) eval(src string) error {
	expr, err := sh.in.Parse([]byte(src))
	if err != nil {
		return err
	}

	if sh.dump {
		ast.Print(sh.stdout, expr)
	}

	value, err := sh.in.Evaluate(expr)
	if err != nil {
		return err
	}

	fmt.Fprintln(sh.stdout, sexpr.Format(value))
	return nil
}

func (sh *shell) report(err error) {
	fmt.Fprintf(sh.stderr, "error: %v\n", err)
}

func (sh *shell) evalOnce(src string) int {
	if err := sh.eval(src); err != nil {
		sh.report(err)
		return 1
	}
	return 0
}

func (sh *shell) batch(r io.Reader) int {
	failed, err := sh.loop(newPlainReader(r), "", "")
	if err != nil {
		sh.logger.Printf("reading input: %v", err)
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func (sh *shell) interactive() int {
	ln := liner.NewLiner()
	defer ln.Close()

	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completeBuiltin)

	histPath, err := sh.cfg.HistoryPath()
	if err != nil {
		sh.logger.Printf("%v", err)
	}

	if histPath != "" {
		if err := readHistory(ln, histPath); err != nil {
			sh.logger.Printf("loading history: %v", err)
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				sh.logger.Printf("saving history: %v", err)
				return
			}
			defer f.Close()
			if _, err := ln.WriteHistory(f); err != nil {
				sh.logger.Printf("saving history: %v", err)
			}
		}()
	}

	fmt.Fprintln(sh.stdout, banner)

	if _, err := sh.loop(ln, sh.cfg.Prompt, sh.cfg.ContinuationPrompt); err != nil {
		sh.logger.Printf("reading input: %v", err)
		return 1
	}
	fmt.Fprintln(sh.stdout)
	return 0
}

// loop evaluates expressions until the input is exhausted and returns the
// number of expressions that failed.
func (sh *shell) loop(lr lineReader, prompt, cont string) (int, error) {
	failed := 0
	for {
		src, err := readExpression(lr, prompt, cont, sh.cfg.MaxDepth)

		if src != "" {
			if h, ok := lr.(interface{ AppendHistory(string) }); ok {
				h.AppendHistory(strings.ReplaceAll(src, "\n", " "))
			}

			switch strings.TrimSpace(src) {
			case ":quit":
				return failed, nil
			case ":help":
				fmt.Fprintf(sh.stdout, "built-in functions: %s\n", strings.Join(sexpr.Builtins(), " "))
			default:
				if err := sh.eval(src); err != nil {
					sh.report(err)
					failed++
				}
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return failed, nil
			}
			return failed, err
		}
	}
}

// readExpression reads lines until they hold a complete expression. Input
// that only lacks closing parentheses keeps reading with the continuation
// prompt. Lists are checked against maxDepth the same way the interpreter does.
// Whatever was read is returned along with the error that stopped the reading.
func readExpression(lr lineReader, prompt, cont string, maxDepth int) (string, error) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}

		line, err := lr.Prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return b.String(), err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			b.Reset()
			continue
		}

		_, err = parser.New(strings.NewReader(src)).MaxDepth(maxDepth).Parse()
		if errors.Is(err, parser.ErrUnterminatedList) {
			continue
		}
		return src, nil
	}
}

// readHistory loads the history file at path, a missing file is not an error.
func readHistory(h interface{ ReadHistory(io.Reader) (int, error) }, path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = h.ReadHistory(f)
	return err
}

func completeBuiltin(line string) []string {
	i := strings.LastIndexAny(line, " \t\n()") + 1
	prefix, word := line[:i], line[i:]

	completions := []string{}
	for _, name := range sexpr.Builtins() {
		if strings.HasPrefix(name, word) {
			completions = append(completions, prefix+name)
		}
	}
	return completions
}
