// Command sexpr evaluates cons-cell S-expressions, either one given on the
// command line or read line by line from standard input.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	sexpr "github.com/xiam/cons-sexpr"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "sexpr: ", 0)

	fs := flag.NewFlagSet("sexpr", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "read settings from the given YAML file")
		expr       = fs.String("e", "", "evaluate the given expression and exit")
		maxDepth   = fs.Int("max-depth", sexpr.DefaultMaxDepth, "maximum nesting of lists and calls, 0 for no limit")
		trace      = fs.Bool("trace", false, "log every parse step and function call to stderr")
		dump       = fs.Bool("dump", false, "print the parsed tree before evaluating it")
		history    = fs.String("history", "", "history file used by the interactive prompt")
	)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := sexpr.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = sexpr.LoadConfigFile(*configPath); err != nil {
			logger.Printf("%v", err)
			return 2
		}
	}

	oneShot := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "e":
			oneShot = true
		case "max-depth":
			cfg.MaxDepth = *maxDepth
		case "trace":
			cfg.Trace = *trace
		case "history":
			cfg.History = *history
		}
	})

	in := sexpr.New(cfg)
	if cfg.Trace {
		in.Trace(log.New(stderr, "trace: ", 0))
	}

	sh := &shell{
		in:     in,
		cfg:    cfg,
		dump:   *dump,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}

	switch {
	case oneShot:
		return sh.evalOnce(*expr)
	case isTerminal(stdin) && isTerminal(stdout):
		return sh.interactive()
	}
	return sh.batch(stdin)
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
