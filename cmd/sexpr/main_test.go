package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runString(args []string, stdin string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunExpression(t *testing.T) {
	testCases := []struct {
		Args   []string
		Code   int
		Stdout string
		Stderr string
	}{
		{
			Args:   []string{"-e", "(+ 1 2 3)"},
			Code:   0,
			Stdout: "6\n",
		},
		{
			Args:   []string{"-e", "(tail (list 1 2 3))"},
			Code:   0,
			Stdout: "( 2 : ( 3 : [] ) )\n",
		},
		{
			Args:   []string{"-e", "(frobnicate 1)"},
			Code:   1,
			Stderr: "error: undefined function \"frobnicate\"\n",
		},
		{
			Args:   []string{"-e", ""},
			Code:   1,
			Stderr: "error: 1:1: unexpected end of input\n",
		},
		{
			Args:   []string{"-max-depth", "1", "-e", "((1))"},
			Code:   1,
			Stderr: "error: 1:2: recursion limit exceeded: more than 1 nested lists\n",
		},
		{
			Args:   []string{"-dump", "-e", "(+ 1)"},
			Code:   0,
			Stdout: "(pair)\n    (symbol) +\n    (pair)\n        (number) 1\n        (empty)\n1\n",
		},
	}

	for i := range testCases {
		code, stdout, stderr := runString(testCases[i].Args, "")
		assert.Equal(t, testCases[i].Code, code, "%v", testCases[i].Args)
		assert.Equal(t, testCases[i].Stdout, stdout, "%v", testCases[i].Args)
		assert.Equal(t, testCases[i].Stderr, stderr, "%v", testCases[i].Args)
	}
}

func TestRunTrace(t *testing.T) {
	code, stdout, stderr := runString([]string{"-trace", "-e", "(+ 1)"}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "1\n", stdout)
	assert.Contains(t, stderr, "trace: call + ( 1 : [] )\n")
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sexpr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 1\n"), 0o644))

	{
		code, _, stderr := runString([]string{"-config", path, "-e", "(+ (+ 1))"}, "")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "recursion limit exceeded")
	}

	{
		code, stdout, _ := runString([]string{"-config", path, "-max-depth", "5", "-e", "(+ (+ 1))"}, "")
		assert.Equal(t, 0, code)
		assert.Equal(t, "1\n", stdout)
	}

	{
		code, _, stderr := runString([]string{"-config", filepath.Join(dir, "missing.yaml")}, "")
		assert.Equal(t, 2, code)
		assert.True(t, strings.HasPrefix(stderr, "sexpr: "))
	}
}

func TestRunBadFlag(t *testing.T) {
	code, _, stderr := runString([]string{"-nope"}, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "flag provided but not defined: -nope")
}
