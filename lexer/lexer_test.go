package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		In  rune
		Out Class
	}{
		{' ', ClassWhitespace},
		{'\n', ClassWhitespace},
		{'\t', ClassWhitespace},
		{'\r', ClassOther},
		{'0', ClassDigit},
		{'9', ClassDigit},
		{'(', ClassOpenList},
		{')', ClassCloseList},
		{'+', ClassOther},
		{'a', ClassOther},
		{'[', ClassOther},
		{EOF, ClassEOF},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, Classify(testCases[i].In), "%q", testCases[i].In)
	}
}

func TestClassNames(t *testing.T) {
	assert.Equal(t, "whitespace", ClassWhitespace.String())
	assert.Equal(t, "close_list", ClassCloseList.String())
	assert.Equal(t, "other", Class(200).String())
}

func TestIsDelimiter(t *testing.T) {
	for _, r := range []rune{' ', '\n', '\t', '(', ')', EOF} {
		assert.True(t, IsDelimiter(r), "%q", r)
	}
	for _, r := range []rune{'a', '1', '+', '*', ':', '[', '\r'} {
		assert.False(t, IsDelimiter(r), "%q", r)
	}
}

func TestSkipWhitespace(t *testing.T) {
	testCases := []struct {
		In   string
		Next rune
	}{
		{"", EOF},
		{"   ", EOF},
		{"a", 'a'},
		{" \n\t (", '('},
		{"\t\t\n)", ')'},
		{"\r x", '\r'},
	}

	for i := range testCases {
		lx := NewBytes([]byte(testCases[i].In))
		lx.SkipWhitespace()
		assert.Equal(t, testCases[i].Next, lx.Peek(), "%q", testCases[i].In)
	}
}

func TestCollect(t *testing.T) {
	lx := NewBytes([]byte("12345abc def(ghi)"))

	assert.Equal(t, "12345", lx.Collect(IsDigit))
	assert.Equal(t, "", lx.Collect(IsDigit))

	notDelimiter := func(r rune) bool { return !IsDelimiter(r) }

	assert.Equal(t, "abc", lx.Collect(notDelimiter))
	lx.SkipWhitespace()
	assert.Equal(t, "def", lx.Collect(notDelimiter))
	assert.Equal(t, '(', lx.Next())
	assert.Equal(t, "ghi", lx.Collect(notDelimiter))
	assert.Equal(t, ')', lx.Next())
	assert.Equal(t, EOF, lx.Peek())
	assert.Equal(t, "", lx.Collect(notDelimiter))

	assert.NoError(t, lx.Err())
}

func TestColumnAndLines(t *testing.T) {
	{
		lx := NewBytes([]byte(""))
		assert.Equal(t, Position{Offset: 0, Line: 1, Col: 1}, lx.Pos())
	}

	{
		lx := NewBytes([]byte("  \n\t(x"))
		lx.SkipWhitespace()
		assert.Equal(t, '(', lx.Peek())
		assert.Equal(t, Position{Offset: 4, Line: 2, Col: 2}, lx.Pos())
		assert.Equal(t, "2:2", lx.Pos().String())
	}

	{
		lx := NewBytes([]byte("1\n\n\t\t23456"))
		assert.Equal(t, "1", lx.Collect(IsDigit))
		assert.Equal(t, Position{Offset: 1, Line: 1, Col: 2}, lx.Pos())

		lx.SkipWhitespace()
		assert.Equal(t, Position{Offset: 5, Line: 3, Col: 3}, lx.Pos())

		assert.Equal(t, "23456", lx.Collect(IsDigit))
		assert.Equal(t, Position{Offset: 10, Line: 3, Col: 8}, lx.Pos())
	}
}
