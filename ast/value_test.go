package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	assert.Equal(t, Expr(Empty), List())

	got := List(Number(1), Symbol("a"), List())
	want := &Pair{
		Head: Number(1),
		Tail: &Pair{
			Head: Symbol("a"),
			Tail: &Pair{
				Head: Empty,
				Tail: Empty,
			},
		},
	}
	if diff := cmp.Diff(Expr(want), got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestElements(t *testing.T) {
	{
		elems, end := Elements(List(Number(1), Number(2), Number(3)))
		assert.Equal(t, []Expr{Number(1), Number(2), Number(3)}, elems)
		assert.True(t, IsEmpty(end))
	}

	{
		elems, end := Elements(Empty)
		assert.Empty(t, elems)
		assert.True(t, IsEmpty(end))
	}

	{
		elems, end := Elements(Cons(Number(1), Cons(Number(2), Symbol("x"))))
		assert.Equal(t, []Expr{Number(1), Number(2)}, elems)
		assert.Equal(t, Expr(Symbol("x")), end)
		assert.False(t, IsEmpty(end))
	}

	{
		elems, end := Elements(Number(7))
		assert.Empty(t, elems)
		assert.Equal(t, Expr(Number(7)), end)
	}
}
