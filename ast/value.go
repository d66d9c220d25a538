package ast

// Cons creates a pair from the given head and tail
func Cons(head Expr, tail Expr) *Pair {
	return &Pair{
		Head: head,
		Tail: tail,
	}
}

// List creates a proper list holding the given elements
func List(elems ...Expr) Expr {
	var list Expr = Empty
	for i := len(elems) - 1; i >= 0; i-- {
		list = Cons(elems[i], list)
	}
	return list
}

// IsEmpty returns true if the expression is the empty list
func IsEmpty(e Expr) bool {
	_, ok := e.(EmptyList)
	return ok
}

// Elements walks a chain of pairs and returns the head of each one, along
// with the node that ended the chain. The terminator of a proper list is
// Empty.
func Elements(list Expr) ([]Expr, Expr) {
	elems := []Expr{}
	for {
		p, ok := list.(*Pair)
		if !ok {
			return elems, list
		}
		elems = append(elems, p.Head)
		list = p.Tail
	}
}
