package ast

// Expr is a node of the expression tree. The set of implementations is closed:
// Number, Symbol, EmptyList and *Pair.
type Expr interface {
	Type() NodeType
	String() string

	node()
}

// Number is an integer literal
type Number int64

// Symbol is an identifier or operator name
type Symbol string

// EmptyList terminates a list
type EmptyList struct{}

// Pair is a cons cell: one element followed by the rest of a list. Both
// fields are expected to be set; Format and Print write a missing one as
// ":nil".
type Pair struct {
	Head Expr
	Tail Expr
}

// Empty is the empty list
var Empty = EmptyList{}

// Type returns the type of the node
func (Number) Type() NodeType { return NodeTypeNumber }

// Type returns the type of the node
func (Symbol) Type() NodeType { return NodeTypeSymbol }

// Type returns the type of the node
func (EmptyList) Type() NodeType { return NodeTypeEmpty }

// Type returns the type of the node
func (*Pair) Type() NodeType { return NodeTypePair }

func (n Number) String() string    { return Format(n) }
func (s Symbol) String() string    { return Format(s) }
func (e EmptyList) String() string { return Format(e) }
func (p *Pair) String() string     { return Format(p) }

func (Number) node()    {}
func (Symbol) node()    {}
func (EmptyList) node() {}
func (*Pair) node()     {}

var (
	_ = Expr(Number(0))
	_ = Expr(Symbol(""))
	_ = Expr(Empty)
	_ = Expr(&Pair{})
)
