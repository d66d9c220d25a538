package ast

// NodeType represents the variant of an expression
type NodeType uint8

// Node types
const (
	NodeTypeInvalid NodeType = iota
	NodeTypeNumber
	NodeTypeSymbol
	NodeTypeEmpty
	NodeTypePair
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return nodeTypeName[NodeTypeInvalid]
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInvalid: "invalid",
	NodeTypeNumber:  "number",
	NodeTypeSymbol:  "symbol",
	NodeTypeEmpty:   "empty",
	NodeTypePair:    "pair",
}
