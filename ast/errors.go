package ast

import (
	"errors"
)

// ErrRecursionLimitExceeded is returned when parsing or evaluating an
// expression nests deeper than the configured limit.
var ErrRecursionLimitExceeded = errors.New("recursion limit exceeded")
