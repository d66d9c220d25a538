package lexer

// Class represents the lexical class of a single character
type Class uint8

// List of character classes
const (
	ClassOther      Class = iota
	ClassWhitespace       // Space, newline or tab: " \n\t"
	ClassDigit            // Decimal digits
	ClassOpenList         // Open parenthesis: "("
	ClassCloseList        // Close parenthesis: ")"
	ClassEOF              // End of input
)

var classValues = map[Class][]rune{
	ClassWhitespace: []rune(" \n\t"),
	ClassDigit:      []rune("0123456789"),
	ClassOpenList:   []rune{'('},
	ClassCloseList:  []rune{')'},
	ClassEOF:        []rune{EOF},
}

var classNames = map[Class]string{
	ClassOther:      "other",
	ClassWhitespace: "whitespace",
	ClassDigit:      "digit",
	ClassOpenList:   "open_list",
	ClassCloseList:  "close_list",
	ClassEOF:        "EOF",
}

func (c Class) String() string {
	if v, ok := classNames[c]; ok {
		return v
	}
	return classNames[ClassOther]
}

func isClass(c Class) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range classValues[c] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	IsWhitespace = isClass(ClassWhitespace)
	IsDigit      = isClass(ClassDigit)
	IsOpenList   = isClass(ClassOpenList)
	IsCloseList  = isClass(ClassCloseList)
	IsEOF        = isClass(ClassEOF)
)

// IsDelimiter returns true if r ends a number or a symbol
func IsDelimiter(r rune) bool {
	return IsWhitespace(r) || IsOpenList(r) || IsCloseList(r) || IsEOF(r)
}

// Classify returns the class of the given character
func Classify(r rune) Class {
	for _, c := range []Class{ClassWhitespace, ClassDigit, ClassOpenList, ClassCloseList, ClassEOF} {
		if isClass(c)(r) {
			return c
		}
	}
	return ClassOther
}
