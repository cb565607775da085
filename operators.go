package truthtable

import "math"

// Associativity determines how chains of equal-precedence operators group:
// left-to-right (AssocLeft) or right-to-left (AssocRight).
type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
)

// maxOperatorLength is the longest symbol in the catalog ("<->").
const maxOperatorLength = 3

// atomicPrecedence is the precedence assigned to bare variables. It is higher
// than any operator's, so an atom is never parenthesized.
const atomicPrecedence = math.MaxInt

// Operator is one entry of the closed operator catalog. Higher precedence
// binds tighter. Eval must be called with exactly Arity values, leftmost
// operand first.
type Operator struct {
	Symbol        string
	Precedence    int
	Associativity Associativity
	Arity         int
	Eval          func(args []bool) bool
}

// operators maps every known symbol to its catalog entry. These eight are the
// whole grammar; both the parser and the evaluator rely on the same
// precedence and associativity data, in particular the right associativity of
// "!" and "->" and the left associativity of "<->".
var operators = map[string]Operator{
	"!": {"!", 5, AssocRight, 1, func(args []bool) bool { return !args[0] }},

	"&": {"&", 4, AssocLeft, 2, func(args []bool) bool { return args[0] && args[1] }},
	"/": {"/", 4, AssocLeft, 2, func(args []bool) bool { return !(args[0] && args[1]) }}, // Sheffer stroke

	"|":  {"|", 3, AssocLeft, 2, func(args []bool) bool { return args[0] || args[1] }},
	"^":  {"^", 3, AssocLeft, 2, func(args []bool) bool { return args[0] != args[1] }},
	"\\": {"\\", 3, AssocLeft, 2, func(args []bool) bool { return !(args[0] || args[1]) }}, // Peirce's arrow

	"->": {"->", 2, AssocRight, 2, func(args []bool) bool { return !args[0] || args[1] }},

	"<->": {"<->", 1, AssocLeft, 2, func(args []bool) bool { return args[0] == args[1] }},
}

// OperatorBySymbol looks up a catalog entry by its symbol.
func OperatorBySymbol(symbol string) (Operator, bool) {
	op, ok := operators[symbol]
	return op, ok
}

// IsOperatorSymbol reports whether symbol is a known operator.
func IsOperatorSymbol(symbol string) bool {
	_, ok := operators[symbol]
	return ok
}

// LongestOperatorPrefix returns the longest operator symbol that text starts
// with, trying lengths 3 down to 1. Greedy matching matters: "-" alone is not
// an operator but "->" is, and "<->" must not scan as "<" followed by "->".
func LongestOperatorPrefix(text string) (string, bool) {
	for l := maxOperatorLength; l >= 1; l-- {
		if len(text) < l {
			continue
		}
		if prefix := text[:l]; IsOperatorSymbol(prefix) {
			return prefix, true
		}
	}
	return "", false
}
