package truthtable

import (
	"fmt"
	"sort"
)

// Expression is a parsed logical expression: the postfix program produced by
// the shunting-yard conversion plus the sorted, de-duplicated set of
// variables it references. An Expression is immutable once built; parsing
// happens once and the result can be evaluated under any number of
// assignments, concurrently if desired.
type Expression struct {
	source  string
	postfix []Token
	vars    []string
}

// Parse tokenizes and parses a raw logical expression.
func Parse(expression string) (*Expression, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return nil, err
	}
	postfix, err := toPostfix(tokens)
	if err != nil {
		return nil, err
	}
	return &Expression{
		source:  expression,
		postfix: postfix,
		vars:    extractVariables(tokens),
	}, nil
}

// Source returns the raw expression the program was parsed from.
func (e *Expression) Source() string {
	return e.source
}

// Variables returns the referenced variable names in sorted order.
func (e *Expression) Variables() []string {
	return append([]string(nil), e.vars...)
}

// Postfix returns a copy of the postfix token sequence.
func (e *Expression) Postfix() []Token {
	return append([]Token(nil), e.postfix...)
}

// toPostfix converts an infix token sequence to postfix order using the
// shunting-yard algorithm. The tie-break on equal precedence follows
// associativity: a LEFT-associative operator on top of the stack pops eagerly
// (left-to-right grouping), a RIGHT-associative one stays put and defers to
// the incoming operator (right-to-left grouping).
func toPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	var stack []Token

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenVariable:
			output = append(output, tok)

		case TokenOperator:
			cur, ok := OperatorBySymbol(tok.Text)
			if !ok {
				return nil, fmt.Errorf("%w: %q at position %d", ErrUnexpectedToken, tok.Text, tok.Pos)
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOperator {
					break
				}
				topOp, _ := OperatorBySymbol(top.Text)
				if topOp.Precedence > cur.Precedence ||
					(topOp.Precedence == cur.Precedence && topOp.Associativity == AssocLeft) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, tok)

		case TokenLeftParen:
			stack = append(stack, tok)

		case TokenRightParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenLeftParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, fmt.Errorf("%w: no matching '(' for ')' at position %d",
					ErrMismatchedParentheses, tok.Pos)
			}

		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnexpectedToken, tok.Text, tok.Pos)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenLeftParen {
			return nil, fmt.Errorf("%w: '(' at position %d was never closed",
				ErrMismatchedParentheses, top.Pos)
		}
		output = append(output, top)
	}

	return output, nil
}

// extractVariables collects the distinct variable names referenced by the
// token sequence, sorted ascending. The sorted order is what drives
// assignment enumeration, most significant variable first.
func extractVariables(tokens []Token) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, tok := range tokens {
		if tok.Kind != TokenVariable {
			continue
		}
		if _, ok := seen[tok.Text]; ok {
			continue
		}
		seen[tok.Text] = struct{}{}
		names = append(names, tok.Text)
	}
	sort.Strings(names)
	return names
}
