package truthtable

import (
	"fmt"
	"strings"
	"unicode"
)

// Tokenize splits a raw logical expression into tokens. The input is
// normalized first: all whitespace is stripped and every "!!" pair is removed
// in one textual pass, so "!!A" tokenizes exactly like "A". Uppercase letters
// become variable tokens, parentheses become paren tokens, and anything else
// must match an operator symbol greedily (longest first).
func Tokenize(expression string) ([]Token, error) {
	expr := normalize(expression)
	tokens := make([]Token, 0, len(expr))

	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case isLetter(c):
			if !isUppercase(c) {
				return nil, fmt.Errorf("%w: %q at position %d, variables must be uppercase letters",
					ErrInvalidCharacter, string(c), i)
			}
			tokens = append(tokens, Token{Kind: TokenVariable, Text: string(c), Pos: i})
			i++
		case c == '(':
			tokens = append(tokens, Token{Kind: TokenLeftParen, Text: "(", Pos: i})
			i++
		case c == ')':
			tokens = append(tokens, Token{Kind: TokenRightParen, Text: ")", Pos: i})
			i++
		default:
			symbol, ok := LongestOperatorPrefix(expr[i:])
			if !ok {
				return nil, fmt.Errorf("%w: starting with %q at position %d",
					ErrUnknownToken, string(c), i)
			}
			tokens = append(tokens, Token{Kind: TokenOperator, Text: symbol, Pos: i})
			i += len(symbol)
		}
	}

	return tokens, nil
}

// normalize strips whitespace and cancels double negations textually. The
// "!!" removal is a single non-overlapping left-to-right pass, not a fixpoint
// loop: "!!!!A" becomes "A" and "!!!A" becomes "!A".
func normalize(expression string) string {
	var sb strings.Builder
	sb.Grow(len(expression))
	for _, r := range expression {
		if !unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	return strings.ReplaceAll(sb.String(), "!!", "")
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isUppercase(c byte) bool {
	return 'A' <= c && c <= 'Z'
}
