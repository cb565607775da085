package truthtable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(kind TokenKind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// stripPositions makes token slices comparable without caring about offsets.
func stripPositions(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = Token{Kind: t.Kind, Text: t.Text}
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []Token
	}{
		{
			name: "single variable",
			expr: "A",
			want: []Token{tok(TokenVariable, "A")},
		},
		{
			name: "conjunction",
			expr: "A & B",
			want: []Token{tok(TokenVariable, "A"), tok(TokenOperator, "&"), tok(TokenVariable, "B")},
		},
		{
			name: "whitespace is irrelevant",
			expr: "  A\t&\nB ",
			want: []Token{tok(TokenVariable, "A"), tok(TokenOperator, "&"), tok(TokenVariable, "B")},
		},
		{
			name: "implication is one token",
			expr: "A -> B",
			want: []Token{tok(TokenVariable, "A"), tok(TokenOperator, "->"), tok(TokenVariable, "B")},
		},
		{
			name: "equivalence is one token, not '<' then '->'",
			expr: "A <-> B",
			want: []Token{tok(TokenVariable, "A"), tok(TokenOperator, "<->"), tok(TokenVariable, "B")},
		},
		{
			name: "parentheses and unary not",
			expr: "!(A | B)",
			want: []Token{
				tok(TokenOperator, "!"), tok(TokenLeftParen, "("),
				tok(TokenVariable, "A"), tok(TokenOperator, "|"), tok(TokenVariable, "B"),
				tok(TokenRightParen, ")"),
			},
		},
		{
			name: "nand nor xor symbols",
			expr: "A / B \\ C ^ D",
			want: []Token{
				tok(TokenVariable, "A"), tok(TokenOperator, "/"),
				tok(TokenVariable, "B"), tok(TokenOperator, "\\"),
				tok(TokenVariable, "C"), tok(TokenOperator, "^"),
				tok(TokenVariable, "D"),
			},
		},
		{
			name: "double negation cancels before scanning",
			expr: "!!A",
			want: []Token{tok(TokenVariable, "A")},
		},
		{
			name: "triple negation keeps one",
			expr: "!!!A",
			want: []Token{tok(TokenOperator, "!"), tok(TokenVariable, "A")},
		},
		{
			name: "quadruple negation cancels fully",
			expr: "!!!!A",
			want: []Token{tok(TokenVariable, "A")},
		},
		{
			name: "negation pair split by whitespace still cancels",
			expr: "! !A",
			want: []Token{tok(TokenVariable, "A")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stripPositions(got))
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr error
	}{
		{name: "lowercase variable", expr: "a & B", wantErr: ErrInvalidCharacter},
		{name: "lowercase after valid prefix", expr: "A & b", wantErr: ErrInvalidCharacter},
		{name: "unknown symbol", expr: "A = B", wantErr: ErrUnknownToken},
		{name: "bare dash is not implication", expr: "A - B", wantErr: ErrUnknownToken},
		{name: "digit", expr: "A & 1", wantErr: ErrUnknownToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.expr)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenizeErrorCarriesPosition(t *testing.T) {
	_, err := Tokenize("A&=B")
	require.ErrorIs(t, err, ErrUnknownToken)
	assert.True(t, strings.Contains(err.Error(), "position 2"), "got: %v", err)
}

func TestLongestOperatorPrefix(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"<->B", "<->", true},
		{"->B", "->", true},
		{"!A", "!", true},
		{"&&", "&", true},
		{"-", "", false},
		{"<", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := LongestOperatorPrefix(tt.text)
		assert.Equal(t, tt.ok, ok, "text %q", tt.text)
		assert.Equal(t, tt.want, got, "text %q", tt.text)
	}
}
