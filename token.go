package truthtable

// TokenKind discriminates the lexical elements of a logical expression.
type TokenKind int

const (
	TokenVariable TokenKind = iota
	TokenOperator
	TokenLeftParen
	TokenRightParen
)

// Token is a single lexical element. Tokens are value objects compared by
// kind and text; Pos is the byte offset in the normalized expression and is
// used only for error messages.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}
