package truthtable

import "errors"

// Errors returned by tokenization, parsing and evaluation. All of them are
// deterministic input-validation failures surfaced to the caller; none are
// transient. They are wrapped with token/position context and can be matched
// with errors.Is.
var (
	// ErrInvalidCharacter means a lowercase letter appeared where a variable
	// was expected; variables are single uppercase letters.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrUnknownToken means no operator symbol matched at the scan position.
	ErrUnknownToken = errors.New("unknown token")

	// ErrUnexpectedToken means a token was neither a variable, a known
	// operator, nor a parenthesis.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrMismatchedParentheses means the expression's parentheses are
	// unbalanced in either direction.
	ErrMismatchedParentheses = errors.New("mismatched parentheses")

	// ErrUnknownVariable means the postfix program references a variable the
	// supplied assignment has no value for.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrInsufficientOperands and ErrMalformedResult indicate a structurally
	// invalid postfix program. A program produced by Parse cannot trigger
	// them; they guard programs built by hand.
	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrMalformedResult      = errors.New("malformed result")
)
