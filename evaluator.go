package truthtable

import "fmt"

// ValuedExpression is one step of a derivation: the reconstructed text of a
// sub-expression and its boolean value under the current assignment. The
// precedence of the operator that produced it is kept so later steps can
// decide whether the text needs parentheses when embedded.
type ValuedExpression struct {
	Text  string
	Value bool

	prec int
}

func atom(name string, value bool) ValuedExpression {
	return ValuedExpression{Text: name, Value: value, prec: atomicPrecedence}
}

// Evaluate runs the postfix program under the given assignment and returns
// the full derivation trace: one ValuedExpression per input variable (in
// sorted variable order) followed by one per operator application, in the
// order they complete. The last entry is the overall result, its Text the
// whole expression re-rendered with minimal parentheses.
//
// Every variable the expression references must have a value in the
// assignment; extra entries are ignored. Each call allocates its own operand
// stack and trace, so distinct assignments may be evaluated concurrently.
func (e *Expression) Evaluate(assignment map[string]bool) ([]ValuedExpression, error) {
	inputs := make(map[string]ValuedExpression, len(e.vars))
	trace := make([]ValuedExpression, 0, len(e.vars)+len(e.postfix))
	for _, name := range e.vars {
		value, ok := assignment[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no value in the assignment", ErrUnknownVariable, name)
		}
		v := atom(name, value)
		inputs[name] = v
		trace = append(trace, v)
	}

	var stack []ValuedExpression
	for _, tok := range e.postfix {
		switch tok.Kind {
		case TokenVariable:
			v, ok := inputs[tok.Text]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, tok.Text)
			}
			stack = append(stack, v)

		case TokenOperator:
			op, ok := OperatorBySymbol(tok.Text)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnexpectedToken, tok.Text)
			}
			if len(stack) < op.Arity {
				return nil, fmt.Errorf("%w: operator %q needs %d operand(s), have %d",
					ErrInsufficientOperands, op.Symbol, op.Arity, len(stack))
			}
			// Pop in reverse so the first-popped operand is the rightmost.
			args := make([]ValuedExpression, op.Arity)
			for i := op.Arity - 1; i >= 0; i-- {
				args[i] = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
			step := applyOperator(op, args)
			trace = append(trace, step)
			stack = append(stack, step)

		default:
			return nil, fmt.Errorf("%w: %q", ErrUnexpectedToken, tok.Text)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: evaluation left %d results on the stack",
			ErrMalformedResult, len(stack))
	}
	return trace, nil
}

func applyOperator(op Operator, args []ValuedExpression) ValuedExpression {
	values := make([]bool, len(args))
	for i, a := range args {
		values[i] = a.Value
	}
	return ValuedExpression{
		Text:  reconstruct(op, args),
		Value: op.Eval(values),
		prec:  op.Precedence,
	}
}

// reconstruct builds the textual form of applying op to args, inserting
// parentheses only where precedence or associativity demands them. A strictly
// lower-precedence operand is always parenthesized: !(A & B), (A | B) & C.
// An equal-precedence operand is parenthesized only under a RIGHT-associative
// operator, on either side, which is how "A -> B -> C" comes back as
// "A -> (B -> C)" while "A & B & C" stays flat, and "!!A" stays "!!A" rather
// than "!(!A)".
func reconstruct(op Operator, args []ValuedExpression) string {
	if op.Arity == 1 {
		operand := args[0].Text
		if args[0].prec < op.Precedence {
			operand = "(" + operand + ")"
		}
		return op.Symbol + operand
	}

	left, right := args[0].Text, args[1].Text
	if needsParens(op, args[0]) {
		left = "(" + left + ")"
	}
	if needsParens(op, args[1]) {
		right = "(" + right + ")"
	}
	return left + " " + op.Symbol + " " + right
}

func needsParens(op Operator, arg ValuedExpression) bool {
	return arg.prec < op.Precedence ||
		(arg.prec == op.Precedence && op.Associativity == AssocRight)
}
