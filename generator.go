package truthtable

import "fmt"

// Table is a fully evaluated truth table. Headers holds the reconstructed
// text of every derivation step of the first assignment: the variables first,
// then each intermediate sub-expression, the whole expression last. Every row
// holds the matching boolean values for one assignment.
type Table struct {
	Source    string
	Variables []string
	Headers   []string
	Rows      [][]bool
}

// Generator evaluates an expression under every assignment of its variables.
// The expression is parsed exactly once, at construction.
type Generator struct {
	expr *Expression
}

// NewGenerator parses the expression and prepares a generator for it.
func NewGenerator(expression string) (*Generator, error) {
	expr, err := Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid expression: %w", err)
	}
	return &Generator{expr: expr}, nil
}

// Expression returns the parsed expression backing the generator.
func (g *Generator) Expression() *Expression {
	return g.expr
}

// Generate evaluates the expression under all 2^n assignments of its n
// variables. Assignments follow the bits of a row counter, most significant
// variable first: the first row sets every variable false, the last sets
// every variable true.
func (g *Generator) Generate() (*Table, error) {
	vars := g.expr.Variables()
	n := len(vars)
	numRows := 1 << n

	table := &Table{
		Source:    g.expr.Source(),
		Variables: vars,
		Rows:      make([][]bool, 0, numRows),
	}

	for i := 0; i < numRows; i++ {
		assignment := make(map[string]bool, n)
		for j, name := range vars {
			assignment[name] = (i>>(n-1-j))&1 == 1
		}

		trace, err := g.expr.Evaluate(assignment)
		if err != nil {
			return nil, err
		}

		if table.Headers == nil {
			table.Headers = make([]string, len(trace))
			for k, step := range trace {
				table.Headers[k] = step.Text
			}
		}
		row := make([]bool, len(trace))
		for k, step := range trace {
			row[k] = step.Value
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
