// Package filter evaluates expr expressions against the link records the
// T.LY list endpoints return. Records are plain JSON objects, so an
// expression can reference any field the API includes, e.g.
//
//	clicks > 100 && domain == "t.ly"
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression over link records.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression. Undefined fields are allowed so filters
// keep working across records with uneven shapes; a missing field
// evaluates as nil.
func Compile(expression string) (*Filter, error) {
	program, err := expr.Compile(expression, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return &Filter{expression: expression, program: program}, nil
}

// Match evaluates the filter against a single record.
func (f *Filter) Match(record map[string]any) (bool, error) {
	output, err := expr.Run(f.program, record)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}
	matched, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter did not evaluate to a boolean")
	}
	return matched, nil
}

// Apply returns the records matching the filter, preserving order.
func (f *Filter) Apply(records []map[string]any) ([]map[string]any, error) {
	matched := make([]map[string]any, 0, len(records))
	for _, record := range records {
		ok, err := f.Match(record)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression
}
