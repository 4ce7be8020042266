package query

import (
	"fmt"
	"regexp"
)

// Validate checks operator names and operand shapes of a filter expression
// without evaluating it against any document. Filter and FilterParallel
// call it up front so a broken expression fails before any per-document
// work; Match performs the same checks lazily during evaluation.
func Validate(filter map[string]any) error {
	for key, condition := range filter {
		switch key {
		case "$and", "$or", "$nor":
			subs, err := subExpressions(key, condition)
			if err != nil {
				return err
			}
			for _, sub := range subs {
				if err := Validate(sub); err != nil {
					return err
				}
			}
		case "$not":
			sub, ok := condition.(map[string]any)
			if !ok {
				return fmt.Errorf("%w: $not expects an expression, got %T", ErrMalformedOperand, condition)
			}
			if err := Validate(sub); err != nil {
				return err
			}
		default:
			if err := validateCondition(condition); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateCondition(condition any) error {
	operators, ok := condition.(map[string]any)
	if !ok {
		// Bare literal, implicit equality. Always well formed.
		return nil
	}
	for op, operand := range operators {
		switch op {
		case "$eq", "$ne", "$gt", "$gte", "$lt", "$lte":
			// Any operand shape is allowed; incomparable pairs are a
			// no-match at evaluation time.
		case "$in", "$nin":
			if _, err := operandSequence(op, operand); err != nil {
				return err
			}
		case "$exists":
			if _, ok := operand.(bool); !ok {
				return fmt.Errorf("%w: $exists expects a boolean, got %T", ErrMalformedOperand, operand)
			}
		case "$regex":
			pattern, ok := operand.(string)
			if !ok {
				return fmt.Errorf("%w: $regex expects a pattern string, got %T", ErrMalformedOperand, operand)
			}
			if _, err := regexp.Compile(pattern); err != nil {
				return fmt.Errorf("%w: $regex %q: %v", ErrMalformedOperand, pattern, err)
			}
		case "$not":
			if err := validateCondition(operand); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownOperator, op)
		}
	}
	return nil
}
