package query

import (
	"fmt"
	"reflect"
	"regexp"
)

// Match reports whether a document satisfies a filter expression.
//
// Every top-level key must hold (implicit AND), including when logical
// keywords and field keys share the same mapping level. The empty
// expression matches every document. The returned error is non-nil only
// for configuration problems (unknown operator, malformed operand); a
// non-matching document is (false, nil).
func Match(doc map[string]any, filter map[string]any) (bool, error) {
	for key, condition := range filter {
		switch key {
		case "$and":
			subs, err := subExpressions(key, condition)
			if err != nil {
				return false, err
			}
			for _, sub := range subs {
				ok, err := Match(doc, sub)
				if err != nil {
					return false, err
				}
				if !ok {
					return false, nil
				}
			}
		case "$or":
			subs, err := subExpressions(key, condition)
			if err != nil {
				return false, err
			}
			matched := false
			for _, sub := range subs {
				ok, err := Match(doc, sub)
				if err != nil {
					return false, err
				}
				if ok {
					matched = true
					break
				}
			}
			if !matched {
				return false, nil
			}
		case "$nor":
			subs, err := subExpressions(key, condition)
			if err != nil {
				return false, err
			}
			for _, sub := range subs {
				ok, err := Match(doc, sub)
				if err != nil {
					return false, err
				}
				if ok {
					return false, nil
				}
			}
		case "$not":
			sub, ok := condition.(map[string]any)
			if !ok {
				return false, fmt.Errorf("%w: $not expects an expression, got %T", ErrMalformedOperand, condition)
			}
			matched, err := Match(doc, sub)
			if err != nil {
				return false, err
			}
			if matched {
				return false, nil
			}
		default:
			value, present := Resolve(doc, key)
			ok, err := matchCondition(value, present, condition)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}
	return true, nil
}

// matchCondition evaluates a single field condition against a resolved
// value. The condition is either a bare literal (implicit equality) or an
// operator mapping; multiple operator keys in one mapping all have to hold.
func matchCondition(value any, present bool, condition any) (bool, error) {
	operators, ok := condition.(map[string]any)
	if !ok {
		return present && equalValues(value, condition), nil
	}

	for op, operand := range operators {
		switch op {
		case "$eq":
			if !present || !equalValues(value, operand) {
				return false, nil
			}
		case "$ne":
			if present && equalValues(value, operand) {
				return false, nil
			}
		case "$gt", "$gte", "$lt", "$lte":
			if !matchOrdered(op, value, present, operand) {
				return false, nil
			}
		case "$in":
			members, err := operandSequence(op, operand)
			if err != nil {
				return false, err
			}
			if !present || !containsValue(members, value) {
				return false, nil
			}
		case "$nin":
			members, err := operandSequence(op, operand)
			if err != nil {
				return false, err
			}
			if present && containsValue(members, value) {
				return false, nil
			}
		case "$exists":
			want, ok := operand.(bool)
			if !ok {
				return false, fmt.Errorf("%w: $exists expects a boolean, got %T", ErrMalformedOperand, operand)
			}
			if present != want {
				return false, nil
			}
		case "$regex":
			pattern, ok := operand.(string)
			if !ok {
				return false, fmt.Errorf("%w: $regex expects a pattern string, got %T", ErrMalformedOperand, operand)
			}
			re, err := regexp.Compile(pattern)
			if err != nil {
				return false, fmt.Errorf("%w: $regex %q: %v", ErrMalformedOperand, pattern, err)
			}
			s, isString := value.(string)
			if !present || !isString || !re.MatchString(s) {
				return false, nil
			}
		case "$not":
			matched, err := matchCondition(value, present, operand)
			if err != nil {
				return false, err
			}
			if matched {
				return false, nil
			}
		default:
			return false, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
		}
	}
	return true, nil
}

// matchOrdered implements $gt/$gte/$lt/$lte. Absent fields and explicit
// nils never match; incomparable pairs never match.
func matchOrdered(op string, value any, present bool, operand any) bool {
	if !present || value == nil {
		return false
	}
	cmp, comparable := compareValues(value, operand)
	if !comparable {
		return false
	}
	switch op {
	case "$gt":
		return cmp > 0
	case "$gte":
		return cmp >= 0
	case "$lt":
		return cmp < 0
	default: // $lte
		return cmp <= 0
	}
}

// subExpressions coerces a logical operand into a list of sub-expressions.
// Accepts []map[string]any from caller-built filters and []any from decoded
// JSON; anything else is a configuration error.
func subExpressions(op string, operand any) ([]map[string]any, error) {
	switch v := operand.(type) {
	case []map[string]any:
		return v, nil
	case []any:
		subs := make([]map[string]any, len(v))
		for i, elem := range v {
			m, ok := elem.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s expects a sequence of expressions, got element %T", ErrMalformedOperand, op, elem)
			}
			subs[i] = m
		}
		return subs, nil
	default:
		return nil, fmt.Errorf("%w: %s expects a sequence, got %T", ErrMalformedOperand, op, operand)
	}
}

// operandSequence coerces a $in/$nin operand into a []any, accepting any
// slice or array type so caller-built []string operands work too.
func operandSequence(op string, operand any) ([]any, error) {
	if members, ok := operand.([]any); ok {
		return members, nil
	}
	rv := reflect.ValueOf(operand)
	if operand == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: %s expects a sequence, got %T", ErrMalformedOperand, op, operand)
	}
	members := make([]any, rv.Len())
	for i := range members {
		members[i] = rv.Index(i).Interface()
	}
	return members, nil
}

func containsValue(members []any, value any) bool {
	for _, m := range members {
		if equalValues(value, m) {
			return true
		}
	}
	return false
}
