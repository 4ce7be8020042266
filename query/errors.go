package query

import "errors"

// Configuration errors. Both indicate a broken filter expression, not a
// non-matching document; Match and Filter fail fast when they surface.
var (
	// ErrUnknownOperator reports an operator key outside the supported set.
	ErrUnknownOperator = errors.New("query: unknown operator")

	// ErrMalformedOperand reports an operand whose shape does not fit its
	// operator (e.g. $and without a sequence, $exists without a boolean,
	// $regex with an invalid pattern).
	ErrMalformedOperand = errors.New("query: malformed operand")
)
