// Package query implements a MongoDB-query-subset matcher for filtering
// JSON-like documents in memory.
//
// # Overview
//
// A filter expression is an ordinary map[string]any using a subset of
// MongoDB's query syntax. Documents are map[string]any values as produced
// by encoding/json. Matching is pure and stateless: the engine never
// mutates documents or expressions.
//
// Supported operators:
//
//	| Operator              | Matches when                                          |
//	|-----------------------|-------------------------------------------------------|
//	| literal (implicit $eq)| field present and equal to the literal                |
//	| $eq                   | same as implicit equality                             |
//	| $ne                   | field absent OR not equal                             |
//	| $gt $gte $lt $lte     | field present, comparable, and ordered accordingly    |
//	| $in                   | field present and a member of the operand sequence    |
//	| $nin                  | field absent OR not a member                          |
//	| $exists               | field presence equals the boolean operand             |
//	| $regex                | field is a string and the pattern matches anywhere    |
//	| $and $or $nor         | logical composition over sequences of sub-expressions |
//	| $not                  | negation of a sub-expression or operator mapping      |
//
// Field keys use dot notation to traverse nested maps ("address.city").
// A path that runs into a missing key, or into a value that is not a map,
// resolves to absent. Absence is distinct from an explicit nil value: a
// document holding {"a": nil} has "a" present. This distinction drives the
// $ne / $nin / $exists semantics above.
//
// Unknown operators and malformed operands are configuration errors and
// fail the whole call; they are never silently ignored. Ordered comparisons
// between incomparable types (a number against a string, a nil, a slice)
// are a plain no-match, because heterogeneous documents are expected.
package query
