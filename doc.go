// Package xpr evaluates arithmetic expressions in double precision.
//
// An expression is read once, left to right, and folded into its value as it
// is tokenized: there is no syntax tree. "2+3*4" is 14, "2^3^2" is 64 because
// ^ associates to the left, and "-2^2" is 4 because unary signs bind tightest.
// Parentheses group, and a name directly before them calls one of the
// built-in functions: "max(1, 5, 3)", "log(2, 8)", "scale(0, 10, 0, 100, 5)".
//
// Names are looked up first in the caller's variables, then among the
// constants e, pi, and phi, then among the functions.
//
// Every failure, whether a bad character, a missing operand, an unknown name,
// or a division by zero, makes Eval return NaN. EvalErr returns the same value
// along with an error describing what went wrong.
package xpr
