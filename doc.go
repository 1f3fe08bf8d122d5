// Package calculator implements a small floating-point calculator.
//
// Expressions are sequences of decimal literals separated by the binary
// operators + - * / and ^. They are evaluated left to right with two stacks,
// one of values and one of pending operators, reducing as soon as an operator
// of lower or equal precedence arrives. There are no brackets, no unary signs,
// and no variables. Every operator is left-associative, so "2^3^2" is
// "(2^3)^2", which is 64.
//
// Division by zero produces zero rather than an error or infinity.
//
// The package also has a few helpers used by the interactive calculator:
// factorials, a handful of scientific functions, and complex arithmetic.
package calculator
