// Package scicalc evaluates calculator expressions with scientific functions.
//
// An expression is what a user types into a calculator: "2+3*4",
// "sqrt(16)+50%", "avg(1, 2, sin(30))". Evaluation happens in three stages,
// each turning text into text until the last one:
//
//  1. Percentages are normalized: 50% becomes (50/100).
//  2. Function calls are rewritten, one name at a time, into the decimal
//     literals of their values. Arguments are evaluated recursively through
//     the whole pipeline.
//  3. The remaining arithmetic, made only of numbers, + - * / ^, and
//     parentheses, is parsed and evaluated. "-2^2^n" is the same as
//     "-(2^(2^n))", where "a^b" is exponentiation. Division by zero gives an
//     infinity or NaN rather than an error.
//
// Trigonometric functions work in degrees. The boolean functions prime,
// palindrome, and armstrong take a plain numeric literal and give 1 or 0; when
// one of them is the whole expression, the Result is marked as a boolean.
//
// Errors match at least one of ErrSyntax, ErrUnresolved, ErrArgument,
// ErrDegenerate, or ErrNesting under errors.Is. Failures inside unary,
// multi-argument, and boolean functions also match ErrFunc.
package scicalc
