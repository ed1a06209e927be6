// Package mexe evaluates arithmetic expressions to float64.
//
// Expressions are made of decimal numbers like 3 or 0.25, the binary
// operators + - * / with the usual precedence and left associativity,
// parentheses, and spaces. A minus sign directly before a number or an open
// parenthesis negates it, so "1 - -2" and "-(3 * 4)" are valid, but "--2" is
// not. Numbers need a digit on both sides of a decimal point; there is no
// exponent notation and no unary plus. Division by zero gives an infinity or
// NaN as IEEE-754 says.
//
// Eval parses and computes in one pass. EvalBinary is a faster path for the
// common case of exactly two numbers and one operator. Parse builds a tree
// that can be evaluated repeatedly or printed.
//
// All functions are pure and safe for concurrent use. Errors describe the
// position of the bad input where one exists; see InputError and KindOf.
// Input that stops where the grammar needs more, like "(1" or "", fails with
// ErrUnexpectedEndOfInput rather than a TokenError naming the end marker.
package mexe
