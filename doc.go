// Package calc implements an exact-fraction calculator for single lines of
// mixed-notation arithmetic.
//
// Numbers are carried as fractions p/q, so "1 - 2 / 3" is 1/3 rather than
// 0.33333333333333337. Lines may use infix operators (+ - * / ^ %), the
// forward operators "sqrt x" and "log b x", parentheses, and assignments like
// "a = 5" that persist in a Vars table across lines. Adjacent operands
// multiply: "2 a" is "2 * a".
package calc
