// Package splitexpr implements a one-line expression language with numbers,
// variables, arithmetic, comparison, and assignment.
//
// Instead of recursive descent, the builder repeatedly splits a token span at
// its minimum-priority token, so "1+2*3" splits at "+" before "*". Ties pick
// the rightmost token, which groups every equal-priority chain to the left,
// including "^": "2^3^2" is (2^3)^2. Parentheses protect a region by raising
// the priority of the tokens inside it.
//
// Each identifier occurrence is its own variable with a fresh cell holding 0.
// Assignment with "<-" writes that one cell and nothing else, so "a<-5+a" is
// 5: the right-hand "a" is a different cell from the target, and no value
// survives from one line to the next.
package splitexpr
