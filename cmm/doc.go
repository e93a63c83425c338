// Package cmm implements the C-- interpreter. C-- is a tiny integer-only
// imperative language with the following constructs:
//   - Assignment to variables in a single flat namespace (`x = 1`).
//   - Arithmetic (+, -, *, /, %), relational (<, >, <=, >=, ==, !=) and
//     logical (&&, ||) infix expressions with parentheses for grouping.
//   - `if (cond) { ... } else { ... }` and `while (cond) { ... }`.
//   - `print a, b, ...` which writes each integer followed by a separator.
//
// Every value is a 64-bit integer. Conditions and logical operands treat
// exactly 1 as true; any other value is false. Logical operators never
// short-circuit.
//
// Lexical faults abort compilation immediately. Syntax errors are collected
// and reported together, and a program with any syntax error never runs.
// Runtime faults (unknown identifiers, division by zero) abort evaluation.
package cmm
