package cmm

import "strings"

const formatIndent = "    "

// Format renders program as canonical source: one statement per line,
// four-space indentation, and only the parentheses the precedence rules
// require. Parsing the output yields a structurally identical program.
func Format(program *Program) string {
	var f formatter
	f.statements(program.Statements, 0)
	return f.b.String()
}

type formatter struct {
	b strings.Builder
}

func (f *formatter) statements(stmts []Statement, depth int) {
	for i, stmt := range stmts {
		var prev Statement
		if i > 0 {
			prev = stmts[i-1]
		}
		f.statement(stmt, prev, depth)
	}
}

func (f *formatter) line(depth int, text string) {
	f.b.WriteString(strings.Repeat(formatIndent, depth))
	f.b.WriteString(text)
	f.b.WriteByte('\n')
}

func (f *formatter) statement(stmt Statement, prev Statement, depth int) {
	switch s := stmt.(type) {
	case *VariableDecl:
		f.line(depth, s.Name.Name+" = "+formatExpression(s.Value, lowestPrec, false))
	case *ExpressionStatement:
		text := formatExpression(s.Expr, lowestPrec, false)
		if needsStatementParens(s.Expr, prev, depth) {
			text = "(" + text + ")"
		}
		f.line(depth, text)
	case *PrintStatement:
		args := make([]string, len(s.Args))
		for i, arg := range s.Args {
			args[i] = formatExpression(arg, lowestPrec, false)
		}
		f.line(depth, "print "+strings.Join(args, ", "))
	case *IfStatement:
		f.line(depth, "if ("+formatExpression(s.Condition, lowestPrec, false)+") {")
		f.statements(s.Consequence.Statements, depth+1)
		if s.Alternative != nil {
			f.line(depth, "} else {")
			f.statements(s.Alternative.Statements, depth+1)
		}
		f.line(depth, "}")
	case *WhileStatement:
		f.line(depth, "while ("+formatExpression(s.Condition, lowestPrec, false)+") {")
		f.statements(s.Body.Statements, depth+1)
		f.line(depth, "}")
	case *BlockStatement:
		// Blocks open no scope, so a bare block is flattened.
		f.statements(s.Statements, depth)
	}
}

// needsStatementParens keeps an expression statement from being read as
// something else once whitespace is gone: at top level a leading identifier
// would start an assignment, and a leading integer directly after an
// operand would be a missing operator.
func needsStatementParens(expr Expression, prev Statement, depth int) bool {
	switch leftmostOperand(expr).(type) {
	case *Identifier:
		return depth == 0
	case *IntegerLiteral:
		if prev == nil {
			return false
		}
		switch prev.(type) {
		case *IfStatement, *WhileStatement:
			return false
		}
		return true
	}
	return false
}

func leftmostOperand(expr Expression) Expression {
	for {
		infix, ok := expr.(*InfixExpression)
		if !ok {
			return expr
		}
		expr = infix.Left
	}
}

func formatExpression(expr Expression, parentPrec int, rightOperand bool) string {
	switch e := expr.(type) {
	case *Identifier:
		return e.Name
	case *IntegerLiteral:
		return e.Token().Literal
	case *InfixExpression:
		prec := precedences[e.Token().Type]
		text := formatExpression(e.Left, prec, false) + " " + e.Operator + " " + formatExpression(e.Right, prec, true)
		if prec < parentPrec || (rightOperand && prec == parentPrec) {
			return "(" + text + ")"
		}
		return text
	default:
		return ""
	}
}
