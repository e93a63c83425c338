package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mgomes/cmm/cmm"
)

type lintWarning struct {
	Statement int
	Message   string
}

func newAnalyzeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <script>",
		Short: "Report likely runtime faults and non-terminating loops",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args, "")
			if err != nil {
				return err
			}
			program, err := cmm.Parse(source)
			if err != nil {
				return reportCompileError(cmd.OutOrStdout(), err, !opts.noColor)
			}

			warnings := analyzeProgram(program)
			out := cmd.OutOrStdout()
			if len(warnings) == 0 {
				fmt.Fprintln(out, "No issues found")
				return nil
			}
			for _, warning := range warnings {
				fmt.Fprintf(out, "%s: statement %d: %s\n", args[0], warning.Statement, warning.Message)
			}
			return fmt.Errorf("analysis found %d issue(s)", len(warnings))
		},
	}
}

type analyzer struct {
	assigned map[string]struct{}
	reported map[string]struct{}
	current  int
	warnings []lintWarning
}

func analyzeProgram(program *cmm.Program) []lintWarning {
	a := &analyzer{
		assigned: make(map[string]struct{}),
		reported: make(map[string]struct{}),
	}
	collectAssignments(program.Statements, a.assigned)

	for i, stmt := range program.Statements {
		a.current = i + 1
		a.statement(stmt)
	}

	sort.SliceStable(a.warnings, func(i, j int) bool {
		return a.warnings[i].Statement < a.warnings[j].Statement
	})
	return a.warnings
}

func (a *analyzer) warn(format string, args ...any) {
	a.warnings = append(a.warnings, lintWarning{Statement: a.current, Message: fmt.Sprintf(format, args...)})
}

func (a *analyzer) statements(stmts []cmm.Statement) {
	for _, stmt := range stmts {
		a.statement(stmt)
	}
}

func (a *analyzer) statement(stmt cmm.Statement) {
	switch s := stmt.(type) {
	case *cmm.VariableDecl:
		a.expression(s.Value)
	case *cmm.ExpressionStatement:
		a.expression(s.Expr)
	case *cmm.PrintStatement:
		for _, arg := range s.Args {
			a.expression(arg)
		}
	case *cmm.BlockStatement:
		a.statements(s.Statements)
	case *cmm.IfStatement:
		a.expression(s.Condition)
		if !isBooleanValued(s.Condition) {
			a.warn("if condition is not a comparison; values other than 0 and 1 run no branch")
		}
		a.statements(s.Consequence.Statements)
		if s.Alternative != nil {
			a.statements(s.Alternative.Statements)
		}
	case *cmm.WhileStatement:
		a.expression(s.Condition)
		if !isBooleanValued(s.Condition) {
			a.warn("while condition is not a comparison; values other than 1 stop the loop")
		}
		if literal, ok := s.Condition.(*cmm.IntegerLiteral); !ok || literal.Value != 0 {
			bodyAssigned := make(map[string]struct{})
			collectAssignments(s.Body.Statements, bodyAssigned)
			if !readsAny(s.Condition, bodyAssigned) {
				a.warn("loop condition does not depend on anything assigned in its body; the loop never terminates once entered")
			}
		}
		a.statements(s.Body.Statements)
	}
}

func (a *analyzer) expression(expr cmm.Expression) {
	switch e := expr.(type) {
	case *cmm.Identifier:
		if _, ok := a.assigned[e.Name]; ok {
			return
		}
		if _, ok := a.reported[e.Name]; ok {
			return
		}
		a.reported[e.Name] = struct{}{}
		a.warn("identifier %s is read but never assigned", e.Name)
	case *cmm.InfixExpression:
		a.expression(e.Left)
		a.expression(e.Right)
		if literal, ok := e.Right.(*cmm.IntegerLiteral); ok && literal.Value == 0 {
			switch e.Operator {
			case "/":
				a.warn("division by literal zero")
			case "%":
				a.warn("modulo by literal zero")
			}
		}
	}
}

// isBooleanValued reports whether expr always yields 0 or 1.
func isBooleanValued(expr cmm.Expression) bool {
	switch e := expr.(type) {
	case *cmm.IntegerLiteral:
		return e.Value == 0 || e.Value == 1
	case *cmm.InfixExpression:
		switch e.Operator {
		case "<", ">", "<=", ">=", "==", "!=", "&&", "||":
			return true
		}
	}
	return false
}

func collectAssignments(stmts []cmm.Statement, into map[string]struct{}) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *cmm.VariableDecl:
			into[s.Name.Name] = struct{}{}
		case *cmm.BlockStatement:
			collectAssignments(s.Statements, into)
		case *cmm.IfStatement:
			collectAssignments(s.Consequence.Statements, into)
			if s.Alternative != nil {
				collectAssignments(s.Alternative.Statements, into)
			}
		case *cmm.WhileStatement:
			collectAssignments(s.Body.Statements, into)
		}
	}
}

func readsAny(expr cmm.Expression, names map[string]struct{}) bool {
	switch e := expr.(type) {
	case *cmm.Identifier:
		_, ok := names[e.Name]
		return ok
	case *cmm.InfixExpression:
		return readsAny(e.Left, names) || readsAny(e.Right, names)
	}
	return false
}
