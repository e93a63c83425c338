package cmm

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func parseClean(t *testing.T, source string) *Program {
	t.Helper()
	program, err := Parse(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return program
}

func parseDiagnostics(t *testing.T, source string) []string {
	t.Helper()
	_, err := Parse(source)
	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("expected compile error, got %v", err)
	}
	lexemes := make([]string, len(compileErr.Errors))
	for i, diag := range compileErr.Errors {
		lexemes[i] = diag.Lexeme
	}
	return lexemes
}

func groupedString(expr Expression) string {
	switch e := expr.(type) {
	case *Identifier:
		return e.Name
	case *IntegerLiteral:
		return fmt.Sprint(e.Value)
	case *InfixExpression:
		return "(" + groupedString(e.Left) + " " + e.Operator + " " + groupedString(e.Right) + ")"
	default:
		return fmt.Sprintf("<%T>", expr)
	}
}

func TestParseTopLevelStatementKinds(t *testing.T) {
	program := parseClean(t, `
x = 5
y = 6
print x, y
if (x < y) { x = 1 } else { y = 2 }
while (x > 0) { x = x - 1 }
3 + 4
`)

	if len(program.Statements) != 6 {
		t.Fatalf("expected 6 statements, got %d", len(program.Statements))
	}
	if _, ok := program.Statements[0].(*VariableDecl); !ok {
		t.Fatalf("statement 0: expected *VariableDecl, got %T", program.Statements[0])
	}
	if _, ok := program.Statements[1].(*VariableDecl); !ok {
		t.Fatalf("statement 1: expected *VariableDecl, got %T", program.Statements[1])
	}
	printStmt, ok := program.Statements[2].(*PrintStatement)
	if !ok {
		t.Fatalf("statement 2: expected *PrintStatement, got %T", program.Statements[2])
	}
	if len(printStmt.Args) != 2 {
		t.Fatalf("expected 2 print args, got %d", len(printStmt.Args))
	}
	ifStmt, ok := program.Statements[3].(*IfStatement)
	if !ok {
		t.Fatalf("statement 3: expected *IfStatement, got %T", program.Statements[3])
	}
	if ifStmt.Alternative == nil {
		t.Fatalf("expected else branch to be set")
	}
	if _, ok := program.Statements[4].(*WhileStatement); !ok {
		t.Fatalf("statement 4: expected *WhileStatement, got %T", program.Statements[4])
	}
	if _, ok := program.Statements[5].(*ExpressionStatement); !ok {
		t.Fatalf("statement 5: expected *ExpressionStatement, got %T", program.Statements[5])
	}
}

func TestParseIfWithoutElseLeavesAlternativeNil(t *testing.T) {
	program := parseClean(t, "if (1) { print 1 } print 2")
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	ifStmt := program.Statements[0].(*IfStatement)
	if ifStmt.Alternative != nil {
		t.Fatalf("expected no else branch")
	}
	if len(ifStmt.Consequence.Statements) != 1 {
		t.Fatalf("expected 1 statement in branch, got %d", len(ifStmt.Consequence.Statements))
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{source: "2 + 3 * 4", want: "(2 + (3 * 4))"},
		{source: "(2 + 3) * 4", want: "((2 + 3) * 4)"},
		{source: "1 - 2 - 3", want: "((1 - 2) - 3)"},
		{source: "8 / 4 / 2", want: "((8 / 4) / 2)"},
		{source: "7 % 4 * 2", want: "((7 % 4) * 2)"},
		{source: "a < b == c > d", want: "((a < b) == (c > d))"},
		{source: "a == b && c != d", want: "((a == b) && (c != d))"},
		{source: "a || b && c", want: "(a || (b && c))"},
		{source: "a && b || c && d", want: "((a && b) || (c && d))"},
		{source: "1 + 2 <= 3 * 4 || 0", want: "(((1 + 2) <= (3 * 4)) || 0)"},
		{source: "((1))", want: "1"},
	}

	for _, tc := range cases {
		t.Run(tc.source, func(t *testing.T) {
			program := parseClean(t, "print "+tc.source)
			printStmt := program.Statements[0].(*PrintStatement)
			if got := groupedString(printStmt.Args[0]); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestParseIdentifierInsideBlock(t *testing.T) {
	program := parseClean(t, "x = 1 while (x < 3) { x print x x = x + 1 }")
	loop := program.Statements[1].(*WhileStatement)
	body := loop.Body.Statements
	if len(body) != 3 {
		t.Fatalf("expected 3 body statements, got %d", len(body))
	}
	if _, ok := body[0].(*ExpressionStatement); !ok {
		t.Fatalf("expected bare identifier to be an expression statement, got %T", body[0])
	}
	if _, ok := body[1].(*PrintStatement); !ok {
		t.Fatalf("expected print statement, got %T", body[1])
	}
	if _, ok := body[2].(*VariableDecl); !ok {
		t.Fatalf("expected assignment inside block, got %T", body[2])
	}
}

func TestParseNestedBlocks(t *testing.T) {
	program := parseClean(t, `
while (a) {
  if (b) {
    while (c) { c = 0 }
  } else {
    if (d) { d = 0 }
  }
  a = 0
}
print a`)

	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	outer := program.Statements[0].(*WhileStatement)
	if len(outer.Body.Statements) != 2 {
		t.Fatalf("expected 2 statements in outer loop, got %d", len(outer.Body.Statements))
	}
	inner := outer.Body.Statements[0].(*IfStatement)
	if len(inner.Consequence.Statements) != 1 || len(inner.Alternative.Statements) != 1 {
		t.Fatalf("unexpected branch sizes: %d/%d", len(inner.Consequence.Statements), len(inner.Alternative.Statements))
	}
}

func TestParseEmptyBlocks(t *testing.T) {
	program := parseClean(t, "if (1) {} else {} while (0) {}")
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
}

func TestParseCollectsDiagnosticsInOrder(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   []string
	}{
		{name: "missing_operator_in_print", source: "print 3 4", want: []string{"4"}},
		{name: "missing_operator_after_assignment", source: "x = 1 2", want: []string{"2"}},
		{name: "missing_operator_in_group", source: "x = (a b)", want: []string{"b", ")", ")"}},
		{name: "missing_assignment", source: "x", want: []string{"end of input"}},
		{name: "missing_right_operand", source: "x = 1 +", want: []string{"end of input"}},
		{name: "multiple_errors", source: "x = ) y = 2 z 5", want: []string{")", "5"}},
		{name: "unterminated_block", source: "while (1) { x = 1", want: []string{"end of input"}},
		{name: "unclosed_group", source: "print (1 + 2", want: []string{"end of input"}},
		{name: "missing_condition_paren", source: "if 1 { }", want: []string{"1", "{", "}"}},
		{name: "missing_block", source: "while (1) print 1", want: []string{"print"}},
		{name: "else_without_block", source: "if (1) { } else print 1", want: []string{"print"}},
		{name: "stray_brace", source: "} print 1", want: []string{"}"}},
		{name: "stray_else", source: "else", want: []string{"else"}},
		{name: "integer_overflow", source: "x = 99999999999999999999", want: []string{"99999999999999999999"}},
		{name: "trailing_comma", source: "print 1,", want: []string{"end of input"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseDiagnostics(t, tc.source)
			if len(got) != len(tc.want) {
				t.Fatalf("expected diagnostics %q, got %q", tc.want, got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("diagnostic %d: expected %q, got %q", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestParseRecoversInsideBlock(t *testing.T) {
	p := newParser("if (1) { y = } print 2")
	program, diags, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("unexpected lexical error: %v", err)
	}
	if len(diags) != 1 || diags[0].Lexeme != "}" {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(program.Statements) != 2 {
		t.Fatalf("expected if and print to survive, got %d statements", len(program.Statements))
	}
	ifStmt := program.Statements[0].(*IfStatement)
	if len(ifStmt.Consequence.Statements) != 0 {
		t.Fatalf("failed statement should contribute no node")
	}
	if _, ok := program.Statements[1].(*PrintStatement); !ok {
		t.Fatalf("expected print after recovery, got %T", program.Statements[1])
	}
}

func TestCompileErrorMessage(t *testing.T) {
	_, err := Parse("x = ) y = 2 z 5")
	if err == nil {
		t.Fatalf("expected compile error")
	}
	want := "Syntax error, didn't expect )\nSyntax error, didn't expect 5"
	if err.Error() != want {
		t.Fatalf("unexpected message:\n%s", err.Error())
	}
}

func TestParseLexicalFaultWinsOverDiagnostics(t *testing.T) {
	_, err := Parse("print 3 4 x = $")
	var lexErr *LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected lexical error, got %v", err)
	}
	if lexErr.Char != '$' {
		t.Fatalf("unexpected fault character %q", lexErr.Char)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	source := `val = 104
while (val > 1) {
  if (val % 2 == 0) { next = val / 2 } else { next = 3 * val + 1 }
  print val, next
  val = next
}`
	first, err := DumpAST(parseClean(t, source))
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	second, err := DumpAST(parseClean(t, source))
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("parses differ:\n%s\n---\n%s", first, second)
	}
}
