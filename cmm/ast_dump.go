package cmm

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// astDumpNode is the serialized shape of a node. Only the fields relevant to
// the node kind are set.
type astDumpNode struct {
	Kind      string         `yaml:"kind"`
	Name      string         `yaml:"name,omitempty"`
	Int       *int64         `yaml:"int,omitempty"`
	Operator  string         `yaml:"operator,omitempty"`
	Left      *astDumpNode   `yaml:"left,omitempty"`
	Right     *astDumpNode   `yaml:"right,omitempty"`
	Expr      *astDumpNode   `yaml:"expr,omitempty"`
	Condition *astDumpNode   `yaml:"condition,omitempty"`
	Then      *astDumpNode   `yaml:"then,omitempty"`
	Else      *astDumpNode   `yaml:"else,omitempty"`
	Body      []*astDumpNode `yaml:"body,omitempty"`
	Args      []*astDumpNode `yaml:"args,omitempty"`
}

// DumpAST serializes program as YAML. Two structurally identical programs
// produce byte-identical dumps.
func DumpAST(program *Program) ([]byte, error) {
	root := &astDumpNode{Kind: "Program", Body: dumpStatements(program.Statements)}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("ast dump: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("ast dump: encoder close: %w", err)
	}
	return buf.Bytes(), nil
}

func dumpStatements(stmts []Statement) []*astDumpNode {
	out := make([]*astDumpNode, 0, len(stmts))
	for _, stmt := range stmts {
		out = append(out, dumpStatement(stmt))
	}
	return out
}

func dumpBlock(block *BlockStatement) *astDumpNode {
	if block == nil {
		return nil
	}
	return &astDumpNode{Kind: "Block", Body: dumpStatements(block.Statements)}
}

func dumpStatement(stmt Statement) *astDumpNode {
	switch s := stmt.(type) {
	case *ExpressionStatement:
		return &astDumpNode{Kind: "ExpressionStatement", Expr: dumpExpression(s.Expr)}
	case *VariableDecl:
		return &astDumpNode{Kind: "VariableDecl", Name: s.Name.Name, Expr: dumpExpression(s.Value)}
	case *BlockStatement:
		return dumpBlock(s)
	case *IfStatement:
		return &astDumpNode{
			Kind:      "IfStatement",
			Condition: dumpExpression(s.Condition),
			Then:      dumpBlock(s.Consequence),
			Else:      dumpBlock(s.Alternative),
		}
	case *WhileStatement:
		return &astDumpNode{Kind: "WhileStatement", Condition: dumpExpression(s.Condition), Then: dumpBlock(s.Body)}
	case *PrintStatement:
		args := make([]*astDumpNode, len(s.Args))
		for i, arg := range s.Args {
			args[i] = dumpExpression(arg)
		}
		return &astDumpNode{Kind: "PrintStatement", Args: args}
	default:
		return &astDumpNode{Kind: fmt.Sprintf("%T", stmt)}
	}
}

func dumpExpression(expr Expression) *astDumpNode {
	switch e := expr.(type) {
	case *Identifier:
		return &astDumpNode{Kind: "Identifier", Name: e.Name}
	case *IntegerLiteral:
		value := e.Value
		return &astDumpNode{Kind: "IntegerLiteral", Int: &value}
	case *InfixExpression:
		return &astDumpNode{
			Kind:     "InfixExpression",
			Operator: e.Operator,
			Left:     dumpExpression(e.Left),
			Right:    dumpExpression(e.Right),
		}
	default:
		return &astDumpNode{Kind: fmt.Sprintf("%T", expr)}
	}
}
