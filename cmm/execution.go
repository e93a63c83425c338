package cmm

import (
	"fmt"
	"io"
)

// Execution holds the state of one evaluation run. It owns its Env for the
// duration of the run.
type Execution struct {
	env       *Env
	out       io.Writer
	separator string
	quota     int
	steps     int
}

func newExecution(cfg Config, env *Env) *Execution {
	return &Execution{
		env:       env,
		out:       cfg.Stdout,
		separator: cfg.PrintSeparator,
		quota:     cfg.StepQuota,
	}
}

func (exec *Execution) step() error {
	exec.steps++
	if exec.quota > 0 && exec.steps > exec.quota {
		return newRuntimeError(ErrStepQuotaExceeded, "step quota exceeded (%d)", exec.quota)
	}
	return nil
}

// evalProgram returns the value of the last statement. The boolean is false
// when that statement produces no value or the program is empty.
func (exec *Execution) evalProgram(program *Program) (Value, bool, error) {
	return exec.evalStatements(program.Statements)
}

func (exec *Execution) evalStatements(stmts []Statement) (Value, bool, error) {
	var (
		result Value
		has    bool
	)
	for _, stmt := range stmts {
		if err := exec.step(); err != nil {
			return Value{}, false, err
		}
		val, ok, err := exec.evalStatement(stmt)
		if err != nil {
			return Value{}, false, err
		}
		result, has = val, ok
	}
	return result, has, nil
}

func (exec *Execution) evalStatement(stmt Statement) (Value, bool, error) {
	switch s := stmt.(type) {
	case *ExpressionStatement:
		val, err := exec.evalExpression(s.Expr)
		if err != nil {
			return Value{}, false, err
		}
		return val, true, nil
	case *VariableDecl:
		val, err := exec.evalExpression(s.Value)
		if err != nil {
			return Value{}, false, err
		}
		exec.env.Set(s.Name.Name, val)
		return val, true, nil
	case *BlockStatement:
		return exec.evalStatements(s.Statements)
	case *IfStatement:
		return exec.evalIfStatement(s)
	case *WhileStatement:
		return exec.evalWhileStatement(s)
	case *PrintStatement:
		return exec.evalPrintStatement(s)
	default:
		return Value{}, false, fmt.Errorf("unsupported statement %T", stmt)
	}
}

// evalIfStatement runs a branch only for conditions of exactly 1 or 0.
// Any other value runs nothing.
func (exec *Execution) evalIfStatement(stmt *IfStatement) (Value, bool, error) {
	condition, err := exec.evalExpression(stmt.Condition)
	if err != nil {
		return Value{}, false, err
	}
	switch {
	case condition.IsTrue():
		return exec.evalStatements(stmt.Consequence.Statements)
	case condition.IsFalse() && stmt.Alternative != nil:
		return exec.evalStatements(stmt.Alternative.Statements)
	default:
		return Value{}, false, nil
	}
}

func (exec *Execution) evalWhileStatement(stmt *WhileStatement) (Value, bool, error) {
	for {
		if err := exec.step(); err != nil {
			return Value{}, false, err
		}
		condition, err := exec.evalExpression(stmt.Condition)
		if err != nil {
			return Value{}, false, err
		}
		if !condition.IsTrue() {
			return Value{}, false, nil
		}
		if _, _, err := exec.evalStatements(stmt.Body.Statements); err != nil {
			return Value{}, false, err
		}
	}
}

func (exec *Execution) evalPrintStatement(stmt *PrintStatement) (Value, bool, error) {
	for _, arg := range stmt.Args {
		val, err := exec.evalExpression(arg)
		if err != nil {
			return Value{}, false, err
		}
		if _, err := io.WriteString(exec.out, val.String()+exec.separator); err != nil {
			return Value{}, false, fmt.Errorf("print: %w", err)
		}
	}
	return Value{}, false, nil
}

func (exec *Execution) evalExpression(expr Expression) (Value, error) {
	switch e := expr.(type) {
	case *IntegerLiteral:
		return NewInt(e.Value), nil
	case *Identifier:
		val, ok := exec.env.Get(e.Name)
		if !ok {
			return Value{}, newRuntimeError(ErrUnknownIdentifier, "unknown identifier %s", e.Name)
		}
		return val, nil
	case *InfixExpression:
		left, err := exec.evalExpression(e.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := exec.evalExpression(e.Right)
		if err != nil {
			return Value{}, err
		}
		return applyOperator(e.Operator, left, right)
	default:
		return Value{}, fmt.Errorf("unsupported expression %T", expr)
	}
}
