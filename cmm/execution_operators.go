package cmm

import "fmt"

// applyOperator combines two already evaluated operands. Arithmetic wraps
// on overflow like the native int64 operators do.
func applyOperator(op string, left, right Value) (Value, error) {
	l, r := left.Int(), right.Int()
	switch op {
	case "+":
		return NewInt(l + r), nil
	case "-":
		return NewInt(l - r), nil
	case "*":
		return NewInt(l * r), nil
	case "/":
		if r == 0 {
			return Value{}, newRuntimeError(ErrDivisionByZero, "division by zero: %d / 0", l)
		}
		return NewInt(l / r), nil
	case "%":
		if r == 0 {
			return Value{}, newRuntimeError(ErrDivisionByZero, "modulo by zero: %d %% 0", l)
		}
		return NewInt(l % r), nil
	case "<":
		return NewBool(l < r), nil
	case ">":
		return NewBool(l > r), nil
	case "<=":
		return NewBool(l <= r), nil
	case ">=":
		return NewBool(l >= r), nil
	case "==":
		return NewBool(l == r), nil
	case "!=":
		return NewBool(l != r), nil
	case "&&":
		return NewBool(left.IsTrue() && right.IsTrue()), nil
	case "||":
		return NewBool(left.IsTrue() || right.IsTrue()), nil
	default:
		return Value{}, fmt.Errorf("unsupported operator %s", op)
	}
}
