package cmm

import "strconv"

// Value is the only runtime value: a signed 64-bit integer. Booleans are
// encoded as 1 and 0.
type Value struct {
	i int64
}

func NewInt(i int64) Value {
	return Value{i: i}
}

func NewBool(b bool) Value {
	if b {
		return Value{i: 1}
	}
	return Value{i: 0}
}

func (v Value) Int() int64 {
	return v.i
}

// IsTrue reports whether v is exactly 1. No other value is true.
func (v Value) IsTrue() bool {
	return v.i == 1
}

// IsFalse reports whether v is exactly 0.
func (v Value) IsFalse() bool {
	return v.i == 0
}

func (v Value) Equal(other Value) bool {
	return v.i == other.i
}

func (v Value) String() string {
	return strconv.FormatInt(v.i, 10)
}
