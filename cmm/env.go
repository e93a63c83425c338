package cmm

import (
	"maps"
	"slices"
)

// Env is the single flat namespace of a run. Blocks do not open scopes, so
// an assignment anywhere binds here. Entries are overwritten, never removed.
type Env struct {
	values map[string]Value
}

func NewEnv() *Env {
	return &Env{values: make(map[string]Value)}
}

func (e *Env) Get(name string) (Value, bool) {
	val, ok := e.values[name]
	return val, ok
}

func (e *Env) Set(name string, val Value) {
	e.values[name] = val
}

func (e *Env) Len() int {
	return len(e.values)
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.values))
}
