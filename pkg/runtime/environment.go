package runtime

import "sort"

// Environment maps names to values. Frames chain to a parent; lookups search
// outward while writes always target the receiving frame.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the enclosing frame (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Declare introduces name in this frame with no value, replacing any
// existing binding.
func (e *Environment) Declare(name string) {
	e.values[name] = VoidValue{}
}

// Bind sets name to value in this frame unconditionally.
func (e *Environment) Bind(name string, value Value) {
	e.values[name] = value
}

// Lookup retrieves a binding, searching outward through the frame chain. The
// boolean is false when the name was never declared.
func (e *Environment) Lookup(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Keys returns the names declared or bound in this frame, sorted.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extend creates a child frame of the current environment.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}
