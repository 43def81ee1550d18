package minirs

import (
	"sort"
)

// Memory maps variable names to the expression currently bound to them.
// Expressions are stored unevaluated.
type Memory struct {
	vars map[string]Expr
}

func NewMemory() *Memory {
	return &Memory{
		vars: make(map[string]Expr),
	}
}

func (m *Memory) Bind(name string, e Expr) {
	m.vars[name] = e
}

func (m *Memory) Resolve(name string) (Expr, error) {
	e, ok := m.vars[name]
	if !ok {
		return nil, &LookupError{Name: name}
	}
	return e, nil
}

func (m *Memory) Len() int {
	return len(m.vars)
}

func (m *Memory) Names() []string {
	names := make([]string, 0, len(m.vars))
	for name := range m.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
