package minirs

import (
	"fmt"
)

// Evaluator runs programs against a Memory. References are resolved and
// re-evaluated on every use.
type Evaluator struct {
	mem *Memory

	// names whose bound expression is being evaluated
	resolving map[string]bool
}

func NewEvaluator(mem *Memory) *Evaluator {
	return &Evaluator{
		mem:       mem,
		resolving: make(map[string]bool),
	}
}

func (ev *Evaluator) Memory() *Memory {
	return ev.mem
}

// Execute runs the declarations and then the statements of every function in
// order. The first error stops the run.
func (ev *Evaluator) Execute(prog Program) (int, error) {
	for _, f := range prog {
		if err := ev.execFunction(f); err != nil {
			return 1, err
		}
	}
	if entry := prog.Main(); entry != nil {
		return entry.Status, nil
	}
	return 0, nil
}

func (ev *Evaluator) execFunction(f *Function) error {
	for _, v := range f.Vars {
		if _, err := ev.Eval(v.Init); err != nil {
			return err
		}
		ev.mem.Bind(v.Name, v.Init)
	}
	for _, e := range f.Exprs {
		if _, err := ev.Eval(e); err != nil {
			return err
		}
	}
	return nil
}

// Value evaluates the expression currently bound to name.
func (ev *Evaluator) Value(name string) (int64, error) {
	return ev.Eval(&Reference{Name: name})
}

func (ev *Evaluator) Eval(e Expr) (int64, error) {
	switch e := e.(type) {
	case *Literal:
		return e.Value, nil
	case *Reference:
		return ev.evalReference(e.Name)
	case *Unary:
		switch e.Op {
		case OpAdd, OpSub:
		default:
			return 0, &OperatorError{Op: e.Op, Unary: true}
		}
		v, err := ev.Eval(e.Operand)
		if err != nil {
			return 0, err
		}
		if e.Op == OpSub {
			return -v, nil
		}
		return v, nil
	case *Binary:
		return ev.evalBinary(e)
	}
	return 0, fmt.Errorf("unknown expression: %T", e)
}

func (ev *Evaluator) evalReference(name string) (int64, error) {
	if ev.resolving[name] {
		return 0, fmt.Errorf("%w: %s", ErrCyclicReference, name)
	}
	bound, err := ev.mem.Resolve(name)
	if err != nil {
		return 0, err
	}
	ev.resolving[name] = true
	defer delete(ev.resolving, name)
	return ev.Eval(bound)
}

func (ev *Evaluator) evalBinary(e *Binary) (int64, error) {
	switch e.Op {
	case OpIncr, OpDecr:
		return ev.mutate(e)
	case OpAdd, OpSub, OpMul, OpDiv:
	default:
		return 0, &OperatorError{Op: e.Op}
	}

	lhs, err := ev.Eval(e.Left)
	if err != nil {
		return 0, err
	}
	rhs, err := ev.Eval(e.Right)
	if err != nil {
		return 0, err
	}
	switch e.Op {
	case OpAdd:
		return lhs + rhs, nil
	case OpSub:
		return lhs - rhs, nil
	case OpMul:
		return lhs * rhs, nil
	}
	if rhs == 0 {
		return 0, ErrDivisionByZero
	}
	return lhs / rhs, nil
}

// mutate applies ++ or -- and yields the value held before the update.
func (ev *Evaluator) mutate(e *Binary) (int64, error) {
	ref, ok := e.Left.(*Reference)
	if !ok {
		return 0, ErrInvalidTarget
	}
	v, err := ev.evalReference(ref.Name)
	if err != nil {
		return 0, err
	}
	if e.Op == OpIncr {
		ev.mem.Bind(ref.Name, &Literal{Value: v + 1})
	} else {
		ev.mem.Bind(ref.Name, &Literal{Value: v - 1})
	}
	return v, nil
}
