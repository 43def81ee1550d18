package minirs

import (
	"log"
	"strings"
)

// Interpreter parses and executes programs against its Memory. A zero
// Interpreter gets a fresh Memory on first use; Logger, when set, receives a
// trace of every program run.
type Interpreter struct {
	Memory *Memory
	Logger *log.Logger
}

func NewInterpreter() *Interpreter {
	return &Interpreter{
		Memory: NewMemory(),
	}
}

// Run parses src and executes it with a fresh Memory.
func Run(src string) (int, error) {
	return NewInterpreter().Run(src)
}

func (in *Interpreter) Run(src string) (int, error) {
	prog, err := in.Parse(src)
	if err != nil {
		return 1, err
	}
	return in.Execute(prog)
}

// Parse is like the package level Parse but traces the source and wraps
// failures in *Error.
func (in *Interpreter) Parse(src string) (Program, error) {
	in.tracef("Compiling source:\n  %s", collapse(src))
	prog, err := Parse(src)
	if err != nil {
		return nil, &Error{Err: err}
	}
	return prog, nil
}

func (in *Interpreter) Execute(prog Program) (int, error) {
	if in.Memory == nil {
		in.Memory = NewMemory()
	}
	if in.Logger != nil {
		s, err := prog.Render()
		if err != nil {
			in.tracef("  %v", err)
		} else {
			in.tracef("  %s", s)
		}
	}
	status, err := NewEvaluator(in.Memory).Execute(prog)
	if err != nil {
		return status, &Error{Err: err}
	}
	return status, nil
}

// Value returns the current value of the variable name.
func (in *Interpreter) Value(name string) (int64, error) {
	if in.Memory == nil {
		return 0, &LookupError{Name: name}
	}
	return NewEvaluator(in.Memory).Value(name)
}

func (in *Interpreter) tracef(format string, args ...interface{}) {
	if in.Logger != nil {
		in.Logger.Printf(format, args...)
	}
}

func collapse(src string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(src)
}
