package minirs

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/google/go-cmp/cmp"
)

type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpIncr
	OpDecr
	OpComp
)

var opSymbols = map[Operator]string{
	OpAdd:  "+",
	OpSub:  "-",
	OpMul:  "*",
	OpDiv:  "/",
	OpIncr: "++",
	OpDecr: "--",
	OpComp: "!",
}

func (op Operator) String() string {
	if s, ok := opSymbols[op]; ok {
		return s
	}
	return "Operator(" + strconv.Itoa(int(op)) + ")"
}

// Expr is one of *Literal, *Reference, *Unary or *Binary.
type Expr interface {
	expr()
}

type Literal struct {
	Value int64
}

type Reference struct {
	Name string
}

type Unary struct {
	Operand Expr
	Op      Operator
}

// Binary also carries the postfix mutations. For OpIncr and OpDecr only Left
// is meaningful.
type Binary struct {
	Left  Expr
	Op    Operator
	Right Expr
}

func (*Literal) expr()   {}
func (*Reference) expr() {}
func (*Unary) expr()     {}
func (*Binary) expr()    {}

type Var struct {
	Name string
	Init Expr
}

type Param struct {
	Name string
	Type string
}

type Function struct {
	Name   string
	Params []Param
	Vars   []*Var
	Exprs  []Expr
	Status int
}

// Program holds the functions of a source file, entry function first.
type Program []*Function

// Render returns the canonical text of e. Reserved operators yield an
// *OperatorError.
func Render(e Expr) (string, error) {
	var buf bytes.Buffer
	if err := render(&buf, e); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func render(buf *bytes.Buffer, e Expr) error {
	switch e := e.(type) {
	case *Literal:
		buf.WriteString(strconv.FormatInt(e.Value, 10))
	case *Reference:
		buf.WriteString(e.Name)
	case *Unary:
		switch e.Op {
		case OpAdd:
		case OpSub:
			buf.WriteByte('-')
		default:
			return &OperatorError{Op: e.Op, Unary: true}
		}
		return render(buf, e.Operand)
	case *Binary:
		switch e.Op {
		case OpIncr:
			return render(buf, e.Left)
		case OpDecr:
			if err := render(buf, e.Left); err != nil {
				return err
			}
			buf.WriteString("--")
		case OpComp:
			buf.WriteByte('!')
			return render(buf, e.Left)
		case OpAdd, OpSub, OpMul, OpDiv:
			if err := render(buf, e.Left); err != nil {
				return err
			}
			fmt.Fprintf(buf, " %v ", e.Op)
			return render(buf, e.Right)
		default:
			return &OperatorError{Op: e.Op}
		}
	default:
		return fmt.Errorf("unknown expression: %T", e)
	}
	return nil
}

func (v *Var) Render() (string, error) {
	s, err := Render(v.Init)
	if err != nil {
		return "", err
	}
	return "let " + v.Name + " = " + s, nil
}

func (f *Function) Render() (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "fn %s(", f.Name)
	for i, p := range f.Params {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %s", p.Name, p.Type)
	}
	buf.WriteString(") {")
	for _, v := range f.Vars {
		s, err := v.Render()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, " %s;", s)
	}
	for _, e := range f.Exprs {
		s, err := Render(e)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, " %s;", s)
	}
	buf.WriteString(" }")
	return buf.String(), nil
}

func (p Program) Render() (string, error) {
	var buf bytes.Buffer
	for i, f := range p {
		s, err := f.Render()
		if err != nil {
			return "", err
		}
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(s)
	}
	return buf.String(), nil
}

// Main returns the entry function, or nil.
func (p Program) Main() *Function {
	for _, f := range p {
		if f.Name == "main" {
			return f
		}
	}
	return nil
}

// Equal reports whether a and b have the same structure.
func Equal(a, b Program) bool {
	return cmp.Equal(a, b)
}
