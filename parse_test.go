package minirs

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "fn main(){}",
			want:  "fn main() { }",
		},
		{
			input: "fn main(){let s = 2;}",
			want:  "fn main() { let s = 2; }",
		},
		{
			input: "fn main(name: int){let s = 1 + 2;}",
			want:  "fn main(name: int) { let s = 1 + 2; }",
		},
		{
			input: "fn main(a:int, b:int){let s=3;s--;}",
			want:  "fn main(a: int, b: int) { let s = 3; s--; }",
		},
		{
			input: "fn main(){let s = 2; s++;}",
			want:  "fn main() { let s = 2; s; }",
		},
		{
			input: "fn main(){let s = -2; let t = +s;}",
			want:  "fn main() { let s = -2; let t = s; }",
		},
		{
			input: "fn main(){\n  let s = 3*2;\n  let t = 6/2;\n}",
			want:  "fn main() { let s = 3 * 2; let t = 6 / 2; }",
		},
		{
			input: "// leading comment\nfn main(){ // trailing\n let s = 1; }",
			want:  "fn main() { let s = 1; }",
		},
		{
			input: "fn foo(name:int){let p=2;} fn main(){let s=2;} fn bar(){}",
			want:  "fn main() { let s = 2; } fn foo(name: int) { let p = 2; } fn bar() { }",
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		prog, err := Parse(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		got, err := prog.Render()
		if err != nil {
			t.Error(err)
			continue
		}
		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	prog, err := Parse("fn main(){let s = 1 + 2 * 3 - 4 / 2;}")
	if err != nil {
		t.Fatal(err)
	}
	want := &Binary{
		Left: &Binary{
			Left:  &Literal{Value: 1},
			Op:    OpAdd,
			Right: &Binary{Left: &Literal{Value: 2}, Op: OpMul, Right: &Literal{Value: 3}},
		},
		Op:    OpSub,
		Right: &Binary{Left: &Literal{Value: 4}, Op: OpDiv, Right: &Literal{Value: 2}},
	}
	if diff := cmp.Diff(Expr(want), prog[0].Vars[0].Init); diff != "" {
		t.Error(diff)
	}
}

func TestParseMutation(t *testing.T) {
	prog, err := Parse("fn main(){x--;}")
	if err != nil {
		t.Fatal(err)
	}
	want := []Expr{
		&Binary{Left: &Reference{Name: "x"}, Op: OpDecr, Right: &Literal{Value: 1}},
	}
	if diff := cmp.Diff(want, prog[0].Exprs); diff != "" {
		t.Error(diff)
	}
}

func TestParseMissingEntryPoint(t *testing.T) {
	for _, input := range []string{
		"",
		"   \n ",
		"fn foo(){let s = 2;}",
		"fn foo(){} fn bar(){}",
	} {
		_, err := Parse(input)
		if !errors.Is(err, ErrMissingEntryPoint) {
			t.Errorf("want ErrMissingEntryPoint for %q but got %v", input, err)
		}
	}
}

func TestParseSyntaxError(t *testing.T) {
	tests := []struct {
		input string
		msg   string
		pos   int
	}{
		{input: "let s = 2;", msg: "expected 'fn' but got 'let'", pos: 0},
		{input: "fn main(){let s = 2}", msg: "expected ';' but got '}'", pos: 19},
		{input: "fn main(){let s = 2;", msg: "expected '}' but got end of file", pos: 20},
		{input: "fn main({}", msg: "expected identifier but got '{'", pos: 8},
		{input: "fn main(a){}", msg: "expected ':' but got ')'", pos: 9},
		{input: "fn main(){let s = 2 $ 3;}", msg: "invalid token: '$'", pos: 20},
		{input: "fn main(){let s = 2++;}", msg: "operand of ++ must be a variable", pos: 18},
		{input: "fn main(){let let = 2;}", msg: "expected identifier but got 'let'", pos: 14},
		{input: "fn main(){let s = (1 + 2;}", msg: "expected ')' but got ';'", pos: 24},
		{input: "fn main(){let s = 99999999999999999999;}", msg: "invalid integer literal: 99999999999999999999", pos: 18},
		{input: "fn main(){} fn main(){}", msg: "duplicate function main", pos: 12},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("want SyntaxError for %q but got %v", test.input, err)
			continue
		}
		if se.Msg != test.msg || se.Pos != test.pos {
			t.Errorf("want %q at %d for %q but got %q at %d", test.msg, test.pos, test.input, se.Msg, se.Pos)
		}
	}
}

func TestParseMainFirst(t *testing.T) {
	a, err := Parse(" fn main(){let s=2;} fn foo(name:int){let p=2;}")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("fn foo(name:int){let p=2;} fn main(){let s=2;} ")
	if err != nil {
		t.Fatal(err)
	}
	if a[0].Name != "main" || b[0].Name != "main" {
		t.Fatalf("main is not first: %q, %q", a[0].Name, b[0].Name)
	}
	if !Equal(a, b) {
		t.Error(cmp.Diff(a, b))
	}
}

func TestParseKeepsOrderOfOthers(t *testing.T) {
	prog, err := Parse("fn c(){} fn a(){} fn main(){} fn b(){}")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range prog {
		names = append(names, f.Name)
	}
	if got := strings.Join(names, ","); got != "main,c,a,b" {
		t.Errorf("want %q but got %q", "main,c,a,b", got)
	}
}

func TestParseIdempotent(t *testing.T) {
	src := "fn foo(x:int){let p = x * 2; p++;} fn main(){let s = -1 + 2 * 3; s--;}"
	a, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Error(diff)
	}
	ra, _ := a.Render()
	rb, _ := b.Render()
	if ra != rb {
		t.Errorf("renderings differ: %q != %q", ra, rb)
	}
}
