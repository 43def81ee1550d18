package minirs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of file"
	}
	return "'" + t.text + "'"
}

var keywords = map[string]bool{
	"fn":  true,
	"let": true,
}

func NewParser(r io.Reader) *Parser {
	return &Parser{
		buf: bufio.NewReader(r),
	}
}

type Parser struct {
	buf  *bufio.Reader
	pos  int
	last int
	tok  token
}

// Parse parses src and returns its functions with main first.
func Parse(src string) (Program, error) {
	return NewParser(strings.NewReader(src)).Parse()
}

func (p *Parser) Pos() int {
	return p.pos
}

func (p *Parser) readRune() (rune, error) {
	r, n, err := p.buf.ReadRune()
	p.pos += n
	p.last = n
	return r, err
}

func (p *Parser) unreadRune() error {
	err := p.buf.UnreadRune()
	if err == nil {
		p.pos -= p.last
	}
	return err
}

// SkipWhite skips white space and // comments.
func (p *Parser) SkipWhite() {
	for {
		b, _ := p.buf.Peek(2)
		if len(b) == 2 && b[0] == '/' && b[1] == '/' {
			for {
				r, err := p.readRune()
				if err != nil {
					return
				}
				if r == '\n' {
					break
				}
			}
			continue
		}
		r, err := p.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			p.unreadRune()
			return
		}
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (p *Parser) readWhile(first rune, f func(rune) bool) (string, error) {
	var buf strings.Builder
	buf.WriteRune(first)
	for {
		r, err := p.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if !f(r) {
			p.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return buf.String(), nil
}

func (p *Parser) scan() (token, error) {
	p.SkipWhite()
	pos := p.pos
	r, err := p.readRune()
	if err == io.EOF {
		return token{kind: tokEOF, pos: pos}, nil
	}
	if err != nil {
		return token{}, err
	}

	switch {
	case r == '_' || unicode.IsLetter(r):
		s, err := p.readWhile(r, isIdentLetter)
		return token{kind: tokIdent, text: s, pos: pos}, err
	case isDigit(r):
		s, err := p.readWhile(r, isDigit)
		return token{kind: tokInt, text: s, pos: pos}, err
	case r == '+' || r == '-':
		r2, err := p.readRune()
		if err == nil {
			if r2 == r {
				return token{kind: tokPunct, text: string([]rune{r, r}), pos: pos}, nil
			}
			p.unreadRune()
		} else if err != io.EOF {
			return token{}, err
		}
		return token{kind: tokPunct, text: string(r), pos: pos}, nil
	case strings.ContainsRune("*/(){},:;=", r):
		return token{kind: tokPunct, text: string(r), pos: pos}, nil
	}
	return token{}, &SyntaxError{Msg: fmt.Sprintf("invalid token: '%c'", r), Pos: pos}
}

func (p *Parser) next() error {
	t, err := p.scan()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: p.tok.pos}
}

func (p *Parser) is(punct string) bool {
	return p.tok.kind == tokPunct && p.tok.text == punct
}

func (p *Parser) isKeyword(kw string) bool {
	return p.tok.kind == tokIdent && p.tok.text == kw
}

func (p *Parser) expect(punct string) error {
	if !p.is(punct) {
		return p.errorf("expected '%s' but got %v", punct, p.tok)
	}
	return p.next()
}

func (p *Parser) ident() (string, error) {
	if p.tok.kind != tokIdent || keywords[p.tok.text] {
		return "", p.errorf("expected identifier but got %v", p.tok)
	}
	name := p.tok.text
	return name, p.next()
}

func (p *Parser) Parse() (Program, error) {
	if err := p.next(); err != nil {
		return nil, err
	}

	var prog Program
	var entry *Function
	for p.tok.kind != tokEOF {
		if !p.isKeyword("fn") {
			return nil, p.errorf("expected 'fn' but got %v", p.tok)
		}
		pos := p.tok.pos
		f, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		if f.Name == "main" {
			if entry != nil {
				return nil, &SyntaxError{Msg: "duplicate function main", Pos: pos}
			}
			entry = f
			continue
		}
		prog = append(prog, f)
	}
	if entry == nil {
		return nil, ErrMissingEntryPoint
	}
	return append(Program{entry}, prog...), nil
}

func (p *Parser) parseFunction() (*Function, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	f := &Function{Name: name}

	if err := p.expect("("); err != nil {
		return nil, err
	}
	for !p.is(")") {
		if len(f.Params) > 0 {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
		var param Param
		if param.Name, err = p.ident(); err != nil {
			return nil, err
		}
		if err := p.expect(":"); err != nil {
			return nil, err
		}
		if param.Type, err = p.ident(); err != nil {
			return nil, err
		}
		f.Params = append(f.Params, param)
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}

	if err := p.expect("{"); err != nil {
		return nil, err
	}
	for !p.is("}") {
		if p.tok.kind == tokEOF {
			return nil, p.errorf("expected '}' but got %v", p.tok)
		}
		if p.isKeyword("let") {
			v, err := p.parseVar()
			if err != nil {
				return nil, err
			}
			f.Vars = append(f.Vars, v)
			continue
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(";"); err != nil {
			return nil, err
		}
		f.Exprs = append(f.Exprs, e)
	}
	return f, p.next()
}

func (p *Parser) parseVar() (*Var, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if err := p.expect("="); err != nil {
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return &Var{Name: name, Init: e}, nil
}

// parseExpr handles + and -; parseTerm handles * and /. Both associate to
// the left.
func (p *Parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.is("+") || p.is("-") {
		op := OpAdd
		if p.is("-") {
			op = OpSub
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.is("*") || p.is("/") {
		op := OpMul
		if p.is("/") {
			op = OpDiv
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (Expr, error) {
	if !p.is("+") && !p.is("-") {
		return p.parsePostfix()
	}
	op := OpAdd
	if p.is("-") {
		op = OpSub
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	e, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	return &Unary{Operand: e, Op: op}, nil
}

func (p *Parser) parsePostfix() (Expr, error) {
	pos := p.tok.pos
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.is("++") && !p.is("--") {
		return e, nil
	}
	op := OpIncr
	if p.is("--") {
		op = OpDecr
	}
	if _, ok := e.(*Reference); !ok {
		return nil, &SyntaxError{Msg: fmt.Sprintf("operand of %v must be a variable", op), Pos: pos}
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return &Binary{Left: e, Op: op, Right: &Literal{Value: 1}}, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	switch {
	case p.tok.kind == tokInt:
		n, err := strconv.ParseInt(p.tok.text, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid integer literal: %s", p.tok.text)
		}
		return &Literal{Value: n}, p.next()
	case p.tok.kind == tokIdent && !keywords[p.tok.text]:
		name := p.tok.text
		return &Reference{Name: name}, p.next()
	case p.is("("):
		if err := p.next(); err != nil {
			return nil, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return e, p.expect(")")
	}
	return nil, p.errorf("unexpected %v", p.tok)
}
