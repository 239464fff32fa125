package syntax

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SyntaxError is the only error the parser reports. Parsing stops at the
// first one; no partial tree is returned alongside it.
type SyntaxError struct {
	Pos   Pos
	Msg   string
	Found Token // token under the cursor when parsing failed
}

func (e *SyntaxError) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}
	return e.Pos.String() + ": " + e.Msg
}

// IsIncomplete reports whether err is a SyntaxError raised because the input
// ended in the middle of a construct.
func IsIncomplete(err error) bool {
	var serr *SyntaxError
	return errors.As(err, &serr) && serr.Found.Kind == EndOfInput
}

// Parser turns a token stream into AST nodes. A Parser owns its cursor and
// must not be shared between goroutines.
type Parser struct {
	lex Lexer
	tok Token // token under the cursor

	depth    int // current expression nesting
	maxDepth int // 0 means unlimited
}

// NewParser creates a Parser reading from lex and primes the cursor with the
// first token.
func NewParser(lex Lexer) *Parser {
	p := &Parser{lex: lex}
	p.Advance()
	return p
}

// An Option configures ParseFile.
type Option func(*Parser)

// MaxDepth limits expression nesting, as SetMaxDepth does.
func MaxDepth(n int) Option {
	return func(p *Parser) { p.SetMaxDepth(n) }
}

// ParseFile parses a whole source file.
func ParseFile(filename string, src io.Reader, opts ...Option) (*File, error) {
	var lexErr error
	errh := func(pos Pos, msg string) {
		if lexErr == nil {
			lexErr = &SyntaxError{Pos: pos, Msg: msg, Found: Token{Kind: Illegal, Pos: pos}}
		}
	}
	p := NewParser(NewScanner(filename, src, errh))
	for _, opt := range opts {
		opt(p)
	}
	f, err := p.Parse()
	if lexErr != nil {
		// The scanner saw the problem first; its message is more precise.
		return nil, lexErr
	}
	return f, err
}

// ParseString parses src as an unnamed source file.
func ParseString(src string, opts ...Option) (*File, error) {
	return ParseFile("", strings.NewReader(src), opts...)
}

// SetMaxDepth limits expression nesting; n <= 0 removes the limit.
func (p *Parser) SetMaxDepth(n int) {
	if n < 0 {
		n = 0
	}
	p.maxDepth = n
}

// ----------------------------------------------------------------------------
// Token cursor

// Current returns the token under the cursor without consuming it.
func (p *Parser) Current() Token {
	return p.tok
}

// Advance pulls the next token from the lexer, makes it current and
// returns it.
func (p *Parser) Advance() Token {
	p.tok = p.lex.Next()
	return p.tok
}

// got consumes the current token if it has kind k.
func (p *Parser) got(k Kind) bool {
	if p.tok.Kind == k {
		p.Advance()
		return true
	}
	return false
}

// want consumes a token of kind k or fails naming k and the context.
func (p *Parser) want(k Kind, context string) error {
	if !p.got(k) {
		return p.errorf("expected %s %s, found %s", k.Quote(), context, p.tok)
	}
	return nil
}

// ident consumes an identifier and returns its text.
func (p *Parser) ident(context string) (string, error) {
	if p.tok.Kind != Identifier {
		return "", p.errorf("expected identifier %s, found %s", context, p.tok)
	}
	name := p.tok.Text
	p.Advance()
	return name, nil
}

// errorf builds a SyntaxError at the current token.
func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{Pos: p.tok.Pos, Msg: fmt.Sprintf(format, args...), Found: p.tok}
}

// ----------------------------------------------------------------------------
// Top level

// Parse parses top-level constructs until end of input. Semicolons between
// constructs are skipped.
func (p *Parser) Parse() (*File, error) {
	f := &File{}
	f.pos = p.tok.Pos

	for {
		switch p.tok.Kind {
		case EndOfInput:
			return f, nil
		case Semicolon:
			p.Advance()
			continue
		}

		d, err := p.ParseDecl()
		if err != nil {
			return nil, err
		}
		f.Decls = append(f.Decls, d)
	}
}

// ParseDecl parses one top-level construct: a definition, an extern, or an
// expression wrapped as an anonymous function.
func (p *Parser) ParseDecl() (Decl, error) {
	switch p.tok.Kind {
	case Def:
		return p.ParseDefinition()
	case Extern:
		return p.ParseExtern()
	default:
		return p.ParseTopLevelExpr()
	}
}

// ParseDefinition parses: def prototype expr
func (p *Parser) ParseDefinition() (*Function, error) {
	pos := p.tok.Pos
	if err := p.want(Def, "to start a definition"); err != nil {
		return nil, err
	}

	proto, err := p.prototype()
	if err != nil {
		return nil, err
	}

	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	fn := &Function{Proto: proto, Body: body}
	fn.pos = pos
	return fn, nil
}

// ParseExtern parses: extern prototype
func (p *Parser) ParseExtern() (*Prototype, error) {
	if err := p.want(Extern, "to start an extern declaration"); err != nil {
		return nil, err
	}
	return p.prototype()
}

// ParseTopLevelExpr parses an expression and wraps it in an anonymous,
// parameterless function.
func (p *Parser) ParseTopLevelExpr() (*Function, error) {
	pos := p.tok.Pos

	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	proto := &Prototype{Name: AnonExprName}
	proto.pos = pos
	fn := &Function{Proto: proto, Body: body}
	fn.pos = pos
	return fn, nil
}

// prototype parses: name ( param* )
// Parameters are juxtaposed identifiers, not comma-separated.
func (p *Parser) prototype() (*Prototype, error) {
	proto := &Prototype{}
	proto.pos = p.tok.Pos

	name, err := p.ident("for function name in prototype")
	if err != nil {
		return nil, err
	}
	proto.Name = name

	if err := p.want(LParen, "in prototype"); err != nil {
		return nil, err
	}
	for p.tok.Kind == Identifier {
		proto.Params = append(proto.Params, p.tok.Text)
		p.Advance()
	}
	if err := p.want(RParen, "in prototype"); err != nil {
		return nil, err
	}

	return proto, nil
}

// ----------------------------------------------------------------------------
// Expressions

// ParseExpression parses a full expression: a primary followed by any chain
// of binary operators.
func (p *Parser) ParseExpression() (Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return nil, p.errorf("expression nested deeper than %d levels", p.maxDepth)
	}

	lhs, err := p.primary()
	if err != nil {
		return nil, err
	}
	return p.ParseBinOpRHS(0, lhs)
}

// ParseBinOpRHS parses the operator/operand pairs following lhs whose
// operators bind at least as tightly as minPrec (precedence climbing).
// Non-operators have precedence -1 and end the chain.
func (p *Parser) ParseBinOpRHS(minPrec int, lhs Expr) (Expr, error) {
	for {
		prec := p.tok.Kind.Precedence()
		if prec < minPrec || prec < 0 {
			return lhs, nil
		}

		op := p.tok
		p.Advance()

		rhs, err := p.primary()
		if err != nil {
			return nil, err
		}

		// If the next operator binds tighter, it takes rhs as its lhs.
		if next := p.tok.Kind.Precedence(); prec < next {
			if rhs, err = p.ParseBinOpRHS(prec+1, rhs); err != nil {
				return nil, err
			}
		}

		bin := &BinaryExpr{Op: op.Kind, X: lhs, Y: rhs}
		bin.pos = lhs.Pos()
		lhs = bin
	}
}

// primary dispatches on the leading token.
func (p *Parser) primary() (Expr, error) {
	switch p.tok.Kind {
	case Identifier:
		return p.identOrCall()
	case Number:
		return p.number()
	case LParen:
		return p.paren()
	case If:
		return p.ifExpr()
	case For:
		return p.forExpr()
	case Var:
		return p.varExpr()
	case LBrace:
		return p.block()
	default:
		return nil, p.errorf("unexpected %s when expecting an expression", p.tok)
	}
}

// number parses a numeric literal.
func (p *Parser) number() (Expr, error) {
	v, err := strconv.ParseFloat(p.tok.Text, 64)
	if err != nil {
		return nil, p.errorf("malformed number literal %q", p.tok.Text)
	}
	n := &NumberExpr{Value: v}
	n.pos = p.tok.Pos
	p.Advance()
	return n, nil
}

// paren parses ( expr ). No node is created for the parentheses.
func (p *Parser) paren() (Expr, error) {
	p.Advance() // (
	x, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.want(RParen, "to close parenthesized expression"); err != nil {
		return nil, err
	}
	return x, nil
}

// identOrCall parses a variable reference or name ( args )
func (p *Parser) identOrCall() (Expr, error) {
	pos := p.tok.Pos
	name := p.tok.Text
	p.Advance()

	if p.tok.Kind != LParen {
		v := &VariableExpr{Name: name}
		v.pos = pos
		return v, nil
	}
	p.Advance() // (

	call := &CallExpr{Callee: name}
	call.pos = pos
	if p.tok.Kind != RParen {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)

			if p.tok.Kind == RParen {
				break
			}
			if p.tok.Kind != Comma {
				return nil, p.errorf("expected ')' or ',' in argument list, found %s", p.tok)
			}
			p.Advance()
		}
	}
	p.Advance() // )

	return call, nil
}

// ifExpr parses: if cond then expr else expr
func (p *Parser) ifExpr() (Expr, error) {
	e := &IfExpr{}
	e.pos = p.tok.Pos
	p.Advance() // if

	var err error
	if e.Cond, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if err := p.want(Then, "in if expression"); err != nil {
		return nil, err
	}
	if e.Then, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if err := p.want(Else, "in if expression"); err != nil {
		return nil, err
	}
	if e.Else, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	return e, nil
}

// forExpr parses: for name = start , end , step in body
// The step clause is mandatory.
func (p *Parser) forExpr() (Expr, error) {
	e := &ForExpr{}
	e.pos = p.tok.Pos
	p.Advance() // for

	var err error
	if e.Var, err = p.ident("after for"); err != nil {
		return nil, err
	}
	if err := p.want(Equal, "after for loop variable"); err != nil {
		return nil, err
	}
	if e.Start, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if err := p.want(Comma, "after for start value"); err != nil {
		return nil, err
	}
	if e.End, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if err := p.want(Comma, "after for end value"); err != nil {
		return nil, err
	}
	if e.Step, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	if err := p.want(In, "after for step value"); err != nil {
		return nil, err
	}
	if e.Body, err = p.ParseExpression(); err != nil {
		return nil, err
	}
	return e, nil
}

// varExpr parses: var name = init (, name = init)*
func (p *Parser) varExpr() (Expr, error) {
	e := &VarExpr{}
	e.pos = p.tok.Pos
	p.Advance() // var

	for {
		b := &Binding{Pos: p.tok.Pos}

		var err error
		if b.Name, err = p.ident("in var binding"); err != nil {
			return nil, err
		}
		if err := p.want(Equal, "after var name"); err != nil {
			return nil, err
		}
		if b.Init, err = p.ParseExpression(); err != nil {
			return nil, err
		}
		e.Bindings = append(e.Bindings, b)

		if !p.got(Comma) {
			return e, nil
		}
	}
}

// block parses: { expr* }
func (p *Parser) block() (Expr, error) {
	b := &BlockExpr{}
	b.pos = p.tok.Pos
	p.Advance() // {

	for p.tok.Kind != RBrace {
		if p.tok.Kind == EndOfInput {
			return nil, p.errorf("expected '}' to close block, found %s", p.tok)
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		b.Exprs = append(b.Exprs, x)
	}
	p.Advance() // }

	return b, nil
}
