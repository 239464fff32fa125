package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ----------------------------------------------------------------------------
// Compact form

// sexpr renders expressions as s-expressions.
type sexpr struct {
	b strings.Builder
}

func (s *sexpr) expr(e Expr) {
	if e == nil {
		s.b.WriteString("<nil>")
		return
	}
	Accept(e, s)
}

func (s *sexpr) VisitNumber(e *NumberExpr) {
	s.b.WriteString(formatNumber(e.Value))
}

func (s *sexpr) VisitVariable(e *VariableExpr) {
	s.b.WriteString(e.Name)
}

func (s *sexpr) VisitBinary(e *BinaryExpr) {
	fmt.Fprintf(&s.b, "(%s ", e.Op)
	s.expr(e.X)
	s.b.WriteByte(' ')
	s.expr(e.Y)
	s.b.WriteByte(')')
}

func (s *sexpr) VisitCall(e *CallExpr) {
	s.b.WriteString("(call ")
	s.b.WriteString(e.Callee)
	for _, a := range e.Args {
		s.b.WriteByte(' ')
		s.expr(a)
	}
	s.b.WriteByte(')')
}

func (s *sexpr) VisitIf(e *IfExpr) {
	s.list("if", e.Cond, e.Then, e.Else)
}

func (s *sexpr) VisitFor(e *ForExpr) {
	s.b.WriteString("(for ")
	s.b.WriteString(e.Var)
	for _, x := range []Expr{e.Start, e.End, e.Step, e.Body} {
		s.b.WriteByte(' ')
		s.expr(x)
	}
	s.b.WriteByte(')')
}

func (s *sexpr) VisitVar(e *VarExpr) {
	s.b.WriteString("(var")
	for _, b := range e.Bindings {
		fmt.Fprintf(&s.b, " (%s ", b.Name)
		s.expr(b.Init)
		s.b.WriteByte(')')
	}
	s.b.WriteByte(')')
}

func (s *sexpr) VisitBlock(e *BlockExpr) {
	s.list("block", e.Exprs...)
}

func (s *sexpr) list(head string, xs ...Expr) {
	s.b.WriteByte('(')
	s.b.WriteString(head)
	for _, x := range xs {
		s.b.WriteByte(' ')
		s.expr(x)
	}
	s.b.WriteByte(')')
}

func exprString(e Expr) string {
	var s sexpr
	s.expr(e)
	return s.b.String()
}

// formatNumber prints v in the shortest form that reads back exactly.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (e *NumberExpr) String() string   { return exprString(e) }
func (e *VariableExpr) String() string { return exprString(e) }
func (e *BinaryExpr) String() string   { return exprString(e) }
func (e *CallExpr) String() string     { return exprString(e) }
func (e *IfExpr) String() string       { return exprString(e) }
func (e *ForExpr) String() string      { return exprString(e) }
func (e *VarExpr) String() string      { return exprString(e) }
func (e *BlockExpr) String() string    { return exprString(e) }

func (p *Prototype) String() string {
	if len(p.Params) == 0 {
		return "(proto " + p.Name + ")"
	}
	return "(proto " + p.Name + " " + strings.Join(p.Params, " ") + ")"
}

func (f *Function) String() string {
	return "(def " + f.Proto.String() + " " + exprString(f.Body) + ")"
}

func (f *File) String() string {
	lines := make([]string, len(f.Decls))
	for i, d := range f.Decls {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// ----------------------------------------------------------------------------
// Tree form

// Fprint writes an indented tree representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// field prints a labelled child one level deeper.
func (p *printer) field(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		for _, d := range n.Decls {
			p.print(d)
		}
		p.indent--

	case *Function:
		if n.IsAnon() {
			p.printf("TopLevelExpr %s\n", n.pos)
		} else {
			p.printf("Function %s\n", n.pos)
		}
		p.indent++
		p.print(n.Proto)
		p.field("Body", n.Body)
		p.indent--

	case *Prototype:
		p.printf("Prototype %s %s\n", n.pos, n.Name)
		if len(n.Params) > 0 {
			p.indent++
			p.printf("Params: %s\n", strings.Join(n.Params, " "))
			p.indent--
		}

	case *NumberExpr:
		p.printf("Number %s %s\n", n.pos, formatNumber(n.Value))

	case *VariableExpr:
		p.printf("Variable %s %q\n", n.pos, n.Name)

	case *BinaryExpr:
		p.printf("Binary %s %s\n", n.pos, n.Op)
		p.indent++
		p.field("X", n.X)
		p.field("Y", n.Y)
		p.indent--

	case *CallExpr:
		p.printf("Call %s %q\n", n.pos, n.Callee)
		if len(n.Args) > 0 {
			p.indent++
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
			p.indent--
		}

	case *IfExpr:
		p.printf("If %s\n", n.pos)
		p.indent++
		p.field("Cond", n.Cond)
		p.field("Then", n.Then)
		p.field("Else", n.Else)
		p.indent--

	case *ForExpr:
		p.printf("For %s %q\n", n.pos, n.Var)
		p.indent++
		p.field("Start", n.Start)
		p.field("End", n.End)
		p.field("Step", n.Step)
		p.field("Body", n.Body)
		p.indent--

	case *VarExpr:
		p.printf("Var %s\n", n.pos)
		p.indent++
		for _, b := range n.Bindings {
			p.field(fmt.Sprintf("Binding %s %q", b.Pos, b.Name), b.Init)
		}
		p.indent--

	case *BlockExpr:
		p.printf("Block %s\n", n.pos)
		p.indent++
		for _, x := range n.Exprs {
			p.print(x)
		}
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}
