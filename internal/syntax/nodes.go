package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 classes of nodes: Expressions and top-level Declarations.
// All nodes implement the Node interface. The marker methods are unexported,
// so the set of node types is closed to this package.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the first token belonging to the node
	String() string
	aNode()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Decl is the interface for top-level declarations: *Function and *Prototype.
type Decl interface {
	Node
	aDecl()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

type decl struct{ node }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// Files and Declarations

// AnonExprName is the prototype name given to top-level expressions.
const AnonExprName = "__anon_expr"

// File is a sequence of top-level declarations in source order.
type File struct {
	node
	Decls []Decl
}

// Prototype is a function signature: Name(Params...).
// Parameter names are not checked for uniqueness.
type Prototype struct {
	decl
	Name   string
	Params []string
}

// Function binds a body to a prototype. Top-level expressions are Functions
// whose prototype is named AnonExprName and has no parameters.
type Function struct {
	decl
	Proto *Prototype
	Body  Expr
}

// IsAnon reports whether f wraps a top-level expression.
func (f *Function) IsAnon() bool {
	return f.Proto != nil && f.Proto.Name == AnonExprName
}

// ----------------------------------------------------------------------------
// Expressions

// NumberExpr is a numeric literal.
type NumberExpr struct {
	expr
	Value float64
}

// VariableExpr is a reference to a named variable.
type VariableExpr struct {
	expr
	Name string
}

// BinaryExpr is X Op Y. Op is always a kind with a positive Precedence.
type BinaryExpr struct {
	expr
	Op Kind
	X  Expr
	Y  Expr
}

// CallExpr is Callee(Args...). Argument order is call order.
type CallExpr struct {
	expr
	Callee string
	Args   []Expr
}

// IfExpr is: if Cond then Then else Else.
type IfExpr struct {
	expr
	Cond Expr
	Then Expr
	Else Expr
}

// ForExpr is: for Var = Start, End, Step in Body.
type ForExpr struct {
	expr
	Var   string
	Start Expr
	End   Expr
	Step  Expr
	Body  Expr
}

// Binding is a single name = init pair of a VarExpr.
type Binding struct {
	Pos  Pos
	Name string
	Init Expr
}

// VarExpr introduces one or more local bindings in declaration order.
// A later binding may shadow an earlier one.
type VarExpr struct {
	expr
	Bindings []*Binding
}

// BlockExpr is { Exprs... }.
type BlockExpr struct {
	expr
	Exprs []Expr
}
