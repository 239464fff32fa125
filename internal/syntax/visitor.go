package syntax

import "fmt"

// Visitor handles every expression variant. Implementations must cover all
// of them, so adding a variant breaks every consumer at compile time.
type Visitor interface {
	VisitNumber(e *NumberExpr)
	VisitVariable(e *VariableExpr)
	VisitBinary(e *BinaryExpr)
	VisitCall(e *CallExpr)
	VisitIf(e *IfExpr)
	VisitFor(e *ForExpr)
	VisitVar(e *VarExpr)
	VisitBlock(e *BlockExpr)
}

// Accept dispatches e to the matching method of v.
func Accept(e Expr, v Visitor) {
	switch e := e.(type) {
	case *NumberExpr:
		v.VisitNumber(e)
	case *VariableExpr:
		v.VisitVariable(e)
	case *BinaryExpr:
		v.VisitBinary(e)
	case *CallExpr:
		v.VisitCall(e)
	case *IfExpr:
		v.VisitIf(e)
	case *ForExpr:
		v.VisitFor(e)
	case *VarExpr:
		v.VisitVar(e)
	case *BlockExpr:
		v.VisitBlock(e)
	default:
		// Expr is sealed; this only fires for a nil interface.
		panic(fmt.Sprintf("syntax: Accept on %T", e))
	}
}
