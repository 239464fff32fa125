package syntax

// WalkFunc is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type WalkFunc func(node Node) bool

// Walk traverses an AST in depth-first order, children in source order.
func Walk(node Node, f WalkFunc) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, d := range n.Decls {
			Walk(d, f)
		}

	case *Function:
		Walk(n.Proto, f)
		if n.Body != nil {
			Walk(n.Body, f)
		}

	case *BinaryExpr:
		Walk(n.X, f)
		Walk(n.Y, f)

	case *CallExpr:
		for _, a := range n.Args {
			Walk(a, f)
		}

	case *IfExpr:
		Walk(n.Cond, f)
		Walk(n.Then, f)
		Walk(n.Else, f)

	case *ForExpr:
		Walk(n.Start, f)
		Walk(n.End, f)
		Walk(n.Step, f)
		Walk(n.Body, f)

	case *VarExpr:
		for _, b := range n.Bindings {
			Walk(b.Init, f)
		}

	case *BlockExpr:
		for _, x := range n.Exprs {
			Walk(x, f)
		}

	// Leaf nodes: Prototype, NumberExpr, VariableExpr
	}
}

// Inspect traverses an AST and calls f for each node.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, WalkFunc(f))
}
