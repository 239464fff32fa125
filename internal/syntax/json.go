package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toTree(node))
}

// toTree converts node into nested maps and slices shared by the JSON and
// YAML encoders.
func toTree(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *File:
		return map[string]interface{}{
			"type":  "File",
			"pos":   n.pos.String(),
			"decls": mapSlice(n.Decls, func(d Decl) interface{} { return toTree(d) }),
		}

	case *Function:
		typ := "Function"
		if n.IsAnon() {
			typ = "TopLevelExpr"
		}
		return map[string]interface{}{
			"type":  typ,
			"pos":   n.pos.String(),
			"proto": toTree(n.Proto),
			"body":  toTree(n.Body),
		}

	case *Prototype:
		params := n.Params
		if params == nil {
			params = []string{}
		}
		return map[string]interface{}{
			"type":   "Prototype",
			"pos":    n.pos.String(),
			"name":   n.Name,
			"params": params,
		}

	case *NumberExpr:
		return map[string]interface{}{
			"type":  "Number",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *VariableExpr:
		return map[string]interface{}{
			"type": "Variable",
			"pos":  n.pos.String(),
			"name": n.Name,
		}

	case *BinaryExpr:
		return map[string]interface{}{
			"type": "Binary",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toTree(n.X),
			"y":    toTree(n.Y),
		}

	case *CallExpr:
		return map[string]interface{}{
			"type":   "Call",
			"pos":    n.pos.String(),
			"callee": n.Callee,
			"args":   mapSlice(n.Args, exprTree),
		}

	case *IfExpr:
		return map[string]interface{}{
			"type": "If",
			"pos":  n.pos.String(),
			"cond": toTree(n.Cond),
			"then": toTree(n.Then),
			"else": toTree(n.Else),
		}

	case *ForExpr:
		return map[string]interface{}{
			"type":  "For",
			"pos":   n.pos.String(),
			"var":   n.Var,
			"start": toTree(n.Start),
			"end":   toTree(n.End),
			"step":  toTree(n.Step),
			"body":  toTree(n.Body),
		}

	case *VarExpr:
		return map[string]interface{}{
			"type": "Var",
			"pos":  n.pos.String(),
			"bindings": mapSlice(n.Bindings, func(b *Binding) interface{} {
				return map[string]interface{}{
					"pos":  b.Pos.String(),
					"name": b.Name,
					"init": toTree(b.Init),
				}
			}),
		}

	case *BlockExpr:
		return map[string]interface{}{
			"type":  "Block",
			"pos":   n.pos.String(),
			"exprs": mapSlice(n.Exprs, exprTree),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func exprTree(e Expr) interface{} {
	return toTree(e)
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
