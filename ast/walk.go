package ast

// Walk traverses the tree rooted at node in depth-first preorder, calling fn
// for each node. If fn returns false for a node, its children are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *Literal, *Variable:
		// leaves
	case *UnaryOp:
		Walk(n.X, fn)
	case *BinaryOp:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *FunctionOp:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
	}
}
