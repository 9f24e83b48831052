package vdom

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Walk visits root and its descendants depth-first, parents before
// children. Returning false from fn skips the node's children.
func Walk(root *VNode, fn func(node *VNode, depth int) bool) {
	walk(root, 0, fn)
}

func walk(node *VNode, depth int, fn func(*VNode, int) bool) {
	if node == nil {
		return
	}
	if !fn(node, depth) {
		return
	}
	for _, c := range node.Children {
		walk(c, depth+1, fn)
	}
}

// Find returns the first node in depth-first order matching pred.
func Find(root *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n *VNode, _ int) bool {
		if found != nil {
			return false
		}
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching pred in depth-first order.
func FindAll(root *VNode, pred func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(root, func(n *VNode, _ int) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// OfKind returns a predicate matching nodes of kind k.
func OfKind(k VKind) func(*VNode) bool {
	return func(n *VNode) bool { return n.Kind == k }
}

// CountNodes returns the number of nodes in the tree.
func CountNodes(root *VNode) int {
	n := 0
	Walk(root, func(*VNode, int) bool {
		n++
		return true
	})
	return n
}
