package nav

// ActiveLeaf follows the selected child from n until it reaches a node
// without children and returns that node. It returns nil for a nil tree.
func ActiveLeaf(n *Node) *Node {
	if n == nil {
		return nil
	}
	for len(n.Children) > 0 {
		n = n.Children[n.Index]
	}
	return n
}

// ActivePath returns the chain from n to its active leaf, both included.
func ActivePath(n *Node) Chain {
	if n == nil {
		return nil
	}
	c := Chain{n}
	for len(n.Children) > 0 {
		n = n.Children[n.Index]
		c = append(c, n)
	}
	return c
}

// RendersHeader reports whether level draws the header overlay. Only the
// level whose selected child is itself the active leaf of the whole tree
// does; levels on outgoing subtrees of a nested transition, and levels whose
// selected child holds a deeper stack, report false.
func RendersHeader(root, level *Node) bool {
	child := level.Selected()
	return child != nil && child.IsLeaf() && child == ActiveLeaf(root)
}
