package nav

// Find returns the first node with the given key in depth-first order,
// or nil.
func Find(root *Node, key string) *Node {
	return FindPath(root, key).Node()
}

// FindPath returns the chain from root to the first node with the given
// key in depth-first order, or nil when no node matches.
func FindPath(root *Node, key string) Chain {
	if root == nil {
		return nil
	}
	var found Chain
	Walk(root, func(c Chain) bool {
		if found != nil {
			return false
		}
		if c.Node().Key == key {
			found = c
			return false
		}
		return true
	})
	return found
}

// Walk calls fn with the chain to every node of the tree in depth-first
// order. Returning false skips the node's children.
func Walk(root *Node, fn func(Chain) bool) {
	if root == nil {
		return
	}
	walk(Chain{root}, fn)
}

func walk(c Chain, fn func(Chain) bool) {
	if !fn(c) {
		return
	}
	for _, child := range c.Node().Children {
		walk(c.Append(child), fn)
	}
}

// Count returns the number of nodes in the tree.
func Count(root *Node) int {
	n := 0
	Walk(root, func(Chain) bool {
		n++
		return true
	})
	return n
}
