package reducer

import (
	"github.com/matzehuels/scenetree/pkg/nav"
)

// isStack reports whether n holds a push/pop stack.
func isStack(n *nav.Node) bool {
	return !n.Tabs && len(n.Children) > 0
}

// deepestStack returns the index in path of the deepest stack, or -1.
func deepestStack(path nav.Chain) int {
	for i := len(path) - 1; i >= 0; i-- {
		if isStack(path[i]) {
			return i
		}
	}
	return -1
}

// rebuild returns a new root in which the last node of path is replaced by
// n. Every ancestor on path is copied with From cleared; everything else
// is shared.
func rebuild(path nav.Chain, n *nav.Node) *nav.Node {
	for i := len(path) - 1; i > 0; i-- {
		parent := nav.Clone(path[i-1])
		parent.From = nil
		for j, c := range parent.Children {
			if c == path[i] {
				parent.Children[j] = n
				break
			}
		}
		n = parent
	}
	return n
}

// reselect returns a copy of level showing children with the given index,
// remembering the previously selected child.
func reselect(level *nav.Node, children []*nav.Node, index int) *nav.Node {
	n := nav.Clone(level)
	n.From = level.Selected()
	n.Children = children
	n.Index = index
	return n
}
