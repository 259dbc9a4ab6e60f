package nav

import (
	"github.com/matzehuels/scenetree/pkg/errors"
)

// Validate checks the structural invariants of a tree built outside a
// reducer, such as one read from a document: every key is valid, sibling
// keys are unique, every index selects an existing child and no node is
// reachable twice.
func Validate(root *Node) error {
	if root == nil {
		return errors.New(errors.ErrCodeInvalidState, "navigation tree is empty")
	}
	seen := make(map[*Node]bool)
	var check func(n *Node, path string) error
	check = func(n *Node, path string) error {
		if seen[n] {
			return errors.New(errors.ErrCodeInvalidState, "scene %q is reachable more than once", path)
		}
		seen[n] = true
		if err := errors.ValidateSceneKey(n.Key); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidState, err, "invalid scene under %q", path)
		}
		if len(n.Children) == 0 {
			return nil
		}
		if n.Index < 0 || n.Index >= len(n.Children) {
			return errors.New(errors.ErrCodeInvalidState,
				"scene %q selects index %d of %d children", path, n.Index, len(n.Children))
		}
		keys := make(map[string]bool, len(n.Children))
		for _, c := range n.Children {
			if c == nil {
				return errors.New(errors.ErrCodeInvalidState, "scene %q has a nil child", path)
			}
			if keys[c.Key] {
				return errors.New(errors.ErrCodeInvalidState, "scene %q has duplicate child key %q", path, c.Key)
			}
			keys[c.Key] = true
			if err := check(c, path+"/"+c.Key); err != nil {
				return err
			}
		}
		return nil
	}
	return check(root, root.Key)
}
