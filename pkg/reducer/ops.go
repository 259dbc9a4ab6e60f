package reducer

import (
	"slices"

	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/router"
)

func (r *reducer) push(state *nav.Node, a router.Action) (*nav.Node, error) {
	path := nav.ActivePath(state)
	depth := deepestStack(path)
	if depth < 0 {
		return nil, errors.New(errors.ErrCodeInvalidAction, "no stack to push %q onto", a.Key)
	}
	scene, err := r.scene(a)
	if err != nil {
		return nil, err
	}
	level := path[depth]
	if level.ChildIndex(scene.Key) >= 0 {
		return nil, errors.New(errors.ErrCodeInvalidAction, "scene %q is already on stack %q", scene.Key, level.Key)
	}
	children := append(slices.Clone(level.Children), scene)
	return rebuild(path[:depth+1], reselect(level, children, len(children)-1)), nil
}

func pop(state *nav.Node) (*nav.Node, error) {
	path := nav.ActivePath(state)
	for depth := len(path) - 1; depth >= 0; depth-- {
		level := path[depth]
		if !isStack(level) || level.Index == 0 {
			continue
		}
		children := slices.Clone(level.Children[:level.Index])
		return rebuild(path[:depth+1], reselect(level, children, level.Index-1)), nil
	}
	return nil, errors.ErrAtRoot
}

func jump(state *nav.Node, a router.Action) (*nav.Node, error) {
	var path nav.Chain
	nav.Walk(state, func(c nav.Chain) bool {
		if path != nil {
			return false
		}
		if n := c.Node(); n.Tabs && n.ChildIndex(a.Key) >= 0 {
			path = c
			return false
		}
		return true
	})
	if path == nil {
		return nil, errors.New(errors.ErrCodeUnknownScene, "no tab %q", a.Key)
	}

	tabs := path.Node()
	i := tabs.ChildIndex(a.Key)
	children := slices.Clone(tabs.Children)
	if len(a.Props) > 0 {
		tab := nav.Clone(children[i])
		tab.Props = merge(tab.Props, a.Props)
		children[i] = tab
	} else if i == tabs.Index && slices.Contains(nav.ActivePath(state), tabs) {
		return state, nil
	}

	// Selecting a tab on a branch that is not active also activates every
	// tab bar and stack above it.
	n := reselect(tabs, children, i)
	for d := len(path) - 1; d > 0; d-- {
		parent := path[d-1]
		j := slices.Index(parent.Children, path[d])
		next := slices.Clone(parent.Children)
		next[j] = n
		if j == parent.Index {
			n = nav.Clone(parent)
			n.From = nil
			n.Children = next
		} else {
			n = reselect(parent, next, j)
		}
	}
	return n, nil
}

func (r *reducer) replace(state *nav.Node, a router.Action) (*nav.Node, error) {
	path := nav.ActivePath(state)
	depth := deepestStack(path)
	if depth < 0 {
		return nil, errors.New(errors.ErrCodeInvalidAction, "no stack to replace %q in", a.Key)
	}
	scene, err := r.scene(a)
	if err != nil {
		return nil, err
	}
	level := path[depth]
	if i := level.ChildIndex(scene.Key); i >= 0 && i != level.Index {
		return nil, errors.New(errors.ErrCodeInvalidAction, "scene %q is already on stack %q", scene.Key, level.Key)
	}
	children := slices.Clone(level.Children)
	children[level.Index] = scene
	return rebuild(path[:depth+1], reselect(level, children, level.Index)), nil
}

func (r *reducer) reset(state *nav.Node, a router.Action) (*nav.Node, error) {
	path := nav.ActivePath(state)
	depth := deepestStack(path)
	if depth < 0 {
		return nil, errors.New(errors.ErrCodeInvalidAction, "no stack to reset to %q", a.Key)
	}
	scene, err := r.scene(a)
	if err != nil {
		return nil, err
	}
	return rebuild(path[:depth+1], reselect(path[depth], []*nav.Node{scene}, 0)), nil
}

func popTo(state *nav.Node, a router.Action) (*nav.Node, error) {
	path := nav.ActivePath(state)
	for depth := len(path) - 1; depth >= 0; depth-- {
		level := path[depth]
		if !isStack(level) {
			continue
		}
		i := level.ChildIndex(a.Key)
		if i < 0 || i > level.Index {
			continue
		}
		if i == level.Index {
			return state, nil
		}
		children := slices.Clone(level.Children[:i+1])
		return rebuild(path[:depth+1], reselect(level, children, i)), nil
	}
	return nil, errors.New(errors.ErrCodeNotFound, "no scene %q below the active scene", a.Key)
}

func refresh(state *nav.Node, a router.Action) (*nav.Node, error) {
	path := nav.ActivePath(state)
	if a.Key != "" {
		path = nav.FindPath(state, a.Key)
		if path == nil {
			return nil, errors.New(errors.ErrCodeNotFound, "no scene %q to refresh", a.Key)
		}
	}
	if len(a.Props) == 0 {
		return state, nil
	}
	n := nav.Clone(path.Node())
	n.Props = merge(n.Props, a.Props)
	return rebuild(path, n), nil
}
