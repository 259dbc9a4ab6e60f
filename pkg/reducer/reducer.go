package reducer

import (
	"maps"

	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/router"
)

// Catalog maps scene keys to scene templates.
type Catalog map[string]*nav.Node

// Instantiate returns a deep copy of the template for key with props
// merged into its Props.
func (c Catalog) Instantiate(key string, props map[string]any) (*nav.Node, error) {
	tmpl, ok := c[key]
	if !ok || tmpl == nil {
		return nil, errors.New(errors.ErrCodeUnknownScene, "no scene %q in catalog", key)
	}
	n := deepCopy(tmpl)
	n.Key = key
	n.Props = merge(n.Props, props)
	return n, nil
}

// New returns a router.Reducer backed by catalog.
func New(catalog Catalog) router.Reducer {
	r := &reducer{catalog: catalog}
	return r.reduce
}

type reducer struct {
	catalog Catalog
}

func (r *reducer) reduce(state *nav.Node, a router.Action) (*nav.Node, error) {
	if state == nil {
		return nil, errors.New(errors.ErrCodeInvalidState, "no navigation state to reduce %q", a.Type)
	}
	switch a.Type {
	case router.Push:
		return r.push(state, a)
	case router.Back, router.BackAction:
		return pop(state)
	case router.Jump:
		return jump(state, a)
	case router.Replace:
		return r.replace(state, a)
	case router.Reset:
		return r.reset(state, a)
	case router.PopTo:
		return popTo(state, a)
	case router.Refresh:
		return refresh(state, a)
	default:
		return state, nil
	}
}

// scene returns the node an action brings in: its explicit Scene, or a
// catalog instance of its key.
func (r *reducer) scene(a router.Action) (*nav.Node, error) {
	if a.Scene != nil {
		n := deepCopy(a.Scene)
		n.Props = merge(n.Props, a.Props)
		return n, nil
	}
	if err := errors.ValidateSceneKey(a.Key); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidAction, err, "%s needs a scene key", a.Type)
	}
	return r.catalog.Instantiate(a.Key, a.Props)
}

func deepCopy(n *nav.Node) *nav.Node {
	c := nav.Clone(n)
	c.From = nil
	c.Props = maps.Clone(n.Props)
	for i, child := range c.Children {
		c.Children[i] = deepCopy(child)
	}
	return c
}

func merge(base, extra map[string]any) map[string]any {
	if len(extra) == 0 {
		return base
	}
	out := maps.Clone(base)
	if out == nil {
		out = make(map[string]any, len(extra))
	}
	maps.Copy(out, extra)
	return out
}
