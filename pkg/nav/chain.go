package nav

import (
	"time"

	"github.com/matzehuels/scenetree/pkg/anim"
)

// Chain is a path through a tree, root first. The last element is the node
// the chain describes; hint resolution walks from it back to the root.
type Chain []*Node

// Node returns the last node of the chain, or nil when it is empty.
func (c Chain) Node() *Node {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// Parent returns the chain without its last node.
func (c Chain) Parent() Chain {
	if len(c) == 0 {
		return nil
	}
	return c[:len(c)-1]
}

// Append returns a new chain extended by n. c is not modified.
func (c Chain) Append(n *Node) Chain {
	out := make(Chain, len(c), len(c)+1)
	copy(out, c)
	return append(out, n)
}

// Keys returns the keys along the chain.
func (c Chain) Keys() []string {
	keys := make([]string, len(c))
	for i, n := range c {
		keys[i] = n.Key
	}
	return keys
}

// Resolve walks c from its last node to the root and returns the first
// value get reports as set. A set zero value stops the walk.
func Resolve[T any](c Chain, get func(*Node) *T) (T, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if v := get(c[i]); v != nil {
			return *v, true
		}
	}
	var zero T
	return zero, false
}

// hints maps the serialized hint names to their typed accessors.
var hints = map[string]func(*Node) (any, bool){
	"hideNavBar": func(n *Node) (any, bool) { return deref(n.HideNavBar) },
	"hideTabBar": func(n *Node) (any, bool) { return deref(n.HideTabBar) },
	"navBar":     func(n *Node) (any, bool) { return deref(n.NavBar) },
	"duration":   func(n *Node) (any, bool) { return deref(n.Duration) },
	"animation":  func(n *Node) (any, bool) { return deref(n.Animation) },
	"direction":  func(n *Node) (any, bool) { return deref(n.Direction) },
	"applyAnimation": func(n *Node) (any, bool) {
		return n.ApplyAnimation, n.ApplyAnimation != nil
	},
}

func deref[T any](p *T) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

// ResolveInherited returns the first explicitly assigned value for key
// found walking from the last node of c to the root. Known hints are read
// from their fields; any other key is looked up in Props, where presence
// counts as assignment even for nil, false, zero or empty values.
func ResolveInherited(c Chain, key string) (any, bool) {
	get, known := hints[key]
	for i := len(c) - 1; i >= 0; i-- {
		n := c[i]
		if known {
			if v, ok := get(n); ok {
				return v, true
			}
			continue
		}
		if v, ok := n.Props[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// HideNavBar resolves the hideNavBar hint, defaulting to false.
func (c Chain) HideNavBar() bool {
	v, _ := Resolve(c, func(n *Node) *bool { return n.HideNavBar })
	return v
}

// HideTabBar resolves the hideTabBar hint, defaulting to false.
func (c Chain) HideTabBar() bool {
	v, _ := Resolve(c, func(n *Node) *bool { return n.HideTabBar })
	return v
}

// NavBar resolves the navBar host override.
func (c Chain) NavBar() (string, bool) {
	return Resolve(c, func(n *Node) *string { return n.NavBar })
}

// Animation resolves the animation selector name.
func (c Chain) Animation() string {
	v, _ := Resolve(c, func(n *Node) *string { return n.Animation })
	return v
}

// Direction resolves the direction selector name.
func (c Chain) Direction() string {
	v, _ := Resolve(c, func(n *Node) *string { return n.Direction })
	return v
}

// Duration resolves the transition duration.
func (c Chain) Duration() (time.Duration, bool) {
	ms, ok := Resolve(c, func(n *Node) *int { return n.Duration })
	return time.Duration(ms) * time.Millisecond, ok
}

// ApplyAnimation resolves the nearest custom position driver.
func (c Chain) ApplyAnimation() anim.ApplyFunc {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].ApplyAnimation != nil {
			return c[i].ApplyAnimation
		}
	}
	return nil
}
