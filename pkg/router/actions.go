package router

import (
	"go.uber.org/atomic"

	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/nav"
)

// Actions is the scene-facing navigation capability. It is bound to at
// most one router at a time; binding replaces the previous router in a
// single atomic step.
type Actions struct {
	current *atomic.Pointer[binding]
}

type binding struct {
	onAction func(Action) error
	get      func(key string) *nav.Node
}

// NewActions returns an unbound registry.
func NewActions() *Actions {
	return &Actions{current: atomic.NewPointer[binding](nil)}
}

// Bind installs the dispatch and lookup capabilities and returns a token
// for [Actions.Unbind]. Any previous binding is replaced.
func (a *Actions) Bind(onAction func(Action) error, get func(string) *nav.Node) any {
	b := &binding{onAction: onAction, get: get}
	a.current.Store(b)
	return b
}

// Unbind removes the binding identified by token. A binding that has since
// been replaced is left in place.
func (a *Actions) Unbind(token any) {
	b, ok := token.(*binding)
	if !ok {
		return
	}
	a.current.CompareAndSwap(b, nil)
}

// Bound reports whether a router is bound.
func (a *Actions) Bound() bool {
	return a.current.Load() != nil
}

// OnAction replaces the dispatch capability of the current binding and
// keeps its lookup.
func (a *Actions) OnAction(fn func(Action) error) {
	var get func(string) *nav.Node
	if b := a.current.Load(); b != nil {
		get = b.get
	}
	a.current.Store(&binding{onAction: fn, get: get})
}

// Get returns the scene with the given key in the bound router's current
// snapshot, or nil.
func (a *Actions) Get(key string) *nav.Node {
	b := a.current.Load()
	if b == nil || b.get == nil {
		return nil
	}
	return b.get(key)
}

// Dispatch sends action to the bound router.
func (a *Actions) Dispatch(action Action) error {
	b := a.current.Load()
	if b == nil || b.onAction == nil {
		return errors.New(errors.ErrCodeInvalidState, "no router bound for %q", action.Type)
	}
	return b.onAction(action)
}

// Push opens the catalog scene key on the current stack.
func (a *Actions) Push(key string, props map[string]any) error {
	return a.Dispatch(Action{Type: Push, Key: key, Props: props})
}

// Pop closes the top scene of the current stack.
func (a *Actions) Pop() error {
	return a.Dispatch(Action{Type: BackAction})
}

// Jump selects the tab with the given key.
func (a *Actions) Jump(key string, props map[string]any) error {
	return a.Dispatch(Action{Type: Jump, Key: key, Props: props})
}

// Replace swaps the top scene of the current stack for key.
func (a *Actions) Replace(key string, props map[string]any) error {
	return a.Dispatch(Action{Type: Replace, Key: key, Props: props})
}

// Reset makes key the only scene of the current stack.
func (a *Actions) Reset(key string, props map[string]any) error {
	return a.Dispatch(Action{Type: Reset, Key: key, Props: props})
}

// PopTo pops the stack holding key until key is on top.
func (a *Actions) PopTo(key string) error {
	return a.Dispatch(Action{Type: PopTo, Key: key})
}

// Refresh merges props into the active scene.
func (a *Actions) Refresh(props map[string]any) error {
	return a.Dispatch(Action{Type: Refresh, Props: props})
}

// Focus reports scene as focused.
func (a *Actions) Focus(scene *nav.Node) error {
	if scene == nil {
		return errors.New(errors.ErrCodeInvalidAction, "focus requires a scene")
	}
	return a.Dispatch(Action{Type: Focus, Key: scene.Key, Scene: scene})
}
