// Package focus notifies collaborators when the focused scene of a
// navigation tree changes.
//
// A [Dispatcher] observes every published snapshot and emits one [Event]
// per actual change of the focused scene. Observing the same snapshot twice,
// or a new snapshot that keeps the same scene focused, emits nothing.
// Position-only updates never reach the dispatcher; only discrete snapshots
// do.
package focus

import (
	"github.com/matzehuels/scenetree/pkg/nav"
)

// Event describes a focus change.
type Event struct {
	// Scene is the newly selected child of Level.
	Scene *nav.Node
	// Leaf is the active leaf beneath Scene.
	Leaf *nav.Node
	// Level is the stack whose selection moved.
	Level *nav.Node
	// Path is the chain from the root to Scene.
	Path nav.Chain
}

// Dispatcher tracks the focused scene across snapshots. The zero value is
// not usable; create one with [New].
type Dispatcher struct {
	emit     func(Event)
	snapshot *nav.Node
	scene    *nav.Node
}

// New returns a Dispatcher that calls emit for every focus change. emit
// may be nil, in which case changes are only tracked.
func New(emit func(Event)) *Dispatcher {
	return &Dispatcher{emit: emit}
}

// Observe records a new snapshot and reports whether a focus event was
// emitted for it.
//
// The focused scene is the selected child of the deepest level on the
// active path that is neither a content node nor a tabs node. Snapshots
// without such a level, such as a single content scene, emit nothing.
func (d *Dispatcher) Observe(snapshot *nav.Node) bool {
	if snapshot == nil || snapshot == d.snapshot {
		return false
	}
	d.snapshot = snapshot

	path := nav.ActivePath(snapshot)
	depth := -1
	for i, n := range path {
		if n.IsLeaf() || n.IsContent() || n.Tabs {
			continue
		}
		depth = i
	}
	if depth < 0 {
		return false
	}

	level := path[depth]
	scene := level.Selected()
	if scene == d.scene {
		return false
	}
	d.scene = scene
	if d.emit != nil {
		d.emit(Event{
			Scene: scene,
			Leaf:  nav.ActiveLeaf(scene),
			Level: level,
			Path:  path[:depth+2],
		})
	}
	return true
}

// Focused returns the scene of the last emitted event, or nil.
func (d *Dispatcher) Focused() *nav.Node {
	return d.scene
}

// Reset forgets the tracked snapshot so the next observation emits again.
func (d *Dispatcher) Reset() {
	d.snapshot = nil
	d.scene = nil
}
