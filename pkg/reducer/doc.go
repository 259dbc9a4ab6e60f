// Package reducer provides the default navigation reducer for the
// canonical action vocabulary of package router.
//
// The reducer is copy-on-write: every action that changes the tree copies
// the nodes on the path from the root to the level it changes and shares
// every other subtree with the previous snapshot. The changed level records
// its previously selected child in From. Actions that change nothing return
// the previous snapshot pointer, which the router does not publish.
//
// New scenes are instantiated from a [Catalog] of templates keyed by scene
// key. Each instantiation deep-copies the template, so a scene pushed twice
// yields two distinct nodes.
//
// Supported types:
//
//	PUSH         append a scene to the deepest stack on the active path
//	BACK_ACTION  pop the deepest stack that has more than its root (BACK is an alias)
//	JUMP         select the tab with the given key
//	REPLACE      swap the selected scene of the deepest stack
//	RESET        make the scene the only entry of the deepest stack
//	POP_TO       pop the stack holding the key until it is on top
//	REFRESH      merge props into the keyed scene or the active leaf
//	FOCUS        no change
//
// Unknown types return the snapshot unchanged.
package reducer
