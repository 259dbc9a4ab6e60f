// Package nav defines the navigation state tree and the resolvers that read
// it.
//
// # Tree Model
//
// A [Node] is one scene: a stack frame, a tab or a leaf holding content.
// Nodes with children select one of them through Index. Following the
// selected child from the root until a node without children is reached
// yields the active path; its last node is the active leaf:
//
//	root := &nav.Node{Key: "root", Index: 1, Children: []*nav.Node{
//	    {Key: "home"},
//	    {Key: "settings"},
//	}}
//	nav.ActiveLeaf(root).Key // "settings"
//
// Snapshots are immutable once published. Reducers produce new trees that
// share untouched subtrees with the previous snapshot; nothing in this
// package mutates a node.
//
// # Explicit-Value Inheritance
//
// Display hints (hideNavBar, hideTabBar, navBar, duration, animation,
// direction, applyAnimation) may be set on any node and are inherited by
// descendants that leave them unset. Hints are pointers so that an explicit
// false, zero or empty string is distinguishable from absence: the walk from
// a node towards the root stops at the first node that sets the key, whatever
// its value.
//
//	chain := nav.ActivePath(root)
//	hide := chain.HideNavBar()
//
// # Index Bounds
//
// An index outside its children range is a reducer bug. Resolvers do not
// clamp it; [Validate] reports it for trees loaded from documents.
package nav
