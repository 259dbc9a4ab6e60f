// Package render evaluates a navigation snapshot into a tree of frames that
// a host paints.
//
// # Overview
//
// A [Renderer] walks the snapshot from the root with the chain of ancestors
// in hand, so inherited display hints are resolved without any component
// looking up its parents. Each node becomes one [Frame]:
//
//   - content frames for nodes with a component, carrying the scene shadow
//   - tab frames for tabs nodes without a component, painted by the tab bar
//     host and holding the frame of the selected tab
//   - stack frames for everything else, holding one [Card] per child and at
//     most one [Header]
//
// Frames carry descriptors only: styles from package anim, pan handlers,
// header props and host names. Nothing here draws.
//
// # Cards
//
// The style of a card comes from the active leaf's animation style when it
// supplies one, and from the selector resolved from the card's animation
// and direction hints otherwise (direction wins). Pan handlers follow the
// same order: the leaf's own, then the card's GetPanHandlers hook, then the
// configured recognizer.
//
// # Headers
//
// Only the level whose selected child is the active leaf renders a header.
// A hidden nav bar still renders while the outgoing and incoming scenes
// disagree about hiding it, so hosts can animate it away. Header props are
// merged level, child, leaf; an explicit button descriptor clears the
// title, image and handler of its side, and a title or image with a handler
// clears the descriptor.
//
// # Usage
//
//	r := render.New(
//	    render.WithLayout(anim.Layout{Width: 80, Height: 24}),
//	    render.WithNavigate(router.Dispatch),
//	    render.WithComponents(map[string]any{"Inbox": inbox}),
//	)
//	frame := r.Render(router.State())
package render
