// Package pkg provides the core libraries of scenetree, a hierarchical
// navigation-state engine.
//
// # Overview
//
// A navigation state is an immutable tree of scenes. Stacks hold an ordered
// history of children, tab containers hold mutually exclusive children, and
// the index of every container names its selected child. The pkg directory
// is organized into these areas:
//
//  1. [nav] - the scene tree, chain resolution and validation
//  2. [reducer] and [router] - actions, the reducer and the state owner
//  3. [backstack] and [focus] - host back presses and focus events
//  4. [anim] and [render] - transition styles, gestures and frames
//  5. [flow], [store] and [visual] - flow documents, snapshot persistence
//     and graph output
//
// # Architecture
//
// The data flow through scenetree:
//
//	flow document (TOML/JSON)
//	         ↓
//	    [router] (dispatch → [reducer] → publish)
//	         ↓
//	    [render] (frames: cards, headers, tab bars)
//	         ↓
//	    terminal view, HTTP API, DOT/SVG
//
// # Quick Start
//
//	doc, _ := flow.Load("examples/flows/mail.toml")
//	r, _ := router.New(doc.Root, router.Options{
//	    Vocabulary: doc.VocabularyOrDefault(),
//	    Reducer:    reducer.New(doc.Catalog()),
//	})
//	_ = r.Dispatch(router.Action{Type: router.Push, Key: "message"})
//	frame := render.New().Render(r.State())
//
// # Error Handling
//
// All packages report failures as [errors.Error] values carrying a code;
// use [errors.Is] to test for a code and [errors.UserMessage] to show one.
package pkg
