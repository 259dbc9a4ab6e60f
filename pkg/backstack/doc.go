// Package backstack implements hardware back-button semantics for a
// navigation tree.
//
// [Controller.HandleBack] resolves one back press:
//
//  1. An Override handler, when set, decides alone.
//  2. Otherwise the Popper pops the current stack. On success OnBack is
//     notified and the press is handled.
//  3. A failed pop means the tree is already at its root. ExitApp decides
//     whether the press is handled; without it the press is left to the
//     host's default behaviour.
//
// HandleBack never panics and never returns an error: popping past the
// root is an expected outcome.
//
// [Signal] is the host side: it delivers each press to the most recently
// subscribed handler first and stops at the first one that handles it.
// [Stack] is a minimal key stack that implements [Popper] for hosts without
// a full navigation tree.
package backstack
