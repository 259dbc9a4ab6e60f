// Package router receives navigation actions, normalizes them against an
// action vocabulary and reduces them into new navigation snapshots.
//
// # Dispatch
//
// [Router.Dispatch] processes actions strictly in dispatch order. For each
// action it:
//
//  1. rewrites the type through the [Vocabulary] (unknown types pass
//     through unchanged),
//  2. hands the normalized action to the host's external dispatch, if any,
//  3. hands the same action and the current snapshot to the [Reducer],
//  4. publishes the reducer's result when it is a different snapshot:
//     focus changes are observed first, then subscribers are notified.
//
// Actions dispatched while another action is being processed, for example
// from a subscriber or a focus handler, are queued and processed after it.
// A Router is not safe for concurrent use; hosts that dispatch from several
// goroutines serialize calls themselves.
//
// # Actions Registry
//
// [Actions] is the capability hosts hand to scene components: it finds
// scenes by key in the current snapshot and dispatches actions to the
// mounted router. Mounting a router atomically replaces the previous
// binding.
//
//	actions := router.NewActions()
//	r, _ := router.New(root, router.Options{Reducer: reduce, Actions: actions})
//	r.Mount(signal)
//	defer r.Unmount()
//
//	actions.Push("detail", map[string]any{"id": 42})
package router
