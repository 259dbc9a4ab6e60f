// Package store persists navigation snapshots.
//
// A [Store] is a small byte-oriented key/value interface with expiration.
// Four backends are provided:
//   - [FileStore]: one JSON file per key under a directory, for the CLI
//   - [NullStore]: stores nothing, used when persistence is disabled
//   - [RedisStore]: Redis-backed storage for multi-instance servers
//   - [MongoStore]: a MongoDB collection keyed by _id
//
// [Snapshots] sits on top of a Store and encodes [nav.Node] trees under a
// session id:
//
//	s, err := store.Open(ctx, store.Config{Backend: store.BackendFile, Dir: dir})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	snaps := store.NewSnapshots(s, 24*time.Hour)
//	id := store.NewSessionID()
//	if err := snaps.Save(ctx, id, root); err != nil {
//	    return err
//	}
//	root, ok, err := snaps.Load(ctx, id)
//
// Store events are reported through [observability.Store].
//
// [nav.Node]: github.com/matzehuels/scenetree/pkg/nav.Node
// [observability.Store]: github.com/matzehuels/scenetree/pkg/observability.Store
package store
