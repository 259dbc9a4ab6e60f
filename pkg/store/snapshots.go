package store

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/observability"
)

const sessionPrefix = "session:"

// DefaultTTL is how long a saved snapshot lives when no TTL is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Record is the persisted form of one snapshot.
type Record struct {
	Session  string    `json:"session"`
	Revision int64     `json:"revision"`
	SavedAt  time.Time `json:"saved_at"`
	Root     *nav.Node `json:"root"`
}

// Lister is implemented by stores that can enumerate their keys.
type Lister interface {
	Keys(ctx context.Context) ([]string, error)
}

// Snapshots saves and restores navigation trees by session id.
type Snapshots struct {
	store Store
	ttl   time.Duration
}

// NewSnapshots wraps s. A non-positive ttl uses DefaultTTL.
func NewSnapshots(s Store, ttl time.Duration) *Snapshots {
	if s == nil {
		s = NewNullStore()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Snapshots{store: s, ttl: ttl}
}

// NewSessionID returns a fresh random session id.
func NewSessionID() string {
	return uuid.NewString()
}

// Save persists root under session.
func (s *Snapshots) Save(ctx context.Context, session string, revision int64, root *nav.Node) error {
	if err := validateSession(session); err != nil {
		return err
	}
	if root == nil {
		return errors.New(errors.ErrCodeInvalidState, "cannot save an empty snapshot")
	}
	data, err := json.Marshal(Record{
		Session:  session,
		Revision: revision,
		SavedAt:  time.Now().UTC(),
		Root:     root,
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode snapshot")
	}
	if err := s.store.Set(ctx, sessionPrefix+session, data, s.ttl); err != nil {
		return err
	}
	observability.Store().OnStoreSet(ctx, s.store.Name(), len(data))
	return nil
}

// Load returns the record saved under session. A missing session is
// reported as (nil, false, nil).
func (s *Snapshots) Load(ctx context.Context, session string) (*Record, bool, error) {
	if err := validateSession(session); err != nil {
		return nil, false, err
	}
	data, ok, err := s.store.Get(ctx, sessionPrefix+session)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		observability.Store().OnStoreMiss(ctx, s.store.Name())
		return nil, false, nil
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode snapshot %s", session)
	}
	if err := nav.Validate(rec.Root); err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInvalidFormat, err, "snapshot %s", session)
	}
	observability.Store().OnStoreHit(ctx, s.store.Name())
	return &rec, true, nil
}

// Delete removes the snapshot saved under session.
func (s *Snapshots) Delete(ctx context.Context, session string) error {
	if err := validateSession(session); err != nil {
		return err
	}
	return s.store.Delete(ctx, sessionPrefix+session)
}

// Sessions lists saved session ids when the backend can enumerate keys.
func (s *Snapshots) Sessions(ctx context.Context) ([]string, error) {
	l, ok := s.store.(Lister)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s store cannot list sessions", s.store.Name())
	}
	keys, err := l.Keys(ctx)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, k := range keys {
		if id, ok := strings.CutPrefix(k, sessionPrefix); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Backend returns the underlying store's name.
func (s *Snapshots) Backend() string { return s.store.Name() }

func validateSession(id string) error {
	if id == "" {
		return errors.New(errors.ErrCodeInvalidInput, "session id is empty")
	}
	if strings.ContainsAny(id, " /\\") {
		return errors.New(errors.ErrCodeInvalidInput, "invalid session id %q", id)
	}
	return nil
}
