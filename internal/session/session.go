// Package session hosts one running navigation tree.
//
// A Session wires a flow document to a router with the default reducer,
// a renderer with a position clock, the host back signal and, optionally,
// snapshot persistence. Every published snapshot is saved under the
// session id, and opening a session with a known id restores it.
//
// Methods are safe for concurrent use.
package session

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scenetree/pkg/anim"
	"github.com/matzehuels/scenetree/pkg/backstack"
	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/flow"
	"github.com/matzehuels/scenetree/pkg/focus"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/reducer"
	"github.com/matzehuels/scenetree/pkg/render"
	"github.com/matzehuels/scenetree/pkg/router"
	"github.com/matzehuels/scenetree/pkg/store"
)

// Options configure Open.
type Options struct {
	// ID restores the snapshot saved under it, when one exists. Empty
	// starts a new session.
	ID string
	// Snapshots persists published snapshots. Nil disables persistence.
	Snapshots *store.Snapshots
	Layout    anim.Layout
	// Clock drives stack positions. Nil rests every stack at its index.
	Clock *render.Clock
	// OnExitApp decides back presses at the root.
	OnExitApp func() bool
	// OnFocus observes focus changes.
	OnFocus func(focus.Event)
	Logger  *log.Logger
}

// Session is a mounted router and its renderer.
type Session struct {
	mu       sync.Mutex
	id       string
	restored bool
	doc      *flow.Document
	router   *router.Router
	renderer *render.Renderer
	signal   *backstack.Signal
	clock    *render.Clock
	snaps    *store.Snapshots
	logger   *log.Logger
	ctx      context.Context
	saveErr  error
}

// Open starts a session for doc. ctx bounds snapshot persistence for the
// lifetime of the session.
func Open(ctx context.Context, doc *flow.Document, opts Options) (*Session, error) {
	if doc == nil || doc.Root == nil {
		return nil, errors.New(errors.ErrCodeInvalidState, "flow has no root scene")
	}
	s := &Session{
		id:     opts.ID,
		doc:    doc,
		signal: &backstack.Signal{},
		clock:  opts.Clock,
		snaps:  opts.Snapshots,
		logger: opts.Logger,
		ctx:    ctx,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.id == "" {
		s.id = store.NewSessionID()
	}

	root := doc.Root
	if s.snaps != nil && opts.ID != "" {
		rec, ok, err := s.snaps.Load(ctx, opts.ID)
		if err != nil {
			return nil, err
		}
		if ok {
			root = rec.Root
			s.restored = true
			s.logger.Debug("restored snapshot", "session", s.id, "revision", rec.Revision)
		}
	}

	r, err := router.New(root, router.Options{
		Vocabulary: doc.VocabularyOrDefault(),
		Reducer:    reducer.New(doc.Catalog()),
		OnExitApp:  opts.OnExitApp,
		OnFocus:    opts.OnFocus,
		Logger:     s.logger,
	})
	if err != nil {
		return nil, err
	}
	s.router = r

	ropts := []render.Option{
		render.WithNavigate(r.Dispatch),
		render.WithLayout(opts.Layout),
		render.WithLogger(s.logger),
	}
	if s.clock != nil {
		ropts = append(ropts, render.WithPositions(s.clock.Positions()))
	}
	s.renderer = render.New(ropts...)

	r.Subscribe(s.persist)
	r.Mount(s.signal)
	if s.clock != nil {
		s.clock.Sync(s.renderer.Render(r.State()))
	}
	return s, nil
}

func (s *Session) persist(state *nav.Node, _ router.Action) {
	if s.snaps == nil {
		return
	}
	if err := s.snaps.Save(s.ctx, s.id, s.router.Revision(), state); err != nil {
		s.saveErr = err
		s.logger.Warn("snapshot not saved", "session", s.id, "err", err)
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Restored reports whether Open resumed a saved snapshot.
func (s *Session) Restored() bool { return s.restored }

// Document returns the flow the session was opened with.
func (s *Session) Document() *flow.Document { return s.doc }

// State returns the current snapshot and its revision.
func (s *Session) State() (*nav.Node, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.router.State(), s.router.Revision()
}

// Dispatch sends action to the router.
func (s *Session) Dispatch(action router.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(action)
}

func (s *Session) dispatch(action router.Action) error {
	if err := s.router.Dispatch(action); err != nil {
		return err
	}
	s.sync()
	return nil
}

// Back presses the host back button. It reports whether anything handled
// the press.
func (s *Session) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	handled := s.signal.Press()
	s.sync()
	return handled
}

// Press activates a header button of the displayed frame.
func (s *Session) Press(side render.Side) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := ActiveHeader(s.renderer.Render(s.router.State()))
	if h == nil {
		return errors.New(errors.ErrCodeNotFound, "no header is displayed")
	}
	if err := s.renderer.Press(h, side); err != nil {
		return err
	}
	s.sync()
	return nil
}

// Frame renders the current snapshot.
func (s *Session) Frame() *render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer.Render(s.router.State())
}

// Find returns the scene with key in the current snapshot.
func (s *Session) Find(key string) *nav.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.router.Find(key)
}

// Signal returns the session's host back signal. Hosts may subscribe
// their own handlers; the newest subscriber sees presses first.
func (s *Session) Signal() *backstack.Signal { return s.signal }

// Renderer returns the session renderer.
func (s *Session) Renderer() *render.Renderer { return s.renderer }

// Clock returns the position clock, or nil.
func (s *Session) Clock() *render.Clock { return s.clock }

// Replay dispatches the flow's steps in order and reports the active path
// after each. It stops at the first failing step.
func (s *Session) Replay(steps []router.Action) ([]Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Step, 0, len(steps))
	for _, a := range steps {
		before := s.router.Revision()
		err := s.dispatch(a)
		step := Step{
			Action:  a,
			Changed: s.router.Revision() != before,
			Path:    nav.ActivePath(s.router.State()).Keys(),
			Err:     err,
		}
		out = append(out, step)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// Step is the outcome of one replayed action.
type Step struct {
	Action  router.Action
	Changed bool
	Path    []string
	Err     error
}

// Close unmounts the router and reports the last persistence error.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.router.Unmount()
	return s.saveErr
}

func (s *Session) sync() {
	if s.clock != nil {
		s.clock.Sync(s.renderer.Render(s.router.State()))
	}
}

// ActiveHeader returns the header drawn for the active leaf of f, or nil
// when none is displayed. A header whose scene hides the nav bar is only
// displayed while its stack is still moving.
func ActiveHeader(f *render.Frame) *render.Header {
	var owner *render.Frame
	f.Walk(func(f *render.Frame) {
		if f.Header != nil {
			owner = f
		}
	})
	if owner == nil {
		return nil
	}
	if owner.Header.Props.HideNavBar && owner.Position == float64(owner.Index) {
		return nil
	}
	return owner.Header
}
