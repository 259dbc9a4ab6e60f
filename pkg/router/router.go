package router

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/matzehuels/scenetree/pkg/backstack"
	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/focus"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/observability"
)

// Reducer produces the next snapshot for an action. Returning the state
// pointer unchanged means nothing happened; a different pointer is
// published as is.
type Reducer func(state *nav.Node, action Action) (*nav.Node, error)

// Listener is notified of every published snapshot together with the
// normalized action that produced it.
type Listener func(state *nav.Node, action Action)

// Options configure a Router. Reducer is required.
type Options struct {
	// Vocabulary normalizes action types. Nil uses DefaultVocabulary.
	Vocabulary Vocabulary
	// Reducer produces snapshots.
	Reducer Reducer
	// Dispatch forwards every normalized action to a host-side store
	// before it is reduced.
	Dispatch func(Action)
	// BackHandler replaces the default back handling when set.
	BackHandler func() bool
	// OnBack is notified after a back press popped a scene.
	OnBack func()
	// OnExitApp decides back presses at the root.
	OnExitApp func() bool
	// OnFocus is notified of focus changes.
	OnFocus func(focus.Event)
	// Actions is bound on Mount. Nil creates a registry owned by the router.
	Actions *Actions
	// Logger receives dispatch failures. Nil uses log.Default().
	Logger *log.Logger
}

// Router owns the current navigation snapshot.
type Router struct {
	id         uuid.UUID
	vocabulary Vocabulary
	reducer    Reducer
	external   func(Action)
	logger     *log.Logger

	state       *nav.Node
	queue       []Action
	dispatching bool
	focus       *focus.Dispatcher
	onFocus     func(focus.Event)
	listeners   []listenerEntry
	nextID      int

	back        *backstack.Controller
	actions     *Actions
	token       any
	unsubscribe func()
	mounted     *atomic.Bool
	revision    *atomic.Int64
}

type listenerEntry struct {
	id int
	fn Listener
}

// New creates a Router holding initial as its first snapshot. The initial
// snapshot is observed for focus immediately.
func New(initial *nav.Node, opts Options) (*Router, error) {
	if opts.Reducer == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "router requires a reducer")
	}
	if initial == nil {
		return nil, errors.New(errors.ErrCodeInvalidState, "router requires an initial snapshot")
	}

	r := &Router{
		id:         uuid.New(),
		vocabulary: opts.Vocabulary,
		reducer:    opts.Reducer,
		external:   opts.Dispatch,
		logger:     opts.Logger,
		state:      initial,
		onFocus:    opts.OnFocus,
		actions:    opts.Actions,
		mounted:    atomic.NewBool(false),
		revision:   atomic.NewInt64(0),
	}
	if r.vocabulary == nil {
		r.vocabulary = DefaultVocabulary
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	if r.actions == nil {
		r.actions = NewActions()
	}
	r.focus = focus.New(r.focused)
	r.back = &backstack.Controller{
		Popper:   backstack.PopperFunc(r.pop),
		Override: opts.BackHandler,
		OnBack:   opts.OnBack,
		ExitApp:  opts.OnExitApp,
		Logger:   r.logger,
	}

	r.dispatching = true
	r.focus.Observe(initial)
	r.drain()
	r.dispatching = false
	return r, nil
}

// ID identifies the router instance.
func (r *Router) ID() uuid.UUID { return r.id }

// State returns the current snapshot.
func (r *Router) State() *nav.Node { return r.state }

// Revision counts the snapshots published since New.
func (r *Router) Revision() int64 { return r.revision.Load() }

// Actions returns the registry the router binds on Mount.
func (r *Router) Actions() *Actions { return r.actions }

// Mounted reports whether the router is mounted.
func (r *Router) Mounted() bool { return r.mounted.Load() }

// Dispatch normalizes and reduces action. When called while another
// action is being processed, action is queued and Dispatch returns nil;
// errors of queued actions are logged.
func (r *Router) Dispatch(action Action) error {
	r.queue = append(r.queue, action)
	if r.dispatching {
		return nil
	}
	r.dispatching = true
	defer func() { r.dispatching = false }()

	next := r.queue[0]
	r.queue = r.queue[1:]
	err := r.apply(next)
	r.drain()
	return err
}

func (r *Router) drain() {
	for len(r.queue) > 0 {
		next := r.queue[0]
		r.queue = r.queue[1:]
		if err := r.apply(next); err != nil {
			r.logger.Warn("queued action failed", "type", next.Type, "err", err)
		}
	}
}

func (r *Router) apply(action Action) (err error) {
	start := time.Now()
	normalized := r.vocabulary.Normalize(action)
	changed := false
	defer func() {
		observability.Navigation().OnDispatch(normalized.Type, changed, time.Since(start), err)
	}()

	if r.external != nil {
		r.external(normalized)
	}

	next, err := r.reducer(r.state, normalized)
	if err != nil {
		return err
	}
	if next == nil {
		return errors.New(errors.ErrCodeInvalidState, "reducer returned no snapshot for %q", normalized.Type)
	}
	if next == r.state {
		return nil
	}
	changed = true
	r.publish(next, normalized)
	return nil
}

func (r *Router) publish(next *nav.Node, cause Action) {
	r.state = next
	r.revision.Inc()
	r.focus.Observe(next)

	listeners := make([]listenerEntry, len(r.listeners))
	copy(listeners, r.listeners)
	for _, l := range listeners {
		l.fn(next, cause)
	}
}

// focused relays a focus change to the host and dispatches it as a FOCUS
// action. It always runs inside a dispatch, so the action is queued.
func (r *Router) focused(e focus.Event) {
	observability.Navigation().OnFocus(e.Scene.Key)
	if r.onFocus != nil {
		r.onFocus(e)
	}
	if err := r.Dispatch(Action{Type: Focus, Key: e.Scene.Key, Scene: e.Scene}); err != nil {
		r.logger.Warn("focus dispatch failed", "scene", e.Scene.Key, "err", err)
	}
}

// Subscribe registers fn for published snapshots and returns a function
// that removes it.
func (r *Router) Subscribe(fn Listener) (unsubscribe func()) {
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range r.listeners {
			if l.id == id {
				r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

// Find returns the scene with the given key in the current snapshot.
func (r *Router) Find(key string) *nav.Node {
	return nav.Find(r.state, key)
}

// HandleBack handles one back press. See [backstack.Controller.HandleBack].
func (r *Router) HandleBack() bool {
	handled := r.back.HandleBack()
	observability.Navigation().OnBack(handled)
	return handled
}

// pop dispatches BACK_ACTION. Inside a dispatch the pop is queued, so the
// current snapshot is reduced first to learn whether it can pop at all.
func (r *Router) pop() error {
	action := Action{Type: BackAction}
	if r.dispatching {
		if _, err := r.reducer(r.state, r.vocabulary.Normalize(action)); err != nil {
			return err
		}
	}
	return r.Dispatch(action)
}

// Mount binds the router's Actions and, when signal is non-nil, subscribes
// HandleBack to it. Mounting again first unmounts.
func (r *Router) Mount(signal *backstack.Signal) {
	r.Unmount()
	r.token = r.actions.Bind(r.Dispatch, r.Find)
	if signal != nil {
		r.unsubscribe = signal.Subscribe(r.HandleBack)
	}
	r.mounted.Store(true)
	r.logger.Debug("router mounted", "id", r.id)
}

// Unmount reverses Mount. It is safe to call on an unmounted router.
func (r *Router) Unmount() {
	if !r.mounted.CompareAndSwap(true, false) {
		return
	}
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
	r.actions.Unbind(r.token)
	r.token = nil
	r.logger.Debug("router unmounted", "id", r.id)
}
