package render

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scenetree/pkg/anim"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/router"
)

// Default host names.
const (
	NavBarHost = "navbar"
	TabBarHost = "tabbar"
)

// DefaultShadowImage is drawn beside content scenes whose shadow sets no
// image.
const DefaultShadowImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAcAAAABCAYAAAASC7TOAAAAGXRFWHRTb2Z0d2FyZQBBZG9iZSBJbWFnZVJlYWR5ccllPAAAABZJREFUeNpiZIAAXiAWAmIxJCwEEGAABOEAdZCugfAAAAAASUVORK5CYII="

// PositionFunc samples the position signal of the stack at the end of
// path.
type PositionFunc func(path nav.Chain) float64

// Option configures a Renderer.
type Option func(*Renderer)

// Renderer evaluates snapshots into frames. Create one with [New].
type Renderer struct {
	animator   *anim.Animator
	recognizer anim.Recognizer
	components map[string]any
	layout     anim.Layout
	positions  PositionFunc
	navigate   func(router.Action) error
	navBar     string
	tabBar     string
	logger     *log.Logger
}

// WithAnimator sets the animator that styles cards.
func WithAnimator(a *anim.Animator) Option { return func(r *Renderer) { r.animator = a } }

// WithRecognizer sets the gesture recognizer for cards without their own
// pan handlers.
func WithRecognizer(rc anim.Recognizer) Option { return func(r *Renderer) { r.recognizer = rc } }

// WithComponents maps component names to content renderers.
func WithComponents(c map[string]any) Option { return func(r *Renderer) { r.components = c } }

// WithLayout sets the screen size frames are computed for.
func WithLayout(l anim.Layout) Option { return func(r *Renderer) { r.layout = l } }

// WithPositions sets the position signal sampled for each stack.
func WithPositions(fn PositionFunc) Option { return func(r *Renderer) { r.positions = fn } }

// WithNavigate sets the callback header buttons dispatch through.
func WithNavigate(fn func(router.Action) error) Option {
	return func(r *Renderer) { r.navigate = fn }
}

// WithNavBar sets the default header host.
func WithNavBar(host string) Option { return func(r *Renderer) { r.navBar = host } }

// WithTabBar sets the default tab bar host.
func WithTabBar(host string) Option { return func(r *Renderer) { r.tabBar = host } }

// WithLogger sets the logger for configuration errors.
func WithLogger(l *log.Logger) Option { return func(r *Renderer) { r.logger = l } }

// New creates a Renderer. Without WithPositions every stack rests at its
// index.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		animator: &anim.Animator{},
		navBar:   NavBarHost,
		tabBar:   TabBarHost,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	return r
}

// Layout returns the layout frames are computed for.
func (r *Renderer) Layout() anim.Layout { return r.layout }

// Render evaluates root. A missing snapshot or navigate callback is a
// configuration error: it is logged and Render returns nil.
func (r *Renderer) Render(root *nav.Node) *Frame {
	if root == nil || r.navigate == nil {
		r.logger.Error("navigation state and navigate callback must not be nil",
			"state", root != nil, "navigate", r.navigate != nil)
		return nil
	}
	ev := evaluation{Renderer: r, root: root, leaf: nav.ActiveLeaf(root)}
	return ev.node(nav.Chain{root}, anim.SceneProps{Key: root.Key, Layout: r.layout})
}

// evaluation is one pass over a snapshot.
type evaluation struct {
	*Renderer
	root *nav.Node
	leaf *nav.Node
}

func (ev *evaluation) node(chain nav.Chain, props anim.SceneProps) *Frame {
	n := chain.Node()
	f := &Frame{Key: n.Key, Path: chain.Keys(), Node: n, Index: n.Index}

	host := n.Component
	if n.Tabs && host == "" {
		host = ev.tabBar
	}
	if host != "" || n.IsLeaf() {
		ev.content(f, chain, host, props)
		return f
	}

	f.Kind = KindStack
	f.Position = ev.position(chain)
	ev.timing(f, chain)
	f.Style = n.Style
	if sel := n.Selected(); sel.Style != nil {
		f.Style = sel.Style
	}
	f.Cards = make([]Card, len(n.Children))
	for i, child := range n.Children {
		f.Cards[i] = ev.card(chain, child, anim.SceneProps{
			Key:      child.Key,
			Index:    i,
			Position: f.Position,
			Layout:   ev.layout,
		})
	}
	f.Header = ev.header(chain, f.Position)
	return f
}

func (ev *evaluation) content(f *Frame, chain nav.Chain, host string, props anim.SceneProps) {
	n := chain.Node()
	f.Kind = KindContent
	f.Host = host
	f.Props = n.Props
	f.SceneStyle = n.SceneStyle

	shadow := &Shadow{ImageURI: DefaultShadowImage, Opacity: anim.OverlayOpacity(props)}
	if s := n.SceneShadow; s != nil {
		shadow.Width = s.Width
		if s.ImageURI != "" {
			shadow.ImageURI = s.ImageURI
		}
	}
	shadow.Left = -shadow.Width
	f.Shadow = shadow
	f.Width = ev.layout.Width + shadow.Width

	if !n.Tabs || n.IsLeaf() {
		return
	}
	f.Kind = KindTabs
	active := append(slices.Clone(chain), nav.ActivePath(n)[1:]...)
	f.HideTabBar = active.HideTabBar()
	for i, c := range n.Children {
		f.Tabs = append(f.Tabs, Tab{Key: c.Key, Title: c.DisplayTitle(), Selected: i == n.Index})
	}
	sel := n.Selected()
	f.Selected = ev.node(chain.Append(sel), anim.SceneProps{
		Key:      sel.Key,
		Index:    n.Index,
		Position: float64(n.Index),
		Layout:   ev.layout,
	})
}

// position samples the stack at the end of chain.
func (ev *evaluation) position(chain nav.Chain) float64 {
	if ev.positions == nil {
		return float64(chain.Node().Index)
	}
	return ev.positions(chain)
}

// timing resolves how the stack's position follows a new index: a custom
// driver wins, then an explicit duration (zero jumps), then the default
// duration. The selected child is consulted before the level and its
// ancestors.
func (ev *evaluation) timing(f *Frame, chain nav.Chain) {
	selected := chain.Append(chain.Node().Selected())
	if fn := selected.ApplyAnimation(); fn != nil {
		f.Apply = fn
		return
	}
	d, ok := selected.Duration()
	if !ok {
		d = anim.DefaultDuration
	}
	f.Duration = d
	f.Apply = anim.TimingFor(d)
}

func (ev *evaluation) card(level nav.Chain, scene *nav.Node, props anim.SceneProps) Card {
	n := level.Node()
	child := n.Selected()
	leaf := nav.ActiveLeaf(child)

	state := anim.CardState{IsActive: child == leaf}
	if state.IsActive {
		active := level.Append(child)
		state.HideNavBar = nav.Bool(active.HideNavBar())
		state.HideTabBar = nav.Bool(active.HideTabBar())
	}

	cardChain := level.Append(scene)
	direction := cardChain.Direction()
	sel := anim.ChooseSelector(cardChain.Animation(), direction)

	c := Card{
		Key:   scene.Key,
		Index: props.Index,
		State: state,
		Style: ev.animator.CardStyle(sel, leaf.AnimationStyle, props),
	}
	switch {
	case leaf.PanHandlers != nil:
		c.Pan = *leaf.PanHandlers
	case scene.GetPanHandlers != nil:
		c.Pan = scene.GetPanHandlers(props, direction)
	default:
		c.Pan = anim.PanFor(ev.recognizer, direction, props)
	}
	if scene.GetSceneStyle != nil {
		c.SceneStyle = scene.GetSceneStyle(props, state)
	}
	c.Frame = ev.node(cardChain, props)
	return c
}
