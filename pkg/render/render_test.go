package render

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scenetree/pkg/anim"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/router"
)

var layout = anim.Layout{Width: 400, Height: 800}

func noop(router.Action) error { return nil }

func newTestRenderer(opts ...Option) *Renderer {
	base := []Option{WithLayout(layout), WithNavigate(noop), WithLogger(log.New(io.Discard))}
	return New(append(base, opts...)...)
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func twoCards() *nav.Node {
	return &nav.Node{Key: "stack", Index: 1, Children: []*nav.Node{
		{Key: "list", Title: "List"},
		{Key: "detail", Title: "Detail"},
	}}
}

func TestRenderConfigurationErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	if f := New(WithLogger(logger), WithNavigate(noop)).Render(nil); f != nil {
		t.Error("Render(nil) should return nil")
	}
	if f := New(WithLogger(logger)).Render(twoCards()); f != nil {
		t.Error("Render without navigate should return nil")
	}
	if got := strings.Count(buf.String(), "must not be nil"); got != 2 {
		t.Errorf("logged %d configuration errors, want 2:\n%s", got, buf.String())
	}
}

func TestRenderStackCards(t *testing.T) {
	f := newTestRenderer().Render(twoCards())

	if f.Kind != KindStack || len(f.Cards) != 2 || f.Position != 1 {
		t.Fatalf("frame = %s with %d cards at %v", f.Kind, len(f.Cards), f.Position)
	}

	top := f.Cards[1].Style
	if top != anim.Identity() {
		t.Errorf("top card style = %+v, want identity", top)
	}
	under := f.Cards[0].Style
	if under.Opacity != 0 || under.Scale != 0.95 || under.TranslateX != -10 {
		t.Errorf("covered card style = %+v", under)
	}

	for _, c := range f.Cards {
		if !c.State.IsActive || c.State.HideNavBar == nil || *c.State.HideNavBar {
			t.Errorf("card %s state = %+v", c.Key, c.State)
		}
		if c.Frame.Kind != KindContent {
			t.Errorf("card %s frame kind = %s", c.Key, c.Frame.Kind)
		}
	}
	if f.Active().Key != "detail" {
		t.Errorf("Active() = %q, want detail", f.Active().Key)
	}
	if !f.Cards[1].Pan.Enabled || f.Cards[0].Pan.Enabled {
		t.Error("only cards above the root should be dismissable")
	}
}

func TestRenderInactiveCardState(t *testing.T) {
	root := &nav.Node{Key: "outer", Children: []*nav.Node{
		{Key: "inner", HideNavBar: nav.Bool(true), Children: []*nav.Node{{Key: "leaf"}}},
	}}
	f := newTestRenderer().Render(root)

	state := f.Cards[0].State
	if state.IsActive || state.HideNavBar != nil || state.HideTabBar != nil {
		t.Errorf("card over a nested stack state = %+v, want inactive without hints", state)
	}
}

func TestRenderSelectors(t *testing.T) {
	tests := []struct {
		name  string
		level *nav.Node
		check func(anim.Style) bool
	}{
		{
			"inherited fade",
			&nav.Node{Key: "s", Animation: nav.String("fade")},
			func(s anim.Style) bool { return approx(s.Opacity, 0) && s.TranslateX == 0 },
		},
		{
			"leftToRight",
			&nav.Node{Key: "s", Direction: nav.String("leftToRight")},
			func(s anim.Style) bool { return s.TranslateX == -layout.Width },
		},
		{
			"direction overrides animation",
			&nav.Node{Key: "s", Animation: nav.String("fade"), Direction: nav.String("vertical")},
			func(s anim.Style) bool { return s.TranslateY == layout.Height },
		},
		{
			"unknown falls back to horizontal",
			&nav.Node{Key: "s", Animation: nav.String("spin")},
			func(s anim.Style) bool { return s.TranslateX == layout.Width },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.level.Index = 1
			tt.level.Children = []*nav.Node{{Key: "a"}, {Key: "b"}}
			// position 0 puts card b one step before its index
			r := newTestRenderer(WithPositions(func(nav.Chain) float64 { return 0 }))
			got := r.Render(tt.level).Cards[1].Style
			if !tt.check(got) {
				t.Errorf("style = %+v", got)
			}
		})
	}
}

func TestRenderAnimationStyleSource(t *testing.T) {
	var seen anim.SceneProps
	root := twoCards()
	root.Children[1].AnimationStyle = anim.StyleFunc(func(p anim.SceneProps) anim.Style {
		seen = p
		return anim.Style{Opacity: 0.5}
	})
	f := newTestRenderer().Render(root)

	for _, c := range f.Cards {
		if c.Style.Opacity != 0.5 {
			t.Errorf("card %s opacity = %v, want leaf's style", c.Key, c.Style.Opacity)
		}
	}
	if seen.Layout != layout {
		t.Errorf("style function props = %+v", seen)
	}
}

func TestRenderPanHandlers(t *testing.T) {
	root := twoCards()
	root.Direction = nav.String("vertical")
	f := newTestRenderer().Render(root)
	if f.Cards[1].Pan.Axis != anim.AxisVertical || f.Cards[1].Pan.Distance != layout.Height {
		t.Errorf("vertical pan = %+v", f.Cards[1].Pan)
	}

	root = twoCards()
	root.Children[0].GetPanHandlers = func(p anim.SceneProps, direction string) anim.PanHandlers {
		return anim.PanHandlers{Distance: 7}
	}
	f = newTestRenderer().Render(root)
	if f.Cards[0].Pan.Distance != 7 {
		t.Errorf("scene hook pan = %+v", f.Cards[0].Pan)
	}

	root.Children[1].PanHandlers = &anim.PanHandlers{Distance: 3}
	f = newTestRenderer().Render(root)
	if f.Cards[0].Pan.Distance != 3 || f.Cards[1].Pan.Distance != 3 {
		t.Error("leaf pan handlers should win")
	}
}

func TestRenderSceneStyleHook(t *testing.T) {
	root := twoCards()
	var got anim.CardState
	root.Children[1].GetSceneStyle = func(p anim.SceneProps, s anim.CardState) map[string]any {
		got = s
		return map[string]any{"index": p.Index}
	}
	root.Children[1].HideTabBar = nav.Bool(true)
	f := newTestRenderer().Render(root)

	if f.Cards[1].SceneStyle["index"] != 1 {
		t.Errorf("scene style = %v", f.Cards[1].SceneStyle)
	}
	if !got.IsActive || got.HideTabBar == nil || !*got.HideTabBar {
		t.Errorf("hook state = %+v", got)
	}
}

func TestRenderTiming(t *testing.T) {
	root := twoCards()
	f := newTestRenderer().Render(root)
	if f.Duration != anim.DefaultDuration || f.Apply == nil {
		t.Errorf("default duration = %v", f.Duration)
	}

	root.Duration = nav.Int(400)
	root.Children[1].Duration = nav.Int(0)
	f = newTestRenderer().Render(root)
	if f.Duration != 0 {
		t.Errorf("selected duration = %v, want 0", f.Duration)
	}
	p := anim.NewPosition(0)
	now := time.Now()
	f.Apply(p, 1, now)
	if p.Value(now) != 1 {
		t.Error("zero duration should jump the position")
	}

	called := false
	root.ApplyAnimation = func(*anim.Position, int, time.Time) { called = true }
	f = newTestRenderer().Render(root)
	f.Apply(p, 0, now)
	if !called {
		t.Error("custom ApplyAnimation should win over duration")
	}
}

func TestRenderStyle(t *testing.T) {
	root := twoCards()
	root.Style = map[string]any{"bg": "level"}
	if got := newTestRenderer().Render(root).Style["bg"]; got != "level" {
		t.Errorf("style = %v, want level", got)
	}
	root.Children[1].Style = map[string]any{"bg": "child"}
	if got := newTestRenderer().Render(root).Style["bg"]; got != "child" {
		t.Errorf("style = %v, want child", got)
	}
}

func TestRenderContentShadow(t *testing.T) {
	page := &nav.Node{Key: "page", Component: "Page", SceneShadow: &nav.Shadow{Width: 8}}
	f := newTestRenderer().Render(page)

	if f.Kind != KindContent || f.Host != "Page" {
		t.Fatalf("frame = %s on %q", f.Kind, f.Host)
	}
	if f.Width != layout.Width+8 || f.Shadow.Left != -8 || f.Shadow.ImageURI != DefaultShadowImage {
		t.Errorf("shadow = %+v, width %v", f.Shadow, f.Width)
	}
	if f.Shadow.Opacity != 1 {
		t.Errorf("resting shadow opacity = %v, want 1", f.Shadow.Opacity)
	}

	page.SceneShadow.ImageURI = "shadow.png"
	if got := newTestRenderer().Render(page).Shadow.ImageURI; got != "shadow.png" {
		t.Errorf("shadow image = %q", got)
	}
}

func TestRenderTabs(t *testing.T) {
	root := &nav.Node{Key: "tabs", Tabs: true, Index: 1, Children: []*nav.Node{
		{Key: "home", Title: "Home"},
		{Key: "more", Title: "More", Children: []*nav.Node{{Key: "list", HideTabBar: nav.Bool(true)}}},
	}}
	f := newTestRenderer(WithTabBar("bottom")).Render(root)

	if f.Kind != KindTabs || f.Host != "bottom" {
		t.Fatalf("frame = %s on %q", f.Kind, f.Host)
	}
	if len(f.Tabs) != 2 || !f.Tabs[1].Selected || f.Tabs[1].Title != "More" {
		t.Errorf("tabs = %+v", f.Tabs)
	}
	if !f.HideTabBar {
		t.Error("HideTabBar should follow the active leaf")
	}
	if f.Selected == nil || f.Selected.Kind != KindStack || f.Selected.Key != "more" {
		t.Errorf("selected frame = %+v", f.Selected)
	}

	var keys []string
	f.Walk(func(fr *Frame) { keys = append(keys, fr.Key) })
	if strings.Join(keys, ",") != "tabs,more,list" {
		t.Errorf("Walk() = %v", keys)
	}
}

func TestRenderTabsSelectedSceneProps(t *testing.T) {
	root := &nav.Node{Key: "stack", Index: 1, Children: []*nav.Node{
		{Key: "intro"},
		{Key: "tabs", Tabs: true, Index: 1, Children: []*nav.Node{
			{Key: "home"},
			{Key: "more", SceneShadow: &nav.Shadow{Width: 4}},
		}},
	}}
	// the outer stack is halfway through its push
	positions := func(c nav.Chain) float64 {
		if len(c) == 1 {
			return 0.5
		}
		return float64(c.Node().Index)
	}
	f := newTestRenderer(WithPositions(positions)).Render(root)

	tabs := f.Cards[1].Frame
	if !approx(tabs.Shadow.Opacity, 0.2) {
		t.Errorf("tabs shadow opacity = %v, want 0.2", tabs.Shadow.Opacity)
	}
	more := tabs.Selected
	if more == nil || more.Key != "more" {
		t.Fatalf("selected = %+v", more)
	}
	if more.Shadow.Opacity != 1 || more.Shadow.Left != -4 {
		t.Errorf("selected tab shadow = %+v, want resting opacity 1", more.Shadow)
	}
}

func TestHeaderSuppression(t *testing.T) {
	root := &nav.Node{Key: "root", Index: 1, Children: []*nav.Node{
		{Key: "first", Children: []*nav.Node{{Key: "a"}}},
		{Key: "second", Children: []*nav.Node{{Key: "b"}}},
	}}
	f := newTestRenderer().Render(root)

	if f.Header != nil {
		t.Error("level above a nested stack should not render a header")
	}
	if f.Cards[0].Frame.Header != nil {
		t.Error("outgoing subtree should not render a header")
	}
	if f.Cards[1].Frame.Header == nil {
		t.Error("active stack should render the header")
	}
}

func TestHeaderHideNavBar(t *testing.T) {
	tests := []struct {
		name    string
		root    *nav.Node
		visible bool
	}{
		{
			"inherited hide",
			&nav.Node{Key: "s", HideNavBar: nav.Bool(true), Index: 1, Children: []*nav.Node{{Key: "a"}, {Key: "b"}}},
			false,
		},
		{
			"explicit show wins",
			&nav.Node{Key: "s", HideNavBar: nav.Bool(true), Index: 1, Children: []*nav.Node{{Key: "a"}, {Key: "b", HideNavBar: nav.Bool(false)}}},
			true,
		},
		{
			"hidden while crossing",
			&nav.Node{Key: "s", Index: 1, Children: []*nav.Node{{Key: "a"}, {Key: "b", HideNavBar: nav.Bool(true)}}},
			true,
		},
		{
			"hidden after crossing",
			&nav.Node{Key: "s", Index: 1, Children: []*nav.Node{{Key: "a", HideNavBar: nav.Bool(true)}, {Key: "b", HideNavBar: nav.Bool(true)}}},
			false,
		},
		{
			"explicit from",
			&nav.Node{Key: "s", From: &nav.Node{Key: "gone"}, Children: []*nav.Node{{Key: "a", HideNavBar: nav.Bool(true)}}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRenderer().Render(tt.root).Header
			if (h != nil) != tt.visible {
				t.Fatalf("header visible = %v, want %v", h != nil, tt.visible)
			}
		})
	}
}

func TestHeaderButtonPrecedence(t *testing.T) {
	button := &nav.Button{Label: "Save", Action: "save"}

	tests := []struct {
		name       string
		level      *nav.Node
		leaf       *nav.Node
		wantButton bool
		wantTitle  string
	}{
		{
			"descriptor clears title",
			&nav.Node{},
			&nav.Node{RightButton: button, RightTitle: "Edit", RightButtonImage: "edit.png"},
			true, "",
		},
		{
			"title with handler clears descriptor",
			&nav.Node{RightButton: button},
			&nav.Node{RightTitle: "Edit", OnRight: "edit"},
			false, "Edit",
		},
		{
			"title without handler loses",
			&nav.Node{RightTitle: "Edit"},
			&nav.Node{RightButton: button},
			true, "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.level.Key = "s"
			tt.leaf.Key = "leaf"
			tt.level.Children = []*nav.Node{tt.leaf}
			h := newTestRenderer().Render(tt.level).Header
			if (h.Props.RightButton != nil) != tt.wantButton || h.Props.RightTitle != tt.wantTitle {
				t.Errorf("props = %+v", h.Props)
			}
			if tt.wantButton && (h.Props.OnRight != "" || h.Props.RightButtonImage != "") {
				t.Errorf("descriptor should clear handler and image: %+v", h.Props)
			}
		})
	}
}

type saveScreen struct{}

func (saveScreen) OnRight() string { return "save" }
func (saveScreen) OnLeft() string  { return "cancel" }

type ownHeader struct{}

func (ownHeader) RenderNavigationBar(p HeaderProps) any { return "custom:" + p.Key }

func TestHeaderComponents(t *testing.T) {
	root := &nav.Node{Key: "s", Title: "Level", NavBar: nav.String("levelbar"), Children: []*nav.Node{
		{Key: "edit", Component: "Edit", RightTitle: "Save"},
	}}
	var pressed []string
	r := newTestRenderer(
		WithComponents(map[string]any{"Edit": saveScreen{}, "Own": ownHeader{}}),
		WithNavigate(func(a router.Action) error { pressed = append(pressed, a.Type); return nil }),
	)
	h := r.Render(root).Header

	if h.Host != "levelbar" || h.Title != "Level" {
		t.Errorf("header host %q title %q", h.Host, h.Title)
	}
	if h.Props.OnRight != "save" || h.Props.LeftButton != nil || h.Props.OnLeft != "cancel" {
		t.Errorf("component handlers not applied: %+v", h.Props)
	}
	r.Press(h, Right)
	r.Press(h, Left)
	if strings.Join(pressed, ",") != "save,cancel" {
		t.Errorf("pressed = %v", pressed)
	}

	root.Children[0].NavBar = nav.String("leafbar")
	root.Children[0].GetTitle = func(n *nav.Node) string { return "Editing " + n.Key }
	h = r.Render(root).Header
	if h.Host != "leafbar" || h.Title != "Editing edit" {
		t.Errorf("header host %q title %q", h.Host, h.Title)
	}

	root.Children[0].Component = "Own"
	h = r.Render(root).Header
	if h.Custom != "custom:edit" || h.Host != "Own" {
		t.Errorf("custom header = %+v", h)
	}
}

func TestHeaderOpacityAndBack(t *testing.T) {
	r := newTestRenderer(WithPositions(func(nav.Chain) float64 { return 0.5 }))
	h := r.Render(twoCards()).Header
	if !approx(h.Opacity, 0.2) {
		t.Errorf("header opacity = %v, want 0.2", h.Opacity)
	}
	if !h.Back {
		t.Error("header above the root should offer back")
	}

	var pressed router.Action
	r = newTestRenderer(WithNavigate(func(a router.Action) error { pressed = a; return nil }))
	if err := r.Press(h, Left); err != nil || pressed.Type != router.BackAction {
		t.Errorf("default left press = %+v, %v", pressed, err)
	}
	if err := r.Press(h, Right); err == nil {
		t.Error("unconfigured right press should fail")
	}
}

func TestPressButtonWithKey(t *testing.T) {
	root := &nav.Node{Key: "s", Children: []*nav.Node{
		{Key: "threads", RightTitle: "Compose", OnRight: "open compose"},
	}}
	var pressed router.Action
	r := newTestRenderer(WithNavigate(func(a router.Action) error { pressed = a; return nil }))
	if err := r.Press(r.Render(root).Header, Right); err != nil {
		t.Fatal(err)
	}
	if pressed.Type != "open" || pressed.Key != "compose" {
		t.Errorf("pressed = %+v, want open compose", pressed)
	}
}
