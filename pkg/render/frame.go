package render

import (
	"time"

	"github.com/matzehuels/scenetree/pkg/anim"
	"github.com/matzehuels/scenetree/pkg/nav"
)

// Kind distinguishes frame layouts.
type Kind string

const (
	KindContent Kind = "content"
	KindTabs    Kind = "tabs"
	KindStack   Kind = "stack"
)

// Frame is the rendered form of one node.
type Frame struct {
	Kind Kind      `json:"kind"`
	Key  string    `json:"key"`
	Path []string  `json:"path"`
	Node *nav.Node `json:"-"`

	// Content and tab frames.
	Host       string         `json:"host,omitempty"`
	Width      float64        `json:"width,omitempty"`
	SceneStyle map[string]any `json:"sceneStyle,omitempty"`
	Shadow     *Shadow        `json:"shadow,omitempty"`
	Props      map[string]any `json:"props,omitempty"`

	// Tab frames.
	Tabs       []Tab  `json:"tabs,omitempty"`
	HideTabBar bool   `json:"hideTabBar,omitempty"`
	Selected   *Frame `json:"selected,omitempty"`

	// Stack frames.
	Index    int            `json:"index"`
	Position float64        `json:"position"`
	Style    map[string]any `json:"style,omitempty"`
	Duration time.Duration  `json:"duration,omitempty"`
	Apply    anim.ApplyFunc `json:"-"`
	Cards    []Card         `json:"cards,omitempty"`
	Header   *Header        `json:"header,omitempty"`
}

// Shadow places the edge shadow image of a content frame.
type Shadow struct {
	Width    float64 `json:"width"`
	Left     float64 `json:"left"`
	ImageURI string  `json:"imageURI"`
	Opacity  float64 `json:"opacity"`
}

// Tab is one entry of a tab bar.
type Tab struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Selected bool   `json:"selected"`
}

// Card is one child of a stack frame.
type Card struct {
	Key        string           `json:"key"`
	Index      int              `json:"index"`
	State      anim.CardState   `json:"state"`
	Style      anim.Style       `json:"style"`
	SceneStyle map[string]any   `json:"sceneStyle,omitempty"`
	Pan        anim.PanHandlers `json:"pan"`
	Frame      *Frame           `json:"frame"`
}

// Header is the nav bar overlay of a stack frame.
type Header struct {
	// Host names the nav bar component, or the scene component when Custom
	// is set.
	Host string `json:"host"`
	// Custom is the output of the scene's own RenderNavigationBar.
	Custom  any         `json:"custom,omitempty"`
	Props   HeaderProps `json:"props"`
	Title   string      `json:"title"`
	Opacity float64     `json:"opacity"`
	// Back reports whether the level can pop, so the host may offer a
	// default back button.
	Back bool `json:"back"`
}

// HeaderProps are the merged header inputs of a level, its selected child
// and the active leaf.
type HeaderProps struct {
	Key              string         `json:"key"`
	Title            string         `json:"title,omitempty"`
	LeftTitle        string         `json:"leftTitle,omitempty"`
	LeftButtonImage  string         `json:"leftButtonImage,omitempty"`
	LeftButton       *nav.Button    `json:"leftButton,omitempty"`
	OnLeft           string         `json:"onLeft,omitempty"`
	RightTitle       string         `json:"rightTitle,omitempty"`
	RightButtonImage string         `json:"rightButtonImage,omitempty"`
	RightButton      *nav.Button    `json:"rightButton,omitempty"`
	OnRight          string         `json:"onRight,omitempty"`
	HideNavBar       bool           `json:"hideNavBar,omitempty"`
	Props            map[string]any `json:"props,omitempty"`
}

// Walk calls fn for f and every frame nested in it, depth first.
func (f *Frame) Walk(fn func(*Frame)) {
	if f == nil {
		return
	}
	fn(f)
	f.Selected.Walk(fn)
	for _, c := range f.Cards {
		c.Frame.Walk(fn)
	}
}

// Active returns the card selected by the frame's index, or nil.
func (f *Frame) Active() *Card {
	if f == nil || f.Index < 0 || f.Index >= len(f.Cards) {
		return nil
	}
	return &f.Cards[f.Index]
}
