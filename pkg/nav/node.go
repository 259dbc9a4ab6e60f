package nav

import (
	"github.com/matzehuels/scenetree/pkg/anim"
)

// Node is one scene of a navigation tree.
//
// Fields tagged "-" carry host-supplied behaviour. They are never
// serialized and are preserved by [Clone].
type Node struct {
	Key       string  `json:"key" toml:"key"`
	Title     string  `json:"title,omitempty" toml:"title,omitempty"`
	Component string  `json:"component,omitempty" toml:"component,omitempty"`
	Tabs      bool    `json:"tabs,omitempty" toml:"tabs,omitempty"`
	Index     int     `json:"index" toml:"index"`
	Children  []*Node `json:"children,omitempty" toml:"children,omitempty"`

	// Inheritable hints. Nil means unset.
	HideNavBar *bool   `json:"hideNavBar,omitempty" toml:"hide_nav_bar"`
	HideTabBar *bool   `json:"hideTabBar,omitempty" toml:"hide_tab_bar"`
	NavBar     *string `json:"navBar,omitempty" toml:"nav_bar"`
	Duration   *int    `json:"duration,omitempty" toml:"duration"` // milliseconds
	Animation  *string `json:"animation,omitempty" toml:"animation"`
	Direction  *string `json:"direction,omitempty" toml:"direction"`

	LeftTitle        string  `json:"leftTitle,omitempty" toml:"left_title,omitempty"`
	LeftButtonImage  string  `json:"leftButtonImage,omitempty" toml:"left_button_image,omitempty"`
	LeftButton       *Button `json:"leftButton,omitempty" toml:"left_button"`
	OnLeft           string  `json:"onLeft,omitempty" toml:"on_left,omitempty"`
	RightTitle       string  `json:"rightTitle,omitempty" toml:"right_title,omitempty"`
	RightButtonImage string  `json:"rightButtonImage,omitempty" toml:"right_button_image,omitempty"`
	RightButton      *Button `json:"rightButton,omitempty" toml:"right_button"`
	OnRight          string  `json:"onRight,omitempty" toml:"on_right,omitempty"`

	Style       map[string]any `json:"style,omitempty" toml:"style,omitempty"`
	SceneStyle  map[string]any `json:"sceneStyle,omitempty" toml:"scene_style,omitempty"`
	SceneShadow *Shadow        `json:"sceneShadow,omitempty" toml:"scene_shadow"`
	Props       map[string]any `json:"props,omitempty" toml:"props,omitempty"`

	// From is the previously selected child of this level. It bridges a
	// single transition and is not part of the tree structure.
	From *Node `json:"-" toml:"-"`

	AnimationStyle anim.Source         `json:"-" toml:"-"`
	PanHandlers    *anim.PanHandlers   `json:"-" toml:"-"`
	ApplyAnimation anim.ApplyFunc      `json:"-" toml:"-"`
	GetSceneStyle  anim.SceneStyleFunc `json:"-" toml:"-"`
	GetPanHandlers anim.PanFunc        `json:"-" toml:"-"`
	GetTitle       TitleFunc           `json:"-" toml:"-"`
}

// Button is an explicit header button descriptor. Setting one on a node
// replaces the title, image and handler of that side.
type Button struct {
	Label  string `json:"label,omitempty" toml:"label,omitempty"`
	Icon   string `json:"icon,omitempty" toml:"icon,omitempty"`
	Action string `json:"action,omitempty" toml:"action,omitempty"`
}

// Shadow is the edge shadow drawn beside a content scene.
type Shadow struct {
	Width    float64 `json:"width" toml:"width"`
	ImageURI string  `json:"imageURI,omitempty" toml:"image_uri,omitempty"`
}

// TitleFunc computes the header title of a scene.
type TitleFunc func(n *Node) string

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// IsContent reports whether n renders content through a component.
func (n *Node) IsContent() bool { return n.Component != "" }

// Selected returns the child chosen by Index, or nil for a leaf. An index
// outside the children range panics.
func (n *Node) Selected() *Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return n.Children[n.Index]
}

// DisplayTitle returns the header title of n, consulting GetTitle first.
func (n *Node) DisplayTitle() string {
	if n.GetTitle != nil {
		return n.GetTitle(n)
	}
	return n.Title
}

// ChildIndex returns the position of the child with the given key, or -1.
func (n *Node) ChildIndex(key string) int {
	for i, c := range n.Children {
		if c.Key == key {
			return i
		}
	}
	return -1
}

// Clone returns a shallow copy of n with its own Children slice, so the
// copy can be given new children without touching n. Children themselves
// are shared.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		copy(c.Children, n.Children)
	}
	return &c
}

// Bool returns a pointer to v, for setting hints.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for setting hints.
func String(v string) *string { return &v }

// Int returns a pointer to v, for setting hints.
func Int(v int) *int { return &v }
