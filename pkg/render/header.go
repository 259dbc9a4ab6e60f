package render

import (
	"maps"
	"strings"

	"github.com/matzehuels/scenetree/pkg/anim"
	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/router"
)

func (ev *evaluation) header(level nav.Chain, position float64) *Header {
	n := level.Node()
	if !nav.RendersHeader(ev.root, n) {
		return nil
	}
	leaf := n.Selected()
	active := level.Append(leaf)

	// The outgoing scene is the recorded From, else the previous sibling.
	// The two differ while a gesture has moved the position but not the
	// index.
	from := n.From
	if from == nil && n.Index > 0 {
		from = n.Children[n.Index-1]
	}
	crossing := from != nil && !sameHint(from.HideNavBar, leaf.HideNavBar)
	hide := active.HideNavBar()
	if hide && !crossing {
		return nil
	}

	h := &Header{
		Opacity: anim.OverlayOpacity(anim.SceneProps{Key: leaf.Key, Index: n.Index, Position: position, Layout: ev.layout}),
		Back:    n.Index > 0,
	}
	component := ev.components[leaf.Component]

	if custom, ok := component.(NavigationBarRenderer); ok {
		props := mergeHeader(leaf)
		props.HideNavBar = hide
		h.Host = leaf.Component
		h.Custom = custom.RenderNavigationBar(props)
		h.Props = props
		h.Title = title(leaf, props)
		return h
	}

	h.Host = ev.navBar
	for _, host := range []*string{leaf.NavBar, n.NavBar} {
		if host != nil && *host != "" {
			h.Host = *host
			break
		}
	}

	props := mergeHeader(n, leaf)
	props.HideNavBar = hide
	if c, ok := component.(RightHandler); ok {
		props.OnRight = c.OnRight()
	}
	if c, ok := component.(LeftHandler); ok {
		props.OnLeft = c.OnLeft()
	}
	applyButtonPrecedence(&props)

	h.Props = props
	h.Title = title(leaf, props)
	return h
}

func sameHint(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func title(leaf *nav.Node, props HeaderProps) string {
	if leaf.GetTitle != nil {
		return leaf.GetTitle(leaf)
	}
	return props.Title
}

// mergeHeader layers the header inputs of nodes, later nodes overriding
// earlier ones wherever they set a value.
func mergeHeader(nodes ...*nav.Node) HeaderProps {
	var p HeaderProps
	for _, n := range nodes {
		p.Key = n.Key
		set(&p.Title, n.Title)
		set(&p.LeftTitle, n.LeftTitle)
		set(&p.LeftButtonImage, n.LeftButtonImage)
		set(&p.OnLeft, n.OnLeft)
		set(&p.RightTitle, n.RightTitle)
		set(&p.RightButtonImage, n.RightButtonImage)
		set(&p.OnRight, n.OnRight)
		if n.LeftButton != nil {
			p.LeftButton = n.LeftButton
		}
		if n.RightButton != nil {
			p.RightButton = n.RightButton
		}
		if len(n.Props) > 0 {
			if p.Props == nil {
				p.Props = make(map[string]any, len(n.Props))
			}
			maps.Copy(p.Props, n.Props)
		}
	}
	return p
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// applyButtonPrecedence resolves conflicting button settings per side: a
// title or image together with a handler drops the descriptor, and a
// remaining descriptor drops the title, image and handler.
func applyButtonPrecedence(p *HeaderProps) {
	if (p.LeftTitle != "" || p.LeftButtonImage != "") && p.OnLeft != "" {
		p.LeftButton = nil
	}
	if (p.RightTitle != "" || p.RightButtonImage != "") && p.OnRight != "" {
		p.RightButton = nil
	}
	if p.RightButton != nil {
		p.RightTitle, p.OnRight, p.RightButtonImage = "", "", ""
	}
	if p.LeftButton != nil {
		p.LeftTitle, p.OnLeft, p.LeftButtonImage = "", "", ""
	}
}

// Side selects a header button.
type Side int

const (
	Left Side = iota
	Right
)

// Press dispatches the action of a header button through the navigate
// callback: the descriptor's action, else the handler. An unconfigured
// left button of a header that can go back dispatches BACK_ACTION.
//
// A button action is an action type optionally followed by a space and a
// scene key, as in "open compose".
func (r *Renderer) Press(h *Header, side Side) error {
	if h == nil {
		return errors.New(errors.ErrCodeInvalidInput, "no header to press")
	}
	if r.navigate == nil {
		return errors.New(errors.ErrCodeInvalidConfig, "renderer has no navigate callback")
	}

	button, handler := h.Props.LeftButton, h.Props.OnLeft
	if side == Right {
		button, handler = h.Props.RightButton, h.Props.OnRight
	}
	switch {
	case button != nil && button.Action != "":
		return r.navigate(buttonAction(button.Action))
	case handler != "":
		return r.navigate(buttonAction(handler))
	case side == Left && h.Back:
		return r.navigate(router.Action{Type: router.BackAction})
	}
	return errors.New(errors.ErrCodeInvalidAction, "header button has no action")
}

func buttonAction(s string) router.Action {
	typ, key, _ := strings.Cut(strings.TrimSpace(s), " ")
	return router.Action{Type: typ, Key: strings.TrimSpace(key)}
}
