package render

// Optional capabilities of scene components. Components are looked up by
// the node's Component name in the renderer's component table.

// NavigationBarRenderer is implemented by components that draw their own
// header. It is preferred over the nav bar host.
type NavigationBarRenderer interface {
	RenderNavigationBar(props HeaderProps) any
}

// LeftHandler supplies the action type dispatched by the header's left
// button.
type LeftHandler interface {
	OnLeft() string
}

// RightHandler supplies the action type dispatched by the header's right
// button.
type RightHandler interface {
	OnRight() string
}
