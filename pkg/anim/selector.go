package anim

// Selector names a card interpolator.
type Selector string

// Built-in selectors.
const (
	Horizontal  Selector = "horizontal"
	Vertical    Selector = "vertical"
	Fade        Selector = "fade"
	LeftToRight Selector = "leftToRight"
)

// Interpolator computes a card style from renderer props.
type Interpolator func(props SceneProps) Style

// ChooseSelector picks the selector for a scene. direction overrides
// animation when both are supplied.
func ChooseSelector(animation, direction string) Selector {
	if animation != "" && direction == "" {
		return Selector(animation)
	}
	return Selector(direction)
}

// FadeIn cross-fades the card: opacity [0, 1, 0.3] and scale [1, 1, 0.95]
// over [index-1, index, index+1], with no translation.
func FadeIn(props SceneProps) Style {
	in := neighbours(props.Index)
	return Style{
		Opacity: Interpolate(props.Position, in, []float64{0, 1, 0.3}),
		Scale:   Interpolate(props.Position, in, []float64{1, 1, 0.95}),
	}
}

// SlideFromLeft slides the card in from the left edge and holds it at rest
// for its own index and beyond.
func SlideFromLeft(props SceneProps) Style {
	s := Identity()
	s.TranslateX = Interpolate(props.Position, neighbours(props.Index), []float64{-props.Layout.Width, 0, 0})
	return s
}

// Animator chooses card styles. The zero value uses [CardStack] as its
// platform and only the built-in selectors.
type Animator struct {
	// Platform supplies the horizontal and vertical interpolators.
	Platform Platform
	// Custom registers additional named selectors. Entries here shadow
	// built-in names.
	Custom map[Selector]Interpolator
}

// Interpolate returns the style for sel. Unknown selectors fall back to the
// platform's horizontal interpolator.
func (a *Animator) Interpolate(sel Selector, props SceneProps) Style {
	if fn, ok := a.Custom[sel]; ok && fn != nil {
		return fn(props)
	}
	switch sel {
	case Vertical:
		return a.platform().ForVertical(props)
	case Fade:
		return FadeIn(props)
	case LeftToRight:
		return SlideFromLeft(props)
	default:
		return a.platform().ForHorizontal(props)
	}
}

// CardStyle returns override.Resolve(props) when the scene supplied its own
// style source, and the selector-derived style otherwise.
func (a *Animator) CardStyle(sel Selector, override Source, props SceneProps) Style {
	if override != nil {
		return override.Resolve(props)
	}
	return a.Interpolate(sel, props)
}

func (a *Animator) platform() Platform {
	if a == nil || a.Platform == nil {
		return CardStack{}
	}
	return a.Platform
}
