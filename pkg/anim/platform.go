package anim

// Platform supplies the slide and overlay interpolation used for the
// horizontal and vertical selectors. Hosts with native transitions plug
// their own implementation in; both methods share the (position, index)
// contract of every interpolator.
type Platform interface {
	ForHorizontal(props SceneProps) Style
	ForVertical(props SceneProps) Style
}

// CardStack is the default platform: the incoming card slides in from the
// trailing edge while the outgoing card recedes, dims and shrinks slightly.
type CardStack struct{}

// cardStackRange returns [index-1, index, index+0.99, index+1].
func cardStackRange(index int) []float64 {
	i := float64(index)
	return []float64{i - 1, i, i + 0.99, i + 1}
}

// ForHorizontal slides along the x axis.
func (CardStack) ForHorizontal(props SceneProps) Style {
	in := cardStackRange(props.Index)
	return Style{
		Opacity:    Interpolate(props.Position, in, []float64{1, 1, 0.3, 0}),
		Scale:      Interpolate(props.Position, in, []float64{1, 1, 0.95, 0.95}),
		TranslateX: Interpolate(props.Position, in, []float64{props.Layout.Width, 0, -10, -10}),
	}
}

// ForVertical slides along the y axis.
func (CardStack) ForVertical(props SceneProps) Style {
	in := cardStackRange(props.Index)
	return Style{
		Opacity:    Interpolate(props.Position, in, []float64{1, 1, 0.3, 0}),
		Scale:      Interpolate(props.Position, in, []float64{1, 1, 0.95, 0.95}),
		TranslateY: Interpolate(props.Position, in, []float64{props.Layout.Height, 0, -10, -10}),
	}
}

var _ Platform = CardStack{}
