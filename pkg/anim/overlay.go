package anim

// OverlayOpacity is the header and shadow cross-fade: opacity [0, 0.2, 1,
// 0.2, 0] over [index-1, index-0.5, index, index+0.5, index+1]. It rises
// and falls more sharply than the card opacity curve.
func OverlayOpacity(props SceneProps) float64 {
	i := float64(props.Index)
	return Interpolate(props.Position,
		[]float64{i - 1, i - 0.5, i, i + 0.5, i + 1},
		[]float64{0, 0.2, 1, 0.2, 0})
}
