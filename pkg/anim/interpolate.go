package anim

// Interpolate maps x through the piecewise-linear function defined by the
// control points (in[i], out[i]). Values outside the input range are clamped
// to the first or last output. in must be non-decreasing and the same length
// as out; Interpolate panics otherwise.
func Interpolate(x float64, in, out []float64) float64 {
	if len(in) != len(out) || len(in) == 0 {
		panic("anim: interpolation ranges must be non-empty and of equal length")
	}
	if x <= in[0] {
		return out[0]
	}
	last := len(in) - 1
	if x >= in[last] {
		return out[last]
	}
	for i := 1; i <= last; i++ {
		if x > in[i] {
			continue
		}
		span := in[i] - in[i-1]
		if span == 0 {
			return out[i]
		}
		t := (x - in[i-1]) / span
		return out[i-1] + t*(out[i]-out[i-1])
	}
	return out[last]
}

// neighbours returns the three-point input range [index-1, index, index+1].
func neighbours(index int) []float64 {
	i := float64(index)
	return []float64{i - 1, i, i + 1}
}
