package anim

import "time"

// DefaultDuration is used when neither the scene nor its ancestors set a
// duration.
const DefaultDuration = 250 * time.Millisecond

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// EaseInOut is a symmetric cubic ease.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2
	return 0.5*f*f*f + 1
}

// Position is a sampled position signal. It either rests at a value or
// moves linearly (after easing) towards a target over a fixed duration. The
// clock is supplied by the caller on every call, so a Position never starts
// goroutines or timers of its own.
type Position struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	easing   Easing
}

// NewPosition returns a Position resting at v.
func NewPosition(v float64) *Position {
	return &Position{from: v, to: v, easing: EaseInOut}
}

// SetValue jumps to v and cancels any running animation.
func (p *Position) SetValue(v float64) {
	p.from, p.to, p.duration = v, v, 0
}

// AnimateTo starts moving from the current value towards to.
func (p *Position) AnimateTo(to float64, d time.Duration, now time.Time) {
	if d <= 0 {
		p.SetValue(to)
		return
	}
	p.from = p.Value(now)
	p.to = to
	p.start = now
	p.duration = d
}

// Value samples the signal at now.
func (p *Position) Value(now time.Time) float64 {
	if p.duration <= 0 {
		return p.to
	}
	elapsed := now.Sub(p.start)
	if elapsed >= p.duration {
		return p.to
	}
	if elapsed <= 0 {
		return p.from
	}
	t := float64(elapsed) / float64(p.duration)
	if p.easing != nil {
		t = p.easing(t)
	}
	return p.from + t*(p.to-p.from)
}

// Target returns the value the signal is resting at or moving towards.
func (p *Position) Target() float64 { return p.to }

// Settled reports whether the signal has reached its target at now.
func (p *Position) Settled(now time.Time) bool {
	return p.duration <= 0 || now.Sub(p.start) >= p.duration
}

// ApplyFunc drives a level's position towards its newly selected index.
type ApplyFunc func(p *Position, index int, now time.Time)

// TimingFor returns an ApplyFunc that jumps to the index when d is zero and
// animates over d otherwise.
func TimingFor(d time.Duration) ApplyFunc {
	return func(p *Position, index int, now time.Time) {
		if d == 0 {
			p.SetValue(float64(index))
			return
		}
		p.AnimateTo(float64(index), d, now)
	}
}
