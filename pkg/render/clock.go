package render

import (
	"strings"
	"time"

	"github.com/matzehuels/scenetree/pkg/anim"
	"github.com/matzehuels/scenetree/pkg/nav"
)

// Clock owns the position signal of every stack a host displays. Pass
// [Clock.Positions] to [WithPositions] and call [Clock.Sync] with each new
// frame so index changes start their transitions.
type Clock struct {
	positions map[string]*anim.Position
	now       func() time.Time
}

// NewClock creates a Clock reading time from now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{positions: make(map[string]*anim.Position), now: now}
}

func pathKey(path []string) string { return strings.Join(path, "/") }

// Positions samples the clock. Stacks the clock has not seen rest at their
// index.
func (c *Clock) Positions() PositionFunc {
	return func(path nav.Chain) float64 {
		if p, ok := c.positions[pathKey(path.Keys())]; ok {
			return p.Value(c.now())
		}
		return float64(path.Node().Index)
	}
}

// Sync drives every stack of f towards its index using the frame's timing,
// and forgets stacks that are no longer displayed.
func (c *Clock) Sync(f *Frame) {
	now := c.now()
	seen := make(map[string]bool)
	f.Walk(func(f *Frame) {
		if f.Kind != KindStack {
			return
		}
		key := pathKey(f.Path)
		seen[key] = true
		p, ok := c.positions[key]
		if !ok {
			c.positions[key] = anim.NewPosition(float64(f.Index))
			return
		}
		if p.Target() == float64(f.Index) {
			return
		}
		apply := f.Apply
		if apply == nil {
			apply = anim.TimingFor(f.Duration)
		}
		apply(p, f.Index, now)
	})
	for key := range c.positions {
		if !seen[key] {
			delete(c.positions, key)
		}
	}
}

// Drag sets the stack at path to v without animation. Gesture updates use
// it; they never change the tree.
func (c *Clock) Drag(path []string, v float64) {
	if p, ok := c.positions[pathKey(path)]; ok {
		p.SetValue(v)
	}
}

// Settle animates the stack at path to v over d.
func (c *Clock) Settle(path []string, v float64, d time.Duration) {
	if p, ok := c.positions[pathKey(path)]; ok {
		p.AnimateTo(v, d, c.now())
	}
}

// Settled reports whether no stack is moving.
func (c *Clock) Settled() bool {
	now := c.now()
	for _, p := range c.positions {
		if !p.Settled(now) {
			return false
		}
	}
	return true
}
