package render

import (
	"testing"
	"time"

	"github.com/matzehuels/scenetree/pkg/anim"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/router"
)

func TestClock(t *testing.T) {
	now := time.Unix(0, 0)
	clock := NewClock(func() time.Time { return now })
	r := New(
		WithNavigate(func(router.Action) error { return nil }),
		WithPositions(clock.Positions()),
	)

	a, b := &nav.Node{Key: "a"}, &nav.Node{Key: "b"}
	root := &nav.Node{Key: "root", Duration: nav.Int(100), Children: []*nav.Node{a}}
	clock.Sync(r.Render(root))

	next := &nav.Node{Key: "root", Duration: nav.Int(100), Index: 1, Children: []*nav.Node{a, b}}
	f := r.Render(next)
	if f.Position != 0 {
		t.Fatalf("position before Sync = %v, want 0", f.Position)
	}
	clock.Sync(f)
	if clock.Settled() {
		t.Error("clock should be moving after an index change")
	}

	now = now.Add(50 * time.Millisecond)
	if got := r.Render(next).Position; got != 0.5 {
		t.Errorf("position at half time = %v, want 0.5", got)
	}

	now = now.Add(50 * time.Millisecond)
	if got := r.Render(next).Position; got != 1 {
		t.Errorf("position at end = %v, want 1", got)
	}
	if !clock.Settled() {
		t.Error("clock should be settled")
	}
}

func TestClockZeroDurationJumps(t *testing.T) {
	clock := NewClock(nil)
	r := New(WithNavigate(func(router.Action) error { return nil }), WithPositions(clock.Positions()))

	a, b := &nav.Node{Key: "a"}, &nav.Node{Key: "b"}
	clock.Sync(r.Render(&nav.Node{Key: "root", Duration: nav.Int(0), Children: []*nav.Node{a}}))
	clock.Sync(r.Render(&nav.Node{Key: "root", Duration: nav.Int(0), Index: 1, Children: []*nav.Node{a, b}}))

	if !clock.Settled() {
		t.Error("zero duration should jump")
	}
}

func TestClockGesture(t *testing.T) {
	now := time.Unix(0, 0)
	clock := NewClock(func() time.Time { return now })
	r := New(WithNavigate(func(router.Action) error { return nil }),
		WithPositions(clock.Positions()),
		WithLayout(anim.Layout{Width: 100, Height: 50}))

	a, b := &nav.Node{Key: "a"}, &nav.Node{Key: "b"}
	root := &nav.Node{Key: "root", Index: 1, Children: []*nav.Node{a, b}}
	f := r.Render(root)
	clock.Sync(f)

	g := f.Active().Pan.Begin(1)
	clock.Drag(f.Path, g.Move(25))
	if got := r.Render(root).Position; got != 0.75 {
		t.Errorf("dragged position = %v, want 0.75", got)
	}

	commit, settle := g.Release()
	if commit {
		t.Fatal("a 25% drag should not commit")
	}
	clock.Settle(f.Path, settle, 0)
	if got := r.Render(root).Position; got != 1 {
		t.Errorf("cancelled gesture position = %v, want 1", got)
	}
}

func TestClockForgetsStacks(t *testing.T) {
	clock := NewClock(nil)
	r := New(WithNavigate(func(router.Action) error { return nil }), WithPositions(clock.Positions()))
	clock.Sync(r.Render(&nav.Node{Key: "root", Children: []*nav.Node{{Key: "a"}}}))
	clock.Sync(r.Render(&nav.Node{Key: "other", Children: []*nav.Node{{Key: "a"}}}))
	if len(clock.positions) != 1 {
		t.Errorf("positions = %d, want 1", len(clock.positions))
	}
	if _, ok := clock.positions["other"]; !ok {
		t.Error("clock should track the new root stack")
	}
}
