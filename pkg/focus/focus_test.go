package focus

import (
	"testing"

	"github.com/matzehuels/scenetree/pkg/nav"
)

func stack(index int, keys ...string) *nav.Node {
	s := &nav.Node{Key: "stack", Index: index}
	for _, k := range keys {
		s.Children = append(s.Children, &nav.Node{Key: k})
	}
	return s
}

func TestObserveIndexChange(t *testing.T) {
	var events []Event
	d := New(func(e Event) { events = append(events, e) })

	first := stack(0, "a", "b")
	if !d.Observe(first) {
		t.Fatal("initial snapshot should emit")
	}

	second := nav.Clone(first)
	second.Index = 1
	if !d.Observe(second) {
		t.Fatal("index change should emit")
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	e := events[1]
	if e.Scene.Key != "b" || e.Leaf.Key != "b" || e.Level != second {
		t.Errorf("event = %+v, want scene b on the new level", e)
	}
	if got := e.Path.Keys(); len(got) != 2 || got[1] != "b" {
		t.Errorf("event path = %v, want [stack b]", got)
	}
}

func TestObserveIsIdempotent(t *testing.T) {
	count := 0
	d := New(func(Event) { count++ })

	s := stack(0, "a", "b")
	d.Observe(s)
	d.Observe(s)
	d.Observe(s)

	if count != 1 {
		t.Errorf("emitted %d times for one snapshot, want 1", count)
	}
}

func TestObserveUnchangedScene(t *testing.T) {
	count := 0
	d := New(func(Event) { count++ })

	s := stack(0, "a", "b")
	d.Observe(s)

	refreshed := nav.Clone(s)
	refreshed.Props = map[string]any{"badge": 1}
	if d.Observe(refreshed) {
		t.Error("new snapshot with the same focused scene should not emit")
	}
	if count != 1 {
		t.Errorf("emitted %d times, want 1", count)
	}
}

func TestObserveSkipsContentAndTabs(t *testing.T) {
	tests := []struct {
		name string
		tree *nav.Node
		want string
	}{
		{"content root", &nav.Node{Key: "page", Component: "Page"}, ""},
		{"tabs only", &nav.Node{Key: "tabs", Tabs: true, Children: []*nav.Node{{Key: "x"}}}, ""},
		{
			"stack inside tabs",
			&nav.Node{Key: "tabs", Tabs: true, Index: 1, Children: []*nav.Node{
				{Key: "one"},
				{Key: "two", Index: 1, Children: []*nav.Node{{Key: "list"}, {Key: "item"}}},
			}},
			"item",
		},
		{
			"deepest stack wins",
			&nav.Node{Key: "outer", Children: []*nav.Node{
				{Key: "inner", Children: []*nav.Node{{Key: "leaf"}}},
			}},
			"leaf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			d := New(func(e Event) { got = e.Scene.Key })
			emitted := d.Observe(tt.tree)
			if emitted != (tt.want != "") || got != tt.want {
				t.Errorf("Observe() = %v with scene %q, want %q", emitted, got, tt.want)
			}
		})
	}
}

func TestObserveNilAndReset(t *testing.T) {
	count := 0
	d := New(func(Event) { count++ })
	if d.Observe(nil) {
		t.Error("nil snapshot should not emit")
	}

	s := stack(0, "a")
	d.Observe(s)
	d.Reset()
	if d.Focused() != nil {
		t.Error("Focused() after Reset should be nil")
	}
	d.Observe(s)
	if count != 2 {
		t.Errorf("emitted %d times, want 2", count)
	}
}
