package cli

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/scenetree/pkg/anim"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/render"
	"github.com/matzehuels/scenetree/pkg/router"
)

func renderMail() *render.Frame {
	return render.New(
		render.WithLayout(anim.Layout{Width: 80, Height: 24}),
		render.WithNavigate(func(router.Action) error { return nil }),
	).Render(mailTree())
}

func mailTree() *nav.Node {
	return &nav.Node{
		Key:  "tabs",
		Tabs: true,
		Children: []*nav.Node{
			{Key: "inbox", Title: "Inbox", Index: 1, Children: []*nav.Node{
				{Key: "threads", Title: "Threads"},
				{Key: "message", Title: "Message", Props: map[string]any{"id": 42}},
			}},
			{Key: "settings", Title: "Settings", Children: []*nav.Node{
				{Key: "preferences", Title: "Preferences"},
			}},
		},
	}
}

func TestActiveFrames(t *testing.T) {
	f := renderMail()

	var keys []string
	var kinds []render.Kind
	for _, a := range activeFrames(f) {
		keys = append(keys, a.Key)
		kinds = append(kinds, a.Kind)
	}
	if got := strings.Join(keys, "/"); got != "tabs/inbox/message" {
		t.Errorf("active frames = %s, want tabs/inbox/message", got)
	}
	want := []render.Kind{render.KindTabs, render.KindStack, render.KindContent}
	for i, k := range want {
		if i >= len(kinds) || kinds[i] != k {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}

	if s := deepestStack(f); s == nil || s.Key != "inbox" {
		t.Errorf("deepestStack = %v, want inbox", s)
	}
	if tf := tabsFrame(f); tf == nil || len(tf.Tabs) != 2 {
		t.Errorf("tabsFrame = %v", tf)
	}
}

func TestActiveFramesNil(t *testing.T) {
	if got := activeFrames(nil); len(got) != 0 {
		t.Errorf("activeFrames(nil) = %v", got)
	}
	if got := deepestStack(nil); got != nil {
		t.Errorf("deepestStack(nil) = %v", got)
	}
	if got := cardsText(nil, 80); got != "" {
		t.Errorf("cardsText(nil) = %q", got)
	}
}

func TestNavBarText(t *testing.T) {
	tests := []struct {
		name   string
		header render.Header
		width  int
		want   []string
	}{
		{
			name:   "back button and title",
			header: render.Header{Title: "Message", Back: true},
			width:  40,
			want:   []string{"‹ Back", "Message"},
		},
		{
			name: "explicit buttons",
			header: render.Header{Title: "Threads", Props: render.HeaderProps{
				LeftTitle:   "Edit",
				RightButton: &nav.Button{Label: "Compose"},
			}},
			width: 40,
			want:  []string{"Edit", "Threads", "Compose"},
		},
		{
			name:   "long title truncated",
			header: render.Header{Title: strings.Repeat("x", 100)},
			width:  20,
			want:   []string{"…"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := navBarText(&tt.header, tt.width)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("navBarText = %q, missing %q", got, w)
				}
			}
			if w := runewidth.StringWidth(got); w > tt.width {
				t.Errorf("width = %d, want <= %d", w, tt.width)
			}
		})
	}
}

func TestNavBarTextCentresTitle(t *testing.T) {
	got := navBarText(&render.Header{Title: "ab"}, 10)
	if got != "    ab    " {
		t.Errorf("navBarText = %q", got)
	}
}

func TestTabBarText(t *testing.T) {
	tabs := []render.Tab{
		{Key: "inbox", Title: "Inbox", Selected: true},
		{Key: "settings"},
	}
	got := tabBarText(tabs, 30)
	if !strings.HasPrefix(got, "[Inbox]  settings") {
		t.Errorf("tabBarText = %q", got)
	}
	if w := runewidth.StringWidth(got); w != 30 {
		t.Errorf("width = %d, want 30", w)
	}
}

func TestCardsTextMarksIndex(t *testing.T) {
	f := renderMail()
	stack := deepestStack(f)

	lines := strings.Split(cardsText(stack, 200), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if strings.HasPrefix(lines[0], "▸") || !strings.HasPrefix(lines[1], "▸ message") {
		t.Errorf("cards = %q", lines)
	}
}

func TestLeafText(t *testing.T) {
	leaf := &nav.Node{Key: "message", Title: "Message", Props: map[string]any{"id": 42, "from": "ada"}}
	want := "message · Message\n  from: ada\n  id: 42"
	if got := leafText(leaf); got != want {
		t.Errorf("leafText = %q, want %q", got, want)
	}
	if got := leafText(nil); got != "" {
		t.Errorf("leafText(nil) = %q", got)
	}
}
