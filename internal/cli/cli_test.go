package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/scenetree/pkg/nav"
)

const mailFlow = "../../examples/flows/mail.toml"

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	err := root.Execute()
	return buf.String(), err
}

func TestReplayCommand(t *testing.T) {
	out, err := run(t, "replay", mailFlow)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// initial path plus six steps
	if len(lines) != 7 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "open message") || strings.Contains(lines[1], "unchanged") {
		t.Errorf("first step = %q", lines[1])
	}
	if !strings.Contains(lines[6], "threads") {
		t.Errorf("last step = %q, want threads active", lines[6])
	}
}

func TestReplayCommandLimit(t *testing.T) {
	out, err := run(t, "replay", "-n", "2", mailFlow)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.Contains(out, "attachment") || strings.Contains(out, "settings") {
		t.Errorf("output:\n%s", out)
	}
}

func TestInspectCommand(t *testing.T) {
	out, err := run(t, "inspect", mailFlow)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"mail", "threads", "preferences", "scenetree replay"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectMissingFlow(t *testing.T) {
	if _, err := run(t, "inspect", "does-not-exist.toml"); err == nil {
		t.Fatal("expected error for missing flow")
	}
}

func TestDotCommand(t *testing.T) {
	out, err := run(t, "dot", "--replay", mailFlow)
	if err != nil {
		t.Fatalf("dot: %v", err)
	}
	if !strings.HasPrefix(out, "digraph") {
		t.Errorf("output is not DOT:\n%s", out)
	}
	if _, err := run(t, "dot", "--format", "pdf", mailFlow); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestStateRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	exec := func(args ...string) string {
		t.Helper()
		var buf bytes.Buffer
		old := stdout
		stdout = &buf
		defer func() { stdout = old }()
		root := New(io.Discard, LogInfo).RootCommand()
		root.SetArgs(args)
		root.SetOut(&buf)
		root.SetErr(io.Discard)
		if err := root.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return buf.String()
	}

	exec("replay", "--session", "demo", mailFlow)

	if out := exec("state", "list"); !strings.Contains(out, "demo") {
		t.Errorf("list:\n%s", out)
	}
	if out := exec("state", "show", "demo"); !strings.Contains(out, "threads") {
		t.Errorf("show:\n%s", out)
	}
	exec("state", "clear", "demo")
	if out := exec("state", "list"); !strings.Contains(out, "No saved sessions") {
		t.Errorf("list after clear:\n%s", out)
	}
}

func TestTreeRows(t *testing.T) {
	root := &nav.Node{
		Key:  "root",
		Tabs: true,
		Children: []*nav.Node{
			{Key: "a", Title: "A", Children: []*nav.Node{{Key: "a1", Component: "list"}}},
			{Key: "b", HideNavBar: nav.Bool(true), Duration: nav.Int(300)},
		},
	}
	want := [][]string{
		{"▸", "root", "tabs", "", "0/2", ""},
		{"▸", "  a", "stack", "A", "0/1", ""},
		{"▸", "    a1", "content", "", "", ""},
		{"", "  b", "scene", "", "", "hideNavBar=true duration=300ms"},
	}

	got := treeRows(root)
	if len(got) != len(want) {
		t.Fatalf("rows = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if strings.Join(got[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderPath(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{nil, "(empty)"},
		{[]string{"tabs"}, "tabs"},
		{[]string{"tabs", "inbox", "message"}, "message"},
	}
	for _, tt := range tests {
		got := renderPath(tt.keys)
		if !strings.Contains(got, tt.want) {
			t.Errorf("renderPath(%v) = %q, want it to contain %q", tt.keys, got, tt.want)
		}
	}
}
