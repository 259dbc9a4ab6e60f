package buildinfo

import (
	"strings"
	"testing"
)

func TestResolvedStamped(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	if got := Resolved(); got != "v1.2.3" {
		t.Errorf("Resolved() = %q, want v1.2.3", got)
	}
	if !strings.HasPrefix(String(), "version: v1.2.3\n") {
		t.Errorf("String() = %q", String())
	}
	if !strings.Contains(Template(), "{{.Name}} v1.2.3") {
		t.Errorf("Template() = %q", Template())
	}
}

func TestResolvedUnstamped(t *testing.T) {
	if Resolved() == "" {
		t.Error("Resolved() should never be empty")
	}
}
