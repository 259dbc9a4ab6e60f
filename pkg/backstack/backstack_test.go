package backstack

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scenetree/pkg/errors"
)

var quiet = log.New(io.Discard)

func TestHandleBackPops(t *testing.T) {
	s := NewStack("A", "B", "C")
	backs := 0
	c := &Controller{Popper: s, OnBack: func() { backs++ }, Logger: quiet}

	if !c.HandleBack() {
		t.Fatal("HandleBack() = false, want true")
	}
	if got := s.Keys(); len(got) != 2 || got[1] != "B" {
		t.Errorf("stack = %v, want [A B]", got)
	}
	if backs != 1 {
		t.Errorf("OnBack called %d times, want 1", backs)
	}
}

func TestHandleBackAtRoot(t *testing.T) {
	tests := []struct {
		name    string
		exitApp func() bool
		want    bool
	}{
		{"no exit handler", nil, false},
		{"exit handled", func() bool { return true }, true},
		{"exit declined", func() bool { return false }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack("A")
			backs := 0
			c := &Controller{Popper: s, ExitApp: tt.exitApp, OnBack: func() { backs++ }, Logger: quiet}

			if got := c.HandleBack(); got != tt.want {
				t.Errorf("HandleBack() = %v, want %v", got, tt.want)
			}
			if s.Len() != 1 || s.Peek() != "A" {
				t.Errorf("stack changed at root: %v", s.Keys())
			}
			if backs != 0 {
				t.Error("OnBack should not run at root")
			}
		})
	}
}

func TestHandleBackRepeated(t *testing.T) {
	s := NewStack("A", "B")
	c := &Controller{Popper: s, Logger: quiet}

	results := []bool{c.HandleBack(), c.HandleBack(), c.HandleBack()}
	want := []bool{true, false, false}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("press %d = %v, want %v", i, results[i], want[i])
		}
	}
}

func TestHandleBackOverride(t *testing.T) {
	s := NewStack("A", "B")
	c := &Controller{Popper: s, Override: func() bool { return false }, Logger: quiet}

	if c.HandleBack() {
		t.Error("override result should be returned as is")
	}
	if s.Len() != 2 {
		t.Error("override should replace the pop")
	}
}

func TestHandleBackRecovers(t *testing.T) {
	exits := 0
	c := &Controller{
		Popper:  PopperFunc(func() error { panic("boom") }),
		ExitApp: func() bool { exits++; return true },
		Logger:  quiet,
	}
	if !c.HandleBack() {
		t.Error("panicking pop should fall through to ExitApp")
	}
	if exits != 1 {
		t.Errorf("ExitApp called %d times, want 1", exits)
	}

	c = &Controller{Override: func() bool { panic("boom") }, Logger: quiet}
	if c.HandleBack() {
		t.Error("panicking override should report unhandled")
	}
}

func TestHandleBackOtherErrors(t *testing.T) {
	c := &Controller{
		Popper:  PopperFunc(func() error { return errors.New(errors.ErrCodeInternal, "store offline") }),
		ExitApp: func() bool { return true },
		Logger:  quiet,
	}
	if !c.HandleBack() {
		t.Error("any pop failure should be resolved through ExitApp")
	}

	if (&Controller{Logger: quiet}).HandleBack() {
		t.Error("controller without popper should report unhandled")
	}
}

func TestStack(t *testing.T) {
	s := NewStack()
	if !s.IsEmpty() || s.Peek() != "" {
		t.Error("new stack should be empty")
	}
	if err := s.Pop(); !errors.IsAtRoot(err) {
		t.Errorf("Pop() on empty stack = %v, want at root", err)
	}

	s.Push("A")
	s.Push("B")
	if s.Peek() != "B" || s.Len() != 2 {
		t.Errorf("Peek() = %q, Len() = %d", s.Peek(), s.Len())
	}
	if err := s.Pop(); err != nil {
		t.Errorf("Pop() = %v", err)
	}
	s.Clear()
	if !s.IsEmpty() {
		t.Error("Clear() left entries")
	}
}

func TestSignal(t *testing.T) {
	var sig Signal
	var order []string

	unsubA := sig.Subscribe(func() bool { order = append(order, "a"); return true })
	unsubB := sig.Subscribe(func() bool { order = append(order, "b"); return false })

	if !sig.Press() {
		t.Error("Press() = false, want true")
	}
	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Errorf("delivery order = %v, want [b a]", order)
	}

	unsubA()
	unsubA()
	order = nil
	if sig.Press() {
		t.Error("Press() = true with only declining subscribers")
	}
	if len(order) != 1 || order[0] != "b" {
		t.Errorf("delivery after unsubscribe = %v, want [b]", order)
	}

	unsubB()
	if sig.Len() != 0 {
		t.Errorf("Len() = %d, want 0", sig.Len())
	}
	if sig.Press() {
		t.Error("Press() without subscribers should be unhandled")
	}
}
