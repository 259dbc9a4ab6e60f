package backstack

import (
	"slices"

	"github.com/matzehuels/scenetree/pkg/errors"
)

// Stack is an ordered list of scene keys, bottom first. The bottom entry is
// the root and is never popped.
type Stack struct {
	entries []string
}

// NewStack creates a stack holding keys, bottom first.
func NewStack(keys ...string) *Stack {
	return &Stack{entries: slices.Clone(keys)}
}

// Push adds key on top of the stack.
func (s *Stack) Push(key string) {
	s.entries = append(s.entries, key)
}

// Pop removes the top entry. It returns [errors.ErrAtRoot] and leaves the
// stack unchanged when at most one entry remains.
func (s *Stack) Pop() error {
	if len(s.entries) <= 1 {
		return errors.ErrAtRoot
	}
	s.entries = s.entries[:len(s.entries)-1]
	return nil
}

// Peek returns the top entry, or "" for an empty stack.
func (s *Stack) Peek() string {
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[len(s.entries)-1]
}

// IsEmpty reports whether the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Keys returns a copy of the entries, bottom first.
func (s *Stack) Keys() []string {
	return slices.Clone(s.entries)
}

// Clear removes every entry.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

var _ Popper = (*Stack)(nil)
