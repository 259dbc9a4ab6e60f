package backstack

import "sync"

// Signal is a host back-button event source. Each Press is delivered to
// the subscribers from the most recent to the oldest, stopping at the
// first one that reports the press as handled.
type Signal struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func() bool
}

// Subscribe registers fn and returns a function that removes it. The
// returned function is safe to call more than once.
func (s *Signal) Subscribe(fn func() bool) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Press delivers one back press and reports whether a subscriber handled
// it. Handlers run without the signal's lock held, so they may subscribe
// or unsubscribe.
func (s *Signal) Press() bool {
	s.mu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for i := len(subs) - 1; i >= 0; i-- {
		if subs[i].fn() {
			return true
		}
	}
	return false
}

// Len returns the number of subscribers.
func (s *Signal) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
