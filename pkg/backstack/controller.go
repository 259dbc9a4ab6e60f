package backstack

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scenetree/pkg/errors"
)

// Popper removes the top entry of the current stack. It returns an error
// matching [errors.ErrCodeAtRoot] when nothing can be popped.
type Popper interface {
	Pop() error
}

// PopperFunc adapts a function to a Popper.
type PopperFunc func() error

// Pop calls f.
func (f PopperFunc) Pop() error { return f() }

// Controller decides how a back press is handled.
type Controller struct {
	// Popper pops the current stack.
	Popper Popper
	// Override replaces the default handling entirely when set.
	Override func() bool
	// OnBack is notified after a successful pop.
	OnBack func()
	// ExitApp decides the outcome of a press at the root.
	ExitApp func() bool
	// Logger receives pop failures. Nil uses log.Default().
	Logger *log.Logger
}

// HandleBack handles one back press and reports whether it was consumed.
func (c *Controller) HandleBack() (handled bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger().Error("back handler panicked", "panic", r)
			handled = false
		}
	}()

	if c.Override != nil {
		return c.Override()
	}

	if err := c.pop(); err != nil {
		if errors.IsAtRoot(err) {
			c.logger().Debug("back pressed at root")
		} else {
			c.logger().Warn("pop failed", "err", err)
		}
		if c.ExitApp != nil {
			return c.ExitApp()
		}
		return false
	}

	if c.OnBack != nil {
		c.OnBack()
	}
	return true
}

func (c *Controller) pop() (err error) {
	if c.Popper == nil {
		return errors.ErrAtRoot
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.ErrCodeInternal, "pop panicked: %s", fmt.Sprint(r))
		}
	}()
	return c.Popper.Pop()
}

func (c *Controller) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}
