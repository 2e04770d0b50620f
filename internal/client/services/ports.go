package services

import (
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/authclient/internal/client/models"
)

// View is a navigation target.
type View string

const (
	ViewDashboard View = "dashboard.html"
	ViewLogin     View = "login.html"
)

// Navigator switches the UI to another view.
type Navigator interface {
	Navigate(view View)
}

// Clock schedules delayed work. f runs on its own goroutine. The returned
// stop func cancels f and reports whether it did so before f started.
type Clock interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// Presenter shows the outcome of the last action to the user.
type Presenter interface {
	Show(msg models.Message)
}

// SystemClock is the Clock backed by time.AfterFunc.
type SystemClock struct{}

func (SystemClock) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

type nopNavigator struct{}

func (nopNavigator) Navigate(View) {}

type nopPresenter struct{}

func (nopPresenter) Show(models.Message) {}

// Control is the one-shot "button disabled" flag guarding a submission
// against re-entry. The zero value is enabled.
type Control struct {
	disabled atomic.Bool
}

// TryDisable disables the control and reports whether the caller won it.
// A false result means a submission is already outstanding.
func (c *Control) TryDisable() bool {
	return c.disabled.CompareAndSwap(false, true)
}

func (c *Control) Enable() {
	c.disabled.Store(false)
}

func (c *Control) Disabled() bool {
	return c.disabled.Load()
}
