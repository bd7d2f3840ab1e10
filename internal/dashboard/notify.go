// Package dashboard holds the client side of the course authoring dashboard:
// the lesson video form, the exam option form and the HTTP client they use to
// reach the authoring API.
package dashboard

import (
	"errors"

	"go.uber.org/zap"
)

const msgSomethingWrong = "Something went wrong"

var (
	// ErrBusy is returned while a form is waiting on a previous call.
	ErrBusy = errors.New("form is busy")
	// ErrInvalidState is returned for actions the current state does not offer.
	ErrInvalidState = errors.New("action not available in current state")
)

// Notifier is the toast surface.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Refresher reloads the view that owns a form.
type Refresher interface {
	Refresh()
}

type RefreshFunc func()

func (f RefreshFunc) Refresh() { f() }

// LogNotifier writes toasts to a zap logger, for headless use.
type LogNotifier struct {
	Log *zap.Logger
}

func (n LogNotifier) Success(message string) {
	n.Log.Info("toast", zap.String("kind", "success"), zap.String("message", message))
}

func (n LogNotifier) Error(message string) {
	n.Log.Warn("toast", zap.String("kind", "error"), zap.String("message", message))
}

func refresh(r Refresher) {
	if r != nil {
		r.Refresh()
	}
}
