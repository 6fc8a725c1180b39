package fyne

import (
	"errors"
	"sync/atomic"

	"github.com/thelolagemann/beef/pkg/log"
)

var errNotStarted = errors.New("fyne: app exited before starting")

// runStarted registers run to be started by onStarted, then blocks
// in showAndRun. quit is only ever called from run's goroutine,
// after the app has started, so it can't race the event loop
// coming up.
func runStarted(onStarted func(func()), showAndRun func(), quit func(), run func() error) error {
	done := make(chan error, 1)
	var started atomic.Bool

	onStarted(func() {
		if !started.CompareAndSwap(false, true) {
			return
		}
		go func() {
			done <- run()
			quit()
		}()
	})

	showAndRun()

	if !started.Load() {
		return errNotStarted
	}
	// the window may close first, run stops at its next frame
	return <-done
}

// reportError logs err, if any, against the action that caused it.
func reportError(l log.Logger, action string, err error) {
	if err != nil {
		l.Errorf("fyne: %s: %v", action, err)
	}
}
