// Package views holds the state model of every navigable dashboard view.
//
// A view owns its records, selection, toggles and simulated actions. It never
// renders: the CLI and the TUI read its state and call its operations. Views
// are single-owner values; only action reveals arrive from timer goroutines.
package views

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"sphereoftech/internal/action"
	"sphereoftech/internal/notify"
	"sphereoftech/internal/store"
	"sphereoftech/pkg/utils"
)

// ShareBaseURL prefixes the links copied by the news share action.
const ShareBaseURL = "https://sphereoftech.app/news/"

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the real clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard. The copy helpers on X11 and
// Wayland fail transiently while another client owns the selection, so
// failures are retried briefly.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unsupported on this system")
	}
	return utils.Retry(context.Background(), utils.DefaultRetryConfig(), func() error {
		return clipboard.WriteAll(text)
	})
}

// Env carries the collaborators shared by every view.
type Env struct {
	Scheduler action.Scheduler
	Notifier  *notify.Notifier
	Store     store.SessionStore
	Clipboard Clipboard
	Logger    zerolog.Logger
	// Navigate is called when a view moves the user to another route.
	Navigate func(path string)
}

func (e *Env) scheduler() action.Scheduler {
	if e.Scheduler == nil {
		return action.RealScheduler{}
	}
	return e.Scheduler
}

func (e *Env) notifier() *notify.Notifier {
	if e.Notifier == nil {
		e.Notifier = notify.NewNotifier()
	}
	return e.Notifier
}

func (e *Env) clipboard() Clipboard {
	if e.Clipboard == nil {
		return SystemClipboard{}
	}
	return e.Clipboard
}

func (e *Env) navigate(path string) {
	if e.Navigate != nil {
		e.Navigate(path)
	}
}

// newAction builds an action that reports through the env notifier.
func newAction[P any](env *Env, spec action.Spec[P]) *action.Action[P] {
	return action.New(spec, env.scheduler(), env.notifier(), env.Logger)
}
