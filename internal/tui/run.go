package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"sphereoftech/internal/notify"
	"sphereoftech/internal/theme"
	"sphereoftech/internal/views"
)

// Run starts the full-screen dashboard and blocks until the user quits or
// ctx is canceled.
func Run(ctx context.Context, nav *views.Navigator, notifier *notify.Notifier, t theme.Theme) error {
	m := NewModel(nav, notifier, t)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	// Toasts raised from action timers reach the model as messages.
	queue := newToastQueue(64)
	notifier.AddHandler(queue.push)
	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		queue.run(p.Send)
	}()

	_, err := p.Run()
	queue.close()
	<-forwarded
	nav.CancelPending()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// toastQueue hands toasts to the program one at a time, in delivery order.
type toastQueue struct {
	toasts chan notify.Toast
	done   chan struct{}
}

func newToastQueue(size int) *toastQueue {
	return &toastQueue{
		toasts: make(chan notify.Toast, size),
		done:   make(chan struct{}),
	}
}

// push is a notify.Handler. It never blocks once the queue is closed.
func (q *toastQueue) push(t notify.Toast) {
	select {
	case q.toasts <- t:
	case <-q.done:
	}
}

// run forwards queued toasts to send until close is called.
func (q *toastQueue) run(send func(tea.Msg)) {
	for {
		select {
		case t := <-q.toasts:
			send(ToastMsg{Toast: t})
		case <-q.done:
			return
		}
	}
}

func (q *toastQueue) close() {
	close(q.done)
}
