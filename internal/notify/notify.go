// Package notify delivers toasts outside the process: to the terminal and to
// a NATS subject that dashboards can subscribe to.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// Sink receives toasts.
type Sink interface {
	Send(ctx context.Context, toast admin.Toast) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, toast admin.Toast) error

// Send implements Sink.
func (f SinkFunc) Send(ctx context.Context, toast admin.Toast) error {
	return f(ctx, toast)
}

// Dispatcher forwards toasts to a set of sinks and records delivery errors.
type Dispatcher struct {
	sinks  []Sink
	mutex  sync.Mutex
	errors []error
}

// NewDispatcher creates a dispatcher over sinks. Nil sinks are skipped.
func NewDispatcher(sinks ...Sink) *Dispatcher {
	dispatcher := &Dispatcher{}

	for _, sink := range sinks {
		if sink != nil {
			dispatcher.sinks = append(dispatcher.sinks, sink)
		}
	}

	return dispatcher
}

// Dispatch sends toast to every sink. A failing sink does not stop the others.
func (d *Dispatcher) Dispatch(ctx context.Context, toast admin.Toast) error {
	var errs []error

	for _, sink := range d.sinks {
		err := sink.Send(ctx, toast)
		if err != nil {
			errs = append(errs, fmt.Errorf("toast %d: %w", toast.ID, err))
		}
	}

	if len(errs) == 0 {
		return nil
	}

	joined := errors.Join(errs...)

	d.mutex.Lock()
	d.errors = append(d.errors, joined)
	d.mutex.Unlock()

	return joined
}

// Attach dispatches every toast enqueued on queue from now on.
func (d *Dispatcher) Attach(ctx context.Context, queue *admin.ToastQueue) {
	queue.OnEnqueue(func(toast admin.Toast) {
		_ = d.Dispatch(ctx, toast)
	})
}

// Err returns the delivery errors seen so far, joined, or nil.
func (d *Dispatcher) Err() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return errors.Join(d.errors...)
}
