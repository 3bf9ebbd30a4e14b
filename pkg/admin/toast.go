package admin

import (
	"sync"
)

// ToastKind is the visual style of a toast.
type ToastKind string

const (
	// ToastSuccess marks a completed action.
	ToastSuccess ToastKind = "success"

	// ToastDanger marks a failed action.
	ToastDanger ToastKind = "danger"
)

// DefaultToastCapacity is the number of toasts kept before the oldest is evicted.
const DefaultToastCapacity = 4

// Toast is a transient notification shown to the operator.
type Toast struct {
	ID         int       `json:"id"                    yaml:"id"`
	Title      string    `json:"title,omitempty"       yaml:"title,omitempty"`
	Message    string    `json:"message"               yaml:"message"`
	Kind       ToastKind `json:"type"                  yaml:"type"`
	ActionType string    `json:"action_type,omitempty" yaml:"action_type,omitempty"`
	ActionText string    `json:"action_text,omitempty" yaml:"action_text,omitempty"`
	ActionURL  string    `json:"action_url,omitempty"  yaml:"action_url,omitempty"`
}

// ToastListener is notified after a toast has been enqueued.
type ToastListener func(toast Toast)

// ToastQueue is a bounded, ordered list of toasts. Ids start at 1 and are
// never reused; once the queue holds more than its capacity the oldest toast
// is dropped.
type ToastQueue struct {
	mutex     sync.Mutex
	toasts    []Toast
	nextID    int
	capacity  int
	listeners []ToastListener
}

// NewToastQueue creates a queue holding at most capacity toasts. A capacity
// below 1 selects DefaultToastCapacity.
func NewToastQueue(capacity int) *ToastQueue {
	if capacity < 1 {
		capacity = DefaultToastCapacity
	}

	return &ToastQueue{
		nextID:   1,
		capacity: capacity,
	}
}

// OnEnqueue registers a listener.
func (q *ToastQueue) OnEnqueue(listener ToastListener) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	q.listeners = append(q.listeners, listener)
}

// Enqueue assigns the next id to toast, appends it and returns the id.
func (q *ToastQueue) Enqueue(toast Toast) int {
	q.mutex.Lock()

	toast.ID = q.nextID
	q.nextID++

	q.toasts = append(q.toasts, toast)
	for len(q.toasts) > q.capacity {
		q.toasts = q.toasts[1:]
	}

	listeners := make([]ToastListener, len(q.listeners))
	copy(listeners, q.listeners)

	q.mutex.Unlock()

	for _, listener := range listeners {
		listener(toast)
	}

	return toast.ID
}

// Success enqueues a success toast.
func (q *ToastQueue) Success(title, message string) int {
	return q.Enqueue(Toast{Title: title, Message: message, Kind: ToastSuccess})
}

// Danger enqueues a danger toast.
func (q *ToastQueue) Danger(title, message string) int {
	return q.Enqueue(Toast{Title: title, Message: message, Kind: ToastDanger})
}

// Dismiss removes every toast with the given id.
func (q *ToastQueue) Dismiss(id int) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	kept := q.toasts[:0:0]
	for _, toast := range q.toasts {
		if toast.ID != id {
			kept = append(kept, toast)
		}
	}

	q.toasts = kept
}

// Toasts returns a copy of the queued toasts, oldest first.
func (q *ToastQueue) Toasts() []Toast {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	toasts := make([]Toast, len(q.toasts))
	copy(toasts, q.toasts)

	return toasts
}

// Drain returns the queued toasts and empties the queue. Ids keep counting.
func (q *ToastQueue) Drain() []Toast {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	toasts := q.toasts
	q.toasts = nil

	return toasts
}

// Len returns the number of queued toasts.
func (q *ToastQueue) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return len(q.toasts)
}
