package notify

import "sync"

// Variant constants
const (
	VariantSuccess = "success"
	VariantError   = "error"
)

// Notification is a short-lived, dismissible user-facing message. Message
// text is part of the observable contract: it is the only failure signal
// the human operator gets.
type Notification struct {
	Variant string `json:"variant"`
	Message string `json:"message"`
}

// Notifier receives success/error notifications from views.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Queue is a mutex-guarded FIFO Notifier. The HTTP adapter keeps one per
// session and drains it into responses; tests inspect it directly.
type Queue struct {
	mu      sync.Mutex
	pending []Notification
}

// NewQueue creates an empty notification queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Success enqueues a success notification.
func (q *Queue) Success(message string) {
	q.push(Notification{Variant: VariantSuccess, Message: message})
}

// Error enqueues an error notification.
func (q *Queue) Error(message string) {
	q.push(Notification{Variant: VariantError, Message: message})
}

func (q *Queue) push(n Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, n)
}

// Drain returns all pending notifications in arrival order and clears the
// queue.
// POST: the queue is empty
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.pending
	q.pending = nil
	return drained
}

// Peek returns the pending notifications without clearing them.
func (q *Queue) Peek() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notification, len(q.pending))
	copy(out, q.pending)
	return out
}
