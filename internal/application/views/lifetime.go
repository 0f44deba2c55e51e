package views

import "context"

// lifetime tracks a view from construction to Close. Views are
// single-goroutine components, so the closed flag needs no lock: it is
// checked before a backend call starts and again after it returns, which
// drops any result that resolves after Close without touching view state.
type lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// newLifetime derives the view's lifetime context from the construction
// context, detached from its cancellation: the view outlives the request
// that created it and ends only on Close.
func newLifetime(ctx context.Context) lifetime {
	c, cancel := context.WithCancel(context.WithoutCancel(ctx))
	return lifetime{ctx: c, cancel: cancel}
}

// close marks the lifetime ended and cancels any in-flight backend call.
func (l *lifetime) close() {
	l.closed = true
	l.cancel()
}

// bound returns a context for one backend call that ends when either the
// caller's context or the view lifetime does. The returned stop func must
// be called when the backend call returns.
func (l *lifetime) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(l.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
