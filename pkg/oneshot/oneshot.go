// Package oneshot provides a value that is resolved at most once.
package oneshot

import (
	"context"
	"sync"
)

// Promise is the reply side of a request-response action. It is resolved at
// most once; later resolutions are ignored.
type Promise[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
}

// New returns an unresolved Promise.
func New[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Resolve sets the value of p and wakes up all waiters. It reports whether
// this call resolved p.
func (p *Promise[T]) Resolve(v T) bool {
	resolved := false
	p.once.Do(func() {
		p.value = v
		close(p.done)
		resolved = true
	})
	return resolved
}

// Done returns a channel that is closed when p is resolved.
func (p *Promise[T]) Done() <-chan struct{} { return p.done }

// Wait blocks until p is resolved or ctx is done.
func (p *Promise[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// TryGet returns the value of p if it is resolved.
func (p *Promise[T]) TryGet() (T, bool) {
	select {
	case <-p.done:
		return p.value, true
	default:
		var zero T
		return zero, false
	}
}
