// Package executor runs tasks and subscriptions in the background and feeds
// their results back to the driver.
package executor

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"src.plugview.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[executor] ")

// Executor runs functions to completion, possibly concurrently.
type Executor interface {
	// Spawn arranges for f to be run. It does not wait for f to finish.
	Spawn(f func())
	// Close waits for all spawned functions to finish.
	Close()
}

// Pool is an Executor running each function on its own goroutine, with at
// most a fixed number running at the same time.
type Pool struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

// DefaultPoolSize is the size of the Pool used when none is configured.
const DefaultPoolSize = 16

// NewPool returns a Pool running at most n functions at a time. If n <= 0,
// DefaultPoolSize is used.
func NewPool(n int64) *Pool {
	if n <= 0 {
		n = DefaultPoolSize
	}
	return &Pool{sem: semaphore.NewWeighted(n)}
}

func (p *Pool) Spawn(f func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		// Acquire only fails for a done context.
		_ = p.sem.Acquire(context.Background(), 1)
		defer p.sem.Release(1)
		f()
	}()
}

func (p *Pool) Close() { p.wg.Wait() }

// Inline is an Executor that runs functions immediately on the calling
// goroutine. It is only suitable for functions that never wait for the
// caller.
type Inline struct{}

func (Inline) Spawn(f func()) { f() }
func (Inline) Close()         {}

// Queue is an Executor with a single worker goroutine running functions one
// at a time in submission order.
type Queue struct {
	mutex   sync.Mutex
	cond    *sync.Cond
	pending []func()
	closed  bool
	done    chan struct{}
}

// NewQueue starts a Queue.
func NewQueue() *Queue {
	q := &Queue{done: make(chan struct{})}
	q.cond = sync.NewCond(&q.mutex)
	go q.work()
	return q
}

func (q *Queue) work() {
	defer close(q.done)
	for {
		q.mutex.Lock()
		for len(q.pending) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.pending) == 0 {
			q.mutex.Unlock()
			return
		}
		f := q.pending[0]
		q.pending = q.pending[1:]
		q.mutex.Unlock()
		f()
	}
}

// Spawn queues f. Functions spawned after Close are dropped.
func (q *Queue) Spawn(f func()) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	if q.closed {
		logger.Println("dropping function spawned on a closed queue")
		return
	}
	q.pending = append(q.pending, f)
	q.cond.Signal()
}

// Close stops accepting functions and waits for the queued ones to finish.
func (q *Queue) Close() {
	q.mutex.Lock()
	q.closed = true
	q.cond.Signal()
	q.mutex.Unlock()
	<-q.done
}
