package executor

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"src.plugview.dev/pkg/action"
	"src.plugview.dev/pkg/event"
	"src.plugview.dev/pkg/subscription"
	"src.plugview.dev/pkg/task"
)

// Runtime runs tasks on an Executor and tracks subscriptions, turning
// everything they produce into actions passed to a sink.
//
// After Close, the sink is no longer called; actions produced by work still
// in flight are dropped.
type Runtime struct {
	exec    Executor
	ctx     context.Context
	cancel  context.CancelFunc
	tracker *subscription.Tracker
	window  uuid.UUID

	mutex  sync.RWMutex
	sink   func(action.Action)
	closed bool
}

// NewRuntime creates a Runtime for the window with the given id.
func NewRuntime(exec Executor, window uuid.UUID, sink func(action.Action)) *Runtime {
	ctx, cancel := context.WithCancel(context.Background())
	rt := &Runtime{exec: exec, ctx: ctx, cancel: cancel, window: window, sink: sink}
	rt.tracker = subscription.NewTracker(ctx, func(msg any) {
		rt.send(action.Output{Message: msg})
	})
	return rt
}

func (rt *Runtime) send(a action.Action) {
	rt.mutex.RLock()
	defer rt.mutex.RUnlock()
	if rt.closed {
		return
	}
	rt.sink(a)
}

// Run starts t.
func (rt *Runtime) Run(t task.Task) {
	for _, s := range t.Streams() {
		s := s // per-iteration copy (go 1.22 loopvar semantics)
		rt.exec.Spawn(func() { s(rt.ctx, rt.send) })
	}
}

// Track reconciles the running subscriptions with s.
func (rt *Runtime) Track(s subscription.Subscription) (started, cancelled int) {
	return rt.tracker.Update(s.Recipes())
}

// Subscriptions returns the number of running subscriptions.
func (rt *Runtime) Subscriptions() int { return rt.tracker.Len() }

// Broadcast passes an interaction event to the running subscriptions.
func (rt *Runtime) Broadcast(ev event.Event, status event.Status) {
	rt.tracker.Broadcast(subscription.Event{Window: rt.window, Event: ev, Status: status})
}

// Close stops the subscriptions, cancels the context of running tasks, stops
// delivering their results and waits for them to return.
func (rt *Runtime) Close() {
	rt.mutex.Lock()
	rt.closed = true
	rt.mutex.Unlock()
	rt.cancel()
	rt.tracker.Close()
	rt.exec.Close()
}
