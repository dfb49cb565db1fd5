package executor_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"src.plugview.dev/pkg/action"
	"src.plugview.dev/pkg/event"
	. "src.plugview.dev/pkg/executor"
	"src.plugview.dev/pkg/subscription"
	"src.plugview.dev/pkg/task"
	"src.plugview.dev/pkg/testutil"
)

type sink struct {
	mutex   sync.Mutex
	actions []action.Action
}

func (s *sink) put(a action.Action) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.actions = append(s.actions, a)
}

func (s *sink) get() []action.Action {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]action.Action(nil), s.actions...)
}

func TestRuntime_RunInline(t *testing.T) {
	var s sink
	rt := NewRuntime(Inline{}, uuid.New(), s.put)
	defer rt.Close()
	rt.Run(task.Batch(task.Done(1), task.Exit()))
	want := []action.Action{action.Output{Message: 1}, action.Exit{}}
	if diff := cmp.Diff(want, s.get()); diff != "" {
		t.Errorf("actions (-want +got):\n%s", diff)
	}
}

func TestRuntime_SubscriptionMessagesBecomeOutputs(t *testing.T) {
	var s sink
	window := uuid.New()
	rt := NewRuntime(NewPool(1), window, s.put)
	defer rt.Close()

	started, _ := rt.Track(subscription.Events("echo", func(ev subscription.Event) any {
		if ev.Window != window {
			return "wrong window"
		}
		return ev.Status
	}))
	if started != 1 || rt.Subscriptions() != 1 {
		t.Fatalf("subscription not started")
	}
	rt.Broadcast(event.WindowFocused{}, event.Captured)
	if !testutil.Eventually(time.Second, func() bool { return len(s.get()) == 1 }) {
		t.Fatalf("got %v", s.get())
	}
	if diff := cmp.Diff([]action.Action{action.Output{Message: event.Captured}}, s.get()); diff != "" {
		t.Errorf("actions (-want +got):\n%s", diff)
	}
}

func TestRuntime_DropsAfterClose(t *testing.T) {
	var s sink
	rt := NewRuntime(NewPool(1), uuid.New(), s.put)
	rt.Run(task.Run(func(ctx context.Context, emit func(any)) {
		<-ctx.Done()
		emit("late")
	}))
	rt.Close()
	if got := s.get(); len(got) != 0 {
		t.Errorf("got %v after Close", got)
	}
}
