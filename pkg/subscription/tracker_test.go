package subscription_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"

	"src.plugview.dev/pkg/event"
	"src.plugview.dev/pkg/geom"
	. "src.plugview.dev/pkg/subscription"
	"src.plugview.dev/pkg/testutil"
)

// lifecycle records how many times each named recipe was started and
// stopped.
type lifecycle struct {
	mutex   sync.Mutex
	started map[string]int
	stopped map[string]int
}

func newLifecycle() *lifecycle {
	return &lifecycle{started: map[string]int{}, stopped: map[string]int{}}
}

func (l *lifecycle) counts(name string) (int, int) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.started[name], l.stopped[name]
}

type recorded struct {
	name  string
	value int // not part of the identity
	l     *lifecycle
}

func (r recorded) Hash(h *xxhash.Digest) {
	WriteField(h, "recorded")
	WriteField(h, r.name)
}

func (r recorded) Stream(ctx context.Context, _ <-chan Event, _ func(any)) {
	r.l.mutex.Lock()
	r.l.started[r.name]++
	r.l.mutex.Unlock()
	<-ctx.Done()
	r.l.mutex.Lock()
	r.l.stopped[r.name]++
	r.l.mutex.Unlock()
}

func TestTracker_IdentityStability(t *testing.T) {
	l := newLifecycle()
	tr := NewTracker(context.Background(), func(any) {})
	defer tr.Close()

	declare := func(recipes ...Recipe) (int, int) { return tr.Update(recipes) }

	if s, c := declare(recorded{"a", 1, l}); s != 1 || c != 0 {
		t.Errorf("first declaration started %d, cancelled %d", s, c)
	}
	// Same shape with a different runtime value: nothing restarts.
	if s, c := declare(recorded{"a", 2, l}); s != 0 || c != 0 {
		t.Errorf("re-declaration started %d, cancelled %d", s, c)
	}
	// Adding a source starts exactly that one.
	if s, c := declare(recorded{"a", 3, l}, recorded{"b", 0, l}); s != 1 || c != 0 {
		t.Errorf("adding b started %d, cancelled %d", s, c)
	}
	// Removing a source cancels exactly that one.
	if s, c := declare(recorded{"b", 0, l}); s != 0 || c != 1 {
		t.Errorf("removing a started %d, cancelled %d", s, c)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}

	ok := testutil.Eventually(time.Second, func() bool {
		as, ac := l.counts("a")
		bs, _ := l.counts("b")
		return as == 1 && ac == 1 && bs == 1
	})
	if !ok {
		as, ac := l.counts("a")
		bs, bc := l.counts("b")
		t.Errorf("a started %d stopped %d; b started %d stopped %d", as, ac, bs, bc)
	}
}

func TestTracker_DuplicateIdentityInOneSet(t *testing.T) {
	l := newLifecycle()
	tr := NewTracker(context.Background(), func(any) {})
	defer tr.Close()
	if s, _ := tr.Update([]Recipe{recorded{"a", 1, l}, recorded{"a", 2, l}}); s != 1 {
		t.Errorf("started %d, want 1", s)
	}
}

func TestTracker_CloseWaitsForSources(t *testing.T) {
	l := newLifecycle()
	tr := NewTracker(context.Background(), func(any) {})
	tr.Update([]Recipe{recorded{"a", 0, l}, recorded{"b", 0, l}})
	testutil.Eventually(time.Second, func() bool {
		as, _ := l.counts("a")
		bs, _ := l.counts("b")
		return as == 1 && bs == 1
	})
	tr.Close()
	_, ac := l.counts("a")
	_, bc := l.counts("b")
	if ac != 1 || bc != 1 {
		t.Errorf("Close returned before sources stopped (a %d, b %d)", ac, bc)
	}
}

type messages struct {
	mutex sync.Mutex
	got   []any
}

func (m *messages) emit(msg any) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.got = append(m.got, msg)
}

func (m *messages) snapshot() []any {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return append([]any(nil), m.got...)
}

func TestTracker_BroadcastPreservesOrder(t *testing.T) {
	var m messages
	tr := NewTracker(context.Background(), m.emit)
	defer tr.Close()
	tr.Update(Events("listener", func(ev Event) any {
		if moved, ok := ev.Event.(event.CursorMoved); ok {
			return moved.Position.X
		}
		return nil
	}).Recipes())

	for i := 0; i < 5; i++ {
		tr.Broadcast(Event{Event: event.CursorMoved{Position: geom.Pt(float32(i), 0)}})
		tr.Broadcast(Event{Event: event.WindowFocused{}})
	}

	want := []any{float32(0), float32(1), float32(2), float32(3), float32(4)}
	if !testutil.Eventually(time.Second, func() bool { return len(m.snapshot()) == 5 }) {
		t.Fatalf("got %v", m.snapshot())
	}
	if diff := cmp.Diff(want, m.snapshot()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestChannel(t *testing.T) {
	var m messages
	tr := NewTracker(context.Background(), m.emit)
	defer tr.Close()
	ch := make(chan string)
	tr.Update(Map(Channel("params", ch), func(v any) any { return "param " + v.(string) }).Recipes())
	ch <- "gain"
	ch <- "pan"
	close(ch)
	if !testutil.Eventually(time.Second, func() bool { return len(m.snapshot()) == 2 }) {
		t.Fatalf("got %v", m.snapshot())
	}
	if diff := cmp.Diff([]any{"param gain", "param pan"}, m.snapshot()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestEvery(t *testing.T) {
	var m messages
	tr := NewTracker(context.Background(), m.emit)
	tr.Update(Every(time.Millisecond).Recipes())
	if !testutil.Eventually(time.Second, func() bool { return len(m.snapshot()) >= 2 }) {
		t.Errorf("got %d ticks", len(m.snapshot()))
	}
	tr.Close()
	if _, ok := m.snapshot()[0].(time.Time); !ok {
		t.Errorf("tick is %T, want time.Time", m.snapshot()[0])
	}
}

func TestIdentity(t *testing.T) {
	ch := make(chan int)
	same := []struct{ a, b Subscription }{
		{Every(time.Second), Every(time.Second)},
		{Channel("x", ch), Channel("x", make(chan int))},
		{Events("x", nil), Events("x", func(Event) any { return 1 })},
	}
	for _, p := range same {
		if Identity(p.a.Recipes()[0]) != Identity(p.b.Recipes()[0]) {
			t.Errorf("identities differ for the same shape")
		}
	}
	different := []struct{ a, b Subscription }{
		{Every(time.Second), Every(time.Minute)},
		{Channel("x", ch), Channel("y", ch)},
		{Events("x", nil), Channel("x", ch)},
		{Events("x", nil), Map(Events("x", nil), nil)},
		{Map(Events("x", nil), nil), Events("xsubscription.Map", nil)},
		{Events("xsubscription.Events", nil), Events("x", nil)},
		{Channel("x", ch), Channel("x", make(chan string))},
	}
	for _, p := range different {
		if Identity(p.a.Recipes()[0]) == Identity(p.b.Recipes()[0]) {
			t.Errorf("identities equal for different shapes")
		}
	}
}

func TestBatchAndNone(t *testing.T) {
	s := Batch(None(), Every(time.Second), Batch(Events("a", nil), None()))
	if n := len(s.Recipes()); n != 2 {
		t.Errorf("got %d recipes, want 2", n)
	}
}
