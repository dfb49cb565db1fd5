package subscription

import (
	"context"
	"sync"

	"src.plugview.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[subscription] ")

// InputBufferSize is the number of interaction events buffered for each
// running recipe. Events for a recipe whose buffer is full are dropped.
const InputBufferSize = 128

// Tracker keeps the running sources in agreement with the latest declared
// set of recipes.
//
// Update, Broadcast and Close must be called from one goroutine. Messages
// are passed to the emit function given to NewTracker from the goroutines
// of the sources.
type Tracker struct {
	ctx     context.Context
	emit    func(any)
	running map[uint64]*source
	wg      sync.WaitGroup
}

type source struct {
	cancel context.CancelFunc
	input  chan Event
}

// NewTracker creates a Tracker whose sources run under ctx.
func NewTracker(ctx context.Context, emit func(any)) *Tracker {
	return &Tracker{ctx: ctx, emit: emit, running: make(map[uint64]*source)}
}

// Update reconciles the running sources with recipes. Sources whose identity
// is absent are cancelled, recipes with new identities are started, and the
// rest are left running. Recipes sharing an identity with an earlier one in
// the same set are ignored.
func (t *Tracker) Update(recipes []Recipe) (started, cancelled int) {
	alive := make(map[uint64]bool, len(recipes))
	for _, r := range recipes {
		id := Identity(r)
		if alive[id] {
			continue
		}
		alive[id] = true
		if _, ok := t.running[id]; !ok {
			t.start(id, r)
			started++
		}
	}
	for id, s := range t.running {
		if !alive[id] {
			s.stop()
			delete(t.running, id)
			cancelled++
		}
	}
	if started > 0 || cancelled > 0 {
		logger.Printf("started %d, cancelled %d, running %d", started, cancelled, len(t.running))
	}
	return started, cancelled
}

func (t *Tracker) start(id uint64, r Recipe) {
	ctx, cancel := context.WithCancel(t.ctx)
	s := &source{cancel, make(chan Event, InputBufferSize)}
	t.running[id] = s
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		r.Stream(ctx, s.input, t.emit)
	}()
}

func (s *source) stop() {
	s.cancel()
	close(s.input)
}

// Broadcast delivers ev to every running source without blocking.
func (t *Tracker) Broadcast(ev Event) {
	for id, s := range t.running {
		select {
		case s.input <- ev:
		default:
			logger.Printf("dropping event for busy subscription %x", id)
		}
	}
}

// Len returns the number of running sources.
func (t *Tracker) Len() int { return len(t.running) }

// Close cancels all sources and waits for them to return.
func (t *Tracker) Close() {
	for id, s := range t.running {
		s.stop()
		delete(t.running, id)
	}
	t.wg.Wait()
}
