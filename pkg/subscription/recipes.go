package subscription

import (
	"context"
	"reflect"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Every declares a source emitting the current time.Time every d.
func Every(d time.Duration) Subscription { return FromRecipe(every{d}) }

type every struct{ d time.Duration }

func (e every) Hash(h *xxhash.Digest) {
	WriteField(h, "subscription.Every")
	WriteField(h, strconv.FormatInt(int64(e.d), 10))
}

func (e every) Stream(ctx context.Context, _ <-chan Event, emit func(any)) {
	ticker := time.NewTicker(e.d)
	defer ticker.Stop()
	forwardTicks(ctx, ticker.C, emit)
}

func forwardTicks(ctx context.Context, ticks <-chan time.Time, emit func(any)) {
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticks:
			// A tick may be pending when ctx is cancelled.
			if ctx.Err() != nil {
				return
			}
			emit(t)
		}
	}
}

// Events declares a source passing every interaction event through f. id
// distinguishes listeners; a nil result of f emits nothing.
func Events(id string, f func(Event) any) Subscription {
	return FromRecipe(events{id, f})
}

type events struct {
	id string
	f  func(Event) any
}

func (e events) Hash(h *xxhash.Digest) {
	WriteField(h, "subscription.Events")
	WriteField(h, e.id)
}

func (e events) Stream(ctx context.Context, input <-chan Event, emit func(any)) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-input:
			if !ok {
				return
			}
			if msg := e.f(ev); msg != nil {
				emit(msg)
			}
		}
	}
}

// Channel declares a source forwarding the values received from ch until it
// is closed. It is typically used for notifications from outside the editor,
// such as parameter changes made by the host. id identifies the source.
func Channel[T any](id string, ch <-chan T) Subscription {
	return FromRecipe(channel[T]{id, ch})
}

type channel[T any] struct {
	id string
	ch <-chan T
}

func (c channel[T]) Hash(h *xxhash.Digest) {
	WriteField(h, "subscription.Channel")
	WriteField(h, reflect.TypeOf((*T)(nil)).Elem().String())
	WriteField(h, c.id)
}

func (c channel[T]) Stream(ctx context.Context, _ <-chan Event, emit func(any)) {
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-c.ch:
			if !ok {
				return
			}
			emit(v)
		}
	}
}
