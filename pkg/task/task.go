// Package task provides Task, a finite stream of actions produced in the
// background, and the common ways to build one.
package task

import (
	"context"

	"src.plugview.dev/pkg/action"
	"src.plugview.dev/pkg/clipboard"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/oneshot"
	"src.plugview.dev/pkg/system"
	"src.plugview.dev/pkg/widget"
)

// Stream produces actions by calling emit until it returns. It should return
// early when ctx is done.
type Stream func(ctx context.Context, emit func(action.Action))

// Task is a set of Streams run concurrently. The zero value is a task that
// does nothing.
type Task struct {
	streams []Stream
}

// None returns a Task that does nothing.
func None() Task { return Task{} }

// FromStream returns a Task running s.
func FromStream(s Stream) Task { return Task{[]Stream{s}} }

// IsNone reports whether t does nothing.
func (t Task) IsNone() bool { return len(t.streams) == 0 }

// Streams returns the streams making up t.
func (t Task) Streams() []Stream { return t.streams }

// Effect returns a Task producing a.
func Effect(a action.Action) Task {
	return FromStream(func(_ context.Context, emit func(action.Action)) { emit(a) })
}

// Done returns a Task delivering msg to the update function.
func Done(msg any) Task { return Effect(action.Output{Message: msg}) }

// Perform returns a Task running f in the background and delivering the
// message returned by then for its result. A nil message is dropped.
func Perform[T any](f func(context.Context) T, then func(T) any) Task {
	return FromStream(func(ctx context.Context, emit func(action.Action)) {
		if msg := then(f(ctx)); msg != nil {
			emit(action.Output{Message: msg})
		}
	})
}

// Run returns a Task delivering every message produced by f.
func Run(f func(ctx context.Context, emit func(any))) Task {
	return FromStream(func(ctx context.Context, emit func(action.Action)) {
		f(ctx, func(msg any) {
			if msg != nil {
				emit(action.Output{Message: msg})
			}
		})
	})
}

// Batch returns a Task running all of ts concurrently.
func Batch(ts ...Task) Task {
	var streams []Stream
	for _, t := range ts {
		streams = append(streams, t.streams...)
	}
	return Task{streams}
}

// Map returns a Task like t with every message passed through f. A nil
// result drops the message. Other actions are unchanged.
func Map(t Task, f func(any) any) Task {
	streams := make([]Stream, len(t.streams))
	for i, s := range t.streams {
		s := s // per-iteration copy (go 1.22 loopvar semantics)
		streams[i] = func(ctx context.Context, emit func(action.Action)) {
			s(ctx, func(a action.Action) {
				if out, ok := a.(action.Output); ok {
					msg := f(out.Message)
					if msg == nil {
						return
					}
					a = action.Output{Message: msg}
				}
				emit(a)
			})
		}
	}
	return Task{streams}
}

// request emits an action carrying a reply promise and delivers the message
// returned by then for the reply.
func request[T any](newAction func(*oneshot.Promise[T]) action.Action, then func(T) any) Task {
	return FromStream(func(ctx context.Context, emit func(action.Action)) {
		reply := oneshot.New[T]()
		emit(newAction(reply))
		if then == nil {
			return
		}
		v, err := reply.Wait(ctx)
		if err != nil {
			return
		}
		if msg := then(v); msg != nil {
			emit(action.Output{Message: msg})
		}
	})
}

// ReadClipboard reads a clipboard and delivers then(contents).
func ReadClipboard(k clipboard.Kind, then func(clipboard.Contents) any) Task {
	return request(func(p *oneshot.Promise[clipboard.Contents]) action.Action {
		return action.ClipboardRead{Target: k, Reply: p}
	}, then)
}

// WriteClipboard replaces the contents of a clipboard.
func WriteClipboard(k clipboard.Kind, text string) Task {
	return Effect(action.ClipboardWrite{Target: k, Contents: text})
}

// FetchInformation queries system information and delivers then(info).
func FetchInformation(then func(system.Information) any) Task {
	return request(func(p *oneshot.Promise[system.Information]) action.Action {
		return action.SystemInformation{Reply: p}
	}, then)
}

// LoadFont loads a font and delivers then(err). then may be nil.
func LoadFont(data []byte, then func(error) any) Task {
	return request(func(p *oneshot.Promise[error]) action.Action {
		return action.LoadFont{Bytes: data, Reply: p}
	}, then)
}

// Resize asks the host to resize the window to a logical size.
func Resize(size geom.Size) Task { return Effect(action.Window{Op: action.Resize, Size: size}) }

// Close asks the host to close the window.
func Close() Task { return Effect(action.Window{Op: action.Close}) }

// Focus asks the host to focus the window.
func Focus() Task { return Effect(action.Window{Op: action.GainFocus}) }

// Operate runs a widget operation.
func Operate(op widget.Operation) Task { return Effect(action.Widget{Operation: op}) }

// Query runs a widget operation and delivers then(v), where v is the value
// the operation finished with, or nil if it finished without one.
func Query(op widget.Operation, then func(any) any) Task {
	return request(func(p *oneshot.Promise[any]) action.Action {
		return action.Widget{Operation: op, Reply: p}
	}, then)
}

// Exit asks the host to close the window.
func Exit() Task { return Effect(action.Exit{}) }
