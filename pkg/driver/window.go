package driver

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"src.plugview.dev/pkg/action"
	"src.plugview.dev/pkg/compositor"
	"src.plugview.dev/pkg/host"
)

// Window is the host-facing handle of a running Driver. Its methods are safe
// to call from any goroutine, but must not be called from a host.Controller
// while it serves a request of the driver, except for events sent without
// needing a status.
type Window struct {
	d      *Driver
	cancel context.CancelFunc

	finished chan struct{}
	err      error
}

// Open creates a Driver and runs it on a new goroutine until the window
// closes or ctx is done.
func Open(ctx context.Context, boot Boot, settings Settings, comp compositor.Compositor, ctrl host.Controller) *Window {
	d := New(boot, settings, comp, ctrl)
	ctx, cancel := context.WithCancel(ctx)
	w := &Window{d: d, cancel: cancel, finished: make(chan struct{})}
	go func() {
		defer close(w.finished)
		defer cancel()
		w.err = d.Run(ctx)
	}()
	return w
}

// ID returns the identifier of the window.
func (w *Window) ID() uuid.UUID { return w.d.ID() }

// OnEvent delivers a raw host event. When needsStatus is true, it waits for
// the event to be processed and returns the acknowledgement for the host;
// otherwise it returns host.Ignored immediately. Events delivered after the
// driver stopped are ignored.
func (w *Window) OnEvent(ev host.Event, needsStatus bool) host.Status {
	if !needsStatus {
		w.d.send(hostInput{event: ev})
		return host.Ignored
	}
	reply := make(chan host.Status, 1)
	if !w.d.send(hostInput{ev, reply}) {
		return host.Ignored
	}
	select {
	case status := <-reply:
		return status
	case <-w.d.done:
		return host.Ignored
	}
}

// OnFrame notifies the driver that host events have settled and the next
// frame should be prepared.
func (w *Window) OnFrame() { w.d.send(frameTick{}) }

// OnRedraw asks the driver to present a frame.
func (w *Window) OnRedraw() { w.d.send(presentRequest{}) }

// OnWillClose notifies the driver that the host is closing the window and
// waits for it to terminate.
func (w *Window) OnWillClose() error {
	w.d.send(willClose{})
	return w.Wait()
}

// Send delivers msg to the update function, as if produced by a task.
func (w *Window) Send(msg any) { w.d.sendAction(action.Output{Message: msg}) }

// Wait waits for the driver to terminate and returns the error from Run.
func (w *Window) Wait() error {
	<-w.finished
	return w.err
}

// Close stops the driver without a final update cycle and waits for it.
func (w *Window) Close() error {
	w.cancel()
	err := w.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
