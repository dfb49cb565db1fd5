// Package driver implements the loop driving an application embedded in a
// host window.
//
// A Driver owns the application, its user interface, the window state and
// the presentation surface, and mutates them only from the goroutine running
// Driver.Run. Everything else, from host notifications to results of
// background tasks, reaches it as events on a single channel, processed one
// at a time:
//
//   - A frame tick runs the frame callback, dispatches the queued input
//     events to the user interface, runs an update cycle if there are
//     messages, and draws.
//   - A present request presents the last drawn frame, relayouting and
//     reconfiguring the surface first if the viewport changed.
//   - A host input event updates the window state and queues the translated
//     events.
//   - An async result is an action to interpret.
//   - Will-close runs a final update cycle if the application wants one and
//     terminates.
//
// An update cycle retires the user interface into its cache, runs the update
// function over every queued message, resynchronizes the window state and
// rebuilds the user interface from the cache.
package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"src.plugview.dev/pkg/action"
	"src.plugview.dev/pkg/clipboard"
	"src.plugview.dev/pkg/compositor"
	"src.plugview.dev/pkg/errutil"
	"src.plugview.dev/pkg/event"
	"src.plugview.dev/pkg/executor"
	"src.plugview.dev/pkg/host"
	"src.plugview.dev/pkg/logutil"
	"src.plugview.dev/pkg/theme"
	"src.plugview.dev/pkg/uitree"
)

var logger = logutil.GetLogger("[driver] ")

// ErrNotImplemented is the panic value for actions the driver does not
// support.
var ErrNotImplemented = errors.New("not implemented")

// Buffer size of the event channel. Background goroutines block when it is
// full.
const eventChSize = 128

// Phase is the lifecycle phase of a Driver.
type Phase uint8

const (
	// Running is the phase of a Driver processing events.
	Running Phase = iota
	// ClosingFrame is the phase of a Driver running its final update cycle.
	ClosingFrame
	// Terminated is the phase of a Driver that has stopped.
	Terminated
)

var phaseNames = [...]string{"running", "closing-frame", "terminated"}

func (p Phase) String() string { return phaseNames[p] }

// Events on the channel of a Driver.
type (
	runtimeEvent interface{ isRuntimeEvent() }

	frameTick      struct{}
	presentRequest struct{}
	asyncResult    struct{ action action.Action }
	hostInput      struct {
		event host.Event
		// Receives the acknowledgement if not nil.
		reply chan<- host.Status
	}
	willClose struct{}
)

func (frameTick) isRuntimeEvent()      {}
func (presentRequest) isRuntimeEvent() {}
func (asyncResult) isRuntimeEvent()    {}
func (hostInput) isRuntimeEvent()      {}
func (willClose) isRuntimeEvent()      {}

// Driver drives an Application. See the package documentation for the
// event model.
type Driver struct {
	id         uuid.UUID
	settings   Settings
	app        Application
	state      *State
	compositor compositor.Compositor
	surface    compositor.Surface
	renderer   compositor.Renderer
	controller host.Controller
	clipboard  clipboard.Clipboard
	runtime    *executor.Runtime
	// Runs system information queries.
	queue   *executor.Queue
	metrics *metrics

	subs     WindowSubs
	ui       uiSlot
	events   []event.Event
	messages []any

	phase            Phase
	presentedVersion uint64
	redrawRequested  bool
	needsUpdate      bool
	didProcessEvent  bool

	eventCh chan runtimeEvent
	// Closed when the loop stops, after which sends to eventCh are dropped.
	done chan struct{}
}

// New creates a Driver for the application created by boot. The startup task
// is started, subscriptions are tracked, fonts are loaded and the first user
// interface is built before New returns.
func New(boot Boot, settings Settings, comp compositor.Compositor, ctrl host.Controller) *Driver {
	settings = settings.withDefaults()

	d := &Driver{
		id:         uuid.New(),
		settings:   settings,
		compositor: comp,
		controller: ctrl,
		clipboard:  settings.Clipboard,
		queue:      executor.NewQueue(),
		metrics:    newMetrics(settings.Registerer),

		redrawRequested: true,
		needsUpdate:     true,

		eventCh: make(chan runtimeEvent, eventChSize),
		done:    make(chan struct{}),
	}
	d.runtime = executor.NewRuntime(settings.Executor, d.id, d.sendAction)

	app, startup := boot()
	d.app = app
	d.runtime.Run(startup)
	d.track()

	d.state = NewState(app, settings.Size, settings.Scale)
	d.presentedVersion = d.state.ViewportVersion()
	d.surface = comp.CreateSurface(d.id, d.state.PhysicalSize())
	d.renderer = comp.CreateRenderer()
	for i, font := range settings.Fonts {
		if err := comp.LoadFont(font); err != nil {
			logger.Printf("cannot load font #%d: %v", i, err)
		}
	}

	d.ui.Set(d.build(uitree.Cache{}))
	logger.Printf("window %s created with logical size %v", d.id, d.state.LogicalSize())
	return d
}

// ID returns the identifier of the window, as seen by subscriptions.
func (d *Driver) ID() uuid.UUID { return d.id }

// Run processes events until the window closes or ctx is done, then stops
// all background work. It must be called at most once.
func (d *Driver) Run(ctx context.Context) error {
	var err error
	for d.phase != Terminated {
		var ev runtimeEvent
		select {
		case ev = <-d.eventCh:
		default:
			select {
			case ev = <-d.eventCh:
			case <-ctx.Done():
				err = ctx.Err()
				d.terminate()
				continue
			}
		}
		d.handle(ev)
	}
	return errutil.Multi(err, d.shutdown())
}

func (d *Driver) handle(ev runtimeEvent) {
	switch ev := ev.(type) {
	case frameTick:
		d.onFrame()
	case asyncResult:
		d.dispatch(ev.action)
	case presentRequest:
		d.onPresent()
	case hostInput:
		status := d.onHostInput(ev.event)
		if ev.reply != nil {
			ev.reply <- status
		}
	case willClose:
		d.onWillClose()
	}
}

func (d *Driver) onFrame() {
	if d.subs.OnFrame != nil {
		d.enqueue(d.subs.OnFrame())
	}
	if !d.didProcessEvent && len(d.events) == 0 && len(d.messages) == 0 && !d.settings.AlwaysRedraw {
		d.metrics.idleSkips.Inc()
		return
	}
	d.didProcessEvent = false

	if len(d.events) > 0 {
		ui := d.ui.Built()
		uiState, statuses := ui.Update(d.events, d.state.Cursor(), d.renderer, d.clipboard, &d.messages)
		d.needsUpdate = d.needsUpdate || uiState == uitree.Outdated
		for i, ev := range d.events {
			if resized, ok := ev.(event.WindowResized); ok && d.subs.OnResize != nil {
				d.enqueue(d.subs.OnResize(resized.Size))
			}
			d.runtime.Broadcast(ev, statuses[i])
		}
		d.events = d.events[:0]
	}

	d.needsUpdate = d.needsUpdate || len(d.messages) > 0 || d.settings.AlwaysRedraw
	if d.needsUpdate {
		d.needsUpdate = false
		d.updateCycle()
	}

	d.draw()
	d.redrawRequested = true
}

func (d *Driver) onPresent() {
	if !d.redrawRequested && !d.settings.AlwaysRedraw {
		return
	}
	physical := d.state.PhysicalSize()
	if physical.IsZero() {
		return
	}

	if version := d.state.ViewportVersion(); version != d.presentedVersion {
		d.ui.Built().Relayout(d.state.LogicalSize(), d.renderer)
		d.draw()
		d.compositor.ConfigureSurface(d.surface, physical)
		d.presentedVersion = version
		d.metrics.relayouts.Inc()
	}

	err := d.compositor.Present(d.renderer, d.surface, d.state.Viewport(), d.state.Background())
	switch {
	case err == nil:
		d.redrawRequested = false
		d.metrics.frames.Inc()
	case compositor.IsFatal(err):
		d.metrics.presentErrors.Inc()
		d.settings.Abort(fmt.Errorf("present: %w", err))
	default:
		d.metrics.presentErrors.Inc()
		logger.Printf("present failed, retrying next frame: %v", err)
		d.redrawRequested = true
	}
}

func (d *Driver) onHostInput(ev host.Event) host.Status {
	d.state.Update(ev)
	if we, ok := ev.(host.WindowEvent); ok && we.Kind == host.WindowResized {
		// Report the logical size under the effective scale factor.
		we.Info.Scale = d.state.ScaleFactor()
		ev = we
	}

	ignore := d.settings.IgnoreNonModifierKeys
	if kf, ok := d.app.(KeyFilter); ok {
		if v, ok := kf.IgnoreNonModifierKeys(); ok {
			ignore = v
		}
	}

	before := len(d.events)
	d.events = d.settings.Translator.Translate(ev, &d.state.modifiers, ignore, d.events)
	if len(d.events) == before {
		return host.Ignored
	}
	d.didProcessEvent = true
	return host.Captured
}

func (d *Driver) onWillClose() {
	d.phase = ClosingFrame
	if d.subs.OnWindowWillClose != nil {
		if msg := d.subs.OnWindowWillClose(); msg != nil {
			d.messages = append(d.messages, msg)
			d.updateCycle()
		}
	}
	d.terminate()
}

func (d *Driver) terminate() {
	d.ui.Discard()
	d.phase = Terminated
}

// updateCycle feeds every queued message to the application and rebuilds
// the user interface.
func (d *Driver) updateCycle() {
	d.ui.Retire()
	messages := d.messages
	d.messages = nil
	for _, msg := range messages {
		d.runtime.Run(d.app.Update(msg))
	}
	d.track()
	d.state.Synchronize(d.app)
	d.ui.Set(d.build(d.ui.Cache()))
	d.metrics.updateCycles.Inc()
}

func (d *Driver) track() {
	d.subs = WindowSubs{}
	d.runtime.Track(d.app.Subscription(&d.subs))
	d.metrics.subscriptions.Set(float64(d.runtime.Subscriptions()))
}

func (d *Driver) build(cache uitree.Cache) *uitree.UserInterface {
	return uitree.Build(d.app.View(), d.state.LogicalSize(), cache, d.renderer)
}

func (d *Driver) draw() {
	d.ui.Built().Draw(d.renderer, d.state.Theme(), theme.Style{Text: d.state.TextColor()}, d.state.Cursor())
}

func (d *Driver) enqueue(msg any) {
	if msg != nil {
		d.messages = append(d.messages, msg)
	}
}

// send delivers ev to the loop. It reports false if the loop has stopped.
func (d *Driver) send(ev runtimeEvent) bool {
	select {
	case d.eventCh <- ev:
		return true
	case <-d.done:
		return false
	}
}

func (d *Driver) sendAction(a action.Action) { d.send(asyncResult{a}) }

// shutdown stops background work and persists the window size.
func (d *Driver) shutdown() error {
	close(d.done)
	d.runtime.Close()
	d.queue.Close()
	logger.Printf("window %s terminated", d.id)
	if d.settings.SizeSaver != nil {
		if err := d.settings.SizeSaver.SaveSize(d.state.LogicalSize()); err != nil {
			return fmt.Errorf("save window size: %w", err)
		}
	}
	return nil
}
