package driver

import (
	"fmt"
	"sync"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"

	"src.plugview.dev/pkg/action"
	"src.plugview.dev/pkg/compositor/headless"
	"src.plugview.dev/pkg/executor"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/host"
	"src.plugview.dev/pkg/subscription"
	"src.plugview.dev/pkg/task"
	"src.plugview.dev/pkg/theme"
	"src.plugview.dev/pkg/tk"
	"src.plugview.dev/pkg/widget"
)

// testApp is an Application whose behavior is given by optional functions.
// It logs calls to Update and View.
type testApp struct {
	Defaults
	view         func() widget.Widget
	update       func(msg any) task.Task
	subscription func(*WindowSubs) subscription.Subscription
	policy       host.ScalePolicy
	title        string

	log      []string
	messages []any
}

func (a *testApp) Title() string {
	if a.title != "" {
		return a.title
	}
	return a.Defaults.Title()
}

func (a *testApp) Update(msg any) task.Task {
	a.log = append(a.log, fmt.Sprintf("update %v", msg))
	a.messages = append(a.messages, msg)
	if a.update != nil {
		return a.update(msg)
	}
	return task.None()
}

func (a *testApp) View() widget.Widget {
	a.log = append(a.log, "view")
	if a.view != nil {
		return a.view()
	}
	return tk.Quad{}
}

func (a *testApp) Theme() theme.Theme { return theme.Dark }

func (a *testApp) Subscription(subs *WindowSubs) subscription.Subscription {
	if a.subscription != nil {
		return a.subscription(subs)
	}
	return subscription.None()
}

func (a *testApp) ScalePolicy() host.ScalePolicy { return a.policy }

func (a *testApp) views() int {
	n := 0
	for _, entry := range a.log {
		if entry == "view" {
			n++
		}
	}
	return n
}

// fakeController records requests and fails them with err.
type fakeController struct {
	mutex   sync.Mutex
	calls   []string
	resizes []geom.Size
	err     error
}

func (c *fakeController) record(call string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.calls = append(c.calls, call)
	return c.err
}

func (c *fakeController) Close() error { return c.record("close") }
func (c *fakeController) Focus() error { return c.record("focus") }

func (c *fakeController) Resize(s geom.Size) error {
	c.mutex.Lock()
	c.resizes = append(c.resizes, s)
	c.mutex.Unlock()
	return c.record("resize")
}

func (c *fakeController) Calls() []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return append([]string(nil), c.calls...)
}

// fixture drives a Driver synchronously by calling its handlers directly.
type fixture struct {
	d      *Driver
	app    *testApp
	comp   *headless.Compositor
	ctrl   *fakeController
	aborts []error
}

type option func(*Settings)

func setup(t *testing.T, app *testApp, opts ...option) *fixture {
	t.Helper()
	f := &fixture{app: app, comp: headless.New(), ctrl: &fakeController{}}
	settings := Settings{
		Size:     geom.Sz(100, 100),
		Executor: executor.Inline{},
		Abort:    func(err error) { f.aborts = append(f.aborts, err) },
	}
	for _, opt := range opts {
		opt(&settings)
	}
	f.d = New(func() (Application, task.Task) { return app, task.None() }, settings, f.comp, f.ctrl)
	t.Cleanup(func() {
		if f.d.phase != Terminated {
			f.d.terminate()
		}
		f.d.shutdown()
	})
	return f
}

// pump handles every pending event on the channel.
func (f *fixture) pump() {
	for {
		select {
		case ev := <-f.d.eventCh:
			f.d.handle(ev)
		default:
			return
		}
	}
}

func (f *fixture) input(ev host.Event) host.Status {
	reply := make(chan host.Status, 1)
	f.d.handle(hostInput{ev, reply})
	return <-reply
}

func (f *fixture) frame()   { f.d.handle(frameTick{}) }
func (f *fixture) present() { f.d.handle(presentRequest{}) }

func (f *fixture) updateCycles() int { return int(promtest.ToFloat64(f.d.metrics.updateCycles)) }
func (f *fixture) relayouts() int    { return int(promtest.ToFloat64(f.d.metrics.relayouts)) }

func outputOf(msg any) action.Action { return action.Output{Message: msg} }

func resizeEvent(w, h uint32, scale float64) host.WindowEvent {
	return host.WindowEvent{Kind: host.WindowResized,
		Info: host.WindowInfo{Physical: geom.PhysicalSize{Width: w, Height: h}, Scale: scale}}
}
