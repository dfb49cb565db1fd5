// Package demo contains a small gain editor built on the driver, and the
// subprogram that runs it against a simulated host.
package demo

import (
	"fmt"
	"time"

	"src.plugview.dev/pkg/clipboard"
	"src.plugview.dev/pkg/driver"
	"src.plugview.dev/pkg/event"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/logutil"
	"src.plugview.dev/pkg/subscription"
	"src.plugview.dev/pkg/system"
	"src.plugview.dev/pkg/task"
	"src.plugview.dev/pkg/theme"
	"src.plugview.dev/pkg/tk"
	"src.plugview.dev/pkg/widget"
	"src.plugview.dev/pkg/widget/operation"
)

var logger = logutil.GetLogger("[demo] ")

// Step of the gain buttons.
const gainStep = 0.1

// Messages of the editor.
type (
	increment          struct{}
	decrement          struct{}
	focusNext          struct{}
	copyGain           struct{}
	toggleTheme        struct{}
	tick               time.Time
	parameterChanged   float64
	resizeRequested    geom.Size
	windowResized      geom.Size
	informationFetched system.Information
	windowClosing      struct{}
)

// Editor is the state of the demo editor.
type Editor struct {
	driver.Defaults

	gain   float64
	size   geom.Size
	dark   bool
	ticks  int
	info   *system.Information
	closed bool

	// Host parameter changes, if not nil.
	parameters <-chan float64
	tickEvery  time.Duration
}

// Config configures an Editor.
type Config struct {
	// Size is the initial logical size of the window.
	Size geom.Size
	// Parameters delivers gain changes made by the host.
	Parameters <-chan float64
	// TickEvery is the interval of the meter refresh; zero disables it.
	TickEvery time.Duration
}

// Boot returns the driver.Boot of an editor. The startup task fetches system
// information.
func Boot(cfg Config) driver.Boot {
	return func() (driver.Application, task.Task) {
		e := &Editor{gain: 0.5, size: cfg.Size, dark: true,
			parameters: cfg.Parameters, tickEvery: cfg.TickEvery}
		return e, task.FetchInformation(func(info system.Information) any {
			return informationFetched(info)
		})
	}
}

func (e *Editor) Title() string { return fmt.Sprintf("Gain %.1f", e.gain) }

func (e *Editor) Theme() theme.Theme {
	if e.dark {
		return theme.Dark
	}
	return theme.Light
}

// Update handles a message.
func (e *Editor) Update(msg any) task.Task {
	switch msg := msg.(type) {
	case increment:
		e.setGain(e.gain + gainStep)
	case decrement:
		e.setGain(e.gain - gainStep)
	case parameterChanged:
		e.setGain(float64(msg))
	case focusNext:
		return task.Operate(operation.FocusNext())
	case copyGain:
		return task.WriteClipboard(clipboard.Standard, fmt.Sprintf("%.2f", e.gain))
	case toggleTheme:
		e.dark = !e.dark
	case tick:
		e.ticks++
	case resizeRequested:
		return task.Resize(geom.Size(msg))
	case windowResized:
		e.size = geom.Size(msg)
	case informationFetched:
		info := system.Information(msg)
		e.info = &info
		logger.Printf("running on %s %s, %d cores", info.Name, info.Kernel, info.CPUCores)
	case windowClosing:
		e.closed = true
	default:
		logger.Printf("unknown message %T", msg)
	}
	return task.None()
}

func (e *Editor) setGain(g float64) { e.gain = min(1, max(0, g)) }

// View returns the user interface.
func (e *Editor) View() widget.Widget {
	status := "fetching system information"
	if e.info != nil {
		status = fmt.Sprintf("%s/%s, %s", e.info.Name, e.info.Machine, e.info.GraphicsBackend)
	}
	return tk.Stack{Layers: []widget.Widget{
		tk.Column{Padding: 8, Spacing: 6, Items: []widget.Widget{
			tk.Text{Content: "Gain", Size: 24},
			tk.Text{Content: fmt.Sprintf("%.1f", e.gain)},
			tk.Quad{Width: float32(e.gain) * 200, Height: 8, Color: e.Theme().Palette.Success},
			tk.Button{ID: "down", Label: "-", OnPress: decrement{}, Padding: 4},
			tk.Button{ID: "up", Label: "+", OnPress: increment{}, Padding: 4},
			tk.Button{ID: "copy", Label: "Copy", OnPress: copyGain{}, Padding: 4},
			tk.Button{ID: "theme", Label: "Theme", OnPress: toggleTheme{}, Padding: 4},
			tk.Text{Content: status, Size: 12},
		}},
		tk.Pin{At: tk.BottomRight, Content: tk.NewResizeHandle(e.size, func(s geom.Size) any {
			return resizeRequested(s)
		})},
	}}
}

// Subscription listens to the meter clock, host parameter changes, the
// keyboard and window callbacks.
func (e *Editor) Subscription(subs *driver.WindowSubs) subscription.Subscription {
	subs.OnResize = func(s geom.Size) any { return windowResized(s) }
	subs.OnWindowWillClose = func() any { return windowClosing{} }

	var subscriptions []subscription.Subscription
	if e.tickEvery > 0 {
		subscriptions = append(subscriptions, subscription.Map(subscription.Every(e.tickEvery),
			func(v any) any { return tick(v.(time.Time)) }))
	}
	if e.parameters != nil {
		subscriptions = append(subscriptions, subscription.Map(subscription.Channel("parameters", e.parameters),
			func(v any) any { return parameterChanged(v.(float64)) }))
	}
	subscriptions = append(subscriptions, subscription.Events("tab", tabToFocusNext))
	return subscription.Batch(subscriptions...)
}

func tabToFocusNext(ev subscription.Event) any {
	if k, ok := ev.Event.(event.KeyPressed); ok && ev.Status == event.Ignored && k.Key == event.NamedKey(event.Tab) {
		return focusNext{}
	}
	return nil
}
