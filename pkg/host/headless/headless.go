// Package headless provides a simulated host window, for running editors
// without a real plugin host and for tests.
package headless

import (
	"context"
	"sync"
	"time"

	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/host"
	"src.plugview.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[host/headless] ")

// Window is the part of a driver.Window that a Host drives.
type Window interface {
	OnEvent(ev host.Event, needsStatus bool) host.Status
	OnFrame()
	OnRedraw()
	OnWillClose() error
}

// Host simulates the host of a single window. It implements host.Controller;
// requests are recorded and carried out on the next Frame, the way a real
// host defers them to its own event loop.
type Host struct {
	mutex sync.Mutex
	info  host.WindowInfo
	// Resize requests not carried out yet.
	pending        []geom.Size
	closeRequested bool
	focusRequests  int
	acks           map[host.Status]int
	frames         int

	window Window
}

var _ host.Controller = (*Host)(nil)

// New creates a Host for a window of the given logical size and system scale
// factor.
func New(size geom.Size, scale float64) *Host {
	if scale <= 0 {
		scale = 1
	}
	return &Host{
		info: host.WindowInfo{Physical: geom.PhysicalFromLogical(size, scale), Scale: scale},
		acks: map[host.Status]int{},
	}
}

// Attach sets the window driven by h. It must be called before any other
// method that delivers events.
func (h *Host) Attach(w Window) { h.window = w }

// Close records a close request.
func (h *Host) Close() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.closeRequested = true
	return nil
}

// Resize records a resize request to a logical size.
func (h *Host) Resize(s geom.Size) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.pending = append(h.pending, s)
	return nil
}

// Focus records a focus request.
func (h *Host) Focus() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.focusRequests++
	return nil
}

// Deliver delivers ev to the window and records its acknowledgement.
func (h *Host) Deliver(ev host.Event) host.Status {
	status := h.window.OnEvent(ev, true)
	h.mutex.Lock()
	h.acks[status]++
	h.mutex.Unlock()
	return status
}

// Frame runs one iteration of the host event loop: it carries out pending
// resize requests, then signals a frame and a redraw.
func (h *Host) Frame() {
	h.mutex.Lock()
	pending := h.pending
	h.pending = nil
	h.frames++
	h.mutex.Unlock()

	for _, size := range pending {
		h.mutex.Lock()
		h.info.Physical = geom.PhysicalFromLogical(size, h.info.Scale)
		info := h.info
		h.mutex.Unlock()
		logger.Printf("resizing to %v", info.Physical)
		h.Deliver(host.WindowEvent{Kind: host.WindowResized, Info: info})
	}
	h.window.OnFrame()
	h.window.OnRedraw()
}

// SetScale changes the system scale factor and notifies the window.
func (h *Host) SetScale(scale float64) {
	h.mutex.Lock()
	h.info.Scale = scale
	info := h.info
	h.mutex.Unlock()
	h.Deliver(host.WindowEvent{Kind: host.WindowResized, Info: info})
}

// Run calls Frame every interval until frames frames have run, a close was
// requested or ctx is done, and then closes the window. A non-positive
// frames runs until one of the other conditions.
func (h *Host) Run(ctx context.Context, interval time.Duration, frames int) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for i := 0; frames <= 0 || i < frames; i++ {
		if h.CloseRequested() {
			break
		}
		select {
		case <-ctx.Done():
			return h.window.OnWillClose()
		case <-ticker.C:
		}
		h.Frame()
	}
	return h.window.OnWillClose()
}

// Info returns the current window information.
func (h *Host) Info() host.WindowInfo {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.info
}

// CloseRequested reports whether the window asked to be closed.
func (h *Host) CloseRequested() bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.closeRequested
}

// FocusRequests returns the number of focus requests.
func (h *Host) FocusRequests() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.focusRequests
}

// Acks returns the number of delivered events acknowledged with status.
func (h *Host) Acks(status host.Status) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.acks[status]
}

// Frames returns the number of frames run.
func (h *Host) Frames() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.frames
}
