// Package headless provides a Compositor that renders into memory. It
// records what was drawn and presented, which makes it suitable for tests
// and for running editors without a display.
package headless

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"src.plugview.dev/pkg/compositor"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/logutil"
	"src.plugview.dev/pkg/system"
)

var logger = logutil.GetLogger("[compositor] ")

// ErrNotAFont is returned by LoadFont for data without a known font
// signature.
var ErrNotAFont = errors.New("not a font")

// Signatures of the font formats LoadFont accepts.
var fontSignatures = [][]byte{
	{0x00, 0x01, 0x00, 0x00},
	[]byte("OTTO"),
	[]byte("true"),
	[]byte("ttcf"),
	[]byte("wOFF"),
	[]byte("wOF2"),
}

// Frame is a presented frame.
type Frame struct {
	Size       geom.PhysicalSize
	Scale      float64
	Background geom.Color
	Commands   []string
}

// Compositor is an in-memory compositor.Compositor. Its methods are safe for
// concurrent use.
type Compositor struct {
	mutex      sync.Mutex
	frames     []Frame
	configures int
	fonts      int
	failures   []error
}

var _ compositor.Compositor = (*Compositor)(nil)

// New returns a new Compositor.
func New() *Compositor { return &Compositor{} }

// Surface is the surface type of Compositor.
type Surface struct {
	size geom.PhysicalSize
}

func (s *Surface) Size() geom.PhysicalSize { return s.size }

func (c *Compositor) CreateSurface(_ any, size geom.PhysicalSize) compositor.Surface {
	return &Surface{size}
}

func (c *Compositor) ConfigureSurface(s compositor.Surface, size geom.PhysicalSize) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	s.(*Surface).size = size
	c.configures++
}

func (c *Compositor) CreateRenderer() compositor.Renderer { return &Renderer{} }

// FailNext makes the next Present calls fail with the given errors, one per
// call.
func (c *Compositor) FailNext(errs ...error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.failures = append(c.failures, errs...)
}

func (c *Compositor) Present(r compositor.Renderer, s compositor.Surface, vp geom.Viewport, bg geom.Color) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if len(c.failures) > 0 {
		err := c.failures[0]
		c.failures = c.failures[1:]
		return err
	}
	hr, ok := r.(*Renderer)
	if !ok {
		return fmt.Errorf("present: foreign renderer %T", r)
	}
	c.frames = append(c.frames, Frame{
		Size:       s.Size(),
		Scale:      vp.Scale,
		Background: bg,
		Commands:   append([]string(nil), hr.commands...),
	})
	return nil
}

func (c *Compositor) LoadFont(data []byte) error {
	for _, sig := range fontSignatures {
		if bytes.HasPrefix(data, sig) {
			c.mutex.Lock()
			c.fonts++
			c.mutex.Unlock()
			return nil
		}
	}
	logger.Printf("rejecting font of %d bytes", len(data))
	return ErrNotAFont
}

func (c *Compositor) Information() system.Graphics {
	return system.Graphics{Adapter: "headless", Backend: "memory"}
}

// Frames returns the presented frames.
func (c *Compositor) Frames() []Frame {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return append([]Frame(nil), c.frames...)
}

// Configures returns the number of ConfigureSurface calls.
func (c *Compositor) Configures() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.configures
}

// Fonts returns the number of fonts loaded.
func (c *Compositor) Fonts() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.fonts
}
