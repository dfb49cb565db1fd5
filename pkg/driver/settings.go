package driver

import (
	"github.com/prometheus/client_golang/prometheus"

	"src.plugview.dev/pkg/clipboard"
	"src.plugview.dev/pkg/executor"
	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/host"
)

// DefaultSize is the initial logical window size used when none is
// configured.
var DefaultSize = geom.Sz(800, 600)

// Settings configures a Driver. The zero value is usable.
type Settings struct {
	// Size is the initial logical window size.
	Size geom.Size
	// Scale is the scale policy of the window. A fixed factor overrides the
	// one reported by the host; the ScalePolicy of the Application overrides
	// both.
	Scale host.ScalePolicy
	// AlwaysRedraw makes every frame run the update cycle and present.
	AlwaysRedraw bool
	// IgnoreNonModifierKeys leaves keys other than modifiers to the host. An
	// Application implementing KeyFilter can override it.
	IgnoreNonModifierKeys bool
	// Fonts are loaded into the compositor at startup.
	Fonts [][]byte

	// Translator converts host events; defaults to host.DefaultTranslator.
	Translator host.Translator
	// Clipboard defaults to an in-memory clipboard.
	Clipboard clipboard.Clipboard
	// Executor runs tasks; defaults to an executor.Pool.
	Executor executor.Executor
	// Registerer receives the metrics of the driver, if not nil.
	Registerer prometheus.Registerer
	// Abort is called with fatal presentation errors. It must not return
	// normally; the default panics.
	Abort func(error)
	// SizeSaver, if not nil, receives the final logical window size when the
	// driver terminates.
	SizeSaver SizeSaver
}

// SizeSaver persists the size of the window.
type SizeSaver interface {
	SaveSize(geom.Size) error
}

func (s Settings) withDefaults() Settings {
	if s.Size.IsZero() {
		s.Size = DefaultSize
	}
	if s.Translator == nil {
		s.Translator = host.DefaultTranslator
	}
	if s.Clipboard == nil {
		s.Clipboard = &clipboard.Memory{}
	}
	if s.Executor == nil {
		s.Executor = executor.NewPool(executor.DefaultPoolSize)
	}
	if s.Abort == nil {
		s.Abort = func(err error) { panic(err) }
	}
	return s
}
