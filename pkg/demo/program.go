package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	compositor "src.plugview.dev/pkg/compositor/headless"
	"src.plugview.dev/pkg/driver"
	host "src.plugview.dev/pkg/host/headless"
	"src.plugview.dev/pkg/prog"
	"src.plugview.dev/pkg/settings"
	"src.plugview.dev/pkg/store"
)

// FrameInterval is the interval of the simulated host frame clock.
var FrameInterval = 16 * time.Millisecond

// Program runs the demo editor in a simulated host for -frames frames and
// prints the metrics of the driver.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not allowed")
	}
	s, err := loadSettings(f.Config)
	if err != nil {
		return err
	}
	editor := s.Editor
	if f.Editor != "" {
		editor = f.Editor
	}

	st, err := openStore(f.DB, s.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	ds, err := s.Driver()
	if err != nil {
		fmt.Fprintln(fds[2], "warning:", err)
	}
	if size, err := st.WindowSize(editor); err == nil {
		ds.Size = size
	} else if !errors.Is(err, store.ErrNoSize) {
		return err
	}
	if ds.Size.IsZero() {
		ds.Size = driver.DefaultSize
	}
	reg := prometheus.NewRegistry()
	ds.Registerer = reg
	ds.SizeSaver = store.SizeSaver{Store: st, Editor: editor}

	h := host.New(ds.Size, 1)
	w := driver.Open(context.Background(), Boot(Config{Size: ds.Size, TickEvery: time.Second}),
		ds, compositor.New(), h)
	h.Attach(w)
	if err := h.Run(context.Background(), FrameInterval, f.Frames); err != nil {
		return err
	}
	return writeMetrics(fds[1], reg)
}

func loadSettings(path string) (settings.Settings, error) {
	if path != "" {
		return settings.Load(path, false)
	}
	path, err := settings.DefaultPath()
	if err != nil {
		return settings.Default(), nil
	}
	return settings.Load(path, true)
}

func openStore(flagPath, settingsPath string) (*store.Store, error) {
	path := flagPath
	if path == "" {
		path = settingsPath
	}
	if path == "" {
		var err error
		path, err = settings.DefaultStorePath()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return store.NewStore(path)
}

// writeMetrics writes the gathered metrics in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
