package demo

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"src.plugview.dev/pkg/geom"
	"src.plugview.dev/pkg/must"
	. "src.plugview.dev/pkg/prog/progtest"
	"src.plugview.dev/pkg/store"
	"src.plugview.dev/pkg/testutil"
)

func TestProgram(t *testing.T) {
	testutil.Set(t, &FrameInterval, time.Millisecond)
	dir := t.TempDir()
	config := filepath.Join(dir, "settings.yaml")
	must.WriteFile(config, []byte("editor: gain\nwidth: 320\nheight: 240\n"))
	db := filepath.Join(dir, "state", "db")

	Test(t, Program,
		ThatPlugview("-config", config, "-db", db, "-frames", "3").
			WritesStdoutContaining("plugview_driver_update_cycles_total "),
		ThatPlugview("-config", filepath.Join(dir, "missing.yaml")).
			ExitsWith(2).WritesStderrContaining("no such file or directory"),
		ThatPlugview("extra").
			ExitsWith(2).WritesStderrContaining("arguments are not allowed"),
	)

	st, err := store.NewStore(db)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if size, err := st.WindowSize("gain"); err != nil || size != geom.Sz(320, 240) {
		t.Errorf("saved size %v, %v, want 320x240", size, err)
	}
}

func TestWriteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "demo_actions_total", Help: "Actions."},
		[]string{"kind"})
	reg.MustRegister(c)
	c.WithLabelValues("output").Add(3)

	var buf bytes.Buffer
	if err := writeMetrics(&buf, reg); err != nil {
		t.Fatal(err)
	}
	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(&buf)
	if err != nil {
		t.Fatalf("output is not in the text format: %v", err)
	}
	mf := families["demo_actions_total"]
	if mf.GetType() != dto.MetricType_COUNTER || len(mf.GetMetric()) != 1 {
		t.Fatalf("family %v", mf)
	}
	m := mf.GetMetric()[0]
	if m.GetCounter().GetValue() != 3 || m.GetLabel()[0].GetValue() != "output" {
		t.Errorf("metric %v, want kind=output with value 3", m)
	}
}
