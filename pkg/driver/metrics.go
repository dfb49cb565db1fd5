package driver

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	updateCycles  prometheus.Counter
	idleSkips     prometheus.Counter
	relayouts     prometheus.Counter
	frames        prometheus.Counter
	presentErrors prometheus.Counter
	actions       *prometheus.CounterVec
	subscriptions prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "plugview", Subsystem: "driver", Name: name, Help: help})
	}
	m := &metrics{
		updateCycles:  counter("update_cycles_total", "Number of update cycles run."),
		idleSkips:     counter("idle_skips_total", "Number of frame ticks skipped for lack of work."),
		relayouts:     counter("relayouts_total", "Number of relayouts caused by viewport changes."),
		frames:        counter("frames_presented_total", "Number of frames presented."),
		presentErrors: counter("present_errors_total", "Number of failed presentations."),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "plugview", Subsystem: "driver", Name: "actions_total",
			Help: "Number of actions dispatched, by kind."}, []string{"kind"}),
		subscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "plugview", Subsystem: "driver", Name: "subscriptions",
			Help: "Number of running subscriptions."}),
	}
	if reg != nil {
		m.updateCycles = register(reg, m.updateCycles)
		m.idleSkips = register(reg, m.idleSkips)
		m.relayouts = register(reg, m.relayouts)
		m.frames = register(reg, m.frames)
		m.presentErrors = register(reg, m.presentErrors)
		m.actions = register(reg, m.actions)
		m.subscriptions = register(reg, m.subscriptions)
	}
	return m
}

// register registers c, or returns the collector already registered in its
// place, so that several drivers can share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		logger.Printf("cannot register metric: %v", err)
	}
	return c
}
