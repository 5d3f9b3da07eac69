// SPDX-License-Identifier: MIT

// Package metrics records mazegen run statistics in a private Prometheus
// registry and exports them in the node_exporter textfile format.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector of a run.
type Metrics struct {
	reg *prometheus.Registry

	RunsTotal     *prometheus.CounterVec
	CarveDuration *prometheus.HistogramVec
	Rooms         prometheus.Gauge
	WallsRemoved  prometheus.Gauge
	PathLength    prometheus.Gauge
	SolveDuration prometheus.Histogram
}

// New registers the collectors under namespace in a fresh registry.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,

		RunsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of carve runs",
			},
			[]string{"algorithm", "success"},
		),

		CarveDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "carve_duration_seconds",
				Help:      "Time spent choosing and removing walls",
				Buckets:   []float64{.0001, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"algorithm"},
		),

		Rooms: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms",
			Help:      "Number of rooms in the last maze",
		}),

		WallsRemoved: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "walls_removed",
			Help:      "Number of walls removed from the last maze",
		}),

		PathLength: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "path_length",
			Help:      "Length of the last solved route, -1 if none",
		}),

		SolveDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Time spent finding the shortest route",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// RecordCarve records a carve run.
func (m *Metrics) RecordCarve(algorithm string, success bool, duration time.Duration, rooms, removed int) {
	m.RunsTotal.WithLabelValues(algorithm, strconv.FormatBool(success)).Inc()
	if !success {
		return
	}
	m.CarveDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	m.Rooms.Set(float64(rooms))
	m.WallsRemoved.Set(float64(removed))
}

// RecordSolve records a solver run. A negative length means no route.
func (m *Metrics) RecordSolve(duration time.Duration, length float64) {
	m.SolveDuration.Observe(duration.Seconds())
	m.PathLength.Set(length)
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// WriteTextfile atomically writes every metric to path.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
