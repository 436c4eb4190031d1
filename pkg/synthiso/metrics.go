// Copyright © 2019 NVIDIA Corporation

package synthiso

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what Materialize wrote.
type Metrics struct {
	denseBytes     prometheus.Counter
	holeBytes      prometheus.Counter
	images         *prometheus.CounterVec
	logicalBytes   prometheus.Gauge
	allocatedBytes prometheus.Gauge
}

// NewMetrics creates the synthiso metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		denseBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "synthiso_dense_bytes_total",
			Help: "Bytes physically written to synthetic images.",
		}),
		holeBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "synthiso_hole_bytes_total",
			Help: "Bytes skipped over as holes in synthetic images.",
		}),
		images: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synthiso_images_total",
				Help: "Synthetic images materialized.",
			},
			[]string{"mode"},
		),
		logicalBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "synthiso_last_image_logical_bytes",
			Help: "Logical length of the most recent image.",
		}),
		allocatedBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "synthiso_last_image_allocated_bytes",
			Help: "Filesystem allocation of the most recent image, when known.",
		}),
	}

	reg.MustRegister(
		m.denseBytes,
		m.holeBytes,
		m.images,
		m.logicalBytes,
		m.allocatedBytes,
	)
	return m
}

func (m *Metrics) observe(res *Result) {
	m.denseBytes.Add(float64(res.DenseBytes))
	m.holeBytes.Add(float64(res.HoleBytes))

	mode := "dense"
	if res.Sparse {
		mode = "sparse"
	}
	m.images.WithLabelValues(mode).Inc()

	m.logicalBytes.Set(float64(res.Size))
	if res.AllocatedKnown {
		m.allocatedBytes.Set(float64(res.AllocatedBytes))
	}
}
