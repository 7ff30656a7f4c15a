// Package metrics exposes measurement results as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mwiater/benchit/benchmark"
)

const namespace = "benchit"

// Metrics holds one gauge per Results field, labelled by workload.
type Metrics struct {
	registry *prometheus.Registry

	AverageSeconds  *prometheus.GaugeVec
	ShortestSeconds *prometheus.GaugeVec
	LongestSeconds  *prometheus.GaugeVec
	Replications    *prometheus.GaugeVec
	Spikes          *prometheus.GaugeVec

	MeasurementsTotal *prometheus.CounterVec
}

// New creates the metrics and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help},
			[]string{"workload"},
		)
	}

	m.AverageSeconds = gauge("average_seconds", "Average execution time of the last measurement")
	m.ShortestSeconds = gauge("shortest_seconds", "Shortest retained sample of the last measurement")
	m.LongestSeconds = gauge("longest_seconds", "Longest retained sample of the last measurement")
	m.Replications = gauge("replications", "Retained samples of the last measurement")
	m.Spikes = gauge("spikes", "Spike reruns of the last measurement")
	m.MeasurementsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "measurements_total",
			Help:      "Total number of completed measurements",
		},
		[]string{"workload"},
	)

	m.registry.MustRegister(
		m.AverageSeconds,
		m.ShortestSeconds,
		m.LongestSeconds,
		m.Replications,
		m.Spikes,
		m.MeasurementsTotal,
	)
	return m
}

// Observe records r as the latest result of the named workload.
func (m *Metrics) Observe(workload string, r benchmark.Results) {
	m.AverageSeconds.WithLabelValues(workload).Set(r.AverageTime.Seconds())
	m.ShortestSeconds.WithLabelValues(workload).Set(r.ShortestTime.Seconds())
	m.LongestSeconds.WithLabelValues(workload).Set(r.LongestTime.Seconds())
	m.Replications.WithLabelValues(workload).Set(float64(r.NbReplications))
	m.Spikes.WithLabelValues(workload).Set(float64(r.NbSpikes))
	m.MeasurementsTotal.WithLabelValues(workload).Inc()
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes all metrics to path in the text exposition format read
// by the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
