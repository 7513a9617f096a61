package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "glossconv"

type convertMetrics struct {
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
	entries  *prometheus.GaugeVec
	lastRun  prometheus.Gauge
}

func newConvertMetrics() *convertMetrics {
	m := &convertMetrics{
		registry: prometheus.NewRegistry(),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tables_total",
			Help:      "Processed variant indices by outcome.",
		}, []string{"status"}),
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "table_entries",
			Help:      "Entries written per table.",
		}, []string{"table", "lang"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last conversion finished.",
		}),
	}
	m.registry.MustRegister(m.outcomes, m.entries, m.lastRun)
	return m
}

func (m *convertMetrics) observe(r Result) {
	m.outcomes.WithLabelValues(string(r.Status)).Inc()
	if r.Status != StatusWritten {
		return
	}
	lang, _ := LookupLanguage(r.Index)
	m.entries.WithLabelValues(tableBaseName(r.Index), lang.ISO639_3).Set(float64(r.Entries))
}

// writeTextfile dumps the registry for the node-exporter textfile collector.
func (m *convertMetrics) writeTextfile(path string) error {
	m.lastRun.SetToCurrentTime()
	return prometheus.WriteToTextfile(path, m.registry)
}
