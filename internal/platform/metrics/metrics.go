package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the duty log engine. A nil
// *Metrics is valid and records nothing, so wiring stays optional in tests.
type Metrics struct {
	EntriesIngested prometheus.Counter
	Rescans         prometheus.Counter
	Corrections     prometheus.Counter
	EntriesPurged   prometheus.Counter
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		EntriesIngested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dutylog_entries_ingested_total",
			Help: "Total number of log entries ingested from the message source",
		}),
		Rescans: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dutylog_rescans_total",
			Help: "Total number of full history rescans",
		}),
		Corrections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dutylog_corrections_total",
			Help: "Total number of manual time corrections applied",
		}),
		EntriesPurged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dutylog_entries_purged_total",
			Help: "Total number of log entries deleted by admin removal",
		}),
	}
}

func (m *Metrics) AddEntriesIngested(n int) {
	if m == nil {
		return
	}
	m.EntriesIngested.Add(float64(n))
}

func (m *Metrics) IncRescans() {
	if m == nil {
		return
	}
	m.Rescans.Inc()
}

func (m *Metrics) IncCorrections() {
	if m == nil {
		return
	}
	m.Corrections.Inc()
}

func (m *Metrics) AddEntriesPurged(n int64) {
	if m == nil {
		return
	}
	m.EntriesPurged.Add(float64(n))
}
