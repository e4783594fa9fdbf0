// Package metrics exposes Prometheus instruments for snapshot loads and
// spreadsheet exports.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "riskreport"

// Metrics contains the functions invoked at each stage of the pipeline to
// report metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	snapshotLoads    *prometheus.CounterVec
	snapshotDuration prometheus.Histogram
	sourceBytes      *prometheus.CounterVec
	datasetRecords   *prometheus.GaugeVec
	exports          *prometheus.CounterVec
	exportRows       *prometheus.HistogramVec
}

// New registers the instruments with reg. It returns nil when reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}

	return &Metrics{
		snapshotLoads: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_loads_total",
			Help:      "Number of dataset snapshot loads by result",
		}, []string{"result"}),
		snapshotDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "snapshot_load_duration_seconds",
			Help:      "Time spent reading and parsing all datasets of a snapshot",
			Buckets:   prometheus.DefBuckets,
		}),
		sourceBytes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_bytes_total",
			Help:      "Raw bytes read from dataset sources",
		}, []string{"dataset"}),
		datasetRecords: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Number of records in the most recently loaded snapshot",
		}, []string{"dataset"}),
		exports: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Number of spreadsheet exports by dataset and result",
		}, []string{"dataset", "result"}),
		exportRows: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_rows",
			Help:      "Data rows written per spreadsheet export",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"dataset"}),
	}
}

// SnapshotLoaded records a snapshot load attempt.
func (m *Metrics) SnapshotLoaded(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.snapshotLoads.WithLabelValues(result(err)).Inc()
	m.snapshotDuration.Observe(d.Seconds())
}

// SourceRead records bytes read for a dataset and its parsed record count.
func (m *Metrics) SourceRead(dataset string, bytes int64, records int) {
	if m == nil {
		return
	}
	m.sourceBytes.WithLabelValues(dataset).Add(float64(bytes))
	m.datasetRecords.WithLabelValues(dataset).Set(float64(records))
}

// Exported records a spreadsheet export.
func (m *Metrics) Exported(dataset string, rows int, err error) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(dataset, result(err)).Inc()
	if err == nil {
		m.exportRows.WithLabelValues(dataset).Observe(float64(rows))
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
