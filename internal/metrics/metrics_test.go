package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilRegisterer(t *testing.T) {
	m := New(nil)
	require.Nil(t, m)

	// Methods on a nil *Metrics are no-ops.
	m.SnapshotLoaded(time.Second, nil)
	m.SourceRead("x", 10, 1)
	m.Exported("x", 1, nil)
}

func TestSnapshotLoaded(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SnapshotLoaded(10*time.Millisecond, nil)
	m.SnapshotLoaded(20*time.Millisecond, nil)
	m.SnapshotLoaded(5*time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.snapshotLoads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.snapshotLoads.WithLabelValues("error")))

	n, err := testutil.GatherAndCount(reg, "riskreport_snapshot_load_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSourceRead(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.SourceRead("lost_semesters", 100, 3)
	m.SourceRead("lost_semesters", 50, 2)

	assert.Equal(t, 150.0, testutil.ToFloat64(m.sourceBytes.WithLabelValues("lost_semesters")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.datasetRecords.WithLabelValues("lost_semesters")))
}

func TestExported(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Exported("blocking_attempts", 12, nil)
	m.Exported("blocking_attempts", 0, errors.New("disk full"))

	expected := `
# HELP riskreport_exports_total Number of spreadsheet exports by dataset and result
# TYPE riskreport_exports_total counter
riskreport_exports_total{dataset="blocking_attempts",result="error"} 1
riskreport_exports_total{dataset="blocking_attempts",result="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "riskreport_exports_total"))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
