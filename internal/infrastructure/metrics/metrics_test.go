package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	// Replace global default registry to allow test inspection.
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	require.NotNil(t, m.MeetingsProcessed)
	require.NotNil(t, m.RepaymentsRecorded)
	require.NotNil(t, m.ConsistencyChecks)

	metricFamilies, err := registry.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, metricFamilies)
}

func TestObserveMeeting(t *testing.T) {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	m.ObserveMeeting(2, 1, 1, 1, true, 0.05)

	require.Equal(t, float64(1), testutil.ToFloat64(m.MeetingsProcessed.WithLabelValues("success")))
	require.Equal(t, float64(2), testutil.ToFloat64(m.LineItemsAccepted.WithLabelValues("shares")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.LineItemsRejected))
}
