package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingCounters(t *testing.T) {
	m := NewWithRegistry("hotel-test", prometheus.NewRegistry())

	m.BookingCreated("manual")
	m.BookingCreated("manual")
	m.BookingStatusChanged("confirmed")
	m.BookingConflict()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreatedTotal.WithLabelValues("manual")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingStatusChangesTotal.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingConflictsTotal))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.BookingCreated("self_service")
		m.BookingStatusChanged("cancelled")
		m.BookingConflict()
	})
}
