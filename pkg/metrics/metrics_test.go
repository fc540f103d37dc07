package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "facility-booking")

	m.ReservationsCreated(3)
	m.StatusChanged("Approved", 2)
	m.StatusChanged("Rejected", 1)
	m.ReservationsCancelled(1)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.reservationsCreated.WithLabelValues("facility-booking")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.statusTransitions.WithLabelValues("facility-booking", "Approved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusTransitions.WithLabelValues("facility-booking", "Rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reservationsCancelled.WithLabelValues("facility-booking")))
}

func TestMetrics_HTTPRequest(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "svc")

	m.ObserveHTTPRequest("GET", "/api/v1/calendar", 200, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("svc", "GET", "/api/v1/calendar", "200")))
}
