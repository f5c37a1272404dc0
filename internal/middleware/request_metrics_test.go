package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZaneLittle/SwoleExperience-sub000/internal/telemetry/metrics"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	r := mux.NewRouter()
	r.HandleFunc("/weight", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}).Methods("POST").Name("new-weight")
	r.HandleFunc("/weight/chart", func(w http.ResponseWriter, r *http.Request) {}).Methods("GET").Name("weight-chart")
	r.Use(RequestMetrics(metricsManager))

	for _, req := range []*http.Request{
		httptest.NewRequest("POST", "/weight", nil),
		httptest.NewRequest("POST", "/weight", nil),
		httptest.NewRequest("GET", "/weight/chart", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("POST", "201")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "200")))

	count, err := testutil.GatherAndCount(reg, "weight_test_server_request_duration_seconds")
	require.NoError(t, err)
	// one series per (route, method, status)
	assert.Equal(t, 2, count)
}
