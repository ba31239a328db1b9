package serve

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsOptions(t *testing.T) {
	registry := prometheus.NewRegistry()

	config := defaultMetricsConfig()
	for _, opt := range []MetricsOption{
		WithNamespace("custom"),
		WithConstLabels(prometheus.Labels{"instance": "test"}),
		WithBuckets([]float64{0.1, 1}),
		WithRegistry(registry),
	} {
		opt(&config)
	}

	m := newServeMetrics(config)
	handler := m.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/registry.json", nil))

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}

	var sawCounter, sawHistogram bool
	for _, mf := range families {
		switch mf.GetName() {
		case "custom_registry_requests_total":
			sawCounter = true
			var hasInstance bool
			for _, label := range mf.GetMetric()[0].GetLabel() {
				if label.GetName() == "instance" && label.GetValue() == "test" {
					hasInstance = true
				}
			}
			if !hasInstance {
				t.Error("requests_total missing const label instance=test")
			}
		case "custom_registry_request_duration_seconds":
			sawHistogram = true
			if got := len(mf.GetMetric()[0].GetHistogram().GetBucket()); got != 2 {
				t.Errorf("histogram has %d buckets, want 2", got)
			}
		}
	}
	if !sawCounter {
		t.Error("custom_registry_requests_total not registered under the custom namespace")
	}
	if !sawHistogram {
		t.Error("custom_registry_request_duration_seconds not registered under the custom namespace")
	}
}
