package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orcamentos_arq/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObserveCalculation(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.ObserveCalculation(entities.ServiceTypeDesign, "Bom", time.Millisecond)
	r.ObserveCalculation(entities.ServiceTypeDesign, "Bom", time.Millisecond)
	r.ObserveCalculation(entities.ServiceTypeDesign, "invalid", time.Millisecond)

	if got := testutil.ToFloat64(r.calculationsTotal.WithLabelValues("design", "Bom")); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	if got := testutil.ToFloat64(r.calculationsTotal.WithLabelValues("design", "invalid")); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestRecorder_RequestStartedAndHandler(t *testing.T) {
	r := New(prometheus.NewRegistry())

	done := r.RequestStarted()
	if got := testutil.ToFloat64(r.httpInFlight); got != 1 {
		t.Fatalf("expected 1 in flight, got %v", got)
	}
	done(http.MethodPost, "/v1/calculations", http.StatusOK)
	if got := testutil.ToFloat64(r.httpInFlight); got != 0 {
		t.Fatalf("expected 0 in flight, got %v", got)
	}

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `orcamentos_http_requests_total{method="POST",route="/v1/calculations",status="200"} 1`) {
		t.Fatalf("request counter missing from exposition:\n%s", body)
	}
}
