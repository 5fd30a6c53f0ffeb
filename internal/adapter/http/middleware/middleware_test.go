package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordedRequest struct {
	method, route string
	status        int
}

type fakeTracker struct {
	started  int
	finished []recordedRequest
}

func (f *fakeTracker) RequestStarted() func(method, route string, status int) {
	f.started++
	return func(method, route string, status int) {
		f.finished = append(f.finished, recordedRequest{method, route, status})
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracker := &fakeTracker{}

	r := gin.New()
	r.Use(Metrics(tracker))
	r.GET("/v1/estimates/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/estimates/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if tracker.started != 2 || len(tracker.finished) != 2 {
		t.Fatalf("unexpected tracker state: %+v", tracker)
	}
	if got := tracker.finished[0]; got.route != "/v1/estimates/:id" || got.status != http.StatusNoContent {
		t.Fatalf("unexpected first request: %+v", got)
	}
	if got := tracker.finished[1]; got.route != "unmatched" || got.status != http.StatusNotFound {
		t.Fatalf("unexpected second request: %+v", got)
	}
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("dynamo down"))
		c.Status(http.StatusInternalServerError)
	})

	for _, p := range []string{"/ok", "/bad", "/fail"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(entries))
	}
	if entries[0].Level != zap.InfoLevel || entries[1].Level != zap.WarnLevel || entries[2].Level != zap.ErrorLevel {
		t.Fatalf("unexpected levels: %v %v %v", entries[0].Level, entries[1].Level, entries[2].Level)
	}
	if got := entries[2].ContextMap()["errors"]; got == nil {
		t.Fatalf("expected handler errors to be logged, got %v", entries[2].ContextMap())
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
