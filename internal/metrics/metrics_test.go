package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveQuery(t *testing.T) {
	m := New()
	m.ObserveQuery("destination", 2*time.Millisecond, 3)
	m.ObserveQuery("destination", time.Millisecond, 0)

	if got := testutil.ToFloat64(m.queriesTotal.WithLabelValues("destination")); got != 2 {
		t.Fatalf("expected 2 queries, got %v", got)
	}
	if n := testutil.CollectAndCount(m.queryDuration); n != 1 {
		t.Fatalf("expected one duration series, got %d", n)
	}
}

func TestOutcomeLabels(t *testing.T) {
	m := New()
	m.SourceLoaded("postgres", nil)
	m.SourceLoaded("postgres", errors.New("down"))
	m.Quote("stay", errors.New("invalid"))
	m.Export("minio", nil)
	m.CacheLookup("hit")

	if got := testutil.ToFloat64(m.sourceLoads.WithLabelValues("postgres", "error")); got != 1 {
		t.Fatalf("expected one failed load, got %v", got)
	}
	if got := testutil.ToFloat64(m.quotesTotal.WithLabelValues("stay", "error")); got != 1 {
		t.Fatalf("expected one failed quote, got %v", got)
	}
	if got := testutil.ToFloat64(m.exportsTotal.WithLabelValues("minio", "ok")); got != 1 {
		t.Fatalf("expected one export, got %v", got)
	}
	if got := testutil.ToFloat64(m.cacheTotal.WithLabelValues("hit")); got != 1 {
		t.Fatalf("expected one cache hit, got %v", got)
	}
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	m.ObserveQuery("activity", time.Second, 1)
	m.SourceLoaded("embedded", nil)
	m.CacheLookup("miss")
	m.Quote("activity", nil)
	m.Export("writer", nil)
	if err := m.Push(context.Background(), "http://unused", "catalog"); err != nil {
		t.Fatalf("expected nil push error, got %v", err)
	}
}

func TestPush(t *testing.T) {
	var body string
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := New()
	m.ObserveQuery("accommodation", time.Millisecond, 2)
	if err := m.Push(context.Background(), srv.URL, "catalog_cli"); err != nil {
		t.Fatalf("push: %v", err)
	}
	if path != "/metrics/job/catalog_cli" {
		t.Fatalf("unexpected push path %q", path)
	}
	if !strings.Contains(body, "catalog_queries_total") {
		t.Fatalf("expected pushed payload to carry catalog_queries_total")
	}
}

func TestPushFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if err := New().Push(context.Background(), srv.URL, "catalog_cli"); err == nil {
		t.Fatalf("expected push error")
	}
}
