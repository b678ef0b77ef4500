package metric

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistry_ObserveRequest(t *testing.T) {
	r := NewRegistry()

	r.ObserveRequest("PUT", ResultOK)
	r.ObserveRequest("PUT", ResultOK)
	r.ObserveRequest("GET", ResultNotFound)

	if got := testutil.ToFloat64(r.RequestsTotal.WithLabelValues("PUT", ResultOK)); got != 2 {
		t.Errorf("requests_total{PUT,ok} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.RequestsTotal.WithLabelValues("GET", ResultNotFound)); got != 1 {
		t.Errorf("requests_total{GET,not_found} = %v, want 1", got)
	}
}

func TestRegistry_StoreSize(t *testing.T) {
	r := NewRegistry()
	size := 3
	r.RegisterStoreSize(func() int { return size })

	expected := `
# HELP msgserver_store_keys Keys currently held in the store.
# TYPE msgserver_store_keys gauge
msgserver_store_keys 3
`
	if err := testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected), "msgserver_store_keys"); err != nil {
		t.Errorf("GatherAndCompare() error = %v", err)
	}
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	r.ConnectionsTotal.Inc()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(string(body), "msgserver_connections_total 1") {
		t.Errorf("metrics output missing connections_total:\n%s", body)
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("metrics output missing Go runtime collector")
	}
}

func TestNewRegistry_Independent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.ConnectionsTotal.Inc()
	if got := testutil.ToFloat64(b.ConnectionsTotal); got != 0 {
		t.Errorf("second registry connections_total = %v, want 0", got)
	}
}
