package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	ok := healthHandler(func(context.Context) error { return nil })
	rec := httptest.NewRecorder()
	ok(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())

	bad := healthHandler(func(context.Context) error { return errors.New("pg down") })
	rec = httptest.NewRecorder()
	bad(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "unhealthy: pg down", rec.Body.String())
}

func TestNewMetricsServerRoutes(t *testing.T) {
	srv := NewMetricsServer("0", func(context.Context) error { return nil })
	require.Equal(t, ":0", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestStakeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStakeMetrics(reg)

	m.ObserveRequest("ok", 10*time.Millisecond)
	m.ObserveRequest("ok", 20*time.Millisecond)
	m.ObserveRequest("unauthorized", time.Millisecond)
	m.ObservePublish(nil)
	m.ObservePublish(errors.New("broker down"))

	require.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("unauthorized")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Published.WithLabelValues("ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Published.WithLabelValues("error")))
}
