package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/alimentos", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/alimentos", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/alimentos", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", UnmatchedPath, "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()

	a.ObserveRequest(http.MethodPost, "/alimentos", http.StatusCreated, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.requests.WithLabelValues("POST", "/alimentos", "201")))
	assert.Equal(t, 0, testutil.CollectAndCount(b.requests))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodDelete, "/alimentos/:categoria", http.StatusNoContent, time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="DELETE",path="/alimentos/:categoria",status="204"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
