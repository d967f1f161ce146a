// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the tide data pipeline.
package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "request_latency",
			Subsystem: "shadytimes",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0, 8.0, 16.0, 32.0},
		},
		[]string{"verb", "path", "code"},
	)

	tideFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "tide_fetches_total",
			Subsystem: "shadytimes",
			Help:      "Upstream tide data fetches by product and outcome.",
		},
		[]string{"product", "outcome"},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "series_cache_lookups_total",
			Subsystem: "shadytimes",
			Help:      "Per-day series cache lookups by product and result.",
		},
		[]string{"product", "result"},
	)

	liveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name:      "live_connections",
			Subsystem: "shadytimes",
			Help:      "Open live feed websocket connections.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		requestLatency,
		tideFetches,
		cacheLookups,
		liveConnections,
	)
}

func ObserveRequestLatency(verb, path, code string, latency float64) {
	requestLatency.With(prometheus.Labels{
		"code": code,
		"verb": verb,
		"path": path,
	}).Observe(latency)
}

// ObserveFetch counts one upstream fetch with outcome "ok" or "error".
func ObserveFetch(product, outcome string) {
	tideFetches.With(prometheus.Labels{
		"product": product,
		"outcome": outcome,
	}).Inc()
}

// ObserveCacheLookup counts one series cache lookup.
func ObserveCacheLookup(product string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.With(prometheus.Labels{
		"product": product,
		"result":  result,
	}).Inc()
}

func LiveConnectionOpened() {
	liveConnections.Inc()
}

func LiveConnectionClosed() {
	liveConnections.Dec()
}

func LatencyHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()
		verb := r.Method
		path := ""
		if r.URL != nil {
			path = r.URL.Path
		}

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		// Defer metric observing. Any panics in next are reported as 500
		// errors and then re-thrown.
		defer func() {
			if err := recover(); err != nil {
				ObserveRequestLatency(verb, path, "500", time.Now().Sub(t).Seconds())
				panic(err)
			}
			ObserveRequestLatency(verb, path, strconv.Itoa(rec.code), time.Now().Sub(t).Seconds())
		}()

		next.ServeHTTP(rec, r)
	})
}

// statusRecorder remembers the status code a handler wrote. It passes
// hijacking through so websocket upgrades keep working behind the
// middleware.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer of type %T does not support hijacking", r.ResponseWriter)
	}
	return h.Hijack()
}
