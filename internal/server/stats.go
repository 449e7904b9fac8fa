package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Stats holds the bridge's Prometheus collectors on a private registry
type Stats struct {
	registry     *prometheus.Registry
	invocations  *prometheus.CounterVec
	invokeTime   *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
}

func NewStats() *Stats {
	s := &Stats{
		registry: prometheus.NewRegistry(),
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "djtokey_invocations_total",
			Help: "Script method invocations by object, method and outcome.",
		}, []string{"object", "method", "status"}),
		invokeTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "djtokey_invocation_seconds",
			Help:    "Time spent in script method invocations.",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"object"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "djtokey_http_requests_total",
			Help: "API requests by status code and HTTP method.",
		}, []string{"code", "method"}),
	}

	s.registry.MustRegister(
		s.invocations,
		s.invokeTime,
		s.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return s
}

// Handler serves the registry in the Prometheus exposition format.
func (s *Stats) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})
}

// RecInvoke records one invocation.
func (s *Stats) RecInvoke(object, method string, err error, took time.Duration) {
	status := statusOK
	if err != nil {
		status = statusError
	}

	s.invocations.WithLabelValues(object, method, status).Inc()
	s.invokeTime.WithLabelValues(object).Observe(took.Seconds())
}

// RecWWW records one API request.
func (s *Stats) RecWWW(code int, method string) {
	s.httpRequests.WithLabelValues(strconv.Itoa(code), method).Inc()
}

// respWriter captures the status code for StatsMiddleware
type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// StatsMiddleware counts requests by response status.
func (s *Stats) StatsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := &respWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		s.RecWWW(wrapped.status, r.Method)
	})
}
