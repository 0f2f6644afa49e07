package middleware

import (
	"net/http"
	"time"

	"hospital-portal/internal/infrastructure/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// MetricsMiddleware records request counts and latencies per route template
// and logs each request at debug level.
type MetricsMiddleware struct {
	metrics *metrics.HTTPMetrics
	log     *logrus.Logger
}

func NewMetricsMiddleware(m *metrics.HTTPMetrics, log *logrus.Logger) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m, log: log}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (m *MetricsMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		// Route templates keep label cardinality bounded.
		route := "unmatched"
		if current := mux.CurrentRoute(req); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		elapsed := time.Since(start)
		m.metrics.ObserveRequest(route, req.Method, rec.status, elapsed)
		m.log.WithFields(logrus.Fields{
			"method":   req.Method,
			"route":    route,
			"status":   rec.status,
			"duration": elapsed.String(),
		}).Debug("request handled")
	})
}
