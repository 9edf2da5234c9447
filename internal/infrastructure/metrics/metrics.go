package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Appointment lifecycle events counted by RecordAppointmentEvent
const (
	EventAppointmentCreated   = "created"
	EventAppointmentCancelled = "cancelled"
	EventAppointmentVisited   = "visited"
	EventAppointmentRejected  = "rejected"
)

// Collector owns the service's Prometheus registry. A nil *Collector is a
// valid no-op, so workflows can be built without metrics in tests.
type Collector struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	appointmentEvents   *prometheus.CounterVec
	consultationFees    prometheus.Histogram
	scheduleCacheLookup *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		appointmentEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "appointment_events_total",
				Help: "Appointment lifecycle events",
			},
			[]string{"event"},
		),
		consultationFees: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "consultation_fee_total",
				Help:    "Total fee billed per completed consultation",
				Buckets: []float64{0, 10, 25, 50, 100, 250, 500, 1000},
			},
		),
		scheduleCacheLookup: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schedule_cache_lookups_total",
				Help: "Schedule window cache lookups by result",
			},
			[]string{"result"},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequestsTotal,
		c.httpRequestDuration,
		c.appointmentEvents,
		c.consultationFees,
		c.scheduleCacheLookup,
	)

	return c
}

// RecordAppointmentEvent counts one appointment lifecycle event
func (c *Collector) RecordAppointmentEvent(event string) {
	if c == nil {
		return
	}
	c.appointmentEvents.WithLabelValues(event).Inc()
}

// RecordConsultationFee observes the billed total of a completed visit
func (c *Collector) RecordConsultationFee(fee float64) {
	if c == nil {
		return
	}
	c.consultationFees.Observe(fee)
}

// RecordScheduleCache counts a cache hit or miss
func (c *Collector) RecordScheduleCache(hit bool) {
	if c == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	c.scheduleCacheLookup.WithLabelValues(result).Inc()
}

// Registry exposes the underlying registry for scraping and tests
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns the Prometheus metrics HTTP handler
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// HTTPMiddleware records request count and latency labelled by the mux route template
func (c *Collector) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		c.httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapper.statusCode)).Inc()
		c.httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
