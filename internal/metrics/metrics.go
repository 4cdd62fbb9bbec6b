package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studytrack_http_requests_total",
			Help: "HTTP requests handled, by matched route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studytrack_http_request_duration_seconds",
			Help:    "Latency of HTTP request handling in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	remindersFiredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "studytrack_reminders_fired_total",
			Help: "Reminders marked done by the reminder poller.",
		},
	)

	reminderTicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studytrack_reminder_ticks_total",
			Help: "Reminder poller passes, by result (ok or error).",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(Collectors()...)
}

// Collectors returns all metric collectors owned by this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		httpRequestsTotal,
		httpRequestDuration,
		remindersFiredTotal,
		reminderTicksTotal,
	}
}

func ObserveRequest(method, route string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func RecordReminderTick(fired int, err error) {
	if err != nil {
		reminderTicksTotal.WithLabelValues("error").Inc()
		return
	}
	reminderTicksTotal.WithLabelValues("ok").Inc()
	remindersFiredTotal.Add(float64(fired))
}

// ReminderTicks exposes the tick counter for result, for tests and dashboards.
func ReminderTicks(result string) prometheus.Counter {
	return reminderTicksTotal.WithLabelValues(result)
}

func RemindersFired() prometheus.Counter {
	return remindersFiredTotal
}
