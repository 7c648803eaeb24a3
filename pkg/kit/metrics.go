package kit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelService = "service"
	labelMethod  = "method"
	labelPath    = "path"
	labelStatus  = "status"
	labelCommand = "command"
	labelOutcome = "outcome"

	defaultStatusCode = http.StatusOK
)

// Metrics holds the admin endpoint request metrics and the shell command
// metrics. Both sets live on the same registry.
type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec

	Commands        *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{labelService, labelMethod, labelPath, labelStatus},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP latency",
			},
			[]string{labelService, labelMethod, labelPath},
		),
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_commands_total",
				Help: "Shell commands by outcome",
			},
			[]string{labelCommand, labelOutcome},
		),
		CommandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shell_command_duration_seconds",
				Help:    "Time spent in a shell command, user input included",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 300},
			},
			[]string{labelCommand},
		),
	}

	reg.MustRegister(m.Requests, m.Latency, m.Commands, m.CommandDuration)
	return m
}

// ObserveCommand records one dispatched shell command. A nil receiver is a no-op.
func (m *Metrics) ObserveCommand(command string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.Commands.WithLabelValues(command, Outcome(err)).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(d.Seconds())
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (m *Metrics) Middleware(service string, pathLabel func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{
				ResponseWriter: w,
				status:         defaultStatusCode,
			}

			start := time.Now()
			next.ServeHTTP(sw, r)

			path := pathLabel(r)
			m.Latency.WithLabelValues(service, r.Method, path).
				Observe(time.Since(start).Seconds())

			m.Requests.WithLabelValues(service, r.Method, path, strconv.Itoa(sw.status)).
				Inc()
		})
	}
}
