package metrics

import (
	"net/http"
	"strconv"
	"time"

	"paysecure-gateway/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus implements ports.Metrics and the HTTP request observer on its
// own registry.
type Prometheus struct {
	registry *prometheus.Registry

	payments          *prometheus.CounterVec
	riskScore         prometheus.Histogram
	heuristicFailures *prometheus.CounterVec
	auditAppends      *prometheus.CounterVec
	otpOutcomes       *prometheus.CounterVec
	httpReqTotal      *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
}

// NewPrometheus registers the gateway collectors plus the Go runtime and
// process collectors.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		payments: f.NewCounterVec(prometheus.CounterOpts{
			Name: "paysecure_payments_total",
			Help: "Settled payments by rail and final status",
		}, []string{"rail", "status"}),
		riskScore: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "paysecure_risk_score",
			Help:    "Risk score of evaluated payments",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
		heuristicFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "paysecure_risk_heuristic_failures_total",
			Help: "Risk heuristics skipped because they errored",
		}, []string{"heuristic"}),
		auditAppends: f.NewCounterVec(prometheus.CounterOpts{
			Name: "paysecure_audit_appends_total",
			Help: "Audit chain entries appended by action",
		}, []string{"action"}),
		otpOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "paysecure_otp_events_total",
			Help: "Bank OTP challenge outcomes",
		}, []string{"outcome"}),
		httpReqTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "paysecure_http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "route", "status"}),
		httpLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "paysecure_http_request_duration_seconds",
			Help:    "Request latency",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
	}
}

func (p *Prometheus) ObservePayment(rail domain.Rail, status domain.TransactionStatus) {
	p.payments.WithLabelValues(string(rail), string(status)).Inc()
}

func (p *Prometheus) ObserveRiskScore(score int) {
	p.riskScore.Observe(float64(score))
}

func (p *Prometheus) ObserveRiskHeuristicFailure(heuristic string) {
	p.heuristicFailures.WithLabelValues(heuristic).Inc()
}

func (p *Prometheus) ObserveAuditAppend(action domain.AuditAction) {
	p.auditAppends.WithLabelValues(string(action)).Inc()
}

func (p *Prometheus) ObserveOTP(outcome string) {
	p.otpOutcomes.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	p.httpReqTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry exposes the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Noop discards every observation.
type Noop struct{}

func (Noop) ObservePayment(domain.Rail, domain.TransactionStatus) {}
func (Noop) ObserveRiskScore(int) {}
func (Noop) ObserveRiskHeuristicFailure(string) {}
func (Noop) ObserveAuditAppend(domain.AuditAction) {}
func (Noop) ObserveOTP(string) {}
