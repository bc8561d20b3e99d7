package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.Metrics = (*Prometheus)(nil)
	_ ports.Metrics = Noop{}
)

func TestPrometheus_Counters(t *testing.T) {
	p := NewPrometheus()

	p.ObservePayment(domain.RailUPI, domain.TransactionStatusSuccess)
	p.ObservePayment(domain.RailUPI, domain.TransactionStatusSuccess)
	p.ObservePayment(domain.RailBank, domain.TransactionStatusFailed)
	p.ObserveRiskHeuristicFailure("velocity")
	p.ObserveAuditAppend(domain.AuditActionTransactionSuccess)
	p.ObserveOTP("expired")

	assert.Equal(t, 2.0, testutil.ToFloat64(p.payments.WithLabelValues("UPI", "SUCCESS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.payments.WithLabelValues("BANK", "FAILED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.heuristicFailures.WithLabelValues("velocity")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.auditAppends.WithLabelValues("TRANSACTION_SUCCESS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.otpOutcomes.WithLabelValues("expired")))
}

func TestPrometheus_HTTPAndHistogram(t *testing.T) {
	p := NewPrometheus()

	p.ObserveRiskScore(45)
	p.ObserveHTTPRequest("POST", "/api/v1/payments/pay", 201, 30*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(p.httpReqTotal.WithLabelValues("POST", "/api/v1/payments/pay", "201")))
	assert.Equal(t, 1, testutil.CollectAndCount(p.riskScore))
}

func TestPrometheus_Handler(t *testing.T) {
	p := NewPrometheus()
	p.ObservePayment(domain.RailCard, domain.TransactionStatusSuccess)

	w := httptest.NewRecorder()
	p.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `paysecure_payments_total{rail="CARD",status="SUCCESS"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestPrometheus_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheus()
		NewPrometheus()
	})
}
