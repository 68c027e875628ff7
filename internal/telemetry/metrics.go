package telemetry

import (
	"context"
	"strconv"
	"time"

	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelOperation = "operation"
	labelStatus    = "status"
	labelCode      = "code"
	labelMethod    = "method"
	labelRoute     = "route"
	codeNone       = ""
)

// Metrics holds the Prometheus collectors for ledger operations and transport
// requests. It implements ledger.OperationLogger.
type Metrics struct {
	operations   *prometheus.CounterVec
	creditsUsed  prometheus.Counter
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	grpcRequests *prometheus.CounterVec
}

// NewMetrics registers the collectors with registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "matchledger_operations_total",
			Help: "Ledger operations by outcome",
		}, []string{labelOperation, labelStatus, labelCode}),
		creditsUsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "matchledger_credits_consumed_total",
			Help: "Credits consumed by successful lookups",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "matchledger_http_requests_total",
			Help: "Total HTTP requests",
		}, []string{labelMethod, labelRoute, labelStatus}),
		httpLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "matchledger_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{labelMethod, labelRoute}),
		grpcRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "matchledger_grpc_requests_total",
			Help: "Total gRPC requests",
		}, []string{labelMethod, labelCode}),
	}
}

func (metrics *Metrics) LogOperation(_ context.Context, entry ledger.OperationLog) {
	code := codeNone
	if entry.Error != nil {
		code = ledger.Classify(entry.Error).Code
	}
	metrics.operations.WithLabelValues(entry.Operation, entry.Status, code).Inc()
	if entry.CreditConsumed {
		metrics.creditsUsed.Inc()
	}
}

// ObserveHTTPRequest records one served HTTP request.
func (metrics *Metrics) ObserveHTTPRequest(method string, route string, status int, duration time.Duration) {
	metrics.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	metrics.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveGRPCRequest records one served gRPC call.
func (metrics *Metrics) ObserveGRPCRequest(fullMethod string, code string) {
	metrics.grpcRequests.WithLabelValues(fullMethod, code).Inc()
}
