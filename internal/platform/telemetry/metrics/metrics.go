package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const namespace = "stake_ledger"

// Registry owns the process collectors.
type Registry struct {
	registry      *prometheus.Registry
	rpcTotal      *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
	ledgerTotal   *prometheus.CounterVec
	ledgerLatency *prometheus.HistogramVec
	breakerState  *prometheus.GaugeVec
}

// New builds a registry with RPC, ledger, breaker, and runtime collectors.
func New() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		rpcTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grpc",
			Name:      "requests_total",
			Help:      "Handled unary RPCs by method and status code.",
		}, []string{"method", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "grpc",
			Name:      "request_duration_seconds",
			Help:      "Unary RPC latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		ledgerTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Ledger mutations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		ledgerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "operation_duration_seconds",
			Help:      "Ledger mutation latency including the value-unit call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		breakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "unit",
			Name:      "breaker_state",
			Help:      "Circuit breaker state per value unit (0 closed, 1 half-open, 2 open).",
		}, []string{"unit"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.rpcTotal,
		r.rpcDuration,
		r.ledgerTotal,
		r.ledgerLatency,
		r.breakerState,
	)
	return r
}

// Gatherer exposes the underlying registry for tests and custom handlers.
func (r *Registry) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// Handler serves the registry in Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Gatherer(), promhttp.HandlerOpts{})
}

// ObserveOperation records one ledger mutation.
func (r *Registry) ObserveOperation(operation, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.ledgerTotal.WithLabelValues(operation, outcome).Inc()
	r.ledgerLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// SetBreakerState publishes a breaker transition for unit.
func (r *Registry) SetBreakerState(unit string, state int) {
	if r == nil {
		return
	}
	r.breakerState.WithLabelValues(unit).Set(float64(state))
}

// UnaryServerInterceptor counts and times every unary RPC.
func (r *Registry) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if r == nil {
			return handler(ctx, req)
		}
		start := time.Now()
		resp, err := handler(ctx, req)
		r.rpcDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		r.rpcTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}
