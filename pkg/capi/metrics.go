package capi

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the Prometheus metrics for the ABI surface.
type Metrics struct {
	KeyPairsGenerated *prometheus.CounterVec
	SignOperations    *prometheus.CounterVec
	VerifyOperations  *prometheus.CounterVec
	ErrorsTotal       *prometheus.CounterVec
	LiveHandles       prometheus.Gauge
}

// NewMetrics initializes and registers metrics on the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers metrics with a custom
// registerer, which tests use to avoid duplicate registration.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		KeyPairsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sage_crypto_keypairs_generated_total",
			Help: "Number of key pairs generated, by algorithm",
		}, []string{"algorithm"}),
		SignOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sage_crypto_sign_operations_total",
			Help: "Number of sign operations, by algorithm",
		}, []string{"algorithm"}),
		VerifyOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sage_crypto_verify_operations_total",
			Help: "Number of verify operations, by algorithm and result",
		}, []string{"algorithm", "result"}),
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sage_crypto_errors_total",
			Help: "Number of failed operations, by status",
		}, []string{"status"}),
		LiveHandles: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sage_crypto_live_handles",
			Help: "Number of handles currently alive",
		}),
	}
}

var (
	defaultMetricsOnce sync.Once
	defaultMetricsVal  *Metrics
)

// defaultMetrics registers the process-wide metrics exactly once.
func defaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetricsVal = NewMetrics()
	})
	return defaultMetricsVal
}
