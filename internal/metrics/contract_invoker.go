package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	contractInvocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "contract_invoker",
		Name:      "invocations_total",
		Help:      "Count of chaincode invocations.",
	}, []string{"operation", "function", "status"})
	contractInvocationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "contract_invoker",
		Name:      "invocation_duration_seconds",
		Help:      "Duration of chaincode invocations including handle acquisition.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	}, []string{"operation", "function", "status"})
)

// ContractInvoker tracks submit and evaluate calls.
type ContractInvoker struct{}

// NewContractInvoker creates a ContractInvoker metrics collector.
func NewContractInvoker() *ContractInvoker {
	return &ContractInvoker{}
}

// Observe records one invocation. operation is "submit" or "evaluate".
func (m ContractInvoker) Observe(operation, function string, err error, started time.Time) {
	s := status(err)
	function = orUnknown(function)
	contractInvocationsTotal.WithLabelValues(operation, function, s).Inc()
	contractInvocationDuration.WithLabelValues(operation, function, s).Observe(time.Since(started).Seconds())
}
