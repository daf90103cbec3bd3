package metrics

import (
	"time"

	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerPoolAcquireTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_pool",
		Name:      "acquire_total",
		Help:      "Count of ledger handle acquisitions.",
	}, []string{"channel", "chaincode", "status"})
	ledgerPoolAcquireDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_pool",
		Name:      "acquire_duration_seconds",
		Help:      "Time spent waiting for and opening ledger connections.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"channel", "chaincode", "status"})
	ledgerPoolReleaseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_pool",
		Name:      "release_total",
		Help:      "Count of ledger handle releases by outcome.",
	}, []string{"channel", "chaincode", "outcome"})
	ledgerPoolConnections = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ledger_pool",
		Name:      "connections",
		Help:      "Ledger connections by state.",
	}, []string{"channel", "chaincode", "state"})
)

// LedgerPool tracks metrics for the ledger connection pool.
type LedgerPool struct{}

// NewLedgerPool creates a LedgerPool metrics collector.
func NewLedgerPool() *LedgerPool {
	return &LedgerPool{}
}

// ObserveAcquire records the outcome and wait time of an acquisition.
func (m LedgerPool) ObserveAcquire(key ledger.Key, err error, started time.Time) {
	ch, cc := orUnknown(key.Channel), orUnknown(key.Chaincode)
	s := status(err)
	ledgerPoolAcquireTotal.WithLabelValues(ch, cc, s).Inc()
	ledgerPoolAcquireDuration.WithLabelValues(ch, cc, s).Observe(time.Since(started).Seconds())
}

// ObserveRelease records whether a released connection went back to the idle set.
func (m LedgerPool) ObserveRelease(key ledger.Key, discarded bool) {
	outcome := "reused"
	if discarded {
		outcome = "discarded"
	}
	ledgerPoolReleaseTotal.WithLabelValues(orUnknown(key.Channel), orUnknown(key.Chaincode), outcome).Inc()
}

// SetConnections publishes the open and idle connection counts for key.
func (m LedgerPool) SetConnections(key ledger.Key, open, idle int) {
	ch, cc := orUnknown(key.Channel), orUnknown(key.Chaincode)
	ledgerPoolConnections.WithLabelValues(ch, cc, "open").Set(float64(open))
	ledgerPoolConnections.WithLabelValues(ch, cc, "idle").Set(float64(idle))
}
