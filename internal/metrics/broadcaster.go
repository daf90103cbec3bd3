package metrics

import (
	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	broadcasterSubscribers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "broadcaster",
		Name:      "subscribers",
		Help:      "Registered live block subscribers.",
	}, []string{"channel", "chaincode"})
	broadcasterEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "broadcaster",
		Name:      "events_total",
		Help:      "Block events received from upstream.",
	}, []string{"channel", "chaincode"})
	broadcasterDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "broadcaster",
		Name:      "dropped_subscribers_total",
		Help:      "Subscribers removed after a failed delivery.",
	}, []string{"channel", "chaincode"})
	broadcasterUpstreamTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "broadcaster",
		Name:      "upstream_connects_total",
		Help:      "Upstream block subscription attempts.",
	}, []string{"channel", "chaincode", "status"})
)

// Broadcaster tracks the live block fan-out.
type Broadcaster struct{}

// NewBroadcaster creates a Broadcaster metrics collector.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

func (m Broadcaster) SetSubscribers(key ledger.Key, n int) {
	broadcasterSubscribers.WithLabelValues(orUnknown(key.Channel), orUnknown(key.Chaincode)).Set(float64(n))
}

func (m Broadcaster) ObserveEvent(key ledger.Key) {
	broadcasterEventsTotal.WithLabelValues(orUnknown(key.Channel), orUnknown(key.Chaincode)).Inc()
}

func (m Broadcaster) ObserveDropped(key ledger.Key) {
	broadcasterDroppedTotal.WithLabelValues(orUnknown(key.Channel), orUnknown(key.Chaincode)).Inc()
}

// ObserveConnect records an upstream subscription attempt.
func (m Broadcaster) ObserveConnect(key ledger.Key, err error) {
	broadcasterUpstreamTotal.WithLabelValues(orUnknown(key.Channel), orUnknown(key.Chaincode), status(err)).Inc()
}
