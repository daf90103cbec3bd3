// Package live fans committed block events out to streaming subscribers.
package live

import (
	"context"

	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Sink receives events for one subscriber. Send must not block; an error
	// removes the subscriber. Close delivers the terminal error.
	Sink interface {
		Send(event model.LiveBlockEvent) error
		Close(err error)
	}
	// Source opens the upstream block stream for key. release is called once the
	// stream has ended.
	Source interface {
		Subscribe(ctx context.Context, key ledger.Key) (events <-chan model.LiveBlockEvent, release func(), err error)
	}
	// Observer sees every upstream event before it is fanned out.
	Observer interface {
		Observe(key ledger.Key, event model.LiveBlockEvent)
	}
	Metrics interface {
		SetSubscribers(key ledger.Key, n int)
		ObserveEvent(key ledger.Key)
		ObserveDropped(key ledger.Key)
		ObserveConnect(key ledger.Key, err error)
	}
	LedgerPool interface {
		Acquire(ctx context.Context, key ledger.Key) (ledger.Handle, error)
	}
)
