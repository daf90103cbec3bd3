// Package ledger manages connections to the ledger gateway and the handles that
// scope them to a single logical operation.
package ledger

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Conn is a connection to a gateway peer bound to one channel and chaincode.
	Conn interface {
		Submit(ctx context.Context, fn string, args ...string) ([]byte, model.Receipt, error)
		Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error)
		BlockEvents(ctx context.Context) (<-chan model.LiveBlockEvent, error)
		Healthy() bool
		Close() error
	}
	// Dialer opens new connections.
	Dialer interface {
		Dial(ctx context.Context, key Key) (Conn, error)
	}
	// Handle is a connection leased from the pool for one operation.
	Handle interface {
		Key() Key
		Submit(ctx context.Context, fn string, args ...string) ([]byte, model.Receipt, error)
		Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error)
		BlockEvents(ctx context.Context) (<-chan model.LiveBlockEvent, error)
		Release()
	}
	PoolMetrics interface {
		ObserveAcquire(key Key, err error, started time.Time)
		ObserveRelease(key Key, discarded bool)
		SetConnections(key Key, open, idle int)
	}
)

// Key names the channel and chaincode a connection targets.
type Key struct {
	Channel   string
	Chaincode string
}

func (k Key) String() string {
	return k.Channel + "/" + k.Chaincode
}
