package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LedgerPool interface {
		Acquire(ctx context.Context, key ledger.Key) (ledger.Handle, error)
	}
	LedgerHandle interface {
		Key() ledger.Key
		Submit(ctx context.Context, fn string, args ...string) ([]byte, model.Receipt, error)
		Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error)
		BlockEvents(ctx context.Context) (<-chan model.LiveBlockEvent, error)
		Release()
	}
	// Invoker runs chaincode functions on the configured channel and chaincode.
	Invoker interface {
		Submit(ctx context.Context, fn string, args ...string) ([]byte, model.Receipt, error)
		Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error)
	}
	InvokerMetrics interface {
		Observe(operation, function string, err error, started time.Time)
	}
	BlockEventRepository interface {
		InsertBlockEvents(ctx context.Context, events []model.ArchivedBlockEvent) error
		RecentBlockEvents(ctx context.Context, channel, chaincode string, limit int) ([]model.ArchivedBlockEvent, error)
	}
	ArchiveMetrics interface {
		ObserveFlush(err error, size int, started time.Time)
		ObserveDropped()
	}
)
