package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
	"github.com/goodnatureofminers/tracechain-gateway/pkg/batcher"
)

const (
	archiveFlushSize     = 100
	archiveFlushInterval = 2 * time.Second
	archiveFlushRPS      = 10

	DefaultRecentLimit = 50
	MaxRecentLimit     = 500
)

// BlockArchive persists broadcast block events and serves the most recent ones.
type BlockArchive struct {
	repo    BlockEventRepository
	metrics ArchiveMetrics
	key     ledger.Key
	now     func() time.Time
	logger  *zap.Logger

	batcher *batcher.Batcher[model.ArchivedBlockEvent]
}

// NewBlockArchive builds an archive writing to repo. Recent reads are scoped to key.
func NewBlockArchive(repo BlockEventRepository, key ledger.Key, metrics ArchiveMetrics, logger *zap.Logger) (*BlockArchive, error) {
	if repo == nil {
		return nil, errors.New("block event repository is required")
	}
	if metrics == nil {
		return nil, errors.New("archive metrics is required")
	}
	a := &BlockArchive{
		repo:    repo,
		metrics: metrics,
		key:     key,
		now:     time.Now,
		logger:  logger.Named("blockArchive"),
	}
	a.batcher = batcher.New[model.ArchivedBlockEvent](
		a.logger.Named("batcher"),
		a.flush,
		archiveFlushSize,
		archiveFlushInterval,
		archiveFlushRPS,
	)
	return a, nil
}

// Start launches the background writer. Stop flushes and waits for it.
func (a *BlockArchive) Start(ctx context.Context) {
	a.batcher.Start(ctx)
}

func (a *BlockArchive) Stop() {
	a.batcher.Stop()
}

// Observe queues event for writing. It never blocks the caller; when the
// queue is full the event is dropped.
func (a *BlockArchive) Observe(key ledger.Key, event model.LiveBlockEvent) {
	archived := model.ArchivedBlockEvent{
		Channel:        key.Channel,
		Chaincode:      key.Chaincode,
		ReceivedAt:     a.now().UTC(),
		LiveBlockEvent: event,
	}
	if !a.batcher.TryAdd(archived) {
		a.metrics.ObserveDropped()
		a.logger.Debug("archive queue full, dropping block event", zap.Uint64("block", event.BlockNumber))
	}
}

func (a *BlockArchive) flush(ctx context.Context, events []model.ArchivedBlockEvent) (err error) {
	started := time.Now()
	defer func() {
		a.metrics.ObserveFlush(err, len(events), started)
	}()
	return a.repo.InsertBlockEvents(ctx, events)
}

// Recent returns up to limit archived events, newest first. limit is clamped
// to [1, MaxRecentLimit]; zero or less selects DefaultRecentLimit.
func (a *BlockArchive) Recent(ctx context.Context, limit int) ([]model.ArchivedBlockEvent, error) {
	events, err := a.repo.RecentBlockEvents(ctx, a.key.Channel, a.key.Chaincode, ClampRecentLimit(limit))
	if err != nil {
		return []model.ArchivedBlockEvent{}, err
	}
	if events == nil {
		events = []model.ArchivedBlockEvent{}
	}
	return events, nil
}

func ClampRecentLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultRecentLimit
	case limit > MaxRecentLimit:
		return MaxRecentLimit
	default:
		return limit
	}
}
