package live

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

// PoolSource streams blocks over a connection leased from the ledger pool. The
// lease is held for as long as the stream is open.
type PoolSource struct {
	pool LedgerPool
}

func NewPoolSource(pool LedgerPool) *PoolSource {
	return &PoolSource{pool: pool}
}

func (s *PoolSource) Subscribe(ctx context.Context, key ledger.Key) (<-chan model.LiveBlockEvent, func(), error) {
	h, err := s.pool.Acquire(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	events, err := h.BlockEvents(ctx)
	if err != nil {
		h.Release()
		return nil, nil, fmt.Errorf("subscribe to %s blocks: %w", key, err)
	}
	return events, h.Release, nil
}
