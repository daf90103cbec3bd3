package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

const insertBlockEventsQuery = `
INSERT INTO live_block_events (
	channel,
	chaincode,
	block_number,
	tx_count,
	committed_at,
	received_at
) VALUES`

// InsertBlockEvents stores archived block events in ClickHouse.
func (r *Repository) InsertBlockEvents(ctx context.Context, events []model.ArchivedBlockEvent) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_block_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlockEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare block events batch: %w", err)
	}

	for _, e := range events {
		if err = batch.Append(
			e.Channel,
			e.Chaincode,
			e.BlockNumber,
			e.TxCount,
			e.Timestamp,
			e.ReceivedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block events: %w", err)
	}
	return nil
}
