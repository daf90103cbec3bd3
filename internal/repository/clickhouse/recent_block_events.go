package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

const recentBlockEventsQuery = `
SELECT
	channel,
	chaincode,
	block_number,
	tx_count,
	committed_at,
	received_at
FROM live_block_events FINAL
WHERE channel = ? AND chaincode = ?
ORDER BY block_number DESC
LIMIT ?`

// RecentBlockEvents returns up to limit events for channel and chaincode,
// newest block first.
func (r *Repository) RecentBlockEvents(ctx context.Context, channel, chaincode string, limit int) (events []model.ArchivedBlockEvent, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("recent_block_events", err, start)
	}()

	if limit <= 0 {
		return []model.ArchivedBlockEvent{}, nil
	}

	rows, err := r.conn.Query(ctx, recentBlockEventsQuery, channel, chaincode, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("query recent block events: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	events = make([]model.ArchivedBlockEvent, 0, limit)
	for rows.Next() {
		var e model.ArchivedBlockEvent
		if err = rows.Scan(
			&e.Channel,
			&e.Chaincode,
			&e.BlockNumber,
			&e.TxCount,
			&e.Timestamp,
			&e.ReceivedAt,
		); err != nil {
			return nil, fmt.Errorf("scan block event: %w", err)
		}
		e.Timestamp = e.Timestamp.UTC()
		e.ReceivedAt = e.ReceivedAt.UTC()
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block events: %w", err)
	}

	return events, nil
}
