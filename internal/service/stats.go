package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
	"github.com/goodnatureofminers/tracechain-gateway/pkg/workerpool"
)

var statsQueries = []string{
	"queryAllCollectionEvents",
	"queryAllQualityTests",
	"queryAllProcessingSteps",
	"queryAllBatches",
}

// Counts is the number of records of each kind on the ledger.
type Counts struct {
	CollectionEvents int `json:"collectionEvents"`
	QualityTests     int `json:"qualityTests"`
	ProcessingSteps  int `json:"processingSteps"`
	Batches          int `json:"batches"`
}

type Stats struct {
	Counts Counts `json:"counts"`
}

// Stats counts every record kind, querying the ledger in parallel.
func (r *Records) Stats(ctx context.Context) (Stats, error) {
	counts, err := workerpool.Map(ctx, len(statsQueries), statsQueries, func(ctx context.Context, fn string) (int, error) {
		records, err := list[json.RawMessage](ctx, r.invoker, fn)
		return len(records), err
	})
	if err != nil {
		return Stats{}, err
	}
	return Stats{Counts: Counts{
		CollectionEvents: counts[0],
		QualityTests:     counts[1],
		ProcessingSteps:  counts[2],
		Batches:          counts[3],
	}}, nil
}

// BatchSummary is one line of the summary report.
type BatchSummary struct {
	BatchID string `json:"batchId"`
	Events  int    `json:"events"`
	Tests   int    `json:"tests"`
	Steps   int    `json:"steps"`
	QRCode  string `json:"qrCode,omitempty"`
}

type Summary struct {
	GeneratedAt  time.Time      `json:"generatedAt"`
	TotalBatches int            `json:"totalBatches"`
	Batches      []BatchSummary `json:"batches"`
}

// Summary reports per-batch record counts.
func (r *Records) Summary(ctx context.Context) (Summary, error) {
	batches, err := r.Batches(ctx)
	if err != nil {
		return Summary{}, err
	}
	return summarize(batches, r.now().UTC()), nil
}

func summarize(batches []model.BatchAsset, at time.Time) Summary {
	out := Summary{
		GeneratedAt:  at,
		TotalBatches: len(batches),
		Batches:      make([]BatchSummary, 0, len(batches)),
	}
	for _, b := range batches {
		out.Batches = append(out.Batches, BatchSummary{
			BatchID: b.BatchID,
			Events:  len(b.Events),
			Tests:   len(b.QualityTests),
			Steps:   len(b.ProcessingSteps),
			QRCode:  b.QRCode,
		})
	}
	return out
}
