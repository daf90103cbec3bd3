package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

// ProvenanceAggregator assembles the chronological history of a batch.
type ProvenanceAggregator struct {
	invoker Invoker
	network string
	key     ledger.Key
	logger  *zap.Logger
}

// NewProvenanceAggregator builds an aggregator. network, channel and chaincode are
// reported in every bundle's proof.
func NewProvenanceAggregator(invoker Invoker, network string, key ledger.Key, logger *zap.Logger) *ProvenanceAggregator {
	return &ProvenanceAggregator{
		invoker: invoker,
		network: network,
		key:     key,
		logger:  logger.Named("provenance"),
	}
}

// Build evaluates getProvenance for batchID and orders the result.
func (p *ProvenanceAggregator) Build(ctx context.Context, batchID string) (model.ProvenanceBundle, error) {
	if strings.TrimSpace(batchID) == "" {
		return model.ProvenanceBundle{}, &model.ValidationError{Message: "batch id is required"}
	}

	payload, err := p.invoker.Evaluate(ctx, "getProvenance", batchID)
	if err != nil {
		return model.ProvenanceBundle{}, err
	}

	records, err := provenanceRecords(payload)
	if err != nil {
		return model.ProvenanceBundle{}, fmt.Errorf("provenance %s: %w", batchID, err)
	}

	bundle := p.assemble(batchID, records)
	if bundle.Batch == nil && len(bundle.Flow) == 0 {
		return model.ProvenanceBundle{}, fmt.Errorf("provenance %s: %w", batchID, model.ErrNotFound)
	}
	return bundle, nil
}

type recordHead struct {
	ResourceType string          `json:"resourceType"`
	EventID      json.RawMessage `json:"eventId"`
	TestID       json.RawMessage `json:"testId"`
	StepID       json.RawMessage `json:"stepId"`
	BatchID      json.RawMessage `json:"batchId"`
	Timestamp    json.RawMessage `json:"timestamp"`
	Date         json.RawMessage `json:"date"`
	TxID         json.RawMessage `json:"txId"`
	BlockNumber  json.RawMessage `json:"blockNumber"`
}

func (p *ProvenanceAggregator) assemble(batchID string, records []json.RawMessage) model.ProvenanceBundle {
	bundle := model.ProvenanceBundle{
		BatchID: batchID,
		Flow:    []model.FlowEntry{},
		Proof: model.Proof{
			Network:   p.network,
			Channel:   p.key.Channel,
			Chaincode: p.key.Chaincode,
		},
	}

	seen := make(map[string]struct{}, len(records))
	for _, raw := range records {
		var head recordHead
		if err := json.Unmarshal(raw, &head); err != nil {
			p.logger.Warn("skip undecodable provenance record", zap.String("batchId", batchID), zap.Error(err))
			continue
		}

		id, flowType, at, ok := flowFields(head)
		if head.ResourceType == model.KindBatchAsset {
			id = rawText(head.BatchID)
		} else if !ok {
			p.logger.Debug("skip provenance record", zap.String("resourceType", head.ResourceType))
			continue
		}

		dedupeKey := head.ResourceType + "/" + id
		if id == "" {
			dedupeKey = head.ResourceType + "#" + string(compact(raw))
		}
		if _, dup := seen[dedupeKey]; dup {
			continue
		}
		seen[dedupeKey] = struct{}{}

		if head.ResourceType == model.KindBatchAsset {
			if bundle.Batch == nil {
				bundle.Batch = raw
				bundle.Proof = p.proof(head)
			}
			continue
		}
		bundle.Flow = append(bundle.Flow, model.FlowEntry{
			Type:         flowType,
			ResourceType: head.ResourceType,
			ID:           id,
			Timestamp:    at,
			Data:         raw,
		})
	}

	sort.SliceStable(bundle.Flow, func(i, j int) bool {
		return bundle.Flow[i].Timestamp.Before(bundle.Flow[j].Timestamp)
	})
	return bundle
}

func (p *ProvenanceAggregator) proof(batch recordHead) model.Proof {
	proof := model.Proof{
		Network:   p.network,
		Channel:   p.key.Channel,
		Chaincode: p.key.Chaincode,
	}
	txID := rawText(batch.TxID)
	if txID == "" {
		return proof
	}
	proof.TransactionID = txID
	if n, err := strconv.ParseUint(rawText(batch.BlockNumber), 10, 64); err == nil {
		proof.BlockNumber = n
	}
	proof.Authenticated = true
	return proof
}

func flowFields(head recordHead) (string, model.FlowType, time.Time, bool) {
	switch head.ResourceType {
	case model.KindCollectionEvent:
		return rawText(head.EventID), model.FlowCollection, parseInstant(head.Timestamp), true
	case model.KindQualityTest:
		return rawText(head.TestID), model.FlowTest, parseInstant(head.Date), true
	case model.KindProcessingStep:
		return rawText(head.StepID), model.FlowProcessing, parseInstant(head.Timestamp), true
	default:
		return "", "", time.Time{}, false
	}
}

// provenanceRecords flattens either a {entry:[{resource:{...}}]} document or a
// plain array of tagged records.
func provenanceRecords(payload []byte) ([]json.RawMessage, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, nil
	}

	switch payload[0] {
	case '[':
		var records []json.RawMessage
		if err := json.Unmarshal(payload, &records); err != nil {
			return nil, fmt.Errorf("decode record list: %w", err)
		}
		return records, nil
	case '{':
		var doc struct {
			Entry *[]struct {
				Resource json.RawMessage `json:"resource"`
			} `json:"entry"`
		}
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("decode provenance document: %w", err)
		}
		if doc.Entry == nil {
			return []json.RawMessage{json.RawMessage(payload)}, nil
		}
		records := make([]json.RawMessage, 0, len(*doc.Entry))
		for _, e := range *doc.Entry {
			if len(e.Resource) > 0 {
				records = append(records, e.Resource)
			}
		}
		return records, nil
	case 'n':
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected provenance payload starting with %q", payload[0])
	}
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// parseInstant reads a string date or epoch milliseconds. Anything else is the
// zero time, which sorts first.
func parseInstant(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return time.Time{}
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}
		}
		for _, layout := range instantLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC()
			}
		}
		return time.Time{}
	}
	if ms, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
		return time.UnixMilli(ms).UTC()
	}
	return time.Time{}
}

// rawText reads a JSON string or number as text. Objects, arrays, booleans and
// null read as empty.
func rawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch {
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return ""
		}
		return n.String()
	default:
		return ""
	}
}

func compact(raw json.RawMessage) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}
