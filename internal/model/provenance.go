package model

import (
	"encoding/json"
	"time"
)

// FlowType labels an entry of the chronological supply chain flow.
type FlowType string

var (
	FlowCollection FlowType = "collection"
	FlowTest       FlowType = "test"
	FlowProcessing FlowType = "processing"
)

// FlowEntry is one tagged record in a provenance flow.
type FlowEntry struct {
	Type         FlowType        `json:"type"`
	ResourceType string          `json:"resourceType"`
	ID           string          `json:"id"`
	Timestamp    time.Time       `json:"timestamp"`
	Data         json.RawMessage `json:"data"`
}

// Proof carries ledger identity and commit metadata shown next to a bundle.
type Proof struct {
	Network       string `json:"network"`
	Channel       string `json:"channel"`
	Chaincode     string `json:"chaincode"`
	TransactionID string `json:"transactionHash,omitempty"`
	BlockNumber   uint64 `json:"blockNumber,omitempty"`
	Authenticated bool   `json:"authenticated"`
}

// ProvenanceBundle is the aggregated history of one batch. It is built per request
// and never stored.
type ProvenanceBundle struct {
	BatchID string          `json:"batchId"`
	Batch   json.RawMessage `json:"batch,omitempty"`
	Flow    []FlowEntry     `json:"flow"`
	Proof   Proof           `json:"proof"`
}
