package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// TestResult is the outcome of a quality test.
type TestResult string

var (
	TestPass TestResult = "PASS"
	TestFail TestResult = "FAIL"
)

// Resource type tags used by the ledger's provenance query.
const (
	KindCollectionEvent = "CollectionEvent"
	KindQualityTest     = "QualityTest"
	KindProcessingStep  = "ProcessingStep"
	KindBatchAsset      = "BatchAsset"
)

// Parameters is a string key-value map. It decodes from a JSON object or from a
// string holding a JSON object; scalar values are kept in their textual form.
type Parameters map[string]string

// UnmarshalJSON implements json.Unmarshaler.
func (p *Parameters) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = nil
		return nil
	}
	if data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		if encoded == "" {
			*p = Parameters{}
			return nil
		}
		data = []byte(encoded)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parameters must be an object: %w", err)
	}
	out := make(Parameters, len(raw))
	for k, v := range raw {
		s, err := scalarString(v)
		if err != nil {
			return fmt.Errorf("parameter %q: %w", k, err)
		}
		out[k] = s
	}
	*p = out
	return nil
}

func scalarString(v json.RawMessage) (string, error) {
	v = bytes.TrimSpace(v)
	switch {
	case len(v) == 0 || bytes.Equal(v, []byte("null")):
		return "", nil
	case v[0] == '"':
		var s string
		err := json.Unmarshal(v, &s)
		return s, err
	case bytes.Equal(v, []byte("true")), bytes.Equal(v, []byte("false")):
		return string(v), nil
	default:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return "", fmt.Errorf("unsupported value %s", v)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
}

// Missing returns the required keys that are absent or empty, in the order given.
func (p Parameters) Missing(required ...string) []string {
	var missing []string
	for _, k := range required {
		if p[k] == "" {
			missing = append(missing, k)
		}
	}
	return missing
}

// Keys returns the parameter names sorted.
func (p Parameters) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CollectionEvent is a harvest record submitted by a collector.
type CollectionEvent struct {
	EventID       string  `json:"eventId"`
	CollectorID   string  `json:"collectorId"`
	Species       string  `json:"species"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Timestamp     string  `json:"timestamp"`
	PhotoURL      string  `json:"photoUrl,omitempty"`
	QualityTestID string  `json:"qualityTestId,omitempty"`
	TestStatus    string  `json:"testStatus,omitempty"`
}

// QualityTest is a laboratory result for one collection event.
type QualityTest struct {
	TestID           string     `json:"testId"`
	EventID          string     `json:"eventId"`
	LabID            string     `json:"labId"`
	Parameters       Parameters `json:"parameters"`
	Result           TestResult `json:"result"`
	Date             string     `json:"date"`
	TesterID         string     `json:"testerId,omitempty"`
	StandardsVersion string     `json:"standardsVersion,omitempty"`
	TestingProtocol  string     `json:"testingProtocol,omitempty"`
	TestTimestamp    string     `json:"testTimestamp,omitempty"`
	LabCertification string     `json:"labCertification,omitempty"`
	EquipmentID      string     `json:"equipmentId,omitempty"`
}

// ProcessingStep is one transformation applied to a batch.
type ProcessingStep struct {
	StepID      string     `json:"stepId"`
	BatchID     string     `json:"batchId"`
	ProcessorID string     `json:"processorId"`
	StepType    string     `json:"stepType"`
	Conditions  Parameters `json:"conditions"`
	Timestamp   string     `json:"timestamp"`
}

// BatchAsset groups the records that make up one product batch. The commit
// receipt stamp is written only by the gateway and is not part of it.
type BatchAsset struct {
	BatchID         string   `json:"batchId"`
	Events          []string `json:"events"`
	QualityTests    []string `json:"qualityTests"`
	ProcessingSteps []string `json:"processingSteps"`
	QRCode          string   `json:"qrCode,omitempty"`
	TrackingID      string   `json:"trackingId,omitempty"`
	QRGeneratedBy   string   `json:"qrGeneratedBy,omitempty"`
	QRGeneratedAt   string   `json:"qrGeneratedAt,omitempty"`
	QRStatus        string   `json:"qrStatus,omitempty"`
}

// Receipt identifies the committed transaction behind a submit.
type Receipt struct {
	TransactionID string `json:"txId"`
	BlockNumber   uint64 `json:"blockNumber"`
}
