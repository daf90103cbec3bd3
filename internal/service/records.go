package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tracechain-gateway/internal/clock"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

// Lab enrichment applied to every quality test.
const (
	StandardsVersion   = "AYUSH-2025"
	TestingProtocol    = "ISO-9001"
	LabCertification   = "NABL-CERTIFIED"
	DefaultEquipmentID = "STD-LAB-001"
)

// RequiredTestParameters must be present and non-empty on every quality test.
var RequiredTestParameters = []string{"moisture", "purity", "foreignMatter"}

// Records maps record operations onto chaincode functions.
type Records struct {
	invoker Invoker
	now     func() time.Time
	logger  *zap.Logger
}

// NewRecords builds a Records service.
func NewRecords(invoker Invoker, logger *zap.Logger) *Records {
	return &Records{
		invoker: invoker,
		now:     time.Now,
		logger:  logger.Named("records"),
	}
}

func (r *Records) timestamp() string {
	return clock.Stamp(r.now())
}

func (r *Records) submitJSON(ctx context.Context, fn string, v any) (json.RawMessage, model.Receipt, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, model.Receipt{}, fmt.Errorf("encode %s payload: %w", fn, err)
	}
	payload, receipt, err := r.invoker.Submit(ctx, fn, string(body))
	if err != nil {
		return nil, receipt, err
	}
	return RawObject(payload), receipt, nil
}

func (r *Records) submitID(ctx context.Context, fn, id string) (json.RawMessage, model.Receipt, error) {
	if strings.TrimSpace(id) == "" {
		return nil, model.Receipt{}, &model.ValidationError{Message: "id is required"}
	}
	payload, receipt, err := r.invoker.Submit(ctx, fn, id)
	if err != nil {
		return nil, receipt, err
	}
	return RawObject(payload), receipt, nil
}

// get evaluates a single-record query. An empty answer means the id is unknown.
func (r *Records) get(ctx context.Context, fn, id string) (json.RawMessage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &model.ValidationError{Message: "id is required"}
	}
	payload, err := r.invoker.Evaluate(ctx, fn, id)
	if err != nil {
		return nil, err
	}
	if isEmpty(payload) {
		return nil, fmt.Errorf("%s %s: %w", fn, id, model.ErrNotFound)
	}
	if !json.Valid(payload) {
		return nil, fmt.Errorf("%s %s: invalid ledger payload", fn, id)
	}
	return json.RawMessage(payload), nil
}

func list[T any](ctx context.Context, invoker Invoker, fn string) ([]T, error) {
	payload, err := invoker.Evaluate(ctx, fn)
	if err != nil {
		return []T{}, err
	}
	return DecodeList[T](payload)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func required(message string, fields map[string]string) error {
	var missing []string
	for _, name := range model.Parameters(fields).Keys() {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &model.ValidationError{Message: message, Missing: missing}
	}
	return nil
}

// Users

// RegisterUser stores a new active user. registeredBy names the acting admin.
func (r *Records) RegisterUser(ctx context.Context, user model.User, registeredBy string) (json.RawMessage, model.Receipt, error) {
	if err := required("name, role and organization are required", map[string]string{
		"name":         user.Name,
		"role":         string(user.Role),
		"organization": user.Organization,
	}); err != nil {
		return nil, model.Receipt{}, err
	}
	if _, ok := model.ParseRole(string(user.Role)); !ok {
		return nil, model.Receipt{}, &model.ValidationError{Message: fmt.Sprintf("invalid role %q", user.Role)}
	}
	if user.UserID == "" {
		user.UserID = "USER-" + uuid.NewString()
	}
	user.Status = model.UserStatusActive
	user.RegisteredAt = r.timestamp()
	user.RegisteredBy = registeredBy
	if user.RegisteredBy == "" {
		user.RegisteredBy = "system"
	}
	return r.submitJSON(ctx, "registerUser", user)
}

// User looks a user up by name.
func (r *Records) User(ctx context.Context, name string) (model.User, error) {
	payload, err := r.invoker.Evaluate(ctx, "queryUser", name)
	if err != nil {
		return model.User{}, err
	}
	return DecodeObject[model.User](payload)
}

func (r *Records) Users(ctx context.Context) ([]model.User, error) {
	return list[model.User](ctx, r.invoker, "queryAllUsers")
}

// Collection events

func (r *Records) CreateCollectionEvent(ctx context.Context, event model.CollectionEvent) (json.RawMessage, model.Receipt, error) {
	if err := required("collection event is incomplete", map[string]string{
		"eventId":     event.EventID,
		"collectorId": event.CollectorID,
		"species":     event.Species,
	}); err != nil {
		return nil, model.Receipt{}, err
	}
	if event.Timestamp == "" {
		event.Timestamp = r.timestamp()
	}
	return r.submitJSON(ctx, "createCollectionEvent", event)
}

func (r *Records) CollectionEvent(ctx context.Context, id string) (json.RawMessage, error) {
	return r.get(ctx, "queryCollectionEvent", id)
}

func (r *Records) CollectionEvents(ctx context.Context) ([]model.CollectionEvent, error) {
	return list[model.CollectionEvent](ctx, r.invoker, "queryAllCollectionEvents")
}

// CollectionEventsByCollector lists the events recorded by collectorID.
func (r *Records) CollectionEventsByCollector(ctx context.Context, collectorID string) ([]model.CollectionEvent, error) {
	events, err := r.CollectionEvents(ctx)
	if err != nil {
		return events, err
	}
	return filter(events, func(e model.CollectionEvent) bool { return e.CollectorID == collectorID }), nil
}

func (r *Records) UpdateCollectionEvent(ctx context.Context, event model.CollectionEvent) (json.RawMessage, model.Receipt, error) {
	if event.EventID == "" {
		return nil, model.Receipt{}, &model.ValidationError{Message: "eventId is required"}
	}
	return r.submitJSON(ctx, "updateCollectionEvent", event)
}

func (r *Records) DeleteCollectionEvent(ctx context.Context, id string) (json.RawMessage, model.Receipt, error) {
	return r.submitID(ctx, "deleteCollectionEvent", id)
}

// Quality tests

type testLink struct {
	EventID       string           `json:"eventId"`
	QualityTestID string           `json:"qualityTestId"`
	TestStatus    model.TestResult `json:"testStatus"`
}

// CreateQualityTest records a lab result on behalf of lab and links it to its
// collection event. The required parameters are checked before anything is
// submitted.
func (r *Records) CreateQualityTest(ctx context.Context, test model.QualityTest, lab string) (model.QualityTest, model.Receipt, error) {
	if missing := test.Parameters.Missing(RequiredTestParameters...); len(missing) > 0 {
		return model.QualityTest{}, model.Receipt{}, &model.ValidationError{
			Message: "Missing required test parameters",
			Missing: missing,
		}
	}
	if err := required("quality test is incomplete", map[string]string{
		"testId":  test.TestID,
		"eventId": test.EventID,
	}); err != nil {
		return model.QualityTest{}, model.Receipt{}, err
	}
	if test.Result != model.TestPass && test.Result != model.TestFail {
		return model.QualityTest{}, model.Receipt{}, &model.ValidationError{
			Message: fmt.Sprintf("result must be %s or %s", model.TestPass, model.TestFail),
		}
	}

	test.LabID = lab
	test.TesterID = lab
	test.StandardsVersion = StandardsVersion
	test.TestingProtocol = TestingProtocol
	test.LabCertification = LabCertification
	test.TestTimestamp = r.timestamp()
	if test.EquipmentID == "" {
		test.EquipmentID = DefaultEquipmentID
	}
	if test.Date == "" {
		test.Date = test.TestTimestamp
	}

	payload, receipt, err := r.submitJSON(ctx, "createQualityTest", test)
	if err != nil {
		return model.QualityTest{}, receipt, err
	}

	stored, err := DecodeObject[model.QualityTest](payload)
	if err != nil {
		return model.QualityTest{}, receipt, err
	}
	if stored.TestID == "" {
		stored = test
	}

	if stored.EventID != "" {
		if _, _, err := r.submitJSON(ctx, "updateCollectionEvent", testLink{
			EventID:       stored.EventID,
			QualityTestID: stored.TestID,
			TestStatus:    stored.Result,
		}); err != nil {
			return stored, receipt, fmt.Errorf("link quality test %s to event %s: %w", stored.TestID, stored.EventID, err)
		}
	}
	return stored, receipt, nil
}

func (r *Records) QualityTest(ctx context.Context, id string) (json.RawMessage, error) {
	return r.get(ctx, "queryQualityTest", id)
}

func (r *Records) QualityTests(ctx context.Context) ([]model.QualityTest, error) {
	return list[model.QualityTest](ctx, r.invoker, "queryAllQualityTests")
}

func (r *Records) QualityTestsByEvent(ctx context.Context, eventID string) ([]model.QualityTest, error) {
	tests, err := r.QualityTests(ctx)
	if err != nil {
		return tests, err
	}
	return filter(tests, func(t model.QualityTest) bool { return t.EventID == eventID }), nil
}

func (r *Records) UpdateQualityTest(ctx context.Context, test model.QualityTest) (json.RawMessage, model.Receipt, error) {
	if test.TestID == "" {
		return nil, model.Receipt{}, &model.ValidationError{Message: "testId is required"}
	}
	return r.submitJSON(ctx, "updateQualityTest", test)
}

func (r *Records) DeleteQualityTest(ctx context.Context, id string) (json.RawMessage, model.Receipt, error) {
	return r.submitID(ctx, "deleteQualityTest", id)
}

// Processing steps

func (r *Records) CreateProcessingStep(ctx context.Context, step model.ProcessingStep) (json.RawMessage, model.Receipt, error) {
	if err := required("processing step is incomplete", map[string]string{
		"stepId":   step.StepID,
		"batchId":  step.BatchID,
		"stepType": step.StepType,
	}); err != nil {
		return nil, model.Receipt{}, err
	}
	if step.Timestamp == "" {
		step.Timestamp = r.timestamp()
	}
	return r.submitJSON(ctx, "createProcessingStep", step)
}

func (r *Records) ProcessingStep(ctx context.Context, id string) (json.RawMessage, error) {
	return r.get(ctx, "queryProcessingStep", id)
}

func (r *Records) ProcessingSteps(ctx context.Context) ([]model.ProcessingStep, error) {
	return list[model.ProcessingStep](ctx, r.invoker, "queryAllProcessingSteps")
}

func (r *Records) ProcessingStepsByBatch(ctx context.Context, batchID string) ([]model.ProcessingStep, error) {
	steps, err := r.ProcessingSteps(ctx)
	if err != nil {
		return steps, err
	}
	return filter(steps, func(s model.ProcessingStep) bool { return s.BatchID == batchID }), nil
}

func (r *Records) UpdateProcessingStep(ctx context.Context, step model.ProcessingStep) (json.RawMessage, model.Receipt, error) {
	if step.StepID == "" {
		return nil, model.Receipt{}, &model.ValidationError{Message: "stepId is required"}
	}
	return r.submitJSON(ctx, "updateProcessingStep", step)
}

func (r *Records) DeleteProcessingStep(ctx context.Context, id string) (json.RawMessage, model.Receipt, error) {
	return r.submitID(ctx, "deleteProcessingStep", id)
}

// Batches

type batchStamp struct {
	BatchID     string `json:"batchId"`
	TxID        string `json:"txId"`
	BlockNumber uint64 `json:"blockNumber"`
}

// CreateBatch submits a batch and then stamps it with the commit receipt, so
// provenance reads can show where the batch was recorded.
func (r *Records) CreateBatch(ctx context.Context, batch model.BatchAsset) (json.RawMessage, model.Receipt, error) {
	if batch.BatchID == "" {
		return nil, model.Receipt{}, &model.ValidationError{Message: "batchId is required"}
	}
	payload, receipt, err := r.submitJSON(ctx, "createBatch", batch)
	if err != nil {
		return nil, receipt, err
	}

	if receipt.TransactionID != "" {
		if _, _, err := r.submitJSON(ctx, "updateBatch", batchStamp{
			BatchID:     batch.BatchID,
			TxID:        receipt.TransactionID,
			BlockNumber: receipt.BlockNumber,
		}); err != nil {
			r.logger.Warn("stamp batch with commit receipt",
				zap.String("batchId", batch.BatchID),
				zap.String("txId", receipt.TransactionID),
				zap.Error(err),
			)
		}
	}
	return payload, receipt, nil
}

// Batches lists every batch asset.
func (r *Records) Batches(ctx context.Context) ([]model.BatchAsset, error) {
	return list[model.BatchAsset](ctx, r.invoker, "queryAllBatches")
}

// UpdateBatch submits client changes to a batch. A BatchAsset cannot carry the
// receipt stamp, so provenance proof stays with the stamp CreateBatch wrote.
func (r *Records) UpdateBatch(ctx context.Context, batch model.BatchAsset) (json.RawMessage, model.Receipt, error) {
	if batch.BatchID == "" {
		return nil, model.Receipt{}, &model.ValidationError{Message: "batchId is required"}
	}
	return r.submitJSON(ctx, "updateBatch", batch)
}

func (r *Records) DeleteBatch(ctx context.Context, id string) (json.RawMessage, model.Receipt, error) {
	return r.submitID(ctx, "deleteBatch", id)
}

// TrackingTicket is issued when a batch gets a QR tracking id.
type TrackingTicket struct {
	TrackingID  string        `json:"trackingId"`
	BatchID     string        `json:"batchId"`
	GeneratedBy string        `json:"generatedBy"`
	Timestamp   string        `json:"timestamp"`
	Receipt     model.Receipt `json:"receipt"`
}

type trackingUpdate struct {
	BatchID       string `json:"batchId"`
	TrackingID    string `json:"trackingId"`
	QRGeneratedBy string `json:"qrGeneratedBy"`
	QRGeneratedAt string `json:"qrGeneratedAt"`
	QRStatus      string `json:"qrStatus"`
}

// IssueTrackingID stores a fresh tracking id on batchID.
func (r *Records) IssueTrackingID(ctx context.Context, batchID, by string) (TrackingTicket, error) {
	if batchID == "" {
		return TrackingTicket{}, &model.ValidationError{Message: "Batch ID is required"}
	}
	id := uuid.New()
	ticket := TrackingTicket{
		TrackingID:  fmt.Sprintf("TRK-%d-%s", r.now().UnixMilli(), id.String()[:8]),
		BatchID:     batchID,
		GeneratedBy: by,
		Timestamp:   r.timestamp(),
	}
	_, receipt, err := r.submitJSON(ctx, "updateBatch", trackingUpdate{
		BatchID:       batchID,
		TrackingID:    ticket.TrackingID,
		QRGeneratedBy: by,
		QRGeneratedAt: ticket.Timestamp,
		QRStatus:      "active",
	})
	if err != nil {
		return TrackingTicket{}, err
	}
	ticket.Receipt = receipt
	return ticket, nil
}

// BatchByTracking resolves a tracking id to its batch.
func (r *Records) BatchByTracking(ctx context.Context, trackingID string) (json.RawMessage, error) {
	raw, err := r.get(ctx, "queryBatchByTracking", trackingID)
	if err != nil && !errors.Is(err, model.ErrValidation) {
		return nil, fmt.Errorf("tracking id %s: %w", trackingID, notFound(err))
	}
	return raw, err
}

// notFound maps any lookup failure other than a transport problem to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConnectivity) || errors.Is(err, model.ErrTimeout) {
		return err
	}
	return fmt.Errorf("%w: %w", model.ErrNotFound, err)
}

// Health evaluates a cheap query to prove the ledger answers.
func (r *Records) Health(ctx context.Context) error {
	_, err := r.invoker.Evaluate(ctx, "queryAllBatches")
	return err
}
