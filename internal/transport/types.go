// Package transport serves the gateway's HTTP, SSE and WebSocket surface.
package transport

import (
	"context"
	"encoding/json"
	"time"

	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/goodnatureofminers/tracechain-gateway/internal/live"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
	"github.com/goodnatureofminers/tracechain-gateway/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Records performs the domain record operations behind the REST routes.
	Records interface {
		RegisterUser(ctx context.Context, user model.User, registeredBy string) (json.RawMessage, model.Receipt, error)
		Users(ctx context.Context) ([]model.User, error)

		CreateCollectionEvent(ctx context.Context, event model.CollectionEvent) (json.RawMessage, model.Receipt, error)
		CollectionEvent(ctx context.Context, id string) (json.RawMessage, error)
		CollectionEvents(ctx context.Context) ([]model.CollectionEvent, error)
		CollectionEventsByCollector(ctx context.Context, collectorID string) ([]model.CollectionEvent, error)
		UpdateCollectionEvent(ctx context.Context, event model.CollectionEvent) (json.RawMessage, model.Receipt, error)
		DeleteCollectionEvent(ctx context.Context, id string) (json.RawMessage, model.Receipt, error)

		CreateQualityTest(ctx context.Context, test model.QualityTest, lab string) (model.QualityTest, model.Receipt, error)
		QualityTest(ctx context.Context, id string) (json.RawMessage, error)
		QualityTests(ctx context.Context) ([]model.QualityTest, error)
		QualityTestsByEvent(ctx context.Context, eventID string) ([]model.QualityTest, error)
		UpdateQualityTest(ctx context.Context, test model.QualityTest) (json.RawMessage, model.Receipt, error)
		DeleteQualityTest(ctx context.Context, id string) (json.RawMessage, model.Receipt, error)

		CreateProcessingStep(ctx context.Context, step model.ProcessingStep) (json.RawMessage, model.Receipt, error)
		ProcessingStep(ctx context.Context, id string) (json.RawMessage, error)
		ProcessingSteps(ctx context.Context) ([]model.ProcessingStep, error)
		ProcessingStepsByBatch(ctx context.Context, batchID string) ([]model.ProcessingStep, error)
		UpdateProcessingStep(ctx context.Context, step model.ProcessingStep) (json.RawMessage, model.Receipt, error)
		DeleteProcessingStep(ctx context.Context, id string) (json.RawMessage, model.Receipt, error)

		CreateBatch(ctx context.Context, batch model.BatchAsset) (json.RawMessage, model.Receipt, error)
		Batches(ctx context.Context) ([]model.BatchAsset, error)
		UpdateBatch(ctx context.Context, batch model.BatchAsset) (json.RawMessage, model.Receipt, error)
		DeleteBatch(ctx context.Context, id string) (json.RawMessage, model.Receipt, error)
		IssueTrackingID(ctx context.Context, batchID, by string) (service.TrackingTicket, error)
		BatchByTracking(ctx context.Context, trackingID string) (json.RawMessage, error)

		Stats(ctx context.Context) (service.Stats, error)
		Summary(ctx context.Context) (service.Summary, error)
		Health(ctx context.Context) error
	}
	Provenance interface {
		Build(ctx context.Context, batchID string) (model.ProvenanceBundle, error)
	}
	Gate interface {
		Login(ctx context.Context, role, name string) (model.Session, error)
		Logout(ctx context.Context, token string) error
		Authorize(ctx context.Context, token string, roles ...model.Role) (model.Session, error)
	}
	// LiveFeed registers streaming sinks for a channel and chaincode.
	LiveFeed interface {
		Subscribe(key ledger.Key, sink live.Sink) (*live.Subscription, error)
	}
	// Archive serves recently archived block events. It may be nil.
	Archive interface {
		Recent(ctx context.Context, limit int) ([]model.ArchivedBlockEvent, error)
	}
	Metrics interface {
		Observe(method, route string, code int, started time.Time)
		ObserveLoginThrottled()
	}
)
