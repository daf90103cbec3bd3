package transport

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goodnatureofminers/tracechain-gateway/internal/auth"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
	"github.com/goodnatureofminers/tracechain-gateway/internal/service"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.records.Health(r.Context()); err != nil {
		s.writeJSON(w, statusCode(err), map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"channel":   s.cfg.Key.Channel,
		"chaincode": s.cfg.Key.Chaincode,
	})
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.records.Stats(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.records.Summary(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

// Users

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.records.Users(r.Context())
	writeList(s, w, r, users, err)
}

func (s *Server) registerUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := decode(r, &user); err != nil {
		s.writeError(w, r, err)
		return
	}
	sess, _ := auth.FromContext(r.Context())
	payload, receipt, err := s.records.RegisterUser(r.Context(), user, sess.IdentityName)
	s.writeCommitted(w, r, http.StatusCreated, user, payload, receipt, err)
}

// Collection events

func (s *Server) createCollectionEvent(w http.ResponseWriter, r *http.Request) {
	var event model.CollectionEvent
	if err := decode(r, &event); err != nil {
		s.writeError(w, r, err)
		return
	}
	payload, receipt, err := s.records.CreateCollectionEvent(r.Context(), event)
	s.writeCommitted(w, r, http.StatusCreated, event, payload, receipt, err)
}

func (s *Server) listCollectionEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.records.CollectionEvents(r.Context())
	if err == nil {
		sess, _ := auth.FromContext(r.Context())
		events = auth.FilterCollectionEvents(sess, events)
	}
	writeList(s, w, r, events, err)
}

func (s *Server) collectionEventsByCollector(w http.ResponseWriter, r *http.Request) {
	events, err := s.records.CollectionEventsByCollector(r.Context(), chi.URLParam(r, "id"))
	writeList(s, w, r, events, err)
}

func (s *Server) getCollectionEvent(w http.ResponseWriter, r *http.Request) {
	payload, err := s.records.CollectionEvent(r.Context(), chi.URLParam(r, "id"))
	s.writeRaw(w, r, payload, err)
}

func (s *Server) updateCollectionEvent(w http.ResponseWriter, r *http.Request) {
	var event model.CollectionEvent
	if err := decode(r, &event); err != nil {
		s.writeError(w, r, err)
		return
	}
	event.EventID = chi.URLParam(r, "id")
	payload, receipt, err := s.records.UpdateCollectionEvent(r.Context(), event)
	s.writeCommitted(w, r, http.StatusOK, event, payload, receipt, err)
}

func (s *Server) deleteCollectionEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	payload, receipt, err := s.records.DeleteCollectionEvent(r.Context(), id)
	s.writeCommitted(w, r, http.StatusOK, map[string]string{"eventId": id}, payload, receipt, err)
}

// Quality tests

func (s *Server) createQualityTest(w http.ResponseWriter, r *http.Request) {
	var test model.QualityTest
	if err := decode(r, &test); err != nil {
		s.writeError(w, r, err)
		return
	}
	sess, _ := auth.FromContext(r.Context())
	stored, receipt, err := s.records.CreateQualityTest(r.Context(), test, sess.IdentityName)
	s.writeCommitted(w, r, http.StatusCreated, stored, nil, receipt, err)
}

func (s *Server) listQualityTests(w http.ResponseWriter, r *http.Request) {
	tests, err := s.records.QualityTests(r.Context())
	writeList(s, w, r, tests, err)
}

func (s *Server) qualityTestsByEvent(w http.ResponseWriter, r *http.Request) {
	tests, err := s.records.QualityTestsByEvent(r.Context(), chi.URLParam(r, "id"))
	writeList(s, w, r, tests, err)
}

func (s *Server) getQualityTest(w http.ResponseWriter, r *http.Request) {
	payload, err := s.records.QualityTest(r.Context(), chi.URLParam(r, "id"))
	s.writeRaw(w, r, payload, err)
}

func (s *Server) updateQualityTest(w http.ResponseWriter, r *http.Request) {
	var test model.QualityTest
	if err := decode(r, &test); err != nil {
		s.writeError(w, r, err)
		return
	}
	test.TestID = chi.URLParam(r, "id")
	payload, receipt, err := s.records.UpdateQualityTest(r.Context(), test)
	s.writeCommitted(w, r, http.StatusOK, test, payload, receipt, err)
}

func (s *Server) deleteQualityTest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	payload, receipt, err := s.records.DeleteQualityTest(r.Context(), id)
	s.writeCommitted(w, r, http.StatusOK, map[string]string{"testId": id}, payload, receipt, err)
}

// Processing steps

func (s *Server) createProcessingStep(w http.ResponseWriter, r *http.Request) {
	var step model.ProcessingStep
	if err := decode(r, &step); err != nil {
		s.writeError(w, r, err)
		return
	}
	payload, receipt, err := s.records.CreateProcessingStep(r.Context(), step)
	s.writeCommitted(w, r, http.StatusCreated, step, payload, receipt, err)
}

func (s *Server) listProcessingSteps(w http.ResponseWriter, r *http.Request) {
	steps, err := s.records.ProcessingSteps(r.Context())
	writeList(s, w, r, steps, err)
}

func (s *Server) processingStepsByBatch(w http.ResponseWriter, r *http.Request) {
	steps, err := s.records.ProcessingStepsByBatch(r.Context(), chi.URLParam(r, "id"))
	writeList(s, w, r, steps, err)
}

func (s *Server) getProcessingStep(w http.ResponseWriter, r *http.Request) {
	payload, err := s.records.ProcessingStep(r.Context(), chi.URLParam(r, "id"))
	s.writeRaw(w, r, payload, err)
}

func (s *Server) updateProcessingStep(w http.ResponseWriter, r *http.Request) {
	var step model.ProcessingStep
	if err := decode(r, &step); err != nil {
		s.writeError(w, r, err)
		return
	}
	step.StepID = chi.URLParam(r, "id")
	payload, receipt, err := s.records.UpdateProcessingStep(r.Context(), step)
	s.writeCommitted(w, r, http.StatusOK, step, payload, receipt, err)
}

func (s *Server) deleteProcessingStep(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	payload, receipt, err := s.records.DeleteProcessingStep(r.Context(), id)
	s.writeCommitted(w, r, http.StatusOK, map[string]string{"stepId": id}, payload, receipt, err)
}

// Batches

func (s *Server) createBatch(w http.ResponseWriter, r *http.Request) {
	var batch model.BatchAsset
	if err := decode(r, &batch); err != nil {
		s.writeError(w, r, err)
		return
	}
	payload, receipt, err := s.records.CreateBatch(r.Context(), batch)
	s.writeCommitted(w, r, http.StatusCreated, batch, payload, receipt, err)
}

func (s *Server) getBatch(w http.ResponseWriter, r *http.Request) {
	bundle, err := s.provenance.Build(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, bundle)
}

func (s *Server) updateBatch(w http.ResponseWriter, r *http.Request) {
	var batch model.BatchAsset
	if err := decode(r, &batch); err != nil {
		s.writeError(w, r, err)
		return
	}
	batch.BatchID = chi.URLParam(r, "id")
	payload, receipt, err := s.records.UpdateBatch(r.Context(), batch)
	s.writeCommitted(w, r, http.StatusOK, batch, payload, receipt, err)
}

func (s *Server) deleteBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	payload, receipt, err := s.records.DeleteBatch(r.Context(), id)
	s.writeCommitted(w, r, http.StatusOK, map[string]string{"batchId": id}, payload, receipt, err)
}

func (s *Server) listBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := s.records.Batches(r.Context())
	writeList(s, w, r, batches, err)
}

type generateRequest struct {
	BatchID string `json:"batchId"`
}

func (s *Server) generateTracking(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	sess, _ := auth.FromContext(r.Context())
	ticket, err := s.records.IssueTrackingID(r.Context(), req.BatchID, sess.IdentityName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, trackingResponse{
		TrackingTicket:  ticket,
		VerificationURL: verificationURL(r, ticket.TrackingID),
	})
}

type trackingResponse struct {
	service.TrackingTicket
	VerificationURL string `json:"verificationUrl"`
}

// verificationURL points at the public verify page on the host the request
// came in on.
func verificationURL(r *http.Request, trackingID string) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: r.Host, Path: "/verify/" + trackingID}
	return u.String()
}

func (s *Server) trackBatch(w http.ResponseWriter, r *http.Request) {
	payload, err := s.records.BatchByTracking(r.Context(), chi.URLParam(r, "trackingId"))
	s.writeRaw(w, r, payload, err)
}
