package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

const statusCommitted = "committed"

type errorBody struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
}

// statusCode maps a domain error to its HTTP status.
func statusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized), errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden), errors.Is(err, model.ErrRoleMismatch):
		return http.StatusForbidden
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, model.ErrConnectivity):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusCode(err)
	body := errorBody{Error: err.Error()}

	var verr *model.ValidationError
	if errors.As(err, &verr) {
		body.Error = verr.Message
		body.Missing = verr.Missing
	}
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", code),
			zap.Error(err),
		)
	}
	s.writeJSON(w, code, body)
}

// writeList answers a best-effort list read. A ledger failure degrades to an
// empty list.
func writeList[T any](s *Server, w http.ResponseWriter, r *http.Request, items []T, err error) {
	if err != nil {
		s.logger.Warn("list read failed, answering empty", zap.String("path", r.URL.Path), zap.Error(err))
		items = nil
	}
	if items == nil {
		items = []T{}
	}
	s.writeJSON(w, http.StatusOK, items)
}

// writeRaw answers with a ledger payload as is.
func (s *Server) writeRaw(w http.ResponseWriter, r *http.Request, payload json.RawMessage, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		payload = json.RawMessage("{}")
	}
	s.writeJSON(w, http.StatusOK, payload)
}

// writeCommitted answers a successful write with the stored record, or the
// submitted one when the ledger returned nothing, plus the commit receipt.
func (s *Server) writeCommitted(w http.ResponseWriter, r *http.Request, code int, submitted any, payload json.RawMessage, receipt model.Receipt, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body := map[string]json.RawMessage{}
	if p := bytes.TrimSpace(payload); len(p) > 0 {
		if p[0] == '{' {
			if uerr := json.Unmarshal(p, &body); uerr != nil {
				body = map[string]json.RawMessage{}
			}
		} else {
			body["result"] = p
		}
	}
	if len(body) == 0 && submitted != nil {
		if raw, merr := json.Marshal(submitted); merr == nil {
			_ = json.Unmarshal(raw, &body)
		}
	}

	body["txId"] = mustJSON(receipt.TransactionID)
	body["blockNumber"] = mustJSON(receipt.BlockNumber)
	body["status"] = mustJSON(statusCommitted)
	s.writeJSON(w, code, body)
}

func mustJSON(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return raw
}

// decode reads a JSON body into v.
func decode(r *http.Request, v any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return &model.ValidationError{Message: "request body is required"}
		}
		return &model.ValidationError{Message: fmt.Sprintf("invalid request body: %v", err)}
	}
	return nil
}
