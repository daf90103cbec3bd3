package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tracechain-gateway/internal/live"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
	"github.com/goodnatureofminers/tracechain-gateway/internal/service"
)

const wsWriteTimeout = 5 * time.Second

// streamBlocks relays committed blocks as server-sent events until the client
// disconnects or the stream fails.
func (s *Server) streamBlocks(w http.ResponseWriter, r *http.Request) {
	sink := live.NewStreamSink(0)
	sub, err := s.live.Subscribe(s.cfg.Key, sink)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer sub.Unsubscribe()

	rc := http.NewResponseController(w)
	_ = rc.SetWriteDeadline(time.Time{})

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		return
	}

	logger := s.logger.With(zap.String("remote", r.RemoteAddr))
	logger.Debug("sse subscriber connected")
	defer logger.Debug("sse subscriber disconnected")

	ping := time.NewTicker(s.cfg.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-sink.Events():
			if err := writeSSE(w, rc, event); err != nil {
				return
			}
		case <-sink.Done():
			drainSSE(w, rc, sink)
			msg, _ := json.Marshal(errorBody{Error: sink.Err().Error()})
			_, _ = fmt.Fprintf(w, "event: error\ndata: %s\n\n", msg)
			_ = rc.Flush()
			return
		case <-ping.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func writeSSE(w http.ResponseWriter, rc *http.ResponseController, event model.LiveBlockEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return err
	}
	return rc.Flush()
}

// drainSSE writes the events buffered before the sink was closed.
func drainSSE(w http.ResponseWriter, rc *http.ResponseController, sink *live.StreamSink) {
	for {
		select {
		case event := <-sink.Events():
			if err := writeSSE(w, rc, event); err != nil {
				return
			}
		default:
			return
		}
	}
}

type wsMessage struct {
	Type  string                `json:"type"`
	Block *model.LiveBlockEvent `json:"block,omitempty"`
	Error string                `json:"error,omitempty"`
}

// streamBlocksWS relays committed blocks as JSON WebSocket messages.
func (s *Server) streamBlocksWS(w http.ResponseWriter, r *http.Request) {
	opts := &websocket.AcceptOptions{OriginPatterns: s.cfg.WSOriginPatterns}
	conn, err := websocket.Accept(w, r, opts)
	if err != nil {
		return
	}
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sink := live.NewStreamSink(0)
	sub, err := s.live.Subscribe(s.cfg.Key, sink)
	if err != nil {
		_ = conn.Close(websocket.StatusTryAgainLater, "stream unavailable")
		return
	}
	defer sub.Unsubscribe()

	if err := s.writeWS(ctx, conn, wsMessage{Type: "ready"}); err != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "write_failed")
		return
	}

	readErr := make(chan error, 1)
	go func() {
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				readErr <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "closed")
			return
		case <-readErr:
			_ = conn.Close(websocket.StatusNormalClosure, "closed")
			return
		case event := <-sink.Events():
			if err := s.writeWS(ctx, conn, wsMessage{Type: "block", Block: &event}); err != nil {
				_ = conn.Close(websocket.StatusNormalClosure, "write_failed")
				return
			}
		case <-sink.Done():
			_ = s.writeWS(ctx, conn, wsMessage{Type: "error", Error: sink.Err().Error()})
			_ = conn.Close(websocket.StatusTryAgainLater, "stream_failed")
			return
		}
	}
}

func (s *Server) writeWS(ctx context.Context, conn *websocket.Conn, msg wsMessage) error {
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, msg)
}

// recentBlocks answers with the latest archived block events.
func (s *Server) recentBlocks(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, r, &model.ValidationError{Message: "limit must be an integer"})
			return
		}
		limit = n
	}

	if s.archive == nil {
		s.writeJSON(w, http.StatusOK, []model.ArchivedBlockEvent{})
		return
	}
	events, err := s.archive.Recent(r.Context(), limit)
	writeList(s, w, r, events, err)
}
