package live

import (
	"errors"
	"sync"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

const defaultSinkBuffer = 64

// ErrSlowConsumer is returned by Send when the subscriber's buffer is full.
var ErrSlowConsumer = errors.New("subscriber buffer full")

// StreamSink buffers events for a connection writer goroutine.
type StreamSink struct {
	events chan model.LiveBlockEvent
	done   chan struct{}
	once   sync.Once
	err    error
}

func NewStreamSink(buffer int) *StreamSink {
	if buffer <= 0 {
		buffer = defaultSinkBuffer
	}
	return &StreamSink{
		events: make(chan model.LiveBlockEvent, buffer),
		done:   make(chan struct{}),
	}
}

func (s *StreamSink) Send(event model.LiveBlockEvent) error {
	select {
	case <-s.done:
		return s.err
	default:
	}

	select {
	case s.events <- event:
		return nil
	default:
		return ErrSlowConsumer
	}
}

func (s *StreamSink) Close(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
}

// Events yields buffered events in delivery order.
func (s *StreamSink) Events() <-chan model.LiveBlockEvent {
	return s.events
}

// Done is closed once the sink has been closed; Err then holds the reason.
func (s *StreamSink) Done() <-chan struct{} {
	return s.done
}

func (s *StreamSink) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}
