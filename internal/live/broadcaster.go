package live

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tracechain-gateway/internal/clock"
	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

const defaultRetryBackoff = 5 * time.Second

var (
	// ErrClosed is delivered to subscribers when the broadcaster shuts down.
	ErrClosed = errors.New("live broadcaster closed")
	// ErrUpstreamClosed is delivered when the ledger ends the block stream.
	ErrUpstreamClosed = fmt.Errorf("%w: block stream ended", model.ErrConnectivity)
)

// State is the upstream connection state of one key.
type State int32

const (
	StateIdle State = iota
	StateConnecting
	StateStreaming
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateStreaming:
		return "streaming"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Broadcaster keeps one upstream block subscription per key and relays every
// event to the subscribers registered for it.
type Broadcaster struct {
	source   Source
	observer Observer
	metrics  Metrics
	backoff  time.Duration
	logger   *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
	feeds  map[ledger.Key]*feed
}

// NewBroadcaster builds a Broadcaster. observer may be nil.
func NewBroadcaster(source Source, observer Observer, metrics Metrics, backoff time.Duration, logger *zap.Logger) (*Broadcaster, error) {
	if source == nil {
		return nil, errors.New("block source is required")
	}
	if metrics == nil {
		return nil, errors.New("broadcaster metrics is required")
	}
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Broadcaster{
		source:   source,
		observer: observer,
		metrics:  metrics,
		backoff:  backoff,
		logger:   logger.Named("broadcaster"),
		ctx:      ctx,
		cancel:   cancel,
		feeds:    make(map[ledger.Key]*feed),
	}, nil
}

// Watch starts the upstream subscription for key without registering a sink.
func (b *Broadcaster) Watch(key ledger.Key) error {
	_, err := b.feed(key)
	return err
}

// Subscribe registers sink for key, starting the upstream subscription on the
// first call for that key.
func (b *Broadcaster) Subscribe(key ledger.Key, sink Sink) (*Subscription, error) {
	f, err := b.feed(key)
	if err != nil {
		return nil, err
	}
	return f.add(sink)
}

// State reports the upstream state for key.
func (b *Broadcaster) State(key ledger.Key) State {
	b.mu.Lock()
	f, ok := b.feeds[key]
	b.mu.Unlock()
	if !ok {
		return StateIdle
	}
	return State(f.state.Load())
}

// Subscribers returns the number of sinks registered for key.
func (b *Broadcaster) Subscribers(key ledger.Key) int {
	b.mu.Lock()
	f, ok := b.feeds[key]
	b.mu.Unlock()
	if !ok {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// Close stops every upstream subscription and waits for the coordinators.
// Remaining subscribers receive ErrClosed.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.cancel()
	b.wg.Wait()
}

func (b *Broadcaster) feed(key ledger.Key) (*feed, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}
	f, ok := b.feeds[key]
	if !ok {
		f = &feed{key: key, metrics: b.metrics}
		b.feeds[key] = f
		b.wg.Add(1)
		go b.coordinate(f)
	}
	return f, nil
}

// coordinate owns the upstream subscription for one key.
func (b *Broadcaster) coordinate(f *feed) {
	defer b.wg.Done()
	logger := b.logger.With(zap.Stringer("key", f.key))

	for {
		f.state.Store(int32(StateConnecting))
		err := b.stream(f)
		if b.ctx.Err() != nil {
			f.state.Store(int32(StateIdle))
			f.terminate(ErrClosed)
			return
		}

		f.state.Store(int32(StateError))
		logger.Warn("block stream failed, reconnecting", zap.Error(err), zap.Duration("backoff", b.backoff))
		f.terminate(err)

		if err := clock.Sleep(b.ctx, b.backoff); err != nil {
			f.state.Store(int32(StateIdle))
			f.terminate(ErrClosed)
			return
		}
	}
}

// stream relays one upstream subscription until it ends.
func (b *Broadcaster) stream(f *feed) error {
	events, release, err := b.source.Subscribe(b.ctx, f.key)
	b.metrics.ObserveConnect(f.key, err)
	if err != nil {
		return err
	}
	defer release()

	f.state.Store(int32(StateStreaming))
	for {
		select {
		case <-b.ctx.Done():
			return b.ctx.Err()
		case event, ok := <-events:
			if !ok {
				return ErrUpstreamClosed
			}
			b.metrics.ObserveEvent(f.key)
			if b.observer != nil {
				b.observer.Observe(f.key, event)
			}
			f.broadcast(event)
		}
	}
}

type feed struct {
	key     ledger.Key
	metrics Metrics
	state   atomic.Int32

	mu     sync.Mutex
	subs   []*Subscription
	closed bool
}

func (f *feed) add(sink Sink) (*Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, ErrClosed
	}
	s := &Subscription{feed: f, sink: sink}
	f.subs = append(f.subs, s)
	f.metrics.SetSubscribers(f.key, len(f.subs))
	return s, nil
}

// remove drops s from the registry. It reports whether s was still registered.
func (f *feed) remove(s *Subscription) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, sub := range f.subs {
		if sub == s {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			f.metrics.SetSubscribers(f.key, len(f.subs))
			return true
		}
	}
	return false
}

func (f *feed) snapshot() []*Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*Subscription(nil), f.subs...)
}

// broadcast delivers event to every subscriber in registration order. Sends
// run outside the registry lock so sinks may unsubscribe concurrently.
func (f *feed) broadcast(event model.LiveBlockEvent) {
	for _, s := range f.snapshot() {
		if s.done.Load() {
			continue
		}
		if err := s.sink.Send(event); err != nil {
			if s.detach() {
				f.metrics.ObserveDropped(f.key)
				s.sink.Close(err)
			}
		}
	}
}

// terminate clears the registry and hands err to every subscriber. After
// ErrClosed the feed accepts no further subscribers.
func (f *feed) terminate(err error) {
	f.mu.Lock()
	if errors.Is(err, ErrClosed) {
		f.closed = true
	}
	subs := f.subs
	f.subs = nil
	f.metrics.SetSubscribers(f.key, 0)
	f.mu.Unlock()

	for _, s := range subs {
		if s.done.CompareAndSwap(false, true) {
			s.sink.Close(err)
		}
	}
}

// Subscription is one registered sink.
type Subscription struct {
	feed *feed
	sink Sink
	done atomic.Bool
}

// Unsubscribe removes the sink. It is idempotent and safe from any goroutine,
// including from inside the sink's Send.
func (s *Subscription) Unsubscribe() {
	s.detach()
}

func (s *Subscription) detach() bool {
	if !s.done.CompareAndSwap(false, true) {
		return false
	}
	s.feed.remove(s)
	return true
}
