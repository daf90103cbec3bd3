package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
	"go.uber.org/zap"
)

const (
	defaultPoolSize       = 8
	defaultConnectTimeout = 10 * time.Second
)

var errHandleReleased = errors.New("ledger handle already released")

// PoolStats is a snapshot of one key's connections.
type PoolStats struct {
	Open  int
	Idle  int
	InUse int
}

// Pool keeps a bounded set of reusable connections per Key.
type Pool struct {
	dialer         Dialer
	size           int
	connectTimeout time.Duration
	metrics        PoolMetrics
	logger         *zap.Logger

	mu     sync.Mutex
	closed bool
	keys   map[Key]*keyPool
}

type keyPool struct {
	slots chan struct{}
	idle  []Conn
	open  int
}

// NewPool builds a Pool. size bounds the connections open per key.
func NewPool(dialer Dialer, size int, connectTimeout time.Duration, metrics PoolMetrics, logger *zap.Logger) (*Pool, error) {
	if dialer == nil {
		return nil, errors.New("ledger dialer is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger pool metrics is required")
	}
	if size <= 0 {
		size = defaultPoolSize
	}
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}
	return &Pool{
		dialer:         dialer,
		size:           size,
		connectTimeout: connectTimeout,
		metrics:        metrics,
		logger:         logger.Named("ledgerPool"),
		keys:           make(map[Key]*keyPool),
	}, nil
}

// Acquire leases a connection for key. The returned Handle must be released exactly once.
func (p *Pool) Acquire(ctx context.Context, key Key) (h Handle, err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveAcquire(key, err, started)
	}()

	ctx, cancel := context.WithTimeout(ctx, p.connectTimeout)
	defer cancel()

	kp, err := p.keyPool(key)
	if err != nil {
		return nil, err
	}

	select {
	case kp.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("wait for %s connection: %w", key, classifyContextErr(ctx.Err()))
	}

	if conn := p.takeIdle(key, kp); conn != nil {
		return &handle{pool: p, key: key, conn: conn}, nil
	}

	conn, err := p.dialer.Dial(ctx, key)
	if err != nil {
		<-kp.slots
		if ctx.Err() != nil {
			return nil, fmt.Errorf("connect %s: %w", key, classifyContextErr(ctx.Err()))
		}
		if !errors.Is(err, model.ErrConnectivity) && !errors.Is(err, model.ErrTimeout) {
			err = fmt.Errorf("%w: %w", model.ErrConnectivity, err)
		}
		return nil, fmt.Errorf("connect %s: %w", key, err)
	}

	p.mu.Lock()
	kp.open++
	p.metrics.SetConnections(key, kp.open, len(kp.idle))
	p.mu.Unlock()

	p.logger.Debug("opened ledger connection", zap.Stringer("key", key))
	return &handle{pool: p, key: key, conn: conn}, nil
}

// Stats returns the connection counts for key.
func (p *Pool) Stats(key Key) PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	kp, ok := p.keys[key]
	if !ok {
		return PoolStats{}
	}
	return PoolStats{Open: kp.open, Idle: len(kp.idle), InUse: len(kp.slots)}
}

// Close closes every idle connection. Leased connections are closed on release.
func (p *Pool) Close() error {
	p.mu.Lock()
	p.closed = true
	var idle []Conn
	for key, kp := range p.keys {
		idle = append(idle, kp.idle...)
		kp.open -= len(kp.idle)
		kp.idle = nil
		p.metrics.SetConnections(key, kp.open, 0)
	}
	p.mu.Unlock()

	var errs []error
	for _, conn := range idle {
		if err := conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (p *Pool) keyPool(key Key) (*keyPool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, fmt.Errorf("%w: pool closed", model.ErrConnectivity)
	}
	kp, ok := p.keys[key]
	if !ok {
		kp = &keyPool{slots: make(chan struct{}, p.size)}
		p.keys[key] = kp
	}
	return kp, nil
}

// takeIdle pops the most recently used healthy connection, closing unhealthy ones.
func (p *Pool) takeIdle(key Key, kp *keyPool) Conn {
	for {
		p.mu.Lock()
		n := len(kp.idle)
		if n == 0 {
			p.mu.Unlock()
			return nil
		}
		conn := kp.idle[n-1]
		kp.idle = kp.idle[:n-1]
		healthy := conn.Healthy()
		if !healthy {
			kp.open--
		}
		p.metrics.SetConnections(key, kp.open, len(kp.idle))
		p.mu.Unlock()

		if healthy {
			return conn
		}
		p.logger.Info("discarding unhealthy ledger connection", zap.Stringer("key", key))
		if err := conn.Close(); err != nil {
			p.logger.Warn("close unhealthy connection", zap.Error(err))
		}
	}
}

func (p *Pool) put(key Key, conn Conn, broken bool) {
	p.mu.Lock()
	kp := p.keys[key]
	discard := broken || p.closed
	if discard {
		kp.open--
	} else {
		kp.idle = append(kp.idle, conn)
	}
	p.metrics.SetConnections(key, kp.open, len(kp.idle))
	p.mu.Unlock()

	<-kp.slots
	p.metrics.ObserveRelease(key, discard)

	if discard {
		if err := conn.Close(); err != nil {
			p.logger.Warn("close ledger connection", zap.Stringer("key", key), zap.Error(err))
		}
	}
}

type handle struct {
	pool     *Pool
	key      Key
	conn     Conn
	released atomic.Bool
	broken   atomic.Bool
}

func (h *handle) Key() Key {
	return h.key
}

func (h *handle) Submit(ctx context.Context, fn string, args ...string) ([]byte, model.Receipt, error) {
	if h.released.Load() {
		return nil, model.Receipt{}, errHandleReleased
	}
	payload, receipt, err := h.conn.Submit(ctx, fn, args...)
	h.markBroken(err)
	return payload, receipt, err
}

func (h *handle) Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error) {
	if h.released.Load() {
		return nil, errHandleReleased
	}
	payload, err := h.conn.Evaluate(ctx, fn, args...)
	h.markBroken(err)
	return payload, err
}

func (h *handle) BlockEvents(ctx context.Context) (<-chan model.LiveBlockEvent, error) {
	if h.released.Load() {
		return nil, errHandleReleased
	}
	events, err := h.conn.BlockEvents(ctx)
	h.markBroken(err)
	return events, err
}

// Release returns the connection to the pool. Calls after the first are no-ops.
func (h *handle) Release() {
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	h.pool.put(h.key, h.conn, h.broken.Load())
}

func (h *handle) markBroken(err error) {
	if errors.Is(err, model.ErrConnectivity) {
		h.broken.Store(true)
	}
}

func classifyContextErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", model.ErrTimeout, err)
	}
	return err
}
