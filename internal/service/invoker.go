package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

const defaultInvokeTimeout = 30 * time.Second

// ContractInvoker runs chaincode functions on leased ledger handles.
type ContractInvoker struct {
	pool    LedgerPool
	key     ledger.Key
	timeout time.Duration
	metrics InvokerMetrics
	logger  *zap.Logger
}

// NewContractInvoker builds an invoker bound to key. Every call runs under timeout.
func NewContractInvoker(pool LedgerPool, key ledger.Key, timeout time.Duration, metrics InvokerMetrics, logger *zap.Logger) (*ContractInvoker, error) {
	if pool == nil {
		return nil, errors.New("ledger pool is required")
	}
	if metrics == nil {
		return nil, errors.New("invoker metrics is required")
	}
	if key.Channel == "" || key.Chaincode == "" {
		return nil, fmt.Errorf("incomplete ledger key %q", key)
	}
	if timeout <= 0 {
		timeout = defaultInvokeTimeout
	}
	return &ContractInvoker{
		pool:    pool,
		key:     key,
		timeout: timeout,
		metrics: metrics,
		logger:  logger.Named("contractInvoker"),
	}, nil
}

// Key returns the channel and chaincode the invoker targets.
func (c *ContractInvoker) Key() ledger.Key {
	return c.key
}

// WithHandle leases a handle for the duration of fn. The handle is released on
// every exit path, including a panic inside fn.
func (c *ContractInvoker) WithHandle(ctx context.Context, fn func(context.Context, ledger.Handle) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	h, err := c.pool.Acquire(ctx, c.key)
	if err != nil {
		return err
	}
	defer h.Release()

	return deadlineErr(ctx, fn(ctx, h))
}

// Submit orders fn on the ledger and waits for its commit.
func (c *ContractInvoker) Submit(ctx context.Context, fn string, args ...string) (payload []byte, receipt model.Receipt, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit", fn, err, started)
	}()

	err = c.WithHandle(ctx, func(ctx context.Context, h ledger.Handle) error {
		var callErr error
		payload, receipt, callErr = h.Submit(ctx, fn, args...)
		return callErr
	})
	if err != nil {
		c.logger.Warn("submit failed", zap.String("function", fn), zap.Error(err))
		return nil, receipt, fmt.Errorf("submit %s: %w", fn, err)
	}
	return payload, receipt, nil
}

// Evaluate runs fn read-only on a peer.
func (c *ContractInvoker) Evaluate(ctx context.Context, fn string, args ...string) (payload []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("evaluate", fn, err, started)
	}()

	err = c.WithHandle(ctx, func(ctx context.Context, h ledger.Handle) error {
		var callErr error
		payload, callErr = h.Evaluate(ctx, fn, args...)
		return callErr
	})
	if err != nil {
		c.logger.Debug("evaluate failed", zap.String("function", fn), zap.Error(err))
		return nil, fmt.Errorf("evaluate %s: %w", fn, err)
	}
	return payload, nil
}

// deadlineErr marks err as a timeout when the call outlived ctx.
func deadlineErr(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, model.ErrTimeout) {
		return err
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", model.ErrTimeout, err)
	}
	return err
}

func isEmpty(payload []byte) bool {
	return len(bytes.TrimSpace(payload)) == 0
}

// DecodeObject decodes a JSON object payload. An empty payload yields the zero value.
func DecodeObject[T any](payload []byte) (T, error) {
	var out T
	if isEmpty(payload) {
		return out, nil
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return out, fmt.Errorf("decode ledger payload: %w", err)
	}
	return out, nil
}

// DecodeList decodes a JSON array payload. An empty payload or a JSON null yields
// an empty, non-nil slice.
func DecodeList[T any](payload []byte) ([]T, error) {
	if isEmpty(payload) {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(payload, &out); err != nil {
		return []T{}, fmt.Errorf("decode ledger list: %w", err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// RawObject returns payload as a JSON value, substituting {} for an empty payload.
func RawObject(payload []byte) json.RawMessage {
	if isEmpty(payload) {
		return json.RawMessage("{}")
	}
	return json.RawMessage(payload)
}
