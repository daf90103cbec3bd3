package fabric

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hyperledger/fabric-gateway/pkg/client"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

// Conn is a gateway connection bound to one channel and chaincode.
type Conn struct {
	grpcConn *grpc.ClientConn
	gateway  *client.Gateway
	network  *client.Network
	contract *client.Contract
	logger   *zap.Logger
}

// Submit endorses, orders and waits for the commit of fn.
func (c *Conn) Submit(ctx context.Context, fn string, args ...string) ([]byte, model.Receipt, error) {
	proposal, err := c.contract.NewProposal(fn, client.WithArguments(args...))
	if err != nil {
		return nil, model.Receipt{}, fmt.Errorf("%w: build proposal %s: %w", model.ErrValidation, fn, err)
	}

	transaction, err := proposal.EndorseWithContext(ctx)
	if err != nil {
		return nil, model.Receipt{}, classify(opSubmit, fn, err)
	}

	commit, err := transaction.SubmitWithContext(ctx)
	if err != nil {
		return nil, model.Receipt{}, classify(opSubmit, fn, err)
	}

	status, err := commit.StatusWithContext(ctx)
	if err != nil {
		return nil, model.Receipt{}, classify(opSubmit, fn, err)
	}

	receipt := model.Receipt{TransactionID: status.TransactionID, BlockNumber: status.BlockNumber}
	if !status.Successful {
		return nil, receipt, fmt.Errorf("%w: transaction %s for %s committed with status %s",
			model.ErrConsensus, status.TransactionID, fn, status.Code.String())
	}

	c.logger.Debug("transaction committed",
		zap.String("function", fn),
		zap.String("txId", status.TransactionID),
		zap.Uint64("block", status.BlockNumber),
	)
	return transaction.Result(), receipt, nil
}

// Evaluate runs fn on a single peer without ordering.
func (c *Conn) Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error) {
	payload, err := c.contract.EvaluateWithContext(ctx, fn, client.WithArguments(args...))
	if err != nil {
		return nil, classify(opEvaluate, fn, err)
	}
	return payload, nil
}

// BlockEvents streams blocks committed after the call. The channel closes when
// ctx ends or the upstream stream fails.
func (c *Conn) BlockEvents(ctx context.Context) (<-chan model.LiveBlockEvent, error) {
	blocks, err := c.network.BlockEvents(ctx)
	if err != nil {
		return nil, classify(opEvents, "", err)
	}

	events := make(chan model.LiveBlockEvent)
	go func() {
		defer close(events)
		for block := range blocks {
			event, err := blockEvent(block)
			if err != nil {
				c.logger.Warn("decode block", zap.Uint64("block", event.BlockNumber), zap.Error(err))
				if event.Timestamp.IsZero() {
					event.Timestamp = time.Now().UTC()
				}
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

// Healthy reports whether the underlying connection can still carry calls.
func (c *Conn) Healthy() bool {
	switch c.grpcConn.GetState() {
	case connectivity.Shutdown, connectivity.TransientFailure:
		return false
	default:
		return true
	}
}

func (c *Conn) Close() error {
	return errors.Join(c.gateway.Close(), c.grpcConn.Close())
}
