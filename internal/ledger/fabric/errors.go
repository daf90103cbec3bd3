package fabric

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hyperledger/fabric-gateway/pkg/client"
	"github.com/hyperledger/fabric-protos-go-apiv2/gateway"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

type operation string

const (
	opSubmit   operation = "submit"
	opEvaluate operation = "evaluate"
	opEvents   operation = "block events"
)

// classify maps a gateway client error to the model error kinds.
func classify(op operation, fn string, err error) error {
	if err == nil {
		return nil
	}

	message := detailMessage(err)
	kind := kindOf(op, err, message)

	if fn == "" {
		return fmt.Errorf("%w: %s: %s", kind, op, message)
	}
	return fmt.Errorf("%w: %s %s: %s", kind, op, fn, message)
}

func kindOf(op operation, err error, message string) error {
	switch status.Code(err) {
	case codes.DeadlineExceeded:
		return model.ErrTimeout
	case codes.Unavailable:
		return model.ErrConnectivity
	case codes.NotFound:
		return model.ErrNotFound
	}

	var (
		endorseErr      *client.EndorseError
		submitErr       *client.SubmitError
		commitStatusErr *client.CommitStatusError
		commitErr       *client.CommitError
	)
	switch {
	case errors.As(err, &commitErr), errors.As(err, &submitErr), errors.As(err, &commitStatusErr):
		return model.ErrConsensus
	case isNotFound(message):
		return model.ErrNotFound
	case errors.As(err, &endorseErr):
		return model.ErrValidation
	}

	switch op {
	case opSubmit:
		return model.ErrValidation
	case opEvaluate:
		return model.ErrNotFound
	default:
		return model.ErrConnectivity
	}
}

func isNotFound(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "does not exist") || strings.Contains(lower, "not found")
}

// detailMessage joins the gRPC status message with the per-peer error details.
func detailMessage(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return err.Error()
	}
	parts := []string{st.Message()}
	for _, detail := range st.Details() {
		if d, ok := detail.(*gateway.ErrorDetail); ok {
			parts = append(parts, fmt.Sprintf("%s@%s: %s", d.GetMspId(), d.GetAddress(), d.GetMessage()))
		}
	}
	return strings.Join(parts, "; ")
}
