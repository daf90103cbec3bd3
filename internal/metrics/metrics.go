// Package metrics exposes application metrics collectors.
package metrics

import (
	"errors"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

const namespace = "tracechain"

// status turns an operation error into a low-cardinality label value.
func status(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, model.ErrTimeout):
		return "timeout"
	case errors.Is(err, model.ErrConnectivity):
		return "connectivity"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	case errors.Is(err, model.ErrValidation):
		return "validation"
	case errors.Is(err, model.ErrConsensus):
		return "consensus"
	default:
		return "error"
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
