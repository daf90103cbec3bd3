package model

import (
	"errors"
	"strings"
)

var (
	// ErrConnectivity means the ledger could not be reached.
	ErrConnectivity = errors.New("ledger unreachable")
	// ErrValidation marks malformed or incomplete input, including chaincode rejections.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized means the request carries no valid session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the session role is not allowed on the route.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials means the identity is unknown or inactive.
	ErrInvalidCredentials = errors.New("user not found or inactive")
	// ErrRoleMismatch means the identity exists but is registered with another role.
	ErrRoleMismatch = errors.New("invalid role for user")
	// ErrNotFound marks an unknown id.
	ErrNotFound = errors.New("not found")
	// ErrConsensus marks a write the ordering service or validators refused.
	ErrConsensus = errors.New("transaction not committed")
	// ErrTimeout marks a ledger call that ran past its deadline.
	ErrTimeout = errors.New("ledger call timed out")
)

// ValidationError reports field-level problems with a request payload.
type ValidationError struct {
	Message string
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Missing, ", ")
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
