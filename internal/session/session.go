// Package session stores login sessions keyed by opaque bearer tokens.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

const tokenBytes = 32

// ErrTokenExists is returned by Create when the token is already taken.
var ErrTokenExists = errors.New("session token already exists")

// Store persists sessions. Get fails with model.ErrUnauthorized for unknown or
// expired tokens.
type Store interface {
	Create(ctx context.Context, s model.Session) error
	Get(ctx context.Context, token string) (model.Session, error)
	Delete(ctx context.Context, token string) error
}

// NewToken returns 256 random bits, base64url encoded without padding.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func unauthorized(reason string) error {
	return fmt.Errorf("%w: %s", model.ErrUnauthorized, reason)
}
