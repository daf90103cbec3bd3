// Package auth issues sessions against the ledger's user registry and decides
// which roles may use which routes.
package auth

import (
	"context"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// UserDirectory looks identities up in the ledger's user registry.
	UserDirectory interface {
		User(ctx context.Context, name string) (model.User, error)
	}
	SessionStore interface {
		Create(ctx context.Context, s model.Session) error
		Get(ctx context.Context, token string) (model.Session, error)
		Delete(ctx context.Context, token string) error
	}
)
