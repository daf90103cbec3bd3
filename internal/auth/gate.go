package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
	"github.com/goodnatureofminers/tracechain-gateway/internal/session"
)

const (
	defaultSessionTTL = 12 * time.Hour
	tokenAttempts     = 3
)

// Gate authenticates bearer tokens and authorizes roles.
type Gate struct {
	users  UserDirectory
	store  SessionStore
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewGate builds a Gate. Sessions it issues live for ttl.
func NewGate(users UserDirectory, store SessionStore, ttl time.Duration, logger *zap.Logger) (*Gate, error) {
	if users == nil {
		return nil, errors.New("user directory is required")
	}
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Gate{
		users:  users,
		store:  store,
		ttl:    ttl,
		now:    time.Now,
		logger: logger.Named("authGate"),
	}, nil
}

// Login checks name against the user registry and issues a session for role.
func (g *Gate) Login(ctx context.Context, role, name string) (model.Session, error) {
	r, ok := model.ParseRole(role)
	if !ok {
		return model.Session{}, &model.ValidationError{Message: "invalid role"}
	}
	if strings.TrimSpace(name) == "" {
		return model.Session{}, &model.ValidationError{Message: "name is required"}
	}

	user, err := g.users.User(ctx, name)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Session{}, fmt.Errorf("login %s: %w", name, model.ErrInvalidCredentials)
	case err != nil:
		return model.Session{}, fmt.Errorf("login %s: %w", name, err)
	}
	if user.UserID == "" || user.Status != model.UserStatusActive {
		return model.Session{}, fmt.Errorf("login %s: %w", name, model.ErrInvalidCredentials)
	}
	if user.Role != r {
		return model.Session{}, fmt.Errorf("login %s as %s: %w", name, r, model.ErrRoleMismatch)
	}

	now := g.now().UTC()
	s := model.Session{
		Role:         user.Role,
		IdentityName: user.Name,
		Organization: user.Organization,
		IssuedAt:     now,
		ExpiresAt:    now.Add(g.ttl),
	}
	for attempt := 0; attempt < tokenAttempts; attempt++ {
		if s.Token, err = session.NewToken(); err != nil {
			return model.Session{}, err
		}
		err = g.store.Create(ctx, s)
		if !errors.Is(err, session.ErrTokenExists) {
			break
		}
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("create session: %w", err)
	}

	g.logger.Info("session issued", zap.String("name", s.IdentityName), zap.String("role", string(s.Role)))
	return s, nil
}

// Logout ends the session for token.
func (g *Gate) Logout(ctx context.Context, token string) error {
	return g.store.Delete(ctx, token)
}

// Authenticate resolves a token to its session.
func (g *Gate) Authenticate(ctx context.Context, token string) (model.Session, error) {
	if token == "" {
		return model.Session{}, fmt.Errorf("%w: missing token", model.ErrUnauthorized)
	}
	return g.store.Get(ctx, token)
}

// Authorize authenticates token and checks the session role against roles.
// An empty roles list admits every role.
func (g *Gate) Authorize(ctx context.Context, token string, roles ...model.Role) (model.Session, error) {
	s, err := g.Authenticate(ctx, token)
	if err != nil {
		return model.Session{}, err
	}
	if len(roles) > 0 && !slices.Contains(roles, s.Role) {
		return model.Session{}, fmt.Errorf("%w: role %s", model.ErrForbidden, s.Role)
	}
	return s, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

type sessionKey struct{}

// WithSession attaches s to ctx.
func WithSession(ctx context.Context, s model.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session attached by WithSession.
func FromContext(ctx context.Context) (model.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(model.Session)
	return s, ok
}
