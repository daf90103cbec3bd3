package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

const redisKeyPrefix = "tracechain:session:"

// RedisStore keeps sessions in Redis so every gateway replica sees them.
// Entries expire in Redis at the session's ExpiresAt.
type RedisStore struct {
	client redis.Cmdable
	now    func() time.Time
	logger *zap.Logger
}

func NewRedisStore(client redis.Cmdable, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		now:    time.Now,
		logger: logger.Named("redisSessions"),
	}
}

// NewRedisClient connects to addr and verifies it answers.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

func (r *RedisStore) Create(ctx context.Context, s model.Session) error {
	ttl := s.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("session for %s already expired", s.IdentityName)
	}
	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	ok, err := r.client.SetNX(ctx, redisKeyPrefix+s.Token, body, ttl).Result()
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	if !ok {
		return ErrTokenExists
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, token string) (model.Session, error) {
	body, err := r.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Session{}, unauthorized("unknown session")
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("load session: %w", err)
	}

	var s model.Session
	if err := json.Unmarshal(body, &s); err != nil {
		r.logger.Warn("dropping undecodable session", zap.Error(err))
		_ = r.client.Del(ctx, redisKeyPrefix+token).Err()
		return model.Session{}, unauthorized("corrupt session")
	}
	if s.Expired(r.now()) {
		return model.Session{}, unauthorized("session expired")
	}
	return s, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
