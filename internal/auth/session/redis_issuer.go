package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ecoshopper:session:"

// RedisIssuer backs each session with an opaque ID stored server-side. The
// cookie value reveals nothing about the subject and logout deletes the
// record.
type RedisIssuer struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisIssuer creates an issuer storing sessions in Redis with the given
// lifetime.
func NewRedisIssuer(client *redis.Client, ttl time.Duration) *RedisIssuer {
	return &RedisIssuer{
		client: client,
		ttl:    ttl,
	}
}

// Issue stores the subject under a fresh opaque ID and returns the ID.
func (i *RedisIssuer) Issue(ctx context.Context, sub string) (string, error) {
	id := uuid.NewString()
	if err := i.client.Set(ctx, redisKeyPrefix+id, sub, i.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return id, nil
}

// Revoke deletes the session record. Unknown IDs are not an error.
func (i *RedisIssuer) Revoke(ctx context.Context, value string) error {
	if value == "" {
		return nil
	}
	if err := i.client.Del(ctx, redisKeyPrefix+value).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Subject resolves an opaque session ID back to its subject.
func (i *RedisIssuer) Subject(ctx context.Context, value string) (string, error) {
	sub, err := i.client.Get(ctx, redisKeyPrefix+value).Result()
	if err != nil {
		return "", fmt.Errorf("session not found: %w", err)
	}
	return sub, nil
}
