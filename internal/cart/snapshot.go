package cart

import (
	"context"
	"encoding/json"
	"time"

	"sufishine-be/internal/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SnapshotStore persists full cart snapshots per identity key.
// Writes are last-write-wins; two tabs can diverge and the last save sticks.
type SnapshotStore interface {
	Save(ctx context.Context, key string, c *Cart) error
	Load(ctx context.Context, key string) (*Cart, error)
	Delete(ctx context.Context, key string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore keeps cart snapshots in redis under the given key,
// expiring abandoned carts after ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration) SnapshotStore {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Save(ctx context.Context, key string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		logger.FromCtx(ctx).Error("redis: failed to save cart snapshot",
			zap.String("key", key),
			zap.Error(err),
		)
		return ErrFailedSaveSnapshot
	}
	return nil
}

// Load returns the stored cart, or an empty one when the key is missing or
// the stored JSON no longer parses. A corrupt snapshot never breaks the
// session; the customer just starts with an empty cart.
func (s *redisStore) Load(ctx context.Context, key string) (*Cart, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		logger.FromCtx(ctx).Warn("redis: malformed cart snapshot, resetting",
			zap.String("key", key),
			zap.Error(err),
		)
		return New(), nil
	}
	if c.Items == nil {
		c.Items = make(map[string]*Item)
	}

	return &c, nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
