package cart

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Carts are abandoned more often than they are checked out; expire them
// rather than keeping them forever.
const cartTTL = 7 * 24 * time.Hour

// RedisStore persists cart entries in Redis under a per-user prefix, so
// a cart survives across sessions and server restarts. A nil client is
// valid and turns persistence off (the cart then lives in memory only).
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(key string) (string, bool) {
	if s.client == nil {
		return "", false
	}
	val, err := s.client.Get(context.Background(), s.prefix+":"+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (s *RedisStore) Set(key, value string) {
	if s.client == nil {
		return
	}
	s.client.Set(context.Background(), s.prefix+":"+key, value, cartTTL)
}

func (s *RedisStore) Delete(key string) {
	if s.client == nil {
		return
	}
	s.client.Del(context.Background(), s.prefix+":"+key)
}
