package captcha

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "captcha:"

// redisStore keeps challenges in Redis so verification works across
// instances.
type redisStore struct {
	client *redis.Client
}

func NewRedisStore(url string) (Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &redisStore{client: client}, nil
}

func (s *redisStore) Set(ctx context.Context, id, code string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+id, code, ttl).Err()
}

func (s *redisStore) Take(ctx context.Context, id string) (string, error) {
	code, err := s.client.GetDel(ctx, keyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrChallengeNotFound
		}
		return "", err
	}
	return code, nil
}

// memoryStore is the single-node fallback used when no Redis URL is
// configured.
type memoryStore struct {
	cache *gocache.Cache
}

func NewMemoryStore() Store {
	return &memoryStore{
		cache: gocache.New(gocache.NoExpiration, time.Minute),
	}
}

func (s *memoryStore) Set(_ context.Context, id, code string, ttl time.Duration) error {
	s.cache.Set(id, code, ttl)
	return nil
}

func (s *memoryStore) Take(_ context.Context, id string) (string, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return "", ErrChallengeNotFound
	}
	s.cache.Delete(id)
	code, ok := v.(string)
	if !ok {
		return "", ErrChallengeNotFound
	}
	return code, nil
}
