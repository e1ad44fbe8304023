package draft

import (
	"context"
	"encoding/json"
	"event-composer-backend/logger"
	"event-composer-backend/model"
	"fmt"
	"sync"

	"github.com/go-redis/redis"
)

// RedisStore keeps the Draft under one redis key, for deployments where the
// composer runs behind more than one replica and a local file will not do.
type RedisStore struct {
	client *redis.Client
	key    string
	mu     sync.Mutex
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Load(ctx context.Context) *model.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *RedisStore) Save(ctx context.Context, patch model.DraftPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.load(ctx)
	apply(d, patch)

	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("save: error marshalling draft: %w", err)
	}

	if err := s.client.Set(s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("save: error writing draft to redis: %w", err)
	}

	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.client.Del(s.key).Err(); err != nil {
		return fmt.Errorf("clear: error removing draft from redis: %w", err)
	}

	return nil
}

func (s *RedisStore) load(ctx context.Context) *model.Draft {
	data, err := s.client.Get(s.key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warnf(ctx, "load: error reading draft from redis, starting empty: %v", err)
		}
		return &model.Draft{}
	}

	var d model.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		logger.Warnf(ctx, "load: corrupt draft under %s, starting empty: %v", s.key, err)
		return &model.Draft{}
	}

	return &d
}
