package movements

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/rogerio-castellano/paintchain/internal/redissvc"
)

// DefaultKey is the Redis list holding the movement log.
const DefaultKey = "paintchain:movements"

const redisTimeout = 3 * time.Second

// RedisLog appends movements as JSON entries to a Redis list so every API
// instance shares one log.
type RedisLog struct {
	svc *redissvc.RedisService
	key string
}

func NewRedisLog(svc *redissvc.RedisService, key string) *RedisLog {
	if key == "" {
		key = DefaultKey
	}
	return &RedisLog{svc: svc, key: key}
}

func (l *RedisLog) rdb() *redis.Client {
	return l.svc.Rdb()
}

func (l *RedisLog) Record(m models.Movement) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(l.svc.Ctx(), redisTimeout)
	defer cancel()
	return l.rdb().RPush(ctx, l.key, data).Err()
}

func (l *RedisLog) List(f Filter) ([]models.Movement, int, error) {
	ctx, cancel := context.WithTimeout(l.svc.Ctx(), redisTimeout)
	defer cancel()
	entries, err := l.rdb().LRange(ctx, l.key, 0, -1).Result()
	if err != nil {
		return nil, 0, err
	}

	all := make([]models.Movement, 0, len(entries))
	for _, item := range entries {
		var m models.Movement
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, 0, fmt.Errorf("decode movement: %w", err)
		}
		all = append(all, m)
	}
	page, total := f.apply(all)
	return page, total, nil
}
