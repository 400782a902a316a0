package activity

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "venuebooker:activity"

// RedisJournal stores lines in a Redis list. RPUSH is atomic, so several
// application instances can share one journal.
type RedisJournal struct {
	client redis.Cmdable
	key    string
}

func NewRedisJournal(client redis.Cmdable, key string) *RedisJournal {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisJournal{client: client, key: key}
}

func (j *RedisJournal) Append(ctx context.Context, line string) error {
	if err := j.client.RPush(ctx, j.key, line).Err(); err != nil {
		return fmt.Errorf("redis rpush: %w", err)
	}
	return nil
}

func (j *RedisJournal) Tail(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	lines, err := j.client.LRange(ctx, j.key, int64(-n), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}

	res := lines[:0]
	for _, l := range lines {
		if l != "" {
			res = append(res, l)
		}
	}

	return res, nil
}
