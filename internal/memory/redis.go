// README: Conversation memory store backed by Redis lists.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const turnsKeyPrefix = "chat:%s:turns"

// Redis is a Store keeping each user's turn log in a Redis list, trimmed to
// maxTurns and expiring after ttl of inactivity.
type Redis struct {
	redis    *redis.Client
	maxTurns int
	ttl      time.Duration
}

func NewRedis(client *redis.Client, maxTurns int, ttl time.Duration) *Redis {
	if maxTurns <= 0 {
		maxTurns = 40
	}
	return &Redis{redis: client, maxTurns: maxTurns, ttl: ttl}
}

func (s *Redis) History(ctx context.Context, userID string) ([]Turn, error) {
	raw, err := s.redis.LRange(ctx, turnsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	turns := make([]Turn, 0, len(raw))
	for _, item := range raw {
		var t Turn
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func (s *Redis) Append(ctx context.Context, userID string, turns ...Turn) error {
	if len(turns) == 0 {
		return nil
	}
	values := make([]interface{}, len(turns))
	for i, t := range turns {
		raw, err := json.Marshal(t)
		if err != nil {
			return err
		}
		values[i] = raw
	}

	key := turnsKey(userID)
	pipe := s.redis.Pipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, int64(-s.maxTurns), -1)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func turnsKey(userID string) string {
	return fmt.Sprintf(turnsKeyPrefix, userID)
}
