package database

import (
	"context"
	"sync"

	"restaurant_manager/constants"

	"github.com/redis/go-redis/v9"
)

// RedisKitchenQueue keeps the preparation queue in a single redis list.
// Remove rewrites the whole list (read, filter, delete + repush); a concurrent
// push between the read and the rewrite would be lost, so the mutex is held
// across the entire sequence and shared with Push, and the rewrite runs in one
// MULTI/EXEC pipeline.
type RedisKitchenQueue struct {
	rdb *redis.Client
	mu  sync.Mutex
}

func NewKitchenQueue(rdb *redis.Client) *RedisKitchenQueue {
	return &RedisKitchenQueue{rdb: rdb}
}

func (q *RedisKitchenQueue) Push(ctx context.Context, payload []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.rdb.RPush(ctx, constants.KITCHEN_QUEUE_KEY, payload).Err()
}

func (q *RedisKitchenQueue) Entries(ctx context.Context) ([]string, error) {
	return q.rdb.LRange(ctx, constants.KITCHEN_QUEUE_KEY, 0, -1).Result()
}

func (q *RedisKitchenQueue) Remove(ctx context.Context, match func(entry string) bool) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entries, err := q.rdb.LRange(ctx, constants.KITCHEN_QUEUE_KEY, 0, -1).Result()
	if err != nil {
		return false, err
	}

	remaining := make([]string, 0, len(entries))
	found := false
	for _, entry := range entries {
		if match(entry) {
			found = true
			continue
		}
		remaining = append(remaining, entry)
	}
	if !found {
		return false, nil
	}

	pipe := q.rdb.TxPipeline()
	pipe.Del(ctx, constants.KITCHEN_QUEUE_KEY)
	if len(remaining) > 0 {
		values := make([]interface{}, len(remaining))
		for i, entry := range remaining {
			values[i] = entry
		}
		pipe.RPush(ctx, constants.KITCHEN_QUEUE_KEY, values...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return true, nil
}
