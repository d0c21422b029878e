package store

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rmello/shopfront/internal/models"
)

// trendingKey is the sorted set holding view counts per product ID.
const trendingKey = "shopfront:trending"

// RedisActivityStore keeps the view counters in a Redis sorted set so the
// trending feed survives stub restarts.
type RedisActivityStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisActivityStore(rdb *redis.Client, ctx context.Context) *RedisActivityStore {
	return &RedisActivityStore{rdb: rdb, ctx: ctx}
}

func (s *RedisActivityStore) RecordView(productID int) error {
	return s.rdb.ZIncrBy(s.ctx, trendingKey, 1, strconv.Itoa(productID)).Err()
}

func (s *RedisActivityStore) Trending(n int) ([]models.TrendingEntry, error) {
	if n < 1 {
		n = 10
	}
	members, err := s.rdb.ZRevRangeWithScores(s.ctx, trendingKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]models.TrendingEntry, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m.Member.(string))
		if err != nil {
			continue
		}
		entries = append(entries, models.TrendingEntry{ProductID: id, Views: int64(m.Score)})
	}
	return entries, nil
}
