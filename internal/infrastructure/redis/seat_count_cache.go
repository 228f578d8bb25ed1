package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SeatCountCache は公演ごとの空席数をRedisに写す
// 正はメモリ上の台帳で、ここは外部参照用のミラー
type SeatCountCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSeatCountCache は新しいSeatCountCacheを作成する
// ttl が 0 の場合は期限なしで保存する
func NewSeatCountCache(client *redis.Client, ttl time.Duration) *SeatCountCache {
	return &SeatCountCache{client: client, ttl: ttl}
}

// SetAvailableCount は公演の空席数を保存する
func (c *SeatCountCache) SetAvailableCount(ctx context.Context, playID, count int) error {
	if err := c.client.Set(ctx, availableSeatsKey(playID), count, c.ttl).Err(); err != nil {
		return fmt.Errorf("キャッシュ保存に失敗: %w", err)
	}
	return nil
}

// SetAvailableCounts は複数公演の空席数をパイプラインでまとめて保存する
func (c *SeatCountCache) SetAvailableCounts(ctx context.Context, counts map[int]int) error {
	if len(counts) == 0 {
		return nil
	}
	pipe := c.client.Pipeline()
	for id, n := range counts {
		pipe.Set(ctx, availableSeatsKey(id), n, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("キャッシュ一括保存に失敗: %w", err)
	}
	return nil
}

func availableSeatsKey(playID int) string {
	return fmt.Sprintf("theater:plays:%d:available_seats", playID)
}
