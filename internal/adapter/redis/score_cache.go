// Package redis holds the adapters backed by Redis: the ML-score lookaside
// cache and the simulated clock.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

const scoreKeyPrefix = "ml_scores"

// ScoreCache implements port.ScoreCache with one string key per
// (client, advertiser) pair: ml_scores:<client_id>:<advertiser_id> -> score.
type ScoreCache struct {
	rdb *goredis.Client
}

// NewScoreCache returns a cache bound to the given client.
func NewScoreCache(rdb *goredis.Client) *ScoreCache {
	return &ScoreCache{rdb: rdb}
}

// Scores collects every cached score for the client. A miss returns an empty
// slice, never an error.
func (c *ScoreCache) Scores(ctx context.Context, clientID uuid.UUID) ([]domain.MLScore, error) {
	pattern := fmt.Sprintf("%s:%s:*", scoreKeyPrefix, clientID)

	var keys []string
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan score keys: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}

	scores := make([]domain.MLScore, 0, len(keys))
	for i, key := range keys {
		raw, ok := values[i].(string)
		if !ok {
			// key expired between SCAN and MGET
			continue
		}
		score, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("malformed score at %s: %w", key, err)
		}
		parts := strings.Split(key, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed score key %s", key)
		}
		advertiserID, err := uuid.Parse(parts[2])
		if err != nil {
			return nil, fmt.Errorf("malformed advertiser id in %s: %w", key, err)
		}
		scores = append(scores, domain.MLScore{
			ClientID:     clientID,
			AdvertiserID: advertiserID,
			Score:        score,
		})
	}
	return scores, nil
}

// Put stores one score without expiry; the write-through on upsert keeps it
// current.
func (c *ScoreCache) Put(ctx context.Context, score domain.MLScore) error {
	key := fmt.Sprintf("%s:%s:%s", scoreKeyPrefix, score.ClientID, score.AdvertiserID)
	return c.rdb.Set(ctx, key, score.Score, 0).Err()
}

var _ port.ScoreCache = (*ScoreCache)(nil)
