package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clinicflow/models"

	"github.com/go-redis/redis/v8"
)

const rosterSummaryKey = "roster:summary"

// RosterSummaryCache holds the roster availability/suggestion summary in
// redis so the operator screen does not re-aggregate on every load.
type RosterSummaryCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRosterSummaryCache(client *redis.Client, ttl time.Duration) *RosterSummaryCache {
	return &RosterSummaryCache{Client: client, TTL: ttl}
}

func (c *RosterSummaryCache) Set(ctx context.Context, summaries []models.ClientSummary) error {
	data, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("failed to marshal roster summary: %w", err)
	}
	if err := c.Client.Set(ctx, rosterSummaryKey, data, c.TTL).Err(); err != nil {
		return fmt.Errorf("failed to cache roster summary: %w", err)
	}
	return nil
}

// Get returns the cached summary, or (nil, nil) on a cache miss.
func (c *RosterSummaryCache) Get(ctx context.Context) ([]models.ClientSummary, error) {
	data, err := c.Client.Get(ctx, rosterSummaryKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summaries []models.ClientSummary
	if err := json.Unmarshal([]byte(data), &summaries); err != nil {
		return nil, fmt.Errorf("failed to parse cached roster summary: %w", err)
	}
	return summaries, nil
}
