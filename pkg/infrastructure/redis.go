package infrastructure

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// NewSuggestionCache parses REDIS_URL and verifies connectivity. An unset
// REDIS_URL is not an error; suggestions just go uncached.
func NewSuggestionCache(ctx context.Context) (*redis.Client, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}
