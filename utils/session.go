// File: utils/session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"instrufix/models"

	"github.com/go-redis/redis/v8"
)

// SaveSession caches a validated session snapshot in Redis, keyed by the
// token hash, with a TTL.
func SaveSession(client *redis.Client, tokenHash string, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, SessionCachePrefix+tokenHash, data, SessionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves a cached session snapshot from Redis.
func GetSession(client *redis.Client, tokenHash string) (*models.Session, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, SessionCachePrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes a cached session from Redis.
func DeleteSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, SessionCachePrefix+tokenHash).Err()
}
