package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vladimiradmaev/dietlog/internal/logger"
)

// stateTTL expires prompts nobody answered.
const stateTTL = 24 * time.Hour

// RedisManager manages conversation states using Redis
type RedisManager struct {
	client redis.UniversalClient
}

// NewRedisManager creates a Redis-based state manager on an existing client
func NewRedisManager(client redis.UniversalClient) *RedisManager {
	return &RedisManager{client: client}
}

func stateKey(chatID int64) string {
	return fmt.Sprintf("chat:%d:state", chatID)
}

// SetUserState sets the state for a chat with TTL
func (m *RedisManager) SetUserState(ctx context.Context, chatID int64, state string) {
	if state == None {
		m.ClearUserState(ctx, chatID)
		return
	}
	if err := m.client.Set(ctx, stateKey(chatID), state, stateTTL).Err(); err != nil {
		logger.Warn("Failed to save chat state", "chat_id", chatID, "error", err)
	}
}

// GetUserState gets the state for a chat. Redis errors read as None.
func (m *RedisManager) GetUserState(ctx context.Context, chatID int64) string {
	val, err := m.client.Get(ctx, stateKey(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return None
	}
	if err != nil {
		logger.Warn("Failed to read chat state", "chat_id", chatID, "error", err)
		return None
	}
	return val
}

// ClearUserState clears the state for a chat
func (m *RedisManager) ClearUserState(ctx context.Context, chatID int64) {
	if err := m.client.Del(ctx, stateKey(chatID)).Err(); err != nil {
		logger.Warn("Failed to clear chat state", "chat_id", chatID, "error", err)
	}
}
