package state

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkManager(t *testing.T, m StateManager, chatID int64) {
	t.Helper()
	ctx := context.Background()

	assert.Equal(t, None, m.GetUserState(ctx, chatID))

	m.SetUserState(ctx, chatID, WaitingForWater)
	assert.Equal(t, WaitingForWater, m.GetUserState(ctx, chatID))
	assert.Equal(t, None, m.GetUserState(ctx, chatID+1))

	m.SetUserState(ctx, chatID, WaitingForWeight)
	assert.Equal(t, WaitingForWeight, m.GetUserState(ctx, chatID))

	m.SetUserState(ctx, chatID, None)
	assert.Equal(t, None, m.GetUserState(ctx, chatID))

	m.SetUserState(ctx, chatID, WaitingForWater)
	m.ClearUserState(ctx, chatID)
	assert.Equal(t, None, m.GetUserState(ctx, chatID))
}

func TestManager(t *testing.T) {
	m := NewManager()
	checkManager(t, m, 42)
	assert.Empty(t, m.userStates)
}

func TestRedisManager(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(context.Background()).Err())

	checkManager(t, NewRedisManager(client), 9_000_000_001)
}
